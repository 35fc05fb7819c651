package user_test

import (
	"reflect"
	"testing"

	"github.com/geocoder89/userhub/internal/domain/user"
)

func strPtr(s string) *string {
	return &s
}

func TestValidateCreate(t *testing.T) {
	tests := []struct {
		name     string
		fields   user.Fields
		wantMsgs []string
	}{
		{
			name:     "all_fields_absent_combined_error",
			fields:   user.Fields{Name: strPtr(""), Email: strPtr(""), Password: strPtr("")},
			wantMsgs: []string{user.MsgAllFieldsRequired},
		},
		{
			name:     "all_fields_whitespace_combined_error",
			fields:   user.Fields{Name: strPtr("   "), Email: strPtr(" "), Password: strPtr("\t")},
			wantMsgs: []string{user.MsgAllFieldsRequired},
		},
		{
			name:     "valid_payload",
			fields:   user.Fields{Name: strPtr("Jane Doe"), Email: strPtr("jane@gmail.com"), Password: strPtr("longenough")},
			wantMsgs: nil,
		},
		{
			name:     "name_with_apostrophe_and_hyphen",
			fields:   user.Fields{Name: strPtr("Anne-Marie O'Connor"), Email: strPtr("anne@proton.me"), Password: strPtr("longenough")},
			wantMsgs: nil,
		},
		{
			name:     "missing_name_only",
			fields:   user.Fields{Name: strPtr(""), Email: strPtr("jane@gmail.com"), Password: strPtr("longenough")},
			wantMsgs: []string{user.MsgNameRequired},
		},
		{
			name:     "name_with_digits",
			fields:   user.Fields{Name: strPtr("J4ne"), Email: strPtr("jane@gmail.com"), Password: strPtr("longenough")},
			wantMsgs: []string{user.MsgNamePattern},
		},
		{
			name:     "malformed_email",
			fields:   user.Fields{Name: strPtr("Jane Doe"), Email: strPtr("not-an-email"), Password: strPtr("longenough")},
			wantMsgs: []string{user.MsgEmailFormat},
		},
		{
			name:     "domain_not_on_allow_list",
			fields:   user.Fields{Name: strPtr("Jane Doe"), Email: strPtr("user@example.com"), Password: strPtr("longenough")},
			wantMsgs: []string{user.MsgEmailDomain},
		},
		{
			name:     "short_password",
			fields:   user.Fields{Name: strPtr("Jane Doe"), Email: strPtr("jane@gmail.com"), Password: strPtr("short")},
			wantMsgs: []string{user.MsgPasswordMin},
		},
		{
			name:   "every_violation_is_collected",
			fields: user.Fields{Name: strPtr("J4ne!"), Email: strPtr("user@example.com"), Password: strPtr("short")},
			wantMsgs: []string{
				user.MsgNamePattern,
				user.MsgEmailDomain,
				user.MsgPasswordMin,
			},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			got := user.Validate(tt.fields, user.ModeCreate)

			if !reflect.DeepEqual(got, tt.wantMsgs) {
				t.Fatalf("got %v, want %v", got, tt.wantMsgs)
			}
		})
	}
}

func TestValidateUpdate(t *testing.T) {
	tests := []struct {
		name     string
		fields   user.Fields
		wantMsgs []string
	}{
		{
			name:     "no_fields_supplied",
			fields:   user.Fields{},
			wantMsgs: []string{user.MsgNoFields},
		},
		{
			name:     "empty_name_behaves_as_absent",
			fields:   user.Fields{Name: strPtr("")},
			wantMsgs: []string{user.MsgNoFields},
		},
		{
			name:     "single_field_is_enough",
			fields:   user.Fields{Password: strPtr("longenough")},
			wantMsgs: nil,
		},
		{
			name:     "absent_fields_produce_no_errors",
			fields:   user.Fields{Email: strPtr("jane@yahoo.com")},
			wantMsgs: nil,
		},
		{
			name:     "domain_rule_still_applies",
			fields:   user.Fields{Email: strPtr("jane@corp.example")},
			wantMsgs: []string{user.MsgEmailDomain},
		},
		{
			name:     "present_fields_each_validated",
			fields:   user.Fields{Name: strPtr("J4ne"), Password: strPtr("short")},
			wantMsgs: []string{user.MsgNamePattern, user.MsgPasswordMin},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			got := user.Validate(tt.fields, user.ModeUpdate)

			if !reflect.DeepEqual(got, tt.wantMsgs) {
				t.Fatalf("got %v, want %v", got, tt.wantMsgs)
			}
		})
	}
}

func TestAllowedEmailDomainsAreCaseSensitive(t *testing.T) {
	msgs := user.Validate(user.Fields{Email: strPtr("jane@GMAIL.com")}, user.ModeUpdate)

	if !reflect.DeepEqual(msgs, []string{user.MsgEmailDomain}) {
		t.Fatalf("expected domain rejection for upper-cased domain, got %v", msgs)
	}
}
