package user_test

import (
	"errors"
	"testing"
	"time"

	"github.com/geocoder89/userhub/internal/domain/user"
)

func existingUser() user.User {
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	return user.User{
		ID:        "11111111-1111-1111-1111-111111111111",
		Name:      "Jane Doe",
		Email:     "jane@gmail.com",
		Password:  "longenough",
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestPlanUpdate(t *testing.T) {
	tests := []struct {
		name        string
		req         user.UpdateUserRequest
		wantErr     error
		wantName    *string
		wantEmail   *string
		wantRecheck bool
	}{
		{
			name:    "identical_values_are_a_noop",
			req:     user.UpdateUserRequest{Name: strPtr("Jane Doe"), Email: strPtr("jane@gmail.com"), Password: strPtr("longenough")},
			wantErr: user.ErrNoChanges,
		},
		{
			name:    "single_identical_field_is_a_noop",
			req:     user.UpdateUserRequest{Name: strPtr("Jane Doe")},
			wantErr: user.ErrNoChanges,
		},
		{
			name:    "whitespace_padding_does_not_count_as_change",
			req:     user.UpdateUserRequest{Name: strPtr("  Jane Doe  ")},
			wantErr: user.ErrNoChanges,
		},
		{
			name:     "name_change_only",
			req:      user.UpdateUserRequest{Name: strPtr("Janet Doe")},
			wantName: strPtr("Janet Doe"),
		},
		{
			name:        "email_change_requires_recheck",
			req:         user.UpdateUserRequest{Email: strPtr("janet@yahoo.com")},
			wantEmail:   strPtr("janet@yahoo.com"),
			wantRecheck: true,
		},
		{
			name:      "same_email_plus_name_change_skips_recheck",
			req:       user.UpdateUserRequest{Name: strPtr("Janet Doe"), Email: strPtr("jane@gmail.com")},
			wantName:  strPtr("Janet Doe"),
			wantEmail: strPtr("jane@gmail.com"),
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			existing := existingUser()

			plan, err := user.PlanUpdate(existing, tt.req)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			assertPtrEqual(t, "name", plan.Name, tt.wantName)
			assertPtrEqual(t, "email", plan.Email, tt.wantEmail)

			if plan.EmailRecheck != tt.wantRecheck {
				t.Fatalf("EmailRecheck = %v, want %v", plan.EmailRecheck, tt.wantRecheck)
			}

			if !plan.UpdatedAt.After(existing.UpdatedAt) {
				t.Fatalf("UpdatedAt %v should be after %v", plan.UpdatedAt, existing.UpdatedAt)
			}
		})
	}
}

func TestPlanUpdateValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     user.UpdateUserRequest
		wantMsg string
	}{
		{
			name:    "no_fields",
			req:     user.UpdateUserRequest{},
			wantMsg: user.MsgNoFields,
		},
		{
			name:    "short_password",
			req:     user.UpdateUserRequest{Password: strPtr("short")},
			wantMsg: user.MsgPasswordMin,
		},
		{
			name:    "bad_domain",
			req:     user.UpdateUserRequest{Email: strPtr("jane@corp.example")},
			wantMsg: user.MsgEmailDomain,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			_, err := user.PlanUpdate(existingUser(), tt.req)

			var vErr *user.ValidationError

			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}

			if vErr.Error() != tt.wantMsg {
				t.Fatalf("message = %q, want %q", vErr.Error(), tt.wantMsg)
			}
		})
	}
}

func assertPtrEqual(t *testing.T, label string, got, want *string) {
	t.Helper()

	switch {
	case want == nil && got != nil:
		t.Fatalf("%s = %q, want nil", label, *got)
	case want != nil && got == nil:
		t.Fatalf("%s = nil, want %q", label, *want)
	case want != nil && got != nil && *got != *want:
		t.Fatalf("%s = %q, want %q", label, *got, *want)
	}
}
