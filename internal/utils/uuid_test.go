package utils_test

import (
	"testing"

	"github.com/geocoder89/userhub/internal/utils"
)

func TestIsValidUserID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{
			name: "canonical_lowercase",
			id:   "11111111-1111-1111-1111-111111111111",
			want: true,
		},
		{
			name: "canonical_uppercase",
			id:   "A987FBC9-4BED-3078-CF07-9141BA07C9F3",
			want: true,
		},
		{
			name: "empty",
			id:   "",
			want: false,
		},
		{
			name: "random_text",
			id:   "not-a-uuid",
			want: false,
		},
		{
			name: "hex_without_hyphens",
			id:   "11111111111111111111111111111111",
			want: false,
		},
		{
			name: "urn_prefixed",
			id:   "urn:uuid:11111111-1111-1111-1111-111111111111",
			want: false,
		},
		{
			name: "braced",
			id:   "{11111111-1111-1111-1111-111111111111}",
			want: false,
		},
		{
			name: "non_hex_character",
			id:   "11111111-1111-1111-1111-11111111111g",
			want: false,
		},
		{
			name: "trailing_whitespace",
			id:   "11111111-1111-1111-1111-11111111111 ",
			want: false,
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			if got := utils.IsValidUserID(tt.id); got != tt.want {
				t.Fatalf("IsValidUserID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}
