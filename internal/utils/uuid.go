package utils

import "github.com/google/uuid"

// IsValidUserID reports whether s is a canonical 36-character hyphenated
// UUID (8-4-4-4-12 hex groups, case-insensitive). Identifiers failing this
// check are rejected before any storage lookup.
func IsValidUserID(s string) bool {
	// uuid.Parse also accepts urn: and braced forms; the length pin keeps
	// only the canonical layout.
	if len(s) != 36 {
		return false
	}

	_, err := uuid.Parse(s)

	return err == nil
}
