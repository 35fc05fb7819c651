package user

import (
	"errors"

	"github.com/geocoder89/userhub/internal/utils"
)

// batch delete errors
var (
	ErrInvalidBatch    = errors.New("invalid batch request")
	ErrInvalidBatchIDs = errors.New("invalid user IDs in batch request")
	ErrNoneFound       = errors.New("no matching users found")
)

// CheckBatchIDs gates a batch-delete list before any storage lookup. The
// format check is all-or-nothing: a single malformed identifier fails the
// whole batch, even when the rest are well-formed.
func CheckBatchIDs(ids []string) error {
	if len(ids) == 0 {
		return ErrInvalidBatch
	}

	valid := 0

	for _, id := range ids {
		if utils.IsValidUserID(id) {
			valid++
		}
	}

	if valid != len(ids) {
		return ErrInvalidBatchIDs
	}

	return nil
}
