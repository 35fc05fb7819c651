package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewFromCreateRequest builds a User from a validated create payload.
func NewFromCreateRequest(req CreateUserRequest) User {
	now := time.Now().UTC()

	return User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Password:  strings.TrimSpace(req.Password),
		CreatedAt: now,
		UpdatedAt: now,
	}
}
