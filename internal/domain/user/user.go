package user

import (
	"errors"
	"time"
)

type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	// Stored exactly as supplied and never serialized into responses.
	// TODO: hash before storage; needs product signoff because no-op
	// detection currently compares raw values.
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var ErrNotFound = errors.New("user not found")

// email already belongs to another record
var ErrEmailTaken = errors.New("email already exists")

// update request where every supplied field matches the stored value
var ErrNoChanges = errors.New("no changes detected")

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// pointer fields so a missing key can be told apart from an empty value
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type DeleteUsersRequest struct {
	IDs []string `json:"ids"`
}
