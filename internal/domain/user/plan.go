package user

import "time"

// UpdatePlan holds only the fields that were explicitly sent; absent fields
// stay nil and are never defaulted. EmailRecheck tells the caller it must
// confirm the new email is not owned by another record before persisting.
type UpdatePlan struct {
	Name         *string
	Email        *string
	Password     *string
	UpdatedAt    time.Time
	EmailRecheck bool
}

// PlanUpdate decides what an update request should do against an existing
// record. It is pure: validation failures come back as *ValidationError,
// a request whose every present field already matches the stored value comes
// back as ErrNoChanges, and the persistence write is the caller's job.
func PlanUpdate(existing User, req UpdateUserRequest) (UpdatePlan, error) {
	msgs := Validate(req.Fields(), ModeUpdate)

	if msgs != nil {
		return UpdatePlan{}, &ValidationError{Messages: msgs}
	}

	name := trimmed(req.Name)
	email := trimmed(req.Email)
	password := trimmed(req.Password)

	// empty name behaves as if the key was never sent, same as validation
	if name != nil && *name == "" {
		name = nil
	}

	noChanges := (name == nil || *name == existing.Name) &&
		(email == nil || *email == existing.Email) &&
		(password == nil || *password == existing.Password)

	if noChanges {
		return UpdatePlan{}, ErrNoChanges
	}

	return UpdatePlan{
		Name:         name,
		Email:        email,
		Password:     password,
		UpdatedAt:    time.Now().UTC(),
		EmailRecheck: email != nil && *email != existing.Email,
	}, nil
}
