package user

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

// AllowedEmailDomains is the closed set of domains accepted for registration.
// The comparison is case-sensitive.
var AllowedEmailDomains = []string{
	"gmail.com",
	"yahoo.com",
	"outlook.com",
	"aol.com",
	"icloud.com",
	"zoho.com",
	"proton.me",
	"yandex.ru",
}

// letters, whitespace, hyphens and apostrophes only
var nameRe = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)

var validate = validator.New()

const (
	MsgAllFieldsRequired = "All fields are required. Please provide name, email, and password."
	MsgNoFields          = "No changes detected. Please provide at least one field to update."
	MsgNameRequired      = "Name is required and cannot be empty"
	MsgNamePattern       = "Name cannot contain special characters. Only letters, spaces, hyphens, and apostrophes are allowed."
	MsgEmailRequired     = "Email is required and cannot be empty"
	MsgEmailFormat       = "Invalid email format or domain. Please use a valid email address."
	MsgEmailDomain       = "Email domain is not allowed. Please use an accepted domain like gmail.com."
	MsgPasswordRequired  = "Password is required and cannot be empty"
	MsgPasswordMin       = "Password must be at least 8 characters long"
)

// Fields is the mode-independent view of a candidate payload. A nil pointer
// means the key was not sent at all.
type Fields struct {
	Name     *string
	Email    *string
	Password *string
}

func (r CreateUserRequest) Fields() Fields {
	return Fields{Name: &r.Name, Email: &r.Email, Password: &r.Password}
}

func (r UpdateUserRequest) Fields() Fields {
	return Fields{Name: r.Name, Email: r.Email, Password: r.Password}
}

// ValidationError carries every violated rule; callers join the messages for
// display.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// Validate runs one parameterized rule set over the payload. In create mode
// all three fields are required, with a combined short-circuit when every
// field is absent or empty. In update mode at least one field must be sent;
// an empty name behaves as if the key was never sent. The result is nil on
// success, otherwise every violated rule's message in field order.
func Validate(f Fields, mode Mode) []string {
	name := trimmed(f.Name)
	email := trimmed(f.Email)
	password := trimmed(f.Password)

	if mode == ModeCreate && isEmpty(name) && isEmpty(email) && isEmpty(password) {
		return []string{MsgAllFieldsRequired}
	}

	if mode == ModeUpdate {
		if name != nil && *name == "" {
			name = nil
		}

		if name == nil && email == nil && password == nil {
			return []string{MsgNoFields}
		}
	}

	var msgs []string

	// name
	switch {
	case mode == ModeCreate && isEmpty(name):
		msgs = append(msgs, MsgNameRequired)

	case name != nil && !nameRe.MatchString(*name):
		msgs = append(msgs, MsgNamePattern)
	}

	// email
	switch {
	case mode == ModeCreate && isEmpty(email):
		msgs = append(msgs, MsgEmailRequired)

	case email != nil:
		if validate.Var(*email, "required,email") != nil {
			msgs = append(msgs, MsgEmailFormat)
		} else if !domainAllowed(*email) {
			msgs = append(msgs, MsgEmailDomain)
		}
	}

	// password
	switch {
	case mode == ModeCreate && isEmpty(password):
		msgs = append(msgs, MsgPasswordRequired)

	case password != nil && len(*password) < 8:
		msgs = append(msgs, MsgPasswordMin)
	}

	return msgs
}

func domainAllowed(email string) bool {
	_, domain, ok := strings.Cut(email, "@")

	if !ok {
		return false
	}

	for _, allowed := range AllowedEmailDomains {
		if domain == allowed {
			return true
		}
	}

	return false
}

// trimmed returns a pointer to the whitespace-trimmed value, keeping nil as
// nil so presence is preserved.
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}

	t := strings.TrimSpace(*s)

	return &t
}

func isEmpty(s *string) bool {
	return s == nil || *s == ""
}
