package user

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

var (
	// ErrInvalidRegistration matches every *ValidationError via errors.Is.
	ErrInvalidRegistration = errors.New("invalid registration data")
	// ErrNotFound is returned when a user does not exist.
	ErrNotFound = errors.New("user not found")
)

const minPasswordLen = 8

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// ValidationError reports the first registration field that failed
// validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is reports true for ErrInvalidRegistration.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRegistration
}

// Address groups the postal fields of a registration.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// String formats the address on a single line.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s, %s", a.Street, a.City, a.State, a.ZipCode, a.Country)
}

// RegistrationData is the input for creating or updating a user.
type RegistrationData struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     *Address
	DateOfBirth time.Time
	Password    string
	Active      bool
}

// Validate returns a *ValidationError for the first invalid field.
func (r *RegistrationData) Validate() error {
	switch {
	case blank(r.FirstName):
		return &ValidationError{Field: "first_name", Reason: "first name is required"}
	case blank(r.LastName):
		return &ValidationError{Field: "last_name", Reason: "last name is required"}
	case !emailPattern.MatchString(r.Email):
		return &ValidationError{Field: "email", Reason: "valid email is required"}
	case blank(r.PhoneNumber):
		return &ValidationError{Field: "phone_number", Reason: "phone number is required"}
	case r.Address == nil:
		return &ValidationError{Field: "address", Reason: "address is required"}
	}

	if err := r.Address.validate(); err != nil {
		return err
	}

	switch {
	case r.DateOfBirth.IsZero():
		return &ValidationError{Field: "date_of_birth", Reason: "date of birth is required"}
	case len(r.Password) < minPasswordLen:
		return &ValidationError{Field: "password", Reason: fmt.Sprintf("password must be at least %d characters", minPasswordLen)}
	}
	return nil
}

func (a *Address) validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"street", a.Street},
		{"city", a.City},
		{"state", a.State},
		{"zip_code", a.ZipCode},
		{"country", a.Country},
	}
	for _, f := range fields {
		if blank(f.value) {
			return &ValidationError{Field: "address." + f.name, Reason: f.name + " is required"}
		}
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// User is a registered account.
type User struct {
	ID          string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     Address
	DateOfBirth time.Time
	// PasswordHash is the bcrypt hash of the registration password.
	PasswordHash string
	Active       bool
}

// FullName returns "First Last".
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Store persists users.
type Store interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, u *User) error
}
