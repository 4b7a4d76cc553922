package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	ErrInvalidRequest = errors.New("invalid request body")

	// ErrUnauthenticated means no credential was presented at all.
	// ErrForbidden means the credential was valid but insufficient.
	// Callers must be able to tell the two apart.
	ErrUnauthenticated = errors.New("unauthorized access")
	ErrForbidden       = errors.New("forbidden access")

	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrInvalidTransition = errors.New("invalid status transition")
)

type UserAlreadyExistsError struct{ Email string }

func (e *UserAlreadyExistsError) Error() string {
	return fmt.Sprintf("user '%s' already exists", e.Email)
}
func (e *UserAlreadyExistsError) Is(target error) bool { return target == ErrAlreadyExists }

// InvalidTransitionError reports a rejected status/donor-field combination.
type InvalidTransitionError struct {
	Status string
	Reason string
}

func (e *InvalidTransitionError) Error() string {
	if e.Status == "" {
		return e.Reason
	}

	return fmt.Sprintf("cannot move request to '%s': %s", e.Status, e.Reason)
}
func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }
