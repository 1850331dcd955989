package models

import (
	"errors"
	"fmt"
)

// Domain error taxonomy. Every operation fails with exactly one of
// these; handlers translate them to HTTP statuses. None of them leaves
// partially mutated state behind — multi-write operations run inside a
// single transaction.
var (
	ErrEventNotFound = errors.New("event not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrNotAuthorized = errors.New("caller lacks the required role")

	// Invalid-state errors: the operation exists but the entity is in
	// the wrong state for it.
	ErrEventNotOpen    = errors.New("event not open for registration")
	ErrEventNotPending = errors.New("event is not pending review")

	ErrDeadlineExpired   = errors.New("registration deadline has passed")
	ErrAlreadyRegistered = errors.New("already registered for this event")
	ErrEventFull         = errors.New("event is full")

	ErrEmailTaken = errors.New("email already registered")
)

// ValidationError reports malformed or out-of-range input. The client
// must fix the request; nothing is retried server-side.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
