// Package domain defines the core business entities and their validation rules.
package domain

import "errors"

// ErrValidation is the kind all entity validation failures wrap.
// Callers classify with errors.Is(err, domain.ErrValidation) instead of
// matching message text.
var ErrValidation = errors.New("validation failed")

// Entity validation errors. The message text is part of the API contract
// and is surfaced verbatim to clients.
var (
	// Subject name bounds.
	ErrSubjectNameTooShort = validationError("Name must be at least 3 characters long.")
	ErrSubjectNameTooLong  = validationError("Name must be at most 100 characters long.")

	// User full name bounds.
	ErrFullNameTooShort = validationError("Full name must be at least 3 characters long")
	ErrFullNameTooLong  = validationError("Full name must be at most 100 characters long")

	// ErrInvalidEmail is returned when an email fails the email policy.
	ErrInvalidEmail = validationError("Invalid email format")

	// ErrInvalidPassword is returned when a password fails any of the
	// password policy requirements. A single combined message covers all
	// required character classes.
	ErrInvalidPassword = validationError(
		"Password must have at least one uppercase letter, one lowercase letter, one number and one special character",
	)
)

// fieldError is a validation failure that unwraps to ErrValidation while
// keeping its own message.
type fieldError struct {
	msg string
}

func (e *fieldError) Error() string { return e.msg }

func (e *fieldError) Unwrap() error { return ErrValidation }

func validationError(msg string) error {
	return &fieldError{msg: msg}
}
