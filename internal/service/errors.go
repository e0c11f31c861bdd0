// Package service implements the application use cases on top of the
// domain entities and store interfaces.
package service

import "errors"

// Error kinds used to classify use case failures. Handlers map these to
// HTTP status codes; callers check them with errors.Is, never by
// inspecting message text.
var (
	// ErrValidation indicates the input failed a validation rule.
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates the operation conflicts with existing state,
	// such as a duplicate email or subject name.
	ErrConflict = errors.New("conflict with existing state")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrUnauthorized indicates the caller is not authenticated or the
	// credentials are invalid.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnexpected indicates an internal failure not caused by the caller.
	ErrUnexpected = errors.New("unexpected error")
)

// UseCaseError attaches an error kind to an underlying error. It unwraps
// to both, so errors.Is matches the kind as well as any sentinel in the
// underlying chain.
type UseCaseError struct {
	Kind error
	Err  error
}

func (e *UseCaseError) Error() string {
	return e.Err.Error()
}

// Unwrap returns both the kind and the underlying error.
func (e *UseCaseError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// classified reports whether err already carries one of the error kinds.
func classified(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrUnexpected)
}

// classify wraps err with the given kind unless it is already classified.
func classify(kind, err error) error {
	if err == nil {
		return nil
	}
	if classified(err) {
		return err
	}
	return &UseCaseError{Kind: kind, Err: err}
}
