package domain

import "errors"

var (
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrValidation          = errors.New("validation failed")
	ErrUserNotFound        = errors.New("user not found")
	ErrStorageCorrupt      = errors.New("storage corrupt")
	ErrMalformedHash       = errors.New("malformed password hash")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrAttachmentWrite     = errors.New("attachment write failed")
	ErrSessionNotFound     = errors.New("session not found")
)

// ValidationError carries a client-facing message for rejected input.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Msg: msg}
}

func (e *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + e.Msg
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
