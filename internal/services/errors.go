package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrForbidden          = errors.New("not authorized to modify this task")
)

// ValidationError reports the first missing or malformed field of a
// request so the boundary layer can surface it by name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func missingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " is required"}
}

func invalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " " + message}
}
