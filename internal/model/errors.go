package model

import "errors"

// ErrNotFound is returned when a project, task or comment id does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports user input that was rejected. Message is safe to
// show to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
