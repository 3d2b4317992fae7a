package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

// ValidationError blocks an action before any network call. Message is shown inline.
type ValidationError struct {
	Message    string
	Violations map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, violations map[string]string) *ValidationError {
	return &ValidationError{Message: message, Violations: violations}
}
