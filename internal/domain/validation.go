package domain

import (
	"fmt"
	"strings"
)

// ValidationError represents a single field-level validation failure.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewFieldError creates a validation error for a specific field.
func NewFieldError(field, message string) ValidationError {
	return ValidationError{Field: field, Message: message}
}

// NewMissingFieldError creates a validation error for a required field that is absent.
func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Message: "is required"}
}

// ValidationErrors aggregates field errors for a single request.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fieldErr := range e {
		msgs[i] = fieldErr.Error()
	}
	return strings.Join(msgs, "; ")
}
