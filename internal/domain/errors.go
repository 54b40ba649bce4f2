package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is returned when a domain entity fails validation.
// It is wrapped by *ValidationError so callers can match it with errors.Is.
var ErrValidation = errors.New("validation failed")

// FieldViolation describes a single field-level constraint that was not satisfied.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every field-level constraint violation found on an entity.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError creates a ValidationError from the given violations.
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return ErrValidation.Error()
	}

	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
