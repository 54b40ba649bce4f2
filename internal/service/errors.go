package service

import (
	"errors"
	"fmt"
	"strings"
)

// Service sentinel errors. The API layer maps these to HTTP status codes.
var (
	// ErrClientNotFound indicates no client exists with the requested ID.
	// API layer should map this to HTTP 404 Not Found.
	ErrClientNotFound = errors.New("client not found")

	// ErrDuplicateEmail indicates another client already holds the normalized email.
	// API layer should map this to HTTP 409 Conflict.
	ErrDuplicateEmail = errors.New("email already registered")
)

// MissingFieldsError reports every required field absent from a create request.
// API layer should map this to HTTP 400 Bad Request.
type MissingFieldsError struct {
	Fields []string
}

// Error implements the error interface.
func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}
