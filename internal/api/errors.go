package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/clients-api/internal/domain"
	"github.com/phrazzld/clients-api/internal/service"
)

// MapErrorToStatusCode maps service errors to HTTP status codes.
// Anything unrecognized is an internal failure.
func MapErrorToStatusCode(err error) int {
	var missing *service.MissingFieldsError
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, service.ErrClientNotFound):
		return http.StatusNotFound

	case errors.Is(err, service.ErrDuplicateEmail):
		return http.StatusConflict

	case errors.As(err, &missing),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the user-facing message for a classified error.
// Internal failures get fallback, which names the operation that failed.
func GetSafeErrorMessage(err error, fallback string) string {
	var missing *service.MissingFieldsError
	switch {
	case errors.Is(err, service.ErrClientNotFound):
		return "Client not found"

	case errors.Is(err, service.ErrDuplicateEmail):
		return "Email already registered"

	case errors.As(err, &missing):
		return "Missing required fields"

	case errors.Is(err, domain.ErrValidation):
		return "Validation error"

	default:
		return fallback
	}
}
