package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/clients-api/internal/domain"
	"github.com/phrazzld/clients-api/internal/platform/logger"
	"github.com/phrazzld/clients-api/internal/redact"
)

// SuccessResponse is the envelope for every successful response.
// Data is always serialized, so an operation without a payload yields "data": null.
type SuccessResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is the envelope for every failed response.
type ErrorResponse struct {
	Success   bool                    `json:"success"`
	Message   string                  `json:"message"`
	Fields    []string                `json:"fields,omitempty"`
	Errors    []domain.FieldViolation `json:"errors,omitempty"`
	Error     string                  `json:"error,omitempty"`
	TraceID   string                  `json:"trace_id,omitempty"`
	Timestamp time.Time               `json:"timestamp"`
	Code      int                     `json:"-"` // Not serialized to JSON, used for logging
}

// now is replaced in tests.
var now = func() time.Time { return time.Now().UTC() }

// ResponseOption customizes an error response.
type ResponseOption func(*ErrorResponse, *responseOptions)

type responseOptions struct {
	elevateLogLevel bool
}

// WithElevatedLogLevel logs a 4xx response at WARN instead of DEBUG.
func WithElevatedLogLevel() ResponseOption {
	return func(_ *ErrorResponse, opts *responseOptions) {
		opts.elevateLogLevel = true
	}
}

// WithFields lists the request fields that were missing.
func WithFields(fields []string) ResponseOption {
	return func(resp *ErrorResponse, _ *responseOptions) {
		resp.Fields = fields
	}
}

// WithViolations attaches per-field constraint violations.
func WithViolations(violations []domain.FieldViolation) ResponseOption {
	return func(resp *ErrorResponse, _ *responseOptions) {
		resp.Errors = violations
	}
}

// WithDiagnostic exposes the redacted error text in the response body.
// Used for internal failures so callers get a best-effort hint.
func WithDiagnostic(err error) ResponseOption {
	return func(resp *ErrorResponse, _ *responseOptions) {
		resp.Error = redact.Error(err)
	}
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithSuccess writes a success envelope.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	RespondWithJSON(w, r, status, SuccessResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: now(),
	})
}

// RespondWithError writes an error envelope without logging an underlying error.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string, opts ...ResponseOption) {
	RespondWithErrorAndLog(w, r, status, message, nil, opts...)
}

// RespondWithErrorAndLog writes an error envelope and logs the detailed error.
// The raw error never reaches the response; only WithDiagnostic exposes a
// redacted form of it.
//
// Log level strategy:
// - 5xx errors: ERROR
// - 4xx errors: DEBUG, or WARN with WithElevatedLogLevel
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
	opts ...ResponseOption,
) {
	traceID := GetTraceID(r.Context())

	resp := ErrorResponse{
		Success:   false,
		Message:   userMessage,
		TraceID:   traceID,
		Timestamp: now(),
		Code:      status,
	}
	var responseOpts responseOptions
	for _, opt := range opts {
		opt(&resp, &responseOpts)
	}

	logAttrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}
	if err != nil {
		logAttrs = append(logAttrs,
			slog.String("error", redact.Error(err)),
			slog.String("error_type", fmt.Sprintf("%T", err)),
		)
	}

	logLevel := slog.LevelDebug
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case responseOpts.elevateLogLevel && status >= http.StatusBadRequest:
		logLevel = slog.LevelWarn
	}

	// The request logger already carries trace_id.
	log := logger.FromContextOrDefault(r.Context(), slog.Default().With("trace_id", traceID))
	log.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, resp)
}
