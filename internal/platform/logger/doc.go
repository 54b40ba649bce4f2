// Package logger builds the process-wide JSON slog.Logger from server
// configuration and carries request-scoped loggers through contexts.
package logger
