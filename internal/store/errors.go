package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound marks lookups that matched no stored record.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate marks writes refused by a uniqueness rule.
	ErrDuplicate = errors.New("already exists")

	// ErrInvalidEntity marks rows the database refused on content grounds
	// (check, not-null or length constraints).
	ErrInvalidEntity = errors.New("rejected by storage constraints")

	// ErrClientNotFound is returned when no client has the requested id.
	ErrClientNotFound = fmt.Errorf("client %w", ErrNotFound)

	// ErrEmailExists is returned when another client already holds the normalized email.
	ErrEmailExists = fmt.Errorf("email %w", ErrDuplicate)
)

// IsNotFoundError reports whether err is, or wraps, ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is, or wraps, ErrDuplicate.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// OpError records which client store operation failed and at which stage.
type OpError struct {
	Op    string // list, get, create, update, delete, email check
	Stage string // e.g. "query failed", "scan failed"
	Err   error
}

func (e *OpError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("client store %s: %s", e.Op, e.Stage)
	}
	return fmt.Sprintf("client store %s: %s: %v", e.Op, e.Stage, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// NewOpError wraps err with the failing operation and stage.
func NewOpError(op, stage string, err error) *OpError {
	return &OpError{Op: op, Stage: stage, Err: err}
}
