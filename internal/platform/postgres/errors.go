package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/clients-api/internal/store"
)

// SQLSTATE codes the client store distinguishes.
const (
	uniqueViolationCode  = "23505"
	checkViolationCode   = "23514"
	notNullViolationCode = "23502"
	stringTooLongCode    = "22001"
)

// rejectedRowCodes describe the server refusing the contents of a row.
var rejectedRowCodes = map[string]string{
	checkViolationCode:   "check constraint",
	notNullViolationCode: "not null",
	stringTooLongCode:    "value too long",
}

// MapError translates a driver error into the store sentinel it represents.
// The driver error stays in the chain so logs keep the server detail.
// Errors with no store meaning are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	if pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%w: %s: %w", store.ErrDuplicate, pgErr.ConstraintName, err)
	}
	if kind, ok := rejectedRowCodes[pgErr.Code]; ok {
		target := pgErr.ConstraintName
		if target == "" {
			target = pgErr.ColumnName
		}
		return fmt.Errorf("%w: %s (%s): %w", store.ErrInvalidEntity, kind, target, err)
	}
	return err
}

// violatedConstraint reports the constraint named by a server error with the
// given SQLSTATE code. ok is false for any other error.
func violatedConstraint(err error, code string) (name string, ok bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != code {
		return "", false
	}
	return pgErr.ConstraintName, true
}

// expectClientRow fails with store.ErrClientNotFound when a statement
// targeting a single client id touched no rows.
func expectClientRow(result sql.Result) error {
	if result == nil {
		return errors.New("no result from client statement")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return store.ErrClientNotFound
	}
	return nil
}
