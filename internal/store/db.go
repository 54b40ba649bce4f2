package store

import (
	"context"
	"database/sql"
)

// DBTX is what the PostgreSQL client store needs from a connection. The
// server hands it a *sql.DB; integration tests hand it a *sql.Tx that is
// rolled back afterwards.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
