package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/clients-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
		detail  string
	}{
		{name: "no rows", err: sql.ErrNoRows, wantErr: store.ErrNotFound},
		{
			name:    "unique violation",
			err:     &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "clients_email_normalized_key"},
			wantErr: store.ErrDuplicate,
			detail:  "clients_email_normalized_key",
		},
		{
			name:    "check violation",
			err:     &pgconn.PgError{Code: checkViolationCode, ConstraintName: "clients_phone_digits"},
			wantErr: store.ErrInvalidEntity,
			detail:  "check constraint (clients_phone_digits)",
		},
		{
			name:    "not null violation names the column",
			err:     &pgconn.PgError{Code: notNullViolationCode, ColumnName: "city"},
			wantErr: store.ErrInvalidEntity,
			detail:  "not null (city)",
		},
		{name: "value too long", err: &pgconn.PgError{Code: stringTooLongCode}, wantErr: store.ErrInvalidEntity},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapError(tc.err)
			assert.ErrorIs(t, mapped, tc.wantErr)

			var pgErr *pgconn.PgError
			if errors.As(tc.err, &pgErr) {
				assert.True(t, errors.As(mapped, &pgErr), "driver error should stay in the chain")
			}
			if tc.detail != "" {
				assert.Contains(t, mapped.Error(), tc.detail)
			}
		})
	}

	assert.NoError(t, MapError(nil))

	other := errors.New("connection reset")
	assert.Same(t, other, MapError(other))

	unclassified := &pgconn.PgError{Code: "57014"}
	assert.Same(t, error(unclassified), MapError(unclassified))
}

func TestViolatedConstraint(t *testing.T) {
	name, ok := violatedConstraint(&pgconn.PgError{Code: checkViolationCode, ConstraintName: "clients_city_not_blank"}, checkViolationCode)
	assert.True(t, ok)
	assert.Equal(t, "clients_city_not_blank", name)

	_, ok = violatedConstraint(&pgconn.PgError{Code: uniqueViolationCode}, checkViolationCode)
	assert.False(t, ok)

	_, ok = violatedConstraint(errors.New("boom"), uniqueViolationCode)
	assert.False(t, ok)
}

func TestExpectClientRow(t *testing.T) {
	assert.NoError(t, expectClientRow(sqlmock.NewResult(0, 1)))
	assert.ErrorIs(t, expectClientRow(sqlmock.NewResult(0, 0)), store.ErrClientNotFound)

	err := expectClientRow(sqlmock.NewErrorResult(errors.New("driver")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading affected rows")

	assert.Error(t, expectClientRow(nil))
}
