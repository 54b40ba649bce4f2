package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/clients-api/internal/domain"
	"github.com/phrazzld/clients-api/internal/platform/logger"
	"github.com/phrazzld/clients-api/internal/store"
)

// constraintFields maps CHECK constraint names from the schema to the client field they guard.
var constraintFields = map[string]domain.FieldViolation{
	"clients_name_length":     {Field: "name", Message: "name must be between 3 and 100 characters"},
	"clients_email_not_blank": {Field: "email", Message: "email cannot be empty"},
	"clients_phone_digits":    {Field: "phone", Message: "phone must contain 10 or 11 numeric digits"},
	"clients_city_not_blank":  {Field: "city", Message: "city cannot be empty"},
}

// PostgresClientStore implements the store.ClientStore interface
// using a PostgreSQL database as the storage backend.
type PostgresClientStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresClientStore creates a new PostgreSQL implementation of the ClientStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresClientStore(db store.DBTX, logger *slog.Logger) *PostgresClientStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresClientStore{
		db:     db,
		logger: logger.With(slog.String("component", "client_store")),
	}
}

// Ensure PostgresClientStore implements store.ClientStore interface
var _ store.ClientStore = (*PostgresClientStore)(nil)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (*domain.Client, error) {
	var c domain.Client
	if err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.City,
		&c.Active,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

// List implements store.ClientStore.List
func (s *PostgresClientStore) List(ctx context.Context, filter store.ClientFilter) ([]*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args := buildListQuery(filter)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list clients", slog.String("error", err.Error()))
		return nil, store.NewOpError("list", "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	clients := make([]*domain.Client, 0)
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			log.Error("failed to scan client row", slog.String("error", err.Error()))
			return nil, store.NewOpError("list", "scan failed", err)
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating client rows", slog.String("error", err.Error()))
		return nil, store.NewOpError("list", "row iteration failed", err)
	}

	log.Debug("clients listed", slog.Int("count", len(clients)))
	return clients, nil
}

// GetByID implements store.ClientStore.GetByID
func (s *PostgresClientStore) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := "SELECT " + clientColumns + " FROM clients WHERE id = $1"

	c, err := scanClient(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("client not found", slog.Int64("client_id", id))
			return nil, store.ErrClientNotFound
		}
		log.Error("failed to get client by ID",
			slog.String("error", err.Error()),
			slog.Int64("client_id", id))
		return nil, store.NewOpError("get", "query failed", MapError(err))
	}

	return c, nil
}

// EmailExists implements store.ClientStore.EmailExists
func (s *PostgresClientStore) EmailExists(
	ctx context.Context,
	normalizedEmail string,
	excludeID int64,
) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM clients
			WHERE lower(btrim(email)) = $1 AND id <> $2
		)
	`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, normalizedEmail, excludeID).Scan(&exists); err != nil {
		log.Error("failed to check email uniqueness",
			slog.String("error", err.Error()),
			slog.Int64("exclude_id", excludeID))
		return false, store.NewOpError("email check", "query failed", MapError(err))
	}

	return exists, nil
}

// Create implements store.ClientStore.Create
// It validates the client's field constraints before inserting, then fills in
// the database-assigned ID and timestamps.
func (s *PostgresClientStore) Create(ctx context.Context, client *domain.Client) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := client.Validate(); err != nil {
		log.Debug("client validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO clients (name, email, phone, city, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		client.Name,
		client.Email,
		client.Phone,
		client.City,
		client.Active,
	).Scan(&client.ID, &client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		return s.writeError(log, "create", err)
	}

	log.Info("client created", slog.Int64("client_id", client.ID))
	return nil
}

// Update implements store.ClientStore.Update
func (s *PostgresClientStore) Update(ctx context.Context, client *domain.Client) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := client.Validate(); err != nil {
		log.Debug("client validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("client_id", client.ID))
		return err
	}

	query := `
		UPDATE clients
		SET name = $1, email = $2, phone = $3, city = $4, active = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING created_at, updated_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		client.Name,
		client.Email,
		client.Phone,
		client.City,
		client.Active,
		client.ID,
	).Scan(&client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("client not found during update", slog.Int64("client_id", client.ID))
			return store.ErrClientNotFound
		}
		return s.writeError(log, "update", err)
	}

	log.Info("client updated", slog.Int64("client_id", client.ID))
	return nil
}

// Delete implements store.ClientStore.Delete
func (s *PostgresClientStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM clients WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete client",
			slog.String("error", err.Error()),
			slog.Int64("client_id", id))
		return store.NewOpError("delete", "exec failed", MapError(err))
	}

	if err := expectClientRow(result); err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			log.Debug("client not found during delete", slog.Int64("client_id", id))
		}
		return err
	}

	log.Info("client deleted", slog.Int64("client_id", id))
	return nil
}

// writeError classifies errors from INSERT/UPDATE statements.
// Unique violations become store.ErrEmailExists and CHECK violations become
// *domain.ValidationError so callers see the same shapes as Validate produces.
func (s *PostgresClientStore) writeError(log *slog.Logger, op string, err error) error {
	if _, ok := violatedConstraint(err, uniqueViolationCode); ok {
		log.Debug("unique violation on client email", slog.String("operation", op))
		return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
	}

	if name, ok := violatedConstraint(err, checkViolationCode); ok {
		if violation, known := constraintFields[name]; known {
			log.Debug("check constraint rejected client",
				slog.String("operation", op),
				slog.String("constraint", name))
			return domain.NewValidationError(violation)
		}
	}

	log.Error("failed to write client",
		slog.String("operation", op),
		slog.String("error", err.Error()))
	return store.NewOpError(op, "write failed", MapError(err))
}
