package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/clients-api/internal/domain"
	"github.com/phrazzld/clients-api/internal/platform/logger"
	"github.com/phrazzld/clients-api/internal/store"
)

// ClientInput carries client fields supplied by a caller for create or update.
// Empty strings are treated as "not supplied"; Active is nil when omitted.
type ClientInput struct {
	Name   string
	Email  string
	Phone  string
	City   string
	Active *bool
}

// OperationRecorder receives the outcome of each client operation.
type OperationRecorder interface {
	RecordOperation(operation string, err error)
}

// ClientService provides the client record operations.
type ClientService interface {
	// ListClients returns every client matching the query ordered by ascending ID.
	ListClients(ctx context.Context, q ClientQuery) ([]*domain.Client, error)

	// GetClient retrieves a client by ID.
	// Returns ErrClientNotFound if no such client exists.
	GetClient(ctx context.Context, id int64) (*domain.Client, error)

	// CreateClient validates, normalizes, and stores a new client.
	// Returns *MissingFieldsError, ErrDuplicateEmail, or *domain.ValidationError on bad input.
	CreateClient(ctx context.Context, in ClientInput) (*domain.Client, error)

	// UpdateClient merges the input into an existing client.
	// Empty name, email, phone, or city keep the stored value; Active is applied only when non-nil.
	// Returns ErrClientNotFound, ErrDuplicateEmail, or *domain.ValidationError.
	UpdateClient(ctx context.Context, id int64, in ClientInput) (*domain.Client, error)

	// DeleteClient permanently removes a client.
	// Returns ErrClientNotFound if no such client exists.
	DeleteClient(ctx context.Context, id int64) error
}

// ClientServiceImpl implements the ClientService interface
type ClientServiceImpl struct {
	clientStore store.ClientStore
	recorder    OperationRecorder
	logger      *slog.Logger
}

// NewClientService creates a new ClientService.
// recorder may be nil when operation metrics are not collected.
func NewClientService(
	clientStore store.ClientStore,
	recorder OperationRecorder,
	logger *slog.Logger,
) (*ClientServiceImpl, error) {
	if clientStore == nil {
		return nil, errors.New("clientStore cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &ClientServiceImpl{
		clientStore: clientStore,
		recorder:    recorder,
		logger:      logger.With("component", "client_service"),
	}, nil
}

// Ensure ClientServiceImpl implements ClientService
var _ ClientService = (*ClientServiceImpl)(nil)

func (s *ClientServiceImpl) record(operation string, err error) {
	if s.recorder != nil {
		s.recorder.RecordOperation(operation, err)
	}
}

// ListClients implements ClientService.ListClients
func (s *ClientServiceImpl) ListClients(ctx context.Context, q ClientQuery) (clients []*domain.Client, err error) {
	defer func() { s.record("list", err) }()
	log := logger.FromContextOrDefault(ctx, s.logger)

	filter := BuildFilter(q)
	clients, err = s.clientStore.List(ctx, filter)
	if err != nil {
		log.Error("failed to list clients", "error", err)
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	log.Debug("listed clients", "count", len(clients), "filtered", !filter.IsEmpty())
	return clients, nil
}

// GetClient implements ClientService.GetClient
func (s *ClientServiceImpl) GetClient(ctx context.Context, id int64) (client *domain.Client, err error) {
	defer func() { s.record("get", err) }()
	return s.findClient(ctx, id)
}

func (s *ClientServiceImpl) findClient(ctx context.Context, id int64) (*domain.Client, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	client, err := s.clientStore.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("client not found", "client_id", id)
			return nil, fmt.Errorf("%w: id %d", ErrClientNotFound, id)
		}
		log.Error("failed to retrieve client", "error", err, "client_id", id)
		return nil, fmt.Errorf("failed to retrieve client: %w", err)
	}

	return client, nil
}

// ensureEmailAvailable fails with ErrDuplicateEmail when a client other than
// excludeID already holds the normalized email.
func (s *ClientServiceImpl) ensureEmailAvailable(ctx context.Context, normalized string, excludeID int64) error {
	exists, err := s.clientStore.EmailExists(ctx, normalized, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if exists {
		return ErrDuplicateEmail
	}
	return nil
}

// CreateClient implements ClientService.CreateClient
func (s *ClientServiceImpl) CreateClient(ctx context.Context, in ClientInput) (client *domain.Client, err error) {
	defer func() { s.record("create", err) }()
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := checkRequiredFields(in); err != nil {
		log.Debug("create rejected: missing fields", "error", err)
		return nil, err
	}

	email := domain.NormalizeEmail(in.Email)
	if err := s.ensureEmailAvailable(ctx, email, 0); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			log.Debug("create rejected: email already registered")
		}
		return nil, err
	}

	client = &domain.Client{
		Name:   in.Name,
		Email:  email,
		Phone:  in.Phone,
		City:   in.City,
		Active: true,
	}
	if in.Active != nil {
		client.Active = *in.Active
	}

	if err := s.clientStore.Create(ctx, client); err != nil {
		return nil, s.classifyWriteError(log, "create", err)
	}

	log.Info("client created", "client_id", client.ID)
	return client, nil
}

// UpdateClient implements ClientService.UpdateClient
func (s *ClientServiceImpl) UpdateClient(
	ctx context.Context,
	id int64,
	in ClientInput,
) (client *domain.Client, err error) {
	defer func() { s.record("update", err) }()
	log := logger.FromContextOrDefault(ctx, s.logger)

	current, err := s.findClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != "" && emailChanged(in.Email, current.Email) {
		if err := s.ensureEmailAvailable(ctx, domain.NormalizeEmail(in.Email), id); err != nil {
			if errors.Is(err, ErrDuplicateEmail) {
				log.Debug("update rejected: email already registered", "client_id", id)
			}
			return nil, err
		}
	}

	merged := mergeClient(*current, in)
	if err := s.clientStore.Update(ctx, &merged); err != nil {
		if store.IsNotFoundError(err) {
			return nil, fmt.Errorf("%w: id %d", ErrClientNotFound, id)
		}
		return nil, s.classifyWriteError(log, "update", err)
	}

	log.Info("client updated", "client_id", id)
	return &merged, nil
}

// mergeClient applies the input over the current client. Empty strings keep the
// current value, so an explicit "" behaves exactly like an omitted field.
func mergeClient(current domain.Client, in ClientInput) domain.Client {
	if in.Name != "" {
		current.Name = in.Name
	}
	if in.Email != "" {
		current.Email = domain.NormalizeEmail(in.Email)
	}
	if in.Phone != "" {
		current.Phone = in.Phone
	}
	if in.City != "" {
		current.City = in.City
	}
	if in.Active != nil {
		current.Active = *in.Active
	}
	return current
}

// DeleteClient implements ClientService.DeleteClient
func (s *ClientServiceImpl) DeleteClient(ctx context.Context, id int64) (err error) {
	defer func() { s.record("delete", err) }()
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.findClient(ctx, id); err != nil {
		return err
	}

	if err := s.clientStore.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return fmt.Errorf("%w: id %d", ErrClientNotFound, id)
		}
		log.Error("failed to delete client", "error", err, "client_id", id)
		return fmt.Errorf("failed to delete client: %w", err)
	}

	log.Info("client deleted", "client_id", id)
	return nil
}

// classifyWriteError converts store write failures into service errors.
// Validation errors pass through untouched so callers can report each violation.
func (s *ClientServiceImpl) classifyWriteError(log *slog.Logger, op string, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		log.Debug("client rejected by field constraints", "operation", op, "error", err)
		return verr
	case store.IsDuplicateError(err):
		// Lost a race with a concurrent writer; the unique index caught it.
		log.Debug("unique index rejected client email", "operation", op)
		return ErrDuplicateEmail
	default:
		log.Error("failed to persist client", "operation", op, "error", err)
		return fmt.Errorf("failed to %s client: %w", op, err)
	}
}
