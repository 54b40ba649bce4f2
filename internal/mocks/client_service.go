package mocks

import (
	"context"

	"github.com/phrazzld/clients-api/internal/domain"
	"github.com/phrazzld/clients-api/internal/service"
)

// MockClientService implements service.ClientService for testing
type MockClientService struct {
	// Custom behavior functions
	ListClientsFn  func(ctx context.Context, q service.ClientQuery) ([]*domain.Client, error)
	GetClientFn    func(ctx context.Context, id int64) (*domain.Client, error)
	CreateClientFn func(ctx context.Context, in service.ClientInput) (*domain.Client, error)
	UpdateClientFn func(ctx context.Context, id int64, in service.ClientInput) (*domain.Client, error)
	DeleteClientFn func(ctx context.Context, id int64) error

	// Default return values
	Client       *domain.Client
	Clients      []*domain.Client
	DefaultError error
}

// Ensure MockClientService implements service.ClientService
var _ service.ClientService = (*MockClientService)(nil)

// ListClients implements the ClientService.ListClients method
func (m *MockClientService) ListClients(ctx context.Context, q service.ClientQuery) ([]*domain.Client, error) {
	if m.ListClientsFn != nil {
		return m.ListClientsFn(ctx, q)
	}
	return m.Clients, m.DefaultError
}

// GetClient implements the ClientService.GetClient method
func (m *MockClientService) GetClient(ctx context.Context, id int64) (*domain.Client, error) {
	if m.GetClientFn != nil {
		return m.GetClientFn(ctx, id)
	}
	return m.Client, m.DefaultError
}

// CreateClient implements the ClientService.CreateClient method
func (m *MockClientService) CreateClient(ctx context.Context, in service.ClientInput) (*domain.Client, error) {
	if m.CreateClientFn != nil {
		return m.CreateClientFn(ctx, in)
	}
	return m.Client, m.DefaultError
}

// UpdateClient implements the ClientService.UpdateClient method
func (m *MockClientService) UpdateClient(
	ctx context.Context,
	id int64,
	in service.ClientInput,
) (*domain.Client, error) {
	if m.UpdateClientFn != nil {
		return m.UpdateClientFn(ctx, id, in)
	}
	return m.Client, m.DefaultError
}

// DeleteClient implements the ClientService.DeleteClient method
func (m *MockClientService) DeleteClient(ctx context.Context, id int64) error {
	if m.DeleteClientFn != nil {
		return m.DeleteClientFn(ctx, id)
	}
	return m.DefaultError
}
