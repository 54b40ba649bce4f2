package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/phrazzld/clients-api/internal/domain"
	"github.com/phrazzld/clients-api/internal/store"
)

// MockClientStore implements store.ClientStore for testing
type MockClientStore struct {
	// Function fields for customizable behavior
	ListFn        func(ctx context.Context, filter store.ClientFilter) ([]*domain.Client, error)
	GetByIDFn     func(ctx context.Context, id int64) (*domain.Client, error)
	EmailExistsFn func(ctx context.Context, normalizedEmail string, excludeID int64) (bool, error)
	CreateFn      func(ctx context.Context, client *domain.Client) error
	UpdateFn      func(ctx context.Context, client *domain.Client) error
	DeleteFn      func(ctx context.Context, id int64) error

	// Now supplies timestamps for the in-memory implementation.
	Now func() time.Time

	mu      sync.Mutex
	clients map[int64]*domain.Client
	nextID  int64
}

// NewMockClientStore creates a new mock store backed by an empty in-memory table
func NewMockClientStore() *MockClientStore {
	return &MockClientStore{
		Now:     time.Now,
		clients: make(map[int64]*domain.Client),
		nextID:  1,
	}
}

// Ensure MockClientStore implements store.ClientStore
var _ store.ClientStore = (*MockClientStore)(nil)

// Seed inserts clients directly, bypassing validation. IDs are assigned when zero.
func (m *MockClientStore) Seed(clients ...*domain.Client) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, c := range clients {
		cp := *c
		if cp.ID == 0 {
			cp.ID = m.nextID
		}
		if cp.ID >= m.nextID {
			m.nextID = cp.ID + 1
		}
		if cp.CreatedAt.IsZero() {
			cp.CreatedAt = m.Now().UTC()
			cp.UpdatedAt = cp.CreatedAt
		}
		m.clients[cp.ID] = &cp
	}
}

// Len returns the number of stored clients.
func (m *MockClientStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}

func matchesFilter(c *domain.Client, f store.ClientFilter) bool {
	contains := func(haystack, needle string) bool {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}

	if f.NameContains != "" && !contains(c.Name, f.NameContains) {
		return false
	}
	if f.CityContains != "" && !contains(c.City, f.CityContains) {
		return false
	}
	if f.EmailEquals != "" && domain.NormalizeEmail(c.Email) != f.EmailEquals {
		return false
	}
	if f.EmailContains != "" && !contains(c.Email, f.EmailContains) {
		return false
	}
	if f.Active != nil && c.Active != *f.Active {
		return false
	}
	return true
}

// List implements the ClientStore interface
func (m *MockClientStore) List(ctx context.Context, filter store.ClientFilter) ([]*domain.Client, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.Client, 0, len(m.clients))
	for _, c := range m.clients {
		if matchesFilter(c, filter) {
			cp := *c
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })

	return result, nil
}

// GetByID implements the ClientStore interface
func (m *MockClientStore) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.clients[id]
	if !ok {
		return nil, store.ErrClientNotFound
	}
	cp := *c
	return &cp, nil
}

// EmailExists implements the ClientStore interface
func (m *MockClientStore) EmailExists(ctx context.Context, normalizedEmail string, excludeID int64) (bool, error) {
	if m.EmailExistsFn != nil {
		return m.EmailExistsFn(ctx, normalizedEmail, excludeID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.emailTakenLocked(normalizedEmail, excludeID), nil
}

func (m *MockClientStore) emailTakenLocked(normalizedEmail string, excludeID int64) bool {
	for id, c := range m.clients {
		if id != excludeID && domain.NormalizeEmail(c.Email) == normalizedEmail {
			return true
		}
	}
	return false
}

// Create implements the ClientStore interface
func (m *MockClientStore) Create(ctx context.Context, client *domain.Client) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, client)
	}

	if err := client.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.emailTakenLocked(domain.NormalizeEmail(client.Email), 0) {
		return store.ErrEmailExists
	}

	now := m.Now().UTC()
	client.ID = m.nextID
	client.CreatedAt = now
	client.UpdatedAt = now
	m.nextID++

	cp := *client
	m.clients[cp.ID] = &cp
	return nil
}

// Update implements the ClientStore interface
func (m *MockClientStore) Update(ctx context.Context, client *domain.Client) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, client)
	}

	if err := client.Validate(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.clients[client.ID]
	if !ok {
		return store.ErrClientNotFound
	}
	if m.emailTakenLocked(domain.NormalizeEmail(client.Email), client.ID) {
		return store.ErrEmailExists
	}

	client.CreatedAt = existing.CreatedAt
	client.UpdatedAt = m.Now().UTC()

	cp := *client
	m.clients[cp.ID] = &cp
	return nil
}

// Delete implements the ClientStore interface
func (m *MockClientStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.clients[id]; !ok {
		return store.ErrClientNotFound
	}
	delete(m.clients, id)
	return nil
}
