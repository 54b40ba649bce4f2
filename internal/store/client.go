package store

import (
	"context"

	"github.com/phrazzld/clients-api/internal/domain"
)

// ClientFilter is the structured predicate used to list clients.
// Zero-valued fields do not constrain the result; the zero ClientFilter matches every client.
type ClientFilter struct {
	// NameContains matches clients whose name contains the value, ignoring case.
	NameContains string

	// CityContains matches clients whose city contains the value, ignoring case.
	CityContains string

	// EmailEquals matches clients whose normalized email equals the value.
	// The value is expected to be normalized already.
	EmailEquals string

	// EmailContains matches clients whose email contains the value, ignoring case.
	EmailContains string

	// Active restricts the result to clients with the given status when non-nil.
	Active *bool
}

// IsEmpty reports whether the filter matches every client.
func (f ClientFilter) IsEmpty() bool {
	return f.NameContains == "" &&
		f.CityContains == "" &&
		f.EmailEquals == "" &&
		f.EmailContains == "" &&
		f.Active == nil
}

// ClientStore defines the interface for client data persistence.
type ClientStore interface {
	// List returns every client matching the filter ordered by ascending ID.
	List(ctx context.Context, filter ClientFilter) ([]*domain.Client, error)

	// GetByID retrieves a client by its ID.
	// Returns ErrClientNotFound if the client does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Client, error)

	// EmailExists reports whether a client other than excludeID holds the normalized email.
	// An excludeID of zero excludes nothing.
	EmailExists(ctx context.Context, normalizedEmail string, excludeID int64) (bool, error)

	// Create validates and inserts the client, assigning its ID and timestamps.
	// Returns a *domain.ValidationError if field constraints fail.
	// Returns ErrEmailExists if the normalized email is already taken.
	Create(ctx context.Context, client *domain.Client) error

	// Update validates and persists every mutable field of the client,
	// refreshing UpdatedAt.
	// Returns ErrClientNotFound if the client does not exist.
	// Returns a *domain.ValidationError if field constraints fail.
	// Returns ErrEmailExists if the normalized email is already taken.
	Update(ctx context.Context, client *domain.Client) error

	// Delete permanently removes a client by its ID.
	// Returns ErrClientNotFound if the client does not exist.
	Delete(ctx context.Context, id int64) error
}
