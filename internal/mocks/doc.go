// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes function fields for every interface method so a test can
// override exactly the behavior it cares about. When a function field is nil,
// MockClientStore falls back to an in-memory implementation that honors the
// same filter, validation and uniqueness rules as the PostgreSQL store, which
// lets handler and router tests exercise full request flows without a database.
//
// Usage:
//
//	clientStore := mocks.NewMockClientStore()
//	clientStore.GetByIDFn = func(ctx context.Context, id int64) (*domain.Client, error) {
//	    return nil, store.ErrClientNotFound
//	}
package mocks
