// Package postgres provides the PostgreSQL implementation of store.ClientStore.
// It handles query construction, mapping between rows and domain.Client values,
// translation of PostgreSQL errors into store errors, and the embedded schema
// migrations applied through goose.
package postgres
