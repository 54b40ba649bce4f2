// Package testdb provides helpers for tests that run against a real
// PostgreSQL database. Tests using it are skipped unless a database URL is
// configured, and each test runs inside a transaction that is rolled back.
package testdb
