// Package service implements the application-level operations on client records.
//
// ClientService is the only write path to the store: it checks required fields,
// normalizes emails, enforces email uniqueness, merges partial updates, and turns
// list query parameters into a store.ClientFilter. Callers classify failures with
// errors.Is against the sentinels in errors.go, or errors.As for *MissingFieldsError.
package service
