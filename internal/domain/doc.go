// Package domain defines the Client entity, its declarative field
// constraints, and the structured validation errors reported when a client
// violates them. It has no knowledge of storage or transport.
package domain
