// Package store declares the ClientStore gateway, the ClientFilter predicate
// it accepts, and the sentinel errors every implementation reports. The
// service layer depends only on this package, never on a concrete database.
package store
