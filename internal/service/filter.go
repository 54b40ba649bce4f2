package service

import (
	"strings"

	"github.com/phrazzld/clients-api/internal/domain"
	"github.com/phrazzld/clients-api/internal/store"
)

// ClientQuery holds the optional list parameters as received from the caller.
// Empty strings mean "not supplied"; Active is nil when the parameter is absent.
type ClientQuery struct {
	Name   string
	City   string
	Email  string
	Active *string
}

// BuildFilter translates list parameters into a store predicate.
//
// Name and city match by case-insensitive substring. An email containing "@"
// matches the normalized stored email exactly; any other email value matches
// by case-insensitive substring. Active is "true" for true and false for any
// other supplied value, including the empty string.
func BuildFilter(q ClientQuery) store.ClientFilter {
	var f store.ClientFilter

	f.NameContains = q.Name
	f.CityContains = q.City

	if q.Email != "" {
		if strings.Contains(q.Email, "@") {
			f.EmailEquals = domain.NormalizeEmail(q.Email)
		} else {
			f.EmailContains = q.Email
		}
	}

	if q.Active != nil {
		active := *q.Active == "true"
		f.Active = &active
	}

	return f
}
