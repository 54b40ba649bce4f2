package service_test

import (
	"testing"

	"github.com/phrazzld/clients-api/internal/service"
	"github.com/phrazzld/clients-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestBuildFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query service.ClientQuery
		want  store.ClientFilter
	}{
		{
			name:  "no parameters",
			query: service.ClientQuery{},
			want:  store.ClientFilter{},
		},
		{
			name:  "name and city substrings",
			query: service.ClientQuery{Name: "ana", City: "Paulo"},
			want:  store.ClientFilter{NameContains: "ana", CityContains: "Paulo"},
		},
		{
			name:  "email with at sign matches exactly after normalization",
			query: service.ClientQuery{Email: " ANA@Example.com "},
			want:  store.ClientFilter{EmailEquals: "ana@example.com"},
		},
		{
			name:  "email without at sign matches by substring",
			query: service.ClientQuery{Email: "example"},
			want:  store.ClientFilter{EmailContains: "example"},
		},
		{
			name:  "active true",
			query: service.ClientQuery{Active: strPtr("true")},
			want:  store.ClientFilter{Active: boolPtr(true)},
		},
		{
			name:  "active false",
			query: service.ClientQuery{Active: strPtr("false")},
			want:  store.ClientFilter{Active: boolPtr(false)},
		},
		{
			name:  "active with any other value is false",
			query: service.ClientQuery{Active: strPtr("yes")},
			want:  store.ClientFilter{Active: boolPtr(false)},
		},
		{
			name:  "active uppercase is false",
			query: service.ClientQuery{Active: strPtr("TRUE")},
			want:  store.ClientFilter{Active: boolPtr(false)},
		},
		{
			name:  "all combined",
			query: service.ClientQuery{Name: "a", City: "b", Email: "c@d", Active: strPtr("true")},
			want: store.ClientFilter{
				NameContains: "a",
				CityContains: "b",
				EmailEquals:  "c@d",
				Active:       boolPtr(true),
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, service.BuildFilter(tc.query))
		})
	}
}
