package postgres

import (
	"testing"

	"github.com/phrazzld/clients-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestBuildListQuery(t *testing.T) {
	active := true
	inactive := false

	tests := []struct {
		name      string
		filter    store.ClientFilter
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filter matches everything",
			filter:    store.ClientFilter{},
			wantQuery: "SELECT " + clientColumns + " FROM clients ORDER BY id ASC",
		},
		{
			name:      "city substring",
			filter:    store.ClientFilter{CityContains: "fort"},
			wantQuery: "SELECT " + clientColumns + ` FROM clients WHERE city ILIKE $1 ESCAPE '\' ORDER BY id ASC`,
			wantArgs:  []any{"%fort%"},
		},
		{
			name:      "exact email",
			filter:    store.ClientFilter{EmailEquals: "ana@x.com"},
			wantQuery: "SELECT " + clientColumns + " FROM clients WHERE lower(btrim(email)) = $1 ORDER BY id ASC",
			wantArgs:  []any{"ana@x.com"},
		},
		{
			name:      "email substring",
			filter:    store.ClientFilter{EmailContains: "ana"},
			wantQuery: "SELECT " + clientColumns + ` FROM clients WHERE email ILIKE $1 ESCAPE '\' ORDER BY id ASC`,
			wantArgs:  []any{"%ana%"},
		},
		{
			name:      "inactive only",
			filter:    store.ClientFilter{Active: &inactive},
			wantQuery: "SELECT " + clientColumns + " FROM clients WHERE active = $1 ORDER BY id ASC",
			wantArgs:  []any{false},
		},
		{
			name: "all filters combined in order",
			filter: store.ClientFilter{
				NameContains: "ana",
				CityContains: "fort",
				EmailEquals:  "ana@x.com",
				Active:       &active,
			},
			wantQuery: "SELECT " + clientColumns + " FROM clients WHERE " +
				`name ILIKE $1 ESCAPE '\' AND city ILIKE $2 ESCAPE '\' AND ` +
				"lower(btrim(email)) = $3 AND active = $4 ORDER BY id ASC",
			wantArgs: []any{"%ana%", "%fort%", "ana@x.com", true},
		},
		{
			name:      "like metacharacters are escaped",
			filter:    store.ClientFilter{NameContains: `50%_off\`},
			wantQuery: "SELECT " + clientColumns + ` FROM clients WHERE name ILIKE $1 ESCAPE '\' ORDER BY id ASC`,
			wantArgs:  []any{`%50\%\_off\\%`},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			query, args := buildListQuery(tc.filter)
			assert.Equal(t, tc.wantQuery, query)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}
