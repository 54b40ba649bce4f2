package postgres

import (
	"fmt"
	"strings"

	"github.com/phrazzld/clients-api/internal/store"
)

const clientColumns = "id, name, email, phone, city, active, created_at, updated_at"

// likeEscaper escapes LIKE metacharacters so substring filters match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern wraps an escaped value for a case-insensitive substring match.
func containsPattern(value string) string {
	return "%" + likeEscaper.Replace(value) + "%"
}

// buildListQuery translates a ClientFilter into a SELECT statement and its arguments.
// Results are always ordered by ascending id.
func buildListQuery(f store.ClientFilter) (string, []any) {
	var (
		clauses []string
		args    []any
	)

	add := func(format string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(format, len(args)))
	}

	if f.NameContains != "" {
		add(`name ILIKE $%d ESCAPE '\'`, containsPattern(f.NameContains))
	}
	if f.CityContains != "" {
		add(`city ILIKE $%d ESCAPE '\'`, containsPattern(f.CityContains))
	}
	if f.EmailEquals != "" {
		add("lower(btrim(email)) = $%d", f.EmailEquals)
	} else if f.EmailContains != "" {
		add(`email ILIKE $%d ESCAPE '\'`, containsPattern(f.EmailContains))
	}
	if f.Active != nil {
		add("active = $%d", *f.Active)
	}

	query := "SELECT " + clientColumns + " FROM clients"
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id ASC"

	return query, args
}
