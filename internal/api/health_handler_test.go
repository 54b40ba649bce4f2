package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func TestHealth(t *testing.T) {
	t.Parallel()

	started := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		db       Pinger
		status   int
		body     string
		database string
	}{
		{name: "no database configured", db: nil, status: http.StatusOK, body: "OK"},
		{
			name:     "database reachable",
			db:       pingerFunc(func(context.Context) error { return nil }),
			status:   http.StatusOK,
			body:     "OK",
			database: "ok",
		},
		{
			name:     "database unreachable",
			db:       pingerFunc(func(context.Context) error { return errors.New("dial tcp 10.0.0.1:5432: refused") }),
			status:   http.StatusServiceUnavailable,
			body:     "DEGRADED",
			database: "unreachable",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			h := NewHealthHandler(started, tc.db, nil)
			h.now = func() time.Time { return started.Add(90 * time.Second) }

			rec := httptest.NewRecorder()
			h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tc.status, rec.Code)

			var resp HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tc.body, resp.Status)
			assert.InDelta(t, 90.0, resp.Uptime, 0.001)
			assert.Equal(t, tc.database, resp.Database)
			assert.True(t, started.Add(90*time.Second).Equal(resp.Timestamp))
		})
	}
}
