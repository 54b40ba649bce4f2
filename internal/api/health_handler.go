package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/clients-api/internal/api/shared"
	"github.com/phrazzld/clients-api/internal/platform/logger"
	"github.com/phrazzld/clients-api/internal/redact"
)

// Pinger checks connectivity to a backing service. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Uptime    float64   `json:"uptime"`
	Database  string    `json:"database,omitempty"`
}

// HealthHandler reports process liveness and, when a Pinger is configured,
// database reachability.
type HealthHandler struct {
	startedAt time.Time
	db        Pinger
	logger    *slog.Logger
	now       func() time.Time
}

// NewHealthHandler creates a HealthHandler. db may be nil.
func NewHealthHandler(startedAt time.Time, db Pinger, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		startedAt: startedAt,
		db:        db,
		logger:    logger.With("component", "health_handler"),
		now:       time.Now,
	}
}

// pingTimeout bounds the database check.
const pingTimeout = 2 * time.Second

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	current := h.now()
	resp := HealthResponse{
		Status:    "OK",
		Timestamp: current.UTC(),
		Uptime:    current.Sub(h.startedAt).Seconds(),
	}
	status := http.StatusOK

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			logger.FromContextOrDefault(r.Context(), h.logger).
				Warn("database health check failed", "error", redact.Error(err))
			resp.Status = "DEGRADED"
			resp.Database = "unreachable"
			status = http.StatusServiceUnavailable
		} else {
			resp.Database = "ok"
		}
	}

	shared.RespondWithJSON(w, r, status, resp)
}
