package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/clients-api/internal/config"
	"github.com/phrazzld/clients-api/internal/metrics"
	"github.com/phrazzld/clients-api/internal/platform/postgres"
	"github.com/phrazzld/clients-api/internal/service"
	"github.com/phrazzld/clients-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown. It is built once at startup and never
// mutated afterwards.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	registry      *prometheus.Registry
	httpMetrics   *metrics.HTTPMetrics
	clientStore   store.ClientStore
	clientService service.ClientService

	startedAt time.Time
}

// newApplication wires the PostgreSQL store into a new application.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}
	app, err := newApplicationWithStore(cfg, logger, postgres.NewPostgresClientStore(db, logger))
	if err != nil {
		return nil, err
	}
	app.db = db
	return app, nil
}

// newApplicationWithStore builds the application around an arbitrary client store.
func newApplicationWithStore(
	cfg *config.Config,
	logger *slog.Logger,
	clientStore store.ClientStore,
) (*application, error) {
	registry := metrics.NewRegistry()

	clientService, err := service.NewClientService(
		clientStore,
		metrics.NewClientMetrics(registry),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create client service: %w", err)
	}

	logger.Info("application initialized successfully")
	return &application{
		config:        cfg,
		logger:        logger,
		registry:      registry,
		httpMetrics:   metrics.NewHTTPMetrics(registry),
		clientStore:   clientStore,
		clientService: clientService,
		startedAt:     time.Now(),
	}, nil
}

// Run starts the application server and blocks until ctx is canceled or the
// server fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", "error", err)
		}
	}

	app.logger.Info("application shutdown completed")
}
