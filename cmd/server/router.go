package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/clients-api/internal/api"
	apiMiddleware "github.com/phrazzld/clients-api/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(apiMiddleware.Recover)
	r.Use(apiMiddleware.Metrics(app.httpMetrics))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", apiMiddleware.TraceIDHeader},
		ExposedHeaders: []string{apiMiddleware.TraceIDHeader},
		MaxAge:         300,
	}))

	// Set before mounting so sub-routers inherit them.
	r.NotFound(api.RouteNotFound)
	r.MethodNotAllowed(api.RouteNotFound)

	clientHandler := api.NewClientHandler(app.clientService, app.logger)
	clientHandler.RegisterRoutes(r)

	var db api.Pinger
	if app.db != nil {
		db = app.db
	}
	r.Get("/health", api.NewHealthHandler(app.startedAt, db, app.logger).Health)

	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{}))

	return r
}
