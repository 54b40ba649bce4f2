// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Collectors are registered on an explicit registry rather than the global
// default one so tests can build isolated instances.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/phrazzld/clients-api/internal/domain"
	"github.com/phrazzld/clients-api/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clients_api"

// NewRegistry returns a registry preloaded with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// HTTPMetrics records request counts and latencies per route.
type HTTPMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewHTTPMetrics registers the HTTP collectors on registry.
func NewHTTPMetrics(registry prometheus.Registerer) *HTTPMetrics {
	return &HTTPMetrics{
		requests: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "The total number of HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		duration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency distribution",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// ObserveRequest records one completed request. route is the matched route
// pattern, never the raw path, to keep label cardinality bounded.
func (m *HTTPMetrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Operation outcomes.
const (
	OutcomeSuccess   = "success"
	OutcomeNotFound  = "not_found"
	OutcomeDuplicate = "duplicate"
	OutcomeInvalid   = "invalid"
	OutcomeError     = "error"
)

// ClientMetrics counts client operations by outcome.
type ClientMetrics struct {
	operations *prometheus.CounterVec
}

// NewClientMetrics registers the client operation collectors on registry.
func NewClientMetrics(registry prometheus.Registerer) *ClientMetrics {
	return &ClientMetrics{
		operations: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "client_operations_total",
				Help:      "The total number of client operations by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
	}
}

// Ensure ClientMetrics implements service.OperationRecorder
var _ service.OperationRecorder = (*ClientMetrics)(nil)

// RecordOperation implements service.OperationRecorder.
func (m *ClientMetrics) RecordOperation(operation string, err error) {
	m.operations.WithLabelValues(operation, Outcome(err)).Inc()
}

// Outcome classifies an operation error into a metric label.
func Outcome(err error) string {
	var missing *service.MissingFieldsError
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, service.ErrClientNotFound):
		return OutcomeNotFound
	case errors.Is(err, service.ErrDuplicateEmail):
		return OutcomeDuplicate
	case errors.As(err, &missing), errors.Is(err, domain.ErrValidation):
		return OutcomeInvalid
	default:
		return OutcomeError
	}
}
