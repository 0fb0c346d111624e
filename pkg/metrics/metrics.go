// Package metrics provides Prometheus metrics for the events admin client.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus collectors for the admin client.
type Manager struct {
	namespace string
	subsystem string
	registry  prometheus.Registerer

	// API transport metrics
	apiRequests        *prometheus.CounterVec
	apiRequestDuration *prometheus.HistogramVec
	apiErrors          *prometheus.CounterVec

	// Form quality metrics
	validationFailures *prometheus.CounterVec
	submissionsBlocked prometheus.Counter

	// Listing metrics
	eventsListed  prometheus.Gauge
	eventsVisible prometheus.Gauge
}

// Option applies a configuration option to the Manager.
type Option func(*Manager)

// WithNamespace sets the metric namespace.
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// WithSubsystem sets the metric subsystem.
func WithSubsystem(sub string) Option {
	return func(m *Manager) {
		if sub != "" {
			m.subsystem = sub
		}
	}
}

// WithRegistry sets a custom registerer, mainly for tests.
func WithRegistry(r prometheus.Registerer) Option {
	return func(m *Manager) {
		if r != nil {
			m.registry = r
		}
	}
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "eventos",
		subsystem: "admin",
		registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initialize()
	return m
}

func (m *Manager) initialize() {
	factory := promauto.With(m.registry)

	m.apiRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "api_requests_total",
		Help:      "Total API requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})

	m.apiRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "api_request_duration_ms",
		Help:      "API request duration in milliseconds.",
		Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	}, []string{"endpoint", "method"})

	m.apiErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "api_errors_total",
		Help:      "Total failed API requests by endpoint.",
	}, []string{"endpoint"})

	m.validationFailures = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_failures_total",
		Help:      "Total validation failures by field.",
	}, []string{"field"})

	m.submissionsBlocked = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submissions_blocked_total",
		Help:      "Total submissions blocked by validation.",
	})

	m.eventsListed = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_listed",
		Help:      "Events returned by the last list fetch.",
	})

	m.eventsVisible = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_visible",
		Help:      "Events visible to the session role after filtering.",
	})
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager()
}

// RecordAPIRequest records an API request outcome.
func RecordAPIRequest(endpoint, method, status string) {
	globalManager.apiRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordAPIRequestDuration records an API request duration in milliseconds.
func RecordAPIRequestDuration(endpoint, method string, ms float64) {
	globalManager.apiRequestDuration.WithLabelValues(endpoint, method).Observe(ms)
}

// RecordAPIError records a failed API request.
func RecordAPIError(endpoint string) {
	globalManager.apiErrors.WithLabelValues(endpoint).Inc()
}

// RecordValidationFailure records a validation failure for a field.
func RecordValidationFailure(field string) {
	globalManager.validationFailures.WithLabelValues(field).Inc()
}

// RecordSubmissionBlocked records a submission blocked by validation.
func RecordSubmissionBlocked() {
	globalManager.submissionsBlocked.Inc()
}

// UpdateEventsListed sets the size of the last fetched event list.
func UpdateEventsListed(count int) {
	globalManager.eventsListed.Set(float64(count))
}

// UpdateEventsVisible sets the size of the last visible event list.
func UpdateEventsVisible(count int) {
	globalManager.eventsVisible.Set(float64(count))
}
