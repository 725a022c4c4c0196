package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics reúne os coletores Prometheus da aplicação. Métodos aceitam receptor nil.
type Metrics struct {
	// HTTP
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// API Laravel
	ExternalAPICalls    *prometheus.CounterVec
	ExternalAPIDuration *prometheus.HistogramVec
	ExternalAPIFailures *prometheus.CounterVec

	// Domínio
	ThumbnailsTotal    *prometheus.CounterVec
	AnalysesTotal      *prometheus.CounterVec
	FavoriteToggles    *prometheus.CounterVec
	CatalogRefreshRuns *prometheus.CounterVec
	CatalogRefreshTime prometheus.Histogram
	FeedLoadsRejected  prometheus.Counter
}

func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registra os coletores em reg; os testes usam prometheus.NewRegistry().
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		ExternalAPICalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_api_calls_total",
				Help: "Total number of calls to the Laravel API",
			},
			[]string{"endpoint", "status"},
		),

		ExternalAPIDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "backend_api_duration_seconds",
				Help:    "Laravel API call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),

		ExternalAPIFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "backend_api_failures_total",
				Help: "Total number of Laravel API failures",
			},
			[]string{"endpoint", "error_type"},
		),

		ThumbnailsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "thumbnails_total",
				Help: "Thumbnails served by source",
			},
			[]string{"source"},
		),

		AnalysesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analyses_total",
				Help: "Simulated analyses by outcome",
			},
			[]string{"outcome"},
		),

		FavoriteToggles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "favorite_toggles_total",
				Help: "Favorite toggles by resulting state",
			},
			[]string{"state"},
		),

		CatalogRefreshRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_refresh_runs_total",
				Help: "Catalog refresh job runs by status",
			},
			[]string{"status"},
		),

		CatalogRefreshTime: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "catalog_refresh_duration_seconds",
				Help:    "Catalog refresh job duration in seconds",
				Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
			},
		),

		FeedLoadsRejected: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "feed_loads_rejected_total",
				Help: "Infinite scroll loads rejected because another load was in flight",
			},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

func (m *Metrics) IncHTTPRequestsInFlight() {
	if m == nil {
		return
	}
	m.HTTPRequestsInFlight.Inc()
}

func (m *Metrics) DecHTTPRequestsInFlight() {
	if m == nil {
		return
	}
	m.HTTPRequestsInFlight.Dec()
}

func (m *Metrics) RecordExternalAPICall(endpoint, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.ExternalAPICalls.WithLabelValues(endpoint, status).Inc()
	m.ExternalAPIDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *Metrics) RecordExternalAPIFailure(endpoint, errorType string) {
	if m == nil {
		return
	}
	m.ExternalAPIFailures.WithLabelValues(endpoint, errorType).Inc()
}

func (m *Metrics) RecordThumbnail(source string) {
	if m == nil {
		return
	}
	m.ThumbnailsTotal.WithLabelValues(source).Inc()
}

func (m *Metrics) RecordAnalysis(outcome string) {
	if m == nil {
		return
	}
	m.AnalysesTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) RecordFavoriteToggle(favorite bool) {
	if m == nil {
		return
	}
	state := "removed"
	if favorite {
		state = "added"
	}
	m.FavoriteToggles.WithLabelValues(state).Inc()
}

func (m *Metrics) RecordCatalogRefresh(status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.CatalogRefreshRuns.WithLabelValues(status).Inc()
	m.CatalogRefreshTime.Observe(duration.Seconds())
}

func (m *Metrics) RecordFeedLoadRejected() {
	if m == nil {
		return
	}
	m.FeedLoadsRejected.Inc()
}
