package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the hangar API
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	TripsCreatedTotal    prometheus.Counter
	TripStatusChanges    *prometheus.CounterVec
	CostEstimatesTotal   *prometheus.CounterVec
	AirportSearchesTotal prometheus.Counter
	AirportCatalogSize   prometheus.Gauge
}

// NewMetricsRegistry initializes all metrics against reg.
// Pass prometheus.DefaultRegisterer in the server and prometheus.NewRegistry() in tests.
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hangar_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hangar_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hangar_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"method"},
		),

		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hangar_cache_hits_total",
				Help: "Total cache hits by cache name",
			},
			[]string{"cache"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hangar_cache_misses_total",
				Help: "Total cache misses by cache name",
			},
			[]string{"cache"},
		),

		TripsCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "hangar_trips_created_total",
				Help: "Total trips scheduled",
			},
		),
		TripStatusChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hangar_trip_status_changes_total",
				Help: "Trip status transitions by target status",
			},
			[]string{"status"},
		),
		CostEstimatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hangar_cost_estimates_total",
				Help: "Trip cost estimations by result",
			},
			[]string{"result"},
		),
		AirportSearchesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "hangar_airport_searches_total",
				Help: "Total airport search queries",
			},
		),
		AirportCatalogSize: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hangar_airport_catalog_size",
				Help: "Number of airports loaded into the catalog",
			},
		),
	}
}
