package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the various metrics used for monitoring the application.
// It includes counters and a histogram for served HTTP requests,
// a histogram for database query latency and a counter for published change events.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	DBQueryDuration     *prometheus.HistogramVec
	EventsPublished     *prometheus.CounterVec
	ItemsImported       *prometheus.CounterVec
}

// NewMetrics creates a new Metrics instance with the provided Registerer.
//
// Parameters:
//   - reg: A prometheus.Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_http_requests_total",
			Help: "Total number of HTTP requests served, partitioned by route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hestia_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hestia_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'get_company', 'save_employee'
		EventsPublished: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_events_published_total",
			Help: "Total number of change events handed to the broker.",
		}, []string{"status"}),
		ItemsImported: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hestia_items_imported_total",
			Help: "Total number of records created by admin tasks.",
		}, []string{"type"}),
	}

	metrics.EventsPublished.WithLabelValues("success")
	metrics.EventsPublished.WithLabelValues("failure")

	return metrics
}
