package prometheus

import (
	"strconv"
	"time"

	"github.com/RafaelEmery/rafood-api/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec
	HttpStatusCategory  *prometheus.CounterVec

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec

	// Catalog metrics
	CatalogOperationsCounter  *prometheus.CounterVec
	ScheduleLimitRejectsTotal prometheus.Counter

	// Change event metrics
	EventsPublishedCounter *prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration.
// Passing prometheus.DefaultRegisterer exposes them on the default /metrics handler.
func InitMetrics(config *config.Config, registerer prometheus.Registerer) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix
	factory := promauto.With(registerer)

	HttpRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HttpStatusCategory = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_status_category_total",
			Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
		},
		[]string{"category", "method", "path"},
	)

	DbOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)

	CatalogOperationsCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_catalog_operations_total",
			Help: "Total number of successful catalog operations",
		},
		[]string{"entity", "operation"},
	)

	ScheduleLimitRejectsTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_restaurant_schedule_limit_rejections_total",
			Help: "Total number of restaurant schedules rejected by the per restaurant limit",
		},
	)

	EventsPublishedCounter = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_events_published_total",
			Help: "Total number of catalog change events handed to the publisher",
		},
		[]string{"topic", "result"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		if DbOperationDuration == nil {
			return
		}
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordHTTPRequest records count, latency and status category of a served request
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if HttpRequestsTotal == nil {
		return
	}
	code := strconv.Itoa(status)
	HttpRequestsTotal.WithLabelValues(method, path, code).Inc()
	HttpRequestDuration.WithLabelValues(method, path, code).Observe(duration.Seconds())
	HttpStatusCategory.WithLabelValues(StatusCategory(status), method, path).Inc()
}

// RecordCatalogOperation increments the counter for catalog operations
func RecordCatalogOperation(entity, operation string) {
	if CatalogOperationsCounter == nil {
		return
	}
	CatalogOperationsCounter.WithLabelValues(entity, operation).Inc()
}

// RecordScheduleLimitReject counts a schedule refused because the restaurant is full
func RecordScheduleLimitReject() {
	if ScheduleLimitRejectsTotal == nil {
		return
	}
	ScheduleLimitRejectsTotal.Inc()
}

// RecordEventPublished counts a change event by topic and outcome
func RecordEventPublished(topic string, err error) {
	if EventsPublishedCounter == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	EventsPublishedCounter.WithLabelValues(topic, result).Inc()
}

// StatusCategory returns the status class label ("2xx", "4xx", ...) of a code
func StatusCategory(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	case status >= 200:
		return "2xx"
	default:
		return "1xx"
	}
}
