package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "memberships_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "memberships_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	membershipsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "memberships_created_total",
		Help: "Count of created memberships by billing interval",
	}, []string{"interval"})

	validationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "memberships_validation_failures_total",
		Help: "Count of rejected creation requests by error code",
	}, []string{"code"})

	terminations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "memberships_terminations_total",
		Help: "Count of termination attempts by result",
	}, []string{"result"})

	deletions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "memberships_deletions_total",
		Help: "Count of deletion attempts by result",
	}, []string{"result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveCreated counts a created membership.
func ObserveCreated(interval string) {
	membershipsCreated.WithLabelValues(interval).Inc()
}

// ObserveValidationFailure counts a rejected creation request.
func ObserveValidationFailure(code string) {
	validationFailures.WithLabelValues(code).Inc()
}

// ObserveTermination counts a termination attempt; result is ok, rejected, not_found or error.
func ObserveTermination(result string) {
	terminations.WithLabelValues(result).Inc()
}

// ObserveDeletion counts a deletion attempt; result is ok, not_found or error.
func ObserveDeletion(result string) {
	deletions.WithLabelValues(result).Inc()
}
