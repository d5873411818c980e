package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "postl_admin"

var (
	// RequestCounter counts all HTTP requests with labels
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// RequestDurationHistogram records request duration in seconds
	RequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// ReconcileCorrections counts tenants flipped inactive because their contract expired
	ReconcileCorrections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_corrections_total",
			Help:      "Expired tenants whose active flag was corrected",
		},
	)

	// ReconcileFailures counts correction writes the backend rejected
	ReconcileFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_failures_total",
			Help:      "Correction writes that failed and will be retried on the next list fetch",
		},
	)

	// TenantCreations counts create-tenant sagas by outcome
	TenantCreations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tenant_creations_total",
			Help:      "Create-tenant attempts by outcome",
		},
		[]string{"outcome"},
	)
)

// Create-tenant outcomes
const (
	OutcomeCreated       = "created"
	OutcomeFailed        = "failed"
	OutcomeCompensated   = "compensated"
	OutcomeOrphanedOwner = "orphaned_owner"
)

func init() {
	prometheus.MustRegister(
		RequestCounter,
		RequestDurationHistogram,
		ReconcileCorrections,
		ReconcileFailures,
		TenantCreations,
	)
}

// ObserveRequest records one served HTTP request
func ObserveRequest(method, path string, status int, elapsed time.Duration) {
	statusStr := strconv.Itoa(status)
	RequestCounter.WithLabelValues(method, path, statusStr).Inc()
	RequestDurationHistogram.WithLabelValues(method, path, statusStr).Observe(elapsed.Seconds())
}

// Handler returns an HTTP handler for exposing Prometheus metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
