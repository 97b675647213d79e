package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Request metrics
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hutch_requests_total",
			Help: "Total number of API requests by resource, version and status",
		},
		[]string{"resource", "version", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hutch_request_duration_seconds",
			Help:    "API request duration in seconds by resource",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	// Normalization metrics
	PaginationRejects = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hutch_pagination_rejects_total",
			Help: "Total number of rejected pagination parameters by parameter name",
		},
		[]string{"param"},
	)

	NetworksSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "hutch_networks_skipped_total",
			Help: "Total number of malformed networks skipped during view assembly",
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(PaginationRejects)
	prometheus.MustRegister(NetworksSkipped)
}

// ObserveRequest records one served request.
func ObserveRequest(resource, version string, status int, elapsed time.Duration) {
	RequestsTotal.WithLabelValues(resource, version, strconv.Itoa(status)).Inc()
	RequestDuration.WithLabelValues(resource).Observe(elapsed.Seconds())
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
