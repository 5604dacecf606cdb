// Package metrics defines Prometheus metrics for the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gqlug_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gqlug_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	FilterRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "gqlug_filter_rejections_total",
			Help: "Where filters rejected by validation",
		},
	)
)

// Register registers all metrics with the given registry.
func Register(reg prometheus.Registerer) {
	reg.MustRegister(RequestDuration, RequestsTotal, FilterRejections)
}
