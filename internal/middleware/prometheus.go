package middleware

import (
	"net/http"
	"strconv"
	"time"

	"gqlug/internal/metrics"
)

// PrometheusMiddleware records HTTP request duration and count. The path label
// is the registered mux pattern passed by the caller, not the raw URL, so
// metric cardinality stays bounded.
func PrometheusMiddleware(path string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)
		metrics.RequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
		metrics.RequestsTotal.WithLabelValues(r.Method, path, status).Inc()
	})
}
