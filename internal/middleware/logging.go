package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/99designs/gqlgen/graphql"
	"github.com/sirupsen/logrus"
)

// responseWriter captures HTTP status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// ResolverLoggerExtension logs resolver execution times
type ResolverLoggerExtension struct {
	Log *logrus.Logger
}

// ExtensionName implements graphql.HandlerExtension
func (r *ResolverLoggerExtension) ExtensionName() string {
	return "ResolverLogger"
}

// Validate implements graphql.HandlerExtension
func (r *ResolverLoggerExtension) Validate(schema graphql.ExecutableSchema) error {
	return nil
}

// InterceptField logs each resolver duration and errors
func (r *ResolverLoggerExtension) InterceptField(ctx context.Context, next graphql.Resolver) (res interface{}, err error) {
	start := time.Now()
	res, err = next(ctx)
	fc := graphql.GetFieldContext(ctx)
	entry := r.Log.WithFields(logrus.Fields{
		"object":      fc.Object,
		"field":       fc.Field.Name,
		"duration_ms": float64(time.Since(start).Microseconds()) / 1000,
	})
	if err != nil {
		entry.WithError(err).Warn("resolver failed")
	} else {
		entry.Debug("resolver done")
	}
	return res, err
}

// LoggingMiddleware logs each HTTP request with status and duration.
func LoggingMiddleware(log *logrus.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   rw.statusCode,
			"duration": time.Since(start).String(),
			"remote":   r.RemoteAddr,
		}).Info("http request")
	})
}
