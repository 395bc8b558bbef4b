package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MitriadesVI/dashboard-adulto-mayor-sub001/internal/observability"
)

// MetricsMiddleware registra métricas Prometheus de cada solicitud HTTP
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lrw := newLoggingResponseWriter(w)
			startTime := time.Now()

			next.ServeHTTP(lrw, r)

			observability.HTTPRequestsTotal.
				WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(lrw.statusCode)).
				Inc()
			observability.HTTPRequestDuration.
				WithLabelValues(r.Method, r.URL.Path).
				Observe(time.Since(startTime).Seconds())
		})
	}
}
