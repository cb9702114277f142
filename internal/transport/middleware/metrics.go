package middleware

import (
	"net/http"
	"time"

	"github.com/heartmarshall/fieldreports-backend/internal/metrics"
)

// Metrics records request counts and latency labelled by the matched route
// pattern. It must be the innermost middleware so that the pattern set by
// http.ServeMux is visible after the call.
func Metrics(m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			captureRequest(r)

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			m.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
