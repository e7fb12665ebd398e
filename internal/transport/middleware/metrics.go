package middleware

import (
	"net/http"
	"time"
)

// HTTPRecorder receives per-request measurements.
type HTTPRecorder interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
	InFlight(delta float64)
}

// Metrics returns middleware that records request counts and latency by
// mux pattern. It must wrap the ServeMux directly so the matched pattern
// is visible on the request after serving.
func Metrics(rec HTTPRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			rec.InFlight(1)
			defer rec.InFlight(-1)

			next.ServeHTTP(sw, r)

			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}
			rec.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
