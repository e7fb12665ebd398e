package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/heartmarshall/promptcraft-backend/internal/ratelimit"
	"github.com/heartmarshall/promptcraft-backend/pkg/ctxutil"
)

// RejectionRecorder is told about every rejected request.
type RejectionRecorder interface {
	ObserveRateLimited(scope string)
}

// RateLimit returns middleware that admits requests through limiter, keyed
// by client address and scope. Rejected requests get 429 with Retry-After.
// rec may be nil.
func RateLimit(limiter ratelimit.Limiter, scope string, rec RejectionRecorder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ctxutil.ClientIPFromCtx(r.Context())
			if ip == "" {
				ip = remoteIP(r.RemoteAddr)
			}

			d := limiter.Allow(r.Context(), scope+":"+ip)
			if !d.Allowed {
				if rec != nil {
					rec.ObserveRateLimited(scope)
				}
				secs := int(math.Ceil(d.RetryAfter.Seconds()))
				w.Header().Set("Retry-After", strconv.Itoa(max(secs, 1)))
				writeError(w, http.StatusTooManyRequests, "Too many requests", "Too many requests from this IP, please try again later.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
