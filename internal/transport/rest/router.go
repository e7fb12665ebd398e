package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/promptcraft-backend/internal/config"
	"github.com/heartmarshall/promptcraft-backend/internal/ratelimit"
	"github.com/heartmarshall/promptcraft-backend/internal/transport/middleware"
)

// MetricsSink collects HTTP and rate limit measurements and serves the
// exposition endpoint.
type MetricsSink interface {
	middleware.HTTPRecorder
	middleware.RejectionRecorder
	Handler() http.Handler
}

// RouterDeps carries everything NewRouter mounts. Limiters and Metrics may
// be nil, which disables them.
type RouterDeps struct {
	Config config.Config
	Logger *slog.Logger

	Rewrite *RewriteHandler
	History *HistoryHandler
	Info    *InfoHandler
	Health  *HealthHandler

	GeneralLimiter ratelimit.Limiter
	RewriteLimiter ratelimit.Limiter
	Metrics        MetricsSink
}

// NewRouter builds the HTTP handler tree: API routes under the configured
// base path, probes and metrics at the root.
func NewRouter(d RouterDeps) http.Handler {
	base := d.Config.Server.BasePath

	var rejections middleware.RejectionRecorder
	if d.Metrics != nil {
		rejections = d.Metrics
	}

	limited := func(l ratelimit.Limiter, scope string) middleware.Middleware {
		if l == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return middleware.RateLimit(l, scope, rejections)
	}
	general := limited(d.GeneralLimiter, "general")
	api := func(h http.HandlerFunc, extra ...middleware.Middleware) http.Handler {
		return middleware.Chain(append([]middleware.Middleware{general}, extra...)...)(h)
	}

	mux := http.NewServeMux()

	mux.Handle("POST "+base+"/rewrite", api(d.Rewrite.Rewrite, limited(d.RewriteLimiter, "rewrite")))

	mux.Handle("POST "+base+"/history", api(d.History.Save))
	mux.Handle("GET "+base+"/history/{userId}", api(d.History.List))
	mux.Handle("DELETE "+base+"/history/{id}", api(d.History.Delete))
	mux.Handle("POST "+base+"/history/favorite/{id}", api(d.History.ToggleFavorite))
	mux.Handle("GET "+base+"/favorites/{userId}", api(d.History.Favorites))
	mux.Handle("GET "+base+"/stats/{userId}", api(d.History.Stats))

	mux.Handle("GET "+base+"/info", api(d.Info.Info))
	mux.Handle("GET "+base+"/health", api(d.Health.Health))

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)

	if d.Metrics != nil && d.Config.Metrics.Enabled {
		mux.Handle("GET "+d.Config.Metrics.Path, d.Metrics.Handler())
	}

	mux.HandleFunc("/", notFound)

	var root http.Handler = mux
	if d.Metrics != nil {
		root = middleware.Metrics(d.Metrics)(mux)
	}

	return middleware.Chain(
		middleware.Recovery(d.Logger),
		middleware.RequestID(),
		middleware.ClientIP(d.Config.Server.TrustProxy),
		middleware.Logger(d.Logger),
		middleware.SecureHeaders(),
		middleware.CORS(d.Config.CORS),
		middleware.MaxBytes(d.Config.Server.MaxBodyBytes),
	)(root)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found", "Route "+r.Method+" "+r.URL.Path+" not found")
}
