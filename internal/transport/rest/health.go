package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger defines the minimal interface for store health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	version string
	started time.Time
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. Uptime is measured from now.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, started: time.Now(), now: time.Now}
}

// HealthResponse is the JSON response for /health.
type HealthResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Version   string    `json:"version,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	// Uptime is in seconds.
	Uptime float64 `json:"uptime"`
}

// ProbeResponse is the JSON response for /live and /ready.
type ProbeResponse struct {
	Status     string                `json:"status"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Health reports that the process is serving. It never touches the store.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	writeJSON(w, http.StatusOK, HealthResponse{
		Success:   true,
		Message:   "Server is running",
		Version:   h.version,
		Timestamp: now.UTC(),
		Uptime:    now.Sub(h.started).Seconds(),
	})
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ProbeResponse{
		Status:    "ok",
		Timestamp: h.now().UTC(),
	})
}

// Ready is the readiness probe. Pings the store: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	start := h.now()
	err := h.db.Ping(ctx)
	latency := h.now().Sub(start)

	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, ProbeResponse{
			Status:     "down",
			Components: map[string]CompStatus{"store": {Status: "down"}},
			Timestamp:  h.now().UTC(),
		})
		return
	}

	writeJSON(w, http.StatusOK, ProbeResponse{
		Status:     "ok",
		Components: map[string]CompStatus{"store": {Status: "ok", Latency: latency.String()}},
		Timestamp:  h.now().UTC(),
	})
}
