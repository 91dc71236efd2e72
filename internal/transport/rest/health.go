package rest

import (
	"context"
	"net/http"
	"time"
)

const probeTimeout = 3 * time.Second

// pinger is satisfied by the database pool and the BI client.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      pinger
	remote  pinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db, remote pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, remote: remote, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings DB: 200 if OK, 503 if not.
// The BI service is not part of readiness; queries degrade without it.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check. The database is required; a failing BI
// service only degrades the overall status.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	database := probe(ctx, h.db)
	remote := probe(ctx, h.remote)

	overallStatus := "ok"
	status := http.StatusOK
	switch {
	case database.Status != "ok":
		overallStatus = "down"
		status = http.StatusServiceUnavailable
	case remote.Status != "ok":
		overallStatus = "degraded"
	}

	writeJSON(w, status, HealthResponse{
		Status:  overallStatus,
		Version: h.version,
		Components: map[string]CompStatus{
			"database": database,
			"metabase": remote,
		},
		Timestamp: time.Now(),
	})
}

// MetabasePing handles GET /metabase/ping: it checks that the service
// account can open a BI session.
func (h *HealthHandler) MetabasePing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	comp := probe(ctx, h.remote)
	if comp.Status != "ok" {
		writeJSON(w, http.StatusServiceUnavailable, comp)
		return
	}
	writeJSON(w, http.StatusOK, comp)
}

func probe(ctx context.Context, p pinger) CompStatus {
	start := time.Now()
	err := p.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		return CompStatus{Status: "down", Error: err.Error()}
	}
	return CompStatus{Status: "ok", Latency: latency.String()}
}
