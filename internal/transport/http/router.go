// Package httptransport exposes the bridge's operational HTTP surface:
// liveness, readiness, and Prometheus metrics. The bridge has no
// user-facing API; business traffic flows through Kafka only.
package httptransport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger checks connectivity to a backing resource, for readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the thin operational HTTP layer.
type Handler struct {
	pingers map[string]Pinger
}

// NewHandler builds the ops handler. Each named pinger gates readiness.
func NewHandler(pingers map[string]Pinger) *Handler {
	return &Handler{pingers: pingers}
}

// NewRouter wires the operational endpoints.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", h.handleHealth)
	r.Get("/readyz", h.handleReady)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]string, len(h.pingers))
	status := http.StatusOK
	for name, pinger := range h.pingers {
		if err := pinger.Ping(ctx); err != nil {
			checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}

	writeJSON(w, status, checks)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
