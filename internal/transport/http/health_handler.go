package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	service HealthServiceInterface
	dataset DatasetServiceInterface
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service HealthServiceInterface, dataset DatasetServiceInterface, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		dataset: dataset,
		logger:  logger.With(slog.String("component", "health_handler")),
	}
}

// HealthCheck handles GET /healthz
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := h.service.Check(r.Context())
	render.JSON(w, r, status)
}

// ReadinessCheck handles GET /healthz/ready. Ready means the dataset
// is loaded and queries can be served.
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if !h.dataset.Loaded() {
		render.Status(r, http.StatusServiceUnavailable)
		render.JSON(w, r, map[string]interface{}{
			"status": "not ready",
			"reason": "dataset not loaded",
		})
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status":    "ready",
		"loaded_at": h.dataset.LoadedAt(),
	})
}

// LivenessCheck handles GET /healthz/live
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status": "alive",
	})
}
