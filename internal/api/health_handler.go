package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/taskerhq/tasker-api/internal/api/shared"
)

// apiVersion is reported by the welcome and status endpoints.
const apiVersion = "1.0.0"

// HealthHandler serves the service's liveness and metadata endpoints.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now().UTC()}
}

// Welcome handles GET /.
func (h *HealthHandler) Welcome(w http.ResponseWriter, r *http.Request) error {
	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.SuccessBody("Welcome to Tasker API", map[string]any{
			"version": apiVersion,
			"status":  "healthy",
		}))
	return nil
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) error {
	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.SuccessBody("Service is healthy", map[string]any{
			"status": "healthy",
			"uptime": time.Since(h.startedAt).Round(time.Second).String(),
		}))
	return nil
}

// Status handles GET /status.
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) error {
	shared.RespondWithJSON(w, r, http.StatusOK,
		shared.SuccessBody("Status retrieved successfully", map[string]any{
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"version":    apiVersion,
			"go_version": runtime.Version(),
			"endpoints": map[string]string{
				"health": "/health",
				"status": "/status",
				"boards": "/api/boards",
			},
		}))
	return nil
}
