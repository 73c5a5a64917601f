package handler

import (
	"net/http"

	"github.com/pizza-pixel/ordering-service/internal/api"
	"github.com/pizza-pixel/ordering-service/internal/db"
)

// HealthHandler handles the health check
type HealthHandler struct {
	database *db.Postgres
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(database *db.Postgres) *HealthHandler {
	return &HealthHandler{database: database}
}

// Check handles GET /api/health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.database.HealthCheck(r.Context()); err != nil {
		api.Respond(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	api.Respond(w, http.StatusOK, map[string]string{"status": "ok"})
}
