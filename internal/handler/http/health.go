package http

import (
	"net/http"

	"github.com/oakmount/siteadmin/models"
)

// health serves GET /health. Always 200, no auth.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{Status: "ok"})
}
