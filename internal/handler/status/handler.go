package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	statusService "github.com/qiscet/campusbot/internal/service/status"
	"github.com/qiscet/campusbot/pkg/utils"
)

// Handler serves the simulated campus status.
type Handler struct {
	status *statusService.Service
}

// New creates the status handler.
func New(status *statusService.Service) *Handler {
	return &Handler{status: status}
}

// RegisterRoutes mounts the status endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/status", h.handleStatus)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.status.Current())
}
