package handler

import (
	"net/http"

	"github.com/wagneradl/mission-control/internal/api/response"
	"github.com/wagneradl/mission-control/internal/service"
)

// SeedHandler handles the demo data seeding endpoint
type SeedHandler struct {
	seedService *service.SeedService
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(seedService *service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// SeedAll loads the demo dataset into every table
func (h *SeedHandler) SeedAll(w http.ResponseWriter, r *http.Request) {
	if err := h.seedService.SeedAll(r.Context()); err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, map[string]string{"message": "database seeded successfully"})
}
