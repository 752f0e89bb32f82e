package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/wagneradl/mission-control/internal/api/response"
	"github.com/wagneradl/mission-control/internal/domain"
	"github.com/wagneradl/mission-control/internal/service"
)

// ActivityHandler handles activity feed endpoints
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// List returns the newest feed items
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 0)

	activities, err := h.activityService.List(r.Context(), limit)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, activities)
}

// Create appends a feed item
func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.ActivityCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	id, err := h.activityService.Create(r.Context(), input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, map[string]string{"id": id})
}

// queryInt reads an integer query parameter, falling back on absence or
// garbage.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// queryInt64 reads an int64 query parameter as a pointer, nil on absence.
func queryInt64(r *http.Request, name string) *int64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}
