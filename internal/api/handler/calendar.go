package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wagneradl/mission-control/internal/api/response"
	"github.com/wagneradl/mission-control/internal/domain"
	"github.com/wagneradl/mission-control/internal/service"
)

// CalendarHandler handles calendar event endpoints
type CalendarHandler struct {
	calendarService *service.CalendarService
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService *service.CalendarService) *CalendarHandler {
	return &CalendarHandler{calendarService: calendarService}
}

// List returns events, optionally windowed by startDate/endDate
func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.CalendarEventFilter{
		StartDate: queryInt64(r, "startDate"),
		EndDate:   queryInt64(r, "endDate"),
	}

	events, err := h.calendarService.List(r.Context(), filter)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, events)
}

// Create inserts a new event
func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.CalendarEventCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	id, err := h.calendarService.Create(r.Context(), input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, map[string]string{"id": id})
}

// Update patches an event
func (h *CalendarHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.CalendarEventPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.calendarService.Update(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		response.FromError(w, err)
		return
	}

	response.NoContent(w)
}

// Delete removes an event
func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.calendarService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.FromError(w, err)
		return
	}

	response.NoContent(w)
}
