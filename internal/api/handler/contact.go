package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wagneradl/mission-control/internal/api/response"
	"github.com/wagneradl/mission-control/internal/domain"
	"github.com/wagneradl/mission-control/internal/service"
)

// ContactHandler handles CRM contact endpoints
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// List returns all contacts ordered by name
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contactService.List(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, contacts)
}

// Create inserts a new contact
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.ContactCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	id, err := h.contactService.Create(r.Context(), input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, map[string]string{"id": id})
}

// Update patches a contact
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.ContactPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.contactService.Update(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		response.FromError(w, err)
		return
	}

	response.NoContent(w)
}

// Delete removes a contact
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contactService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.FromError(w, err)
		return
	}

	response.NoContent(w)
}
