package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wagneradl/mission-control/internal/api/response"
	"github.com/wagneradl/mission-control/internal/domain"
	"github.com/wagneradl/mission-control/internal/service"
)

// ContentHandler handles content draft endpoints
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// List returns drafts, optionally filtered by status and platform
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.ContentDraftFilter{
		Status:   r.URL.Query().Get("status"),
		Platform: r.URL.Query().Get("platform"),
	}

	drafts, err := h.contentService.List(r.Context(), filter)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, drafts)
}

// Create inserts a new draft
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.ContentDraftCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	id, err := h.contentService.Create(r.Context(), input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, map[string]string{"id": id})
}

// Update patches a draft
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.ContentDraftPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.contentService.Update(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		response.FromError(w, err)
		return
	}

	response.NoContent(w)
}

// Delete removes a draft
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.contentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.FromError(w, err)
		return
	}

	response.NoContent(w)
}
