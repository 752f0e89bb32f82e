package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wagneradl/mission-control/internal/api/response"
	"github.com/wagneradl/mission-control/internal/workspace"
)

// WorkspaceHandler serves the file-backed operator state endpoints
type WorkspaceHandler struct {
	provider *workspace.Provider
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(provider *workspace.Provider) *WorkspaceHandler {
	return &WorkspaceHandler{provider: provider}
}

// Agents returns the agent registry with a fleet status summary
func (h *WorkspaceHandler) Agents(w http.ResponseWriter, r *http.Request) {
	registry, err := h.provider.Agents()
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, registry)
}

// CronHealth returns scheduled job health records
func (h *WorkspaceHandler) CronHealth(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.provider.CronJobs()
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, map[string]any{"jobs": jobs})
}

// Revenue returns the revenue snapshot
func (h *WorkspaceHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.provider.Revenue()
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, revenue)
}

// SystemState returns the monitored service list
func (h *WorkspaceHandler) SystemState(w http.ResponseWriter, r *http.Request) {
	services, err := h.provider.Services()
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, map[string]any{"services": services})
}

// SuggestedTasks returns agent-proposed tasks awaiting triage
func (h *WorkspaceHandler) SuggestedTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.provider.SuggestedTasks()
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, map[string]any{"tasks": tasks})
}

type triageRequest struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

// TriageTask approves or rejects one suggested task
func (h *WorkspaceHandler) TriageTask(w http.ResponseWriter, r *http.Request) {
	var req triageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	tasks, err := h.provider.TriageTask(req.ID, req.Action)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, map[string]any{"tasks": tasks})
}

// ContentPipeline returns queue counts per stage
func (h *WorkspaceHandler) ContentPipeline(w http.ResponseWriter, r *http.Request) {
	pipeline, err := h.provider.ContentPipeline()
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, pipeline)
}
