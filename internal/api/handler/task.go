package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wagneradl/mission-control/internal/api/response"
	"github.com/wagneradl/mission-control/internal/domain"
	"github.com/wagneradl/mission-control/internal/service"
)

// TaskHandler handles task board endpoints
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List returns tasks, optionally filtered by status and category
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.TaskFilter{
		Status:   r.URL.Query().Get("status"),
		Category: r.URL.Query().Get("category"),
	}

	tasks, err := h.taskService.List(r.Context(), filter)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, tasks)
}

// Create inserts a new task
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.TaskCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	id, err := h.taskService.Create(r.Context(), input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, map[string]string{"id": id})
}

// Update patches a task
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.TaskPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.taskService.Update(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		response.FromError(w, err)
		return
	}

	response.NoContent(w)
}

// Delete removes a task
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.taskService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.FromError(w, err)
		return
	}

	response.NoContent(w)
}
