package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/wagneradl/mission-control/internal/api/response"
	"github.com/wagneradl/mission-control/internal/domain"
	"github.com/wagneradl/mission-control/internal/service"
)

// ChatHandler handles chat session and message endpoints
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ListSessions returns the most recently active sessions
func (h *ChatHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.chatService.ListSessions(r.Context(), queryInt(r, "limit", 0))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, sessions)
}

// CreateSession starts a new conversation
func (h *ChatHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var input domain.ChatSessionCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	id, err := h.chatService.CreateSession(r.Context(), input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, map[string]string{"id": id})
}

// GetMessages returns a session's messages in chronological order
func (h *ChatHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.chatService.GetMessages(r.Context(), chi.URLParam(r, "id"), queryInt(r, "limit", 0))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.OK(w, messages)
}

// SendMessage appends a message to a session
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var input domain.ChatMessageCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	id, err := h.chatService.SendMessage(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, map[string]string{"id": id})
}
