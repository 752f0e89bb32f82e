package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/wagneradl/mission-control/internal/domain"
)

// Default window sizes for chat listings.
const (
	DefaultSessionLimit = 20
	DefaultMessageLimit = 100
)

// Responder produces an assistant reply for a conversation. Implementations
// may refuse (circuit open, no provider configured) by returning an error.
type Responder interface {
	Reply(ctx context.Context, history []domain.ChatMessage) (string, error)
}

// ChatService handles chat sessions and messages.
type ChatService struct {
	sessions  domain.ChatSessionRepository
	messages  domain.ChatMessageRepository
	clock     domain.Clock
	events    domain.EventPublisher
	responder Responder
	logger    zerolog.Logger
}

// NewChatService creates a new chat service. responder may be nil, in which
// case user messages never trigger an assistant reply.
func NewChatService(sessions domain.ChatSessionRepository, messages domain.ChatMessageRepository, clock domain.Clock, events domain.EventPublisher, responder Responder, logger zerolog.Logger) *ChatService {
	return &ChatService{
		sessions:  sessions,
		messages:  messages,
		clock:     clock,
		events:    events,
		responder: responder,
		logger:    logger,
	}
}

// CreateSession starts a new conversation and returns its id.
func (s *ChatService) CreateSession(ctx context.Context, input domain.ChatSessionCreate) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	now := domain.EpochMillis(s.clock.Now())
	session := &domain.ChatSession{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Channel:      input.Channel,
		MessageCount: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.sessions.Insert(ctx, session); err != nil {
		return "", fmt.Errorf("failed to create chat session: %w", err)
	}

	s.events.Publish(domain.ChangeEvent{Table: "chatSessions", Action: domain.ActionCreated, ID: session.ID})
	return session.ID, nil
}

// ListSessions returns the most recently active sessions.
func (s *ChatService) ListSessions(ctx context.Context, limit int) ([]domain.ChatSession, error) {
	if limit <= 0 {
		limit = DefaultSessionLimit
	}
	sessions, err := s.sessions.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat sessions: %w", err)
	}
	return sessions, nil
}

// GetMessages returns a session's messages in chronological order.
func (s *ChatService) GetMessages(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultMessageLimit
	}
	messages, err := s.messages.ListBySession(ctx, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	return messages, nil
}

// SendMessage appends a message to a session and updates the session
// summary: lastMessage holds the first 100 characters of the content,
// messageCount grows by one, updatedAt moves forward. The session is
// checked first so a message is never written against a missing session.
func (s *ChatService) SendMessage(ctx context.Context, sessionID string, input domain.ChatMessageCreate) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	if _, err := s.sessions.Get(ctx, sessionID); err != nil {
		return "", err
	}

	now := domain.EpochMillis(s.clock.Now())
	message := &domain.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      input.Role,
		Content:   input.Content,
		Channel:   input.Channel,
		Timestamp: now,
		Metadata:  input.Metadata,
	}

	if err := s.messages.Insert(ctx, message); err != nil {
		return "", fmt.Errorf("failed to insert chat message: %w", err)
	}

	if err := s.sessions.RecordMessage(ctx, sessionID, truncate(input.Content, domain.LastMessageMaxLen), now); err != nil {
		return "", fmt.Errorf("failed to update chat session: %w", err)
	}

	s.events.Publish(domain.ChangeEvent{Table: "chatMessages", Action: domain.ActionCreated, ID: message.ID})
	s.events.Publish(domain.ChangeEvent{Table: "chatSessions", Action: domain.ActionUpdated, ID: sessionID})

	if input.Role == domain.RoleUser && s.responder != nil {
		go s.respond(sessionID, input.Channel)
	}

	return message.ID, nil
}

// respond generates and stores an assistant reply. It runs detached from
// the originating request, so it carries its own deadline.
func (s *ChatService) respond(sessionID, channel string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	history, err := s.messages.ListBySession(ctx, sessionID, DefaultMessageLimit)
	if err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to load history for assistant reply")
		return
	}

	reply, err := s.responder.Reply(ctx, history)
	if err != nil {
		s.logger.Warn().Err(err).Str("session_id", sessionID).Msg("assistant reply unavailable")
		return
	}

	if _, err := s.SendMessage(ctx, sessionID, domain.ChatMessageCreate{
		Role:    domain.RoleAssistant,
		Content: reply,
		Channel: channel,
	}); err != nil {
		s.logger.Error().Err(err).Str("session_id", sessionID).Msg("failed to store assistant reply")
	}
}

// truncate keeps the first n runes of content.
func truncate(content string, n int) string {
	runes := []rune(content)
	if len(runes) <= n {
		return content
	}
	return string(runes[:n])
}
