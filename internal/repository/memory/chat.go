package memory

import (
	"context"
	"sort"

	"github.com/wagneradl/mission-control/internal/domain"
)

// ChatSessionRepository implements domain.ChatSessionRepository in memory.
type ChatSessionRepository struct {
	store *Store
}

func (r *ChatSessionRepository) Insert(ctx context.Context, session *domain.ChatSession) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.sessions[session.ID] = *session
	r.store.nextSeq(session.ID)
	return nil
}

func (r *ChatSessionRepository) Get(ctx context.Context, id string) (*domain.ChatSession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	session, ok := r.store.sessions[id]
	if !ok {
		return nil, domain.NewNotFoundError("chatSessions", id)
	}
	return &session, nil
}

func (r *ChatSessionRepository) List(ctx context.Context, limit int) ([]domain.ChatSession, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sessions := make([]domain.ChatSession, 0, len(r.store.sessions))
	for _, s := range r.store.sessions {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].UpdatedAt > sessions[j].UpdatedAt
	})
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

func (r *ChatSessionRepository) RecordMessage(ctx context.Context, id string, lastMessage string, updatedAt int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	session, ok := r.store.sessions[id]
	if !ok {
		return domain.NewNotFoundError("chatSessions", id)
	}
	session.LastMessage = lastMessage
	session.MessageCount++
	session.UpdatedAt = updatedAt
	r.store.sessions[id] = session
	return nil
}

// ChatMessageRepository implements domain.ChatMessageRepository in memory.
type ChatMessageRepository struct {
	store *Store
}

func (r *ChatMessageRepository) Insert(ctx context.Context, message *domain.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.messages[message.ID] = *message
	r.store.nextSeq(message.ID)
	return nil
}

func (r *ChatMessageRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	messages := []domain.ChatMessage{}
	for _, m := range r.store.messages {
		if m.SessionID == sessionID {
			messages = append(messages, m)
		}
	}
	sort.Slice(messages, func(i, j int) bool {
		if messages[i].Timestamp != messages[j].Timestamp {
			return messages[i].Timestamp < messages[j].Timestamp
		}
		return r.store.insertSeq[messages[i].ID] < r.store.insertSeq[messages[j].ID]
	})
	if limit > 0 && len(messages) > limit {
		messages = messages[:limit]
	}
	return messages, nil
}
