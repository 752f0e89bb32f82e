package domain

import "context"

// Chat message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// LastMessageMaxLen is how much of a message's content is kept on the
// session summary.
const LastMessageMaxLen = 100

// ChatSession is a conversation thread. MessageCount is maintained
// incrementally by the send-message flow and must equal the number of
// messages referencing the session.
type ChatSession struct {
	ID           string `json:"id" bson:"_id"`
	Title        string `json:"title" bson:"title"`
	Channel      string `json:"channel" bson:"channel"`
	LastMessage  string `json:"lastMessage,omitempty" bson:"lastMessage,omitempty"`
	MessageCount int    `json:"messageCount" bson:"messageCount"`
	CreatedAt    int64  `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64  `json:"updatedAt" bson:"updatedAt"`
}

// ChatSessionCreate is the input shape for creating a session.
type ChatSessionCreate struct {
	Title   string `json:"title" validate:"required"`
	Channel string `json:"channel" validate:"required"`
}

// ChatMessage is one message in a session. SessionID is a back-reference,
// not an ownership pointer; deleting a session does not cascade here.
type ChatMessage struct {
	ID        string         `json:"id" bson:"_id"`
	SessionID string         `json:"sessionId" bson:"sessionId"`
	Role      string         `json:"role" bson:"role"`
	Content   string         `json:"content" bson:"content"`
	Channel   string         `json:"channel,omitempty" bson:"channel,omitempty"`
	Timestamp int64          `json:"timestamp" bson:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// ChatMessageCreate is the input shape for sending a message.
type ChatMessageCreate struct {
	Role     string         `json:"role" validate:"required,oneof=user assistant"`
	Content  string         `json:"content" validate:"required"`
	Channel  string         `json:"channel"`
	Metadata map[string]any `json:"metadata"`
}

// ChatSessionRepository defines session storage. List is ordered by
// updatedAt descending and capped at limit. RecordMessage applies the
// session-summary patch for one inserted message: lastMessage replaced,
// messageCount incremented by exactly 1, updatedAt refreshed. The increment
// is atomic per document.
type ChatSessionRepository interface {
	Insert(ctx context.Context, session *ChatSession) error
	Get(ctx context.Context, id string) (*ChatSession, error)
	List(ctx context.Context, limit int) ([]ChatSession, error)
	RecordMessage(ctx context.Context, id string, lastMessage string, updatedAt int64) error
}

// ChatMessageRepository defines message storage. ListBySession is ordered
// by timestamp ascending and capped at limit.
type ChatMessageRepository interface {
	Insert(ctx context.Context, message *ChatMessage) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]ChatMessage, error)
}
