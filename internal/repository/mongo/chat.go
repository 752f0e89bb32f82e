package mongo

import (
	"context"

	"github.com/wagneradl/mission-control/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ChatSessionRepository implements domain.ChatSessionRepository over Mongo.
type ChatSessionRepository struct {
	db *DB
}

// NewChatSessionRepository creates a new chat session repository
func NewChatSessionRepository(db *DB) *ChatSessionRepository {
	return &ChatSessionRepository{db: db}
}

func (r *ChatSessionRepository) Insert(ctx context.Context, session *domain.ChatSession) error {
	if _, err := r.db.collection(colChatSessions).InsertOne(ctx, session); err != nil {
		return storeErr("insert chat session", err)
	}
	return nil
}

func (r *ChatSessionRepository) Get(ctx context.Context, id string) (*domain.ChatSession, error) {
	var session domain.ChatSession
	err := r.db.collection(colChatSessions).FindOne(ctx, bson.M{"_id": id}).Decode(&session)
	if err != nil {
		return nil, mapLookupErr(err, "chatSessions", id, "get chat session")
	}
	return &session, nil
}

func (r *ChatSessionRepository) List(ctx context.Context, limit int) ([]domain.ChatSession, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.db.collection(colChatSessions).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr("list chat sessions", err)
	}
	defer cursor.Close(ctx)

	sessions := []domain.ChatSession{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, storeErr("decode chat sessions", err)
	}
	return sessions, nil
}

// RecordMessage folds one inserted message into the session summary. The
// $inc keeps the message counter correct under concurrent sends.
func (r *ChatSessionRepository) RecordMessage(ctx context.Context, id string, lastMessage string, updatedAt int64) error {
	update := bson.M{
		"$set": bson.M{"lastMessage": lastMessage, "updatedAt": updatedAt},
		"$inc": bson.M{"messageCount": 1},
	}
	res, err := r.db.collection(colChatSessions).UpdateByID(ctx, id, update)
	if err != nil {
		return storeErr("record chat message", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("chatSessions", id)
	}
	return nil
}

// ChatMessageRepository implements domain.ChatMessageRepository over Mongo.
type ChatMessageRepository struct {
	db *DB
}

// NewChatMessageRepository creates a new chat message repository
func NewChatMessageRepository(db *DB) *ChatMessageRepository {
	return &ChatMessageRepository{db: db}
}

func (r *ChatMessageRepository) Insert(ctx context.Context, message *domain.ChatMessage) error {
	if _, err := r.db.collection(colChatMessages).InsertOne(ctx, message); err != nil {
		return storeErr("insert chat message", err)
	}
	return nil
}

func (r *ChatMessageRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.db.collection(colChatMessages).Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, storeErr("list chat messages", err)
	}
	defer cursor.Close(ctx)

	messages := []domain.ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, storeErr("decode chat messages", err)
	}
	return messages, nil
}
