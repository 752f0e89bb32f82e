package mongo

import (
	"context"
	"fmt"

	"github.com/wagneradl/mission-control/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names, one per entity table.
const (
	colActivities     = "activities"
	colCalendarEvents = "calendarEvents"
	colTasks          = "tasks"
	colContacts       = "contacts"
	colContentDrafts  = "contentDrafts"
	colProducts       = "ecosystemProducts"
	colChatSessions   = "chatSessions"
	colChatMessages   = "chatMessages"
)

// DB wraps the Mongo client and database handle shared by the repositories.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDB connects to MongoDB and verifies the connection.
func NewDB(ctx context.Context, cfg config.MongoConfig) (*DB, error) {
	clientOpts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		clientOpts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return &DB{client: client, db: client.Database(cfg.Database)}, nil
}

// Close disconnects the underlying client.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// Ping verifies connectivity, used by the readiness probe.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

// EnsureIndexes creates the secondary indexes every list filter seeks, plus
// the unique slug index guarding product lookups. Safe to run on every boot.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		colActivities: {
			{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		},
		colCalendarEvents: {
			{Keys: bson.D{{Key: "start", Value: 1}}},
		},
		colTasks: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "category", Value: 1}}},
		},
		colContacts: {
			{Keys: bson.D{{Key: "name", Value: 1}}},
		},
		colContentDrafts: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "platform", Value: 1}}},
		},
		colProducts: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		colChatSessions: {
			{Keys: bson.D{{Key: "updatedAt", Value: -1}}},
		},
		colChatMessages: {
			{Keys: bson.D{{Key: "sessionId", Value: 1}}},
			{Keys: bson.D{{Key: "timestamp", Value: 1}}},
		},
	}

	for name, models := range indexes {
		if _, err := d.db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", name, err)
		}
	}
	return nil
}

func (d *DB) collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}
