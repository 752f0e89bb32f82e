package mongo

import (
	"context"

	"github.com/wagneradl/mission-control/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContentDraftRepository implements domain.ContentDraftRepository over Mongo.
type ContentDraftRepository struct {
	db *DB
}

// NewContentDraftRepository creates a new content draft repository
func NewContentDraftRepository(db *DB) *ContentDraftRepository {
	return &ContentDraftRepository{db: db}
}

func (r *ContentDraftRepository) Insert(ctx context.Context, draft *domain.ContentDraft) error {
	if _, err := r.db.collection(colContentDrafts).InsertOne(ctx, draft); err != nil {
		return storeErr("insert content draft", err)
	}
	return nil
}

func (r *ContentDraftRepository) List(ctx context.Context, filter domain.ContentDraftFilter) ([]domain.ContentDraft, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Platform != "" {
		query["platform"] = filter.Platform
	}

	// Newest drafts first, matching the dashboard's content view.
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.db.collection(colContentDrafts).Find(ctx, query, opts)
	if err != nil {
		return nil, storeErr("list content drafts", err)
	}
	defer cursor.Close(ctx)

	drafts := []domain.ContentDraft{}
	if err := cursor.All(ctx, &drafts); err != nil {
		return nil, storeErr("decode content drafts", err)
	}
	return drafts, nil
}

func (r *ContentDraftRepository) Update(ctx context.Context, id string, patch domain.ContentDraftPatch) error {
	set := bson.M{"updatedAt": patch.UpdatedAt}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Platform != nil {
		set["platform"] = *patch.Platform
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.ScheduledFor != nil {
		set["scheduledFor"] = *patch.ScheduledFor
	}
	if patch.PublishedAt != nil {
		set["publishedAt"] = *patch.PublishedAt
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}

	res, err := r.db.collection(colContentDrafts).UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return storeErr("update content draft", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("contentDrafts", id)
	}
	return nil
}

func (r *ContentDraftRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.collection(colContentDrafts).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete content draft", err)
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFoundError("contentDrafts", id)
	}
	return nil
}
