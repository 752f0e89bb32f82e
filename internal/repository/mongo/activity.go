package mongo

import (
	"context"

	"github.com/wagneradl/mission-control/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityRepository implements domain.ActivityRepository over Mongo.
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Insert(ctx context.Context, activity *domain.Activity) error {
	if _, err := r.db.collection(colActivities).InsertOne(ctx, activity); err != nil {
		return storeErr("insert activity", err)
	}
	return nil
}

func (r *ActivityRepository) List(ctx context.Context, limit int) ([]domain.Activity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.db.collection(colActivities).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr("list activities", err)
	}
	defer cursor.Close(ctx)

	activities := []domain.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, storeErr("decode activities", err)
	}
	return activities, nil
}
