package mongo

import (
	"context"

	"github.com/wagneradl/mission-control/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CalendarEventRepository implements domain.CalendarEventRepository over Mongo.
type CalendarEventRepository struct {
	db *DB
}

// NewCalendarEventRepository creates a new calendar event repository
func NewCalendarEventRepository(db *DB) *CalendarEventRepository {
	return &CalendarEventRepository{db: db}
}

func (r *CalendarEventRepository) Insert(ctx context.Context, event *domain.CalendarEvent) error {
	if _, err := r.db.collection(colCalendarEvents).InsertOne(ctx, event); err != nil {
		return storeErr("insert calendar event", err)
	}
	return nil
}

func (r *CalendarEventRepository) List(ctx context.Context, filter domain.CalendarEventFilter) ([]domain.CalendarEvent, error) {
	query := bson.M{}
	if filter.StartDate != nil {
		query["start"] = bson.M{"$gte": *filter.StartDate}
	}
	if filter.EndDate != nil {
		query["end"] = bson.M{"$lte": *filter.EndDate}
	}

	opts := options.Find().SetSort(bson.D{{Key: "start", Value: 1}})
	cursor, err := r.db.collection(colCalendarEvents).Find(ctx, query, opts)
	if err != nil {
		return nil, storeErr("list calendar events", err)
	}
	defer cursor.Close(ctx)

	events := []domain.CalendarEvent{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, storeErr("decode calendar events", err)
	}
	return events, nil
}

func (r *CalendarEventRepository) Update(ctx context.Context, id string, patch domain.CalendarEventPatch) error {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Start != nil {
		set["start"] = *patch.Start
	}
	if patch.End != nil {
		set["end"] = *patch.End
	}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Color != nil {
		set["color"] = *patch.Color
	}
	if len(set) == 0 {
		// Nothing to merge; still verify the target exists.
		err := r.db.collection(colCalendarEvents).FindOne(ctx, bson.M{"_id": id}).Err()
		return mapLookupErr(err, "calendarEvents", id, "update calendar event")
	}

	res, err := r.db.collection(colCalendarEvents).UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return storeErr("update calendar event", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("calendarEvents", id)
	}
	return nil
}

func (r *CalendarEventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.collection(colCalendarEvents).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete calendar event", err)
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFoundError("calendarEvents", id)
	}
	return nil
}
