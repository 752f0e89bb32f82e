package mongo

import (
	"context"

	"github.com/wagneradl/mission-control/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
)

// TaskRepository implements domain.TaskRepository over Mongo.
type TaskRepository struct {
	db *DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Insert(ctx context.Context, task *domain.Task) error {
	if _, err := r.db.collection(colTasks).InsertOne(ctx, task); err != nil {
		return storeErr("insert task", err)
	}
	return nil
}

func (r *TaskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]domain.Task, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	cursor, err := r.db.collection(colTasks).Find(ctx, query)
	if err != nil {
		return nil, storeErr("list tasks", err)
	}
	defer cursor.Close(ctx)

	tasks := []domain.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, storeErr("decode tasks", err)
	}
	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) error {
	set := bson.M{"updatedAt": patch.UpdatedAt}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Priority != nil {
		set["priority"] = *patch.Priority
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Effort != nil {
		set["effort"] = *patch.Effort
	}
	if patch.Reasoning != nil {
		set["reasoning"] = *patch.Reasoning
	}
	if patch.NextAction != nil {
		set["nextAction"] = *patch.NextAction
	}
	if patch.AssignedTo != nil {
		set["assignedTo"] = *patch.AssignedTo
	}
	if patch.DueDate != nil {
		set["dueDate"] = *patch.DueDate
	}

	res, err := r.db.collection(colTasks).UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return storeErr("update task", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("tasks", id)
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.collection(colTasks).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete task", err)
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFoundError("tasks", id)
	}
	return nil
}
