package domain

import "context"

// Task is a work item on the ops kanban board.
type Task struct {
	ID          string `json:"id" bson:"_id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Status      string `json:"status" bson:"status"`
	Priority    string `json:"priority" bson:"priority"`
	Category    string `json:"category" bson:"category"`
	Effort      string `json:"effort,omitempty" bson:"effort,omitempty"`
	Reasoning   string `json:"reasoning,omitempty" bson:"reasoning,omitempty"`
	NextAction  string `json:"nextAction,omitempty" bson:"nextAction,omitempty"`
	AssignedTo  string `json:"assignedTo,omitempty" bson:"assignedTo,omitempty"`
	DueDate     int64  `json:"dueDate,omitempty" bson:"dueDate,omitempty"`
	CreatedAt   int64  `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64  `json:"updatedAt" bson:"updatedAt"`
}

// TaskCreate is the input shape for creating a task.
type TaskCreate struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"required"`
	Priority    string `json:"priority" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Effort      string `json:"effort"`
	Reasoning   string `json:"reasoning"`
	NextAction  string `json:"nextAction"`
	AssignedTo  string `json:"assignedTo"`
	DueDate     int64  `json:"dueDate"`
}

// TaskPatch carries the mutable fields of a task. UpdatedAt is set by the
// service on every patch, regardless of which fields changed.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Category    *string `json:"category"`
	Effort      *string `json:"effort"`
	Reasoning   *string `json:"reasoning"`
	NextAction  *string `json:"nextAction"`
	AssignedTo  *string `json:"assignedTo"`
	DueDate     *int64  `json:"dueDate"`
	UpdatedAt   int64   `json:"-"`
}

// TaskFilter holds optional exact-match list filters.
type TaskFilter struct {
	Status   string
	Category string
}

// TaskRepository defines task storage.
type TaskRepository interface {
	Insert(ctx context.Context, task *Task) error
	List(ctx context.Context, filter TaskFilter) ([]Task, error)
	Update(ctx context.Context, id string, patch TaskPatch) error
	Delete(ctx context.Context, id string) error
}
