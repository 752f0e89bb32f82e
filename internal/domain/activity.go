package domain

import "context"

// Activity is an append-only feed item shown on the dashboard overview.
type Activity struct {
	ID          string         `json:"id" bson:"_id"`
	Type        string         `json:"type" bson:"type"`
	Title       string         `json:"title" bson:"title"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty" bson:"metadata,omitempty"`
	Timestamp   int64          `json:"timestamp" bson:"timestamp"`
	Source      string         `json:"source,omitempty" bson:"source,omitempty"`
	AgentID     string         `json:"agentId,omitempty" bson:"agentId,omitempty"`
	CreatedAt   int64          `json:"createdAt" bson:"createdAt"`
}

// ActivityCreate is the input shape for creating an activity.
type ActivityCreate struct {
	Type        string         `json:"type" validate:"required"`
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
	Timestamp   int64          `json:"timestamp" validate:"required,gt=0"`
	Source      string         `json:"source"`
	AgentID     string         `json:"agentId"`
}

// ActivityRepository defines activity storage. Listing is ordered by
// timestamp descending (newest first) and capped at limit.
type ActivityRepository interface {
	Insert(ctx context.Context, activity *Activity) error
	List(ctx context.Context, limit int) ([]Activity, error)
}
