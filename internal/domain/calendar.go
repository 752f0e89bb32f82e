package domain

import "context"

// CalendarEvent is a scheduled block on the dashboard calendar. Start and
// End are epoch milliseconds.
type CalendarEvent struct {
	ID          string `json:"id" bson:"_id"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Start       int64  `json:"start" bson:"start"`
	End         int64  `json:"end" bson:"end"`
	Type        string `json:"type" bson:"type"`
	Color       string `json:"color,omitempty" bson:"color,omitempty"`
	AllDay      bool   `json:"allDay,omitempty" bson:"allDay,omitempty"`
	Recurring   string `json:"recurring,omitempty" bson:"recurring,omitempty"`
	CreatedAt   int64  `json:"createdAt" bson:"createdAt"`
}

// CalendarEventCreate is the input shape for creating a calendar event.
type CalendarEventCreate struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Start       int64  `json:"start" validate:"required,gt=0"`
	End         int64  `json:"end" validate:"required,gt=0"`
	Type        string `json:"type" validate:"required"`
	Color       string `json:"color"`
	AllDay      bool   `json:"allDay"`
	Recurring   string `json:"recurring"`
}

// CalendarEventPatch carries the mutable fields of an event; nil fields are
// left untouched by the merge.
type CalendarEventPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Start       *int64  `json:"start"`
	End         *int64  `json:"end"`
	Type        *string `json:"type"`
	Color       *string `json:"color"`
}

// CalendarEventFilter bounds the listing window. Both bounds are inclusive:
// start >= StartDate and end <= EndDate when supplied.
type CalendarEventFilter struct {
	StartDate *int64
	EndDate   *int64
}

// CalendarEventRepository defines calendar event storage. List is ordered
// by start ascending.
type CalendarEventRepository interface {
	Insert(ctx context.Context, event *CalendarEvent) error
	List(ctx context.Context, filter CalendarEventFilter) ([]CalendarEvent, error)
	Update(ctx context.Context, id string, patch CalendarEventPatch) error
	Delete(ctx context.Context, id string) error
}
