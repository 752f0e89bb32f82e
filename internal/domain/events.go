package domain

// Mutation actions carried on change events.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ChangeEvent describes one committed mutation. Subscribers re-query the
// affected table on receipt; the event carries identity, not the document.
type ChangeEvent struct {
	Table  string `json:"table"`
	Action string `json:"action"`
	ID     string `json:"id"`
}

// EventPublisher receives a ChangeEvent after every successful mutation.
// Implementations must not block the mutation path.
type EventPublisher interface {
	Publish(event ChangeEvent)
}

// NopPublisher discards events. Used when no subscriber transport is wired.
type NopPublisher struct{}

func (NopPublisher) Publish(ChangeEvent) {}
