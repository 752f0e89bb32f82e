package memory

import (
	"context"
	"sort"

	"github.com/wagneradl/mission-control/internal/domain"
)

// CalendarEventRepository implements domain.CalendarEventRepository in memory.
type CalendarEventRepository struct {
	store *Store
}

func (r *CalendarEventRepository) Insert(ctx context.Context, event *domain.CalendarEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.events[event.ID] = *event
	r.store.nextSeq(event.ID)
	return nil
}

func (r *CalendarEventRepository) List(ctx context.Context, filter domain.CalendarEventFilter) ([]domain.CalendarEvent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	events := []domain.CalendarEvent{}
	for _, e := range r.store.events {
		if filter.StartDate != nil && e.Start < *filter.StartDate {
			continue
		}
		if filter.EndDate != nil && e.End > *filter.EndDate {
			continue
		}
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Start < events[j].Start
	})
	return events, nil
}

func (r *CalendarEventRepository) Update(ctx context.Context, id string, patch domain.CalendarEventPatch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	event, ok := r.store.events[id]
	if !ok {
		return domain.NewNotFoundError("calendarEvents", id)
	}
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Start != nil {
		event.Start = *patch.Start
	}
	if patch.End != nil {
		event.End = *patch.End
	}
	if patch.Type != nil {
		event.Type = *patch.Type
	}
	if patch.Color != nil {
		event.Color = *patch.Color
	}
	r.store.events[id] = event
	return nil
}

func (r *CalendarEventRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[id]; !ok {
		return domain.NewNotFoundError("calendarEvents", id)
	}
	delete(r.store.events, id)
	return nil
}
