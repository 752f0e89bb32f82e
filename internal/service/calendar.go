package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wagneradl/mission-control/internal/domain"
)

// CalendarService handles calendar event operations.
type CalendarService struct {
	repo   domain.CalendarEventRepository
	clock  domain.Clock
	events domain.EventPublisher
}

// NewCalendarService creates a new calendar service
func NewCalendarService(repo domain.CalendarEventRepository, clock domain.Clock, events domain.EventPublisher) *CalendarService {
	return &CalendarService{repo: repo, clock: clock, events: events}
}

// Create inserts a new event and returns its id.
func (s *CalendarService) Create(ctx context.Context, input domain.CalendarEventCreate) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}
	if input.End < input.Start {
		return "", domain.NewValidationError("end", "must not precede start")
	}

	event := &domain.CalendarEvent{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Start:       input.Start,
		End:         input.End,
		Type:        input.Type,
		Color:       input.Color,
		AllDay:      input.AllDay,
		Recurring:   input.Recurring,
		CreatedAt:   domain.EpochMillis(s.clock.Now()),
	}

	if err := s.repo.Insert(ctx, event); err != nil {
		return "", fmt.Errorf("failed to create calendar event: %w", err)
	}

	s.events.Publish(domain.ChangeEvent{Table: "calendarEvents", Action: domain.ActionCreated, ID: event.ID})
	return event.ID, nil
}

// List returns events inside the optional window. Both bounds are
// inclusive: start >= startDate and end <= endDate.
func (s *CalendarService) List(ctx context.Context, filter domain.CalendarEventFilter) ([]domain.CalendarEvent, error) {
	events, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar events: %w", err)
	}
	return events, nil
}

// Update merges the supplied fields into the event.
func (s *CalendarService) Update(ctx context.Context, id string, patch domain.CalendarEventPatch) error {
	if patch.Start != nil && patch.End != nil && *patch.End < *patch.Start {
		return domain.NewValidationError("end", "must not precede start")
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}
	s.events.Publish(domain.ChangeEvent{Table: "calendarEvents", Action: domain.ActionUpdated, ID: id})
	return nil
}

// Delete removes the event. Deleting an absent id reports not found.
func (s *CalendarService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(domain.ChangeEvent{Table: "calendarEvents", Action: domain.ActionDeleted, ID: id})
	return nil
}
