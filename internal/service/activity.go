package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wagneradl/mission-control/internal/domain"
)

// DefaultActivityLimit caps the activity feed when the caller does not ask
// for a specific window.
const DefaultActivityLimit = 50

// ActivityService handles the append-only activity feed.
type ActivityService struct {
	repo   domain.ActivityRepository
	clock  domain.Clock
	events domain.EventPublisher
}

// NewActivityService creates a new activity service
func NewActivityService(repo domain.ActivityRepository, clock domain.Clock, events domain.EventPublisher) *ActivityService {
	return &ActivityService{repo: repo, clock: clock, events: events}
}

// Create appends a feed item and returns its id.
func (s *ActivityService) Create(ctx context.Context, input domain.ActivityCreate) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	activity := &domain.Activity{
		ID:          uuid.NewString(),
		Type:        input.Type,
		Title:       input.Title,
		Description: input.Description,
		Metadata:    input.Metadata,
		Timestamp:   input.Timestamp,
		Source:      input.Source,
		AgentID:     input.AgentID,
		CreatedAt:   domain.EpochMillis(s.clock.Now()),
	}

	if err := s.repo.Insert(ctx, activity); err != nil {
		return "", fmt.Errorf("failed to create activity: %w", err)
	}

	s.events.Publish(domain.ChangeEvent{Table: "activities", Action: domain.ActionCreated, ID: activity.ID})
	return activity.ID, nil
}

// List returns the newest feed items, newest first.
func (s *ActivityService) List(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	activities, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}
