package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wagneradl/mission-control/internal/domain"
)

// ContentService handles the content draft pipeline.
type ContentService struct {
	repo   domain.ContentDraftRepository
	clock  domain.Clock
	events domain.EventPublisher
}

// NewContentService creates a new content service
func NewContentService(repo domain.ContentDraftRepository, clock domain.Clock, events domain.EventPublisher) *ContentService {
	return &ContentService{repo: repo, clock: clock, events: events}
}

// Create inserts a draft and returns its id.
func (s *ContentService) Create(ctx context.Context, input domain.ContentDraftCreate) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	now := domain.EpochMillis(s.clock.Now())
	draft := &domain.ContentDraft{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Content:      input.Content,
		Platform:     input.Platform,
		Status:       input.Status,
		ScheduledFor: input.ScheduledFor,
		Tags:         input.Tags,
		Author:       input.Author,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Insert(ctx, draft); err != nil {
		return "", fmt.Errorf("failed to create content draft: %w", err)
	}

	s.events.Publish(domain.ChangeEvent{Table: "contentDrafts", Action: domain.ActionCreated, ID: draft.ID})
	return draft.ID, nil
}

// List returns drafts matching the optional status/platform filters,
// newest first.
func (s *ContentService) List(ctx context.Context, filter domain.ContentDraftFilter) ([]domain.ContentDraft, error) {
	drafts, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list content drafts: %w", err)
	}
	return drafts, nil
}

// Update merges the supplied fields and refreshes updatedAt. Moving a draft
// to published without a publishedAt stamps the current time.
func (s *ContentService) Update(ctx context.Context, id string, patch domain.ContentDraftPatch) error {
	now := domain.EpochMillis(s.clock.Now())
	patch.UpdatedAt = now
	if patch.Status != nil && *patch.Status == domain.DraftStatusPublished && patch.PublishedAt == nil {
		patch.PublishedAt = &now
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}
	s.events.Publish(domain.ChangeEvent{Table: "contentDrafts", Action: domain.ActionUpdated, ID: id})
	return nil
}

// Delete removes the draft.
func (s *ContentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(domain.ChangeEvent{Table: "contentDrafts", Action: domain.ActionDeleted, ID: id})
	return nil
}
