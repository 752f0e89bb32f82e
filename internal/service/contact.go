package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wagneradl/mission-control/internal/domain"
)

// ContactService handles CRM contact operations.
type ContactService struct {
	repo   domain.ContactRepository
	clock  domain.Clock
	events domain.EventPublisher
}

// NewContactService creates a new contact service
func NewContactService(repo domain.ContactRepository, clock domain.Clock, events domain.EventPublisher) *ContactService {
	return &ContactService{repo: repo, clock: clock, events: events}
}

// Create inserts a contact and returns its id.
func (s *ContactService) Create(ctx context.Context, input domain.ContactCreate) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	contact := &domain.Contact{
		ID:              uuid.NewString(),
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		Company:         input.Company,
		Role:            input.Role,
		Notes:           input.Notes,
		Tags:            input.Tags,
		LastInteraction: input.LastInteraction,
		Source:          input.Source,
		CreatedAt:       domain.EpochMillis(s.clock.Now()),
	}

	if err := s.repo.Insert(ctx, contact); err != nil {
		return "", fmt.Errorf("failed to create contact: %w", err)
	}

	s.events.Publish(domain.ChangeEvent{Table: "contacts", Action: domain.ActionCreated, ID: contact.ID})
	return contact.ID, nil
}

// List returns all contacts ordered by name.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

// Update merges the supplied fields into the contact.
func (s *ContactService) Update(ctx context.Context, id string, patch domain.ContactPatch) error {
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}
	s.events.Publish(domain.ChangeEvent{Table: "contacts", Action: domain.ActionUpdated, ID: id})
	return nil
}

// Delete removes the contact.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.events.Publish(domain.ChangeEvent{Table: "contacts", Action: domain.ActionDeleted, ID: id})
	return nil
}
