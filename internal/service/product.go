package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wagneradl/mission-control/internal/domain"
)

// ProductService handles the ecosystem product catalog.
type ProductService struct {
	repo   domain.EcosystemProductRepository
	clock  domain.Clock
	events domain.EventPublisher
}

// NewProductService creates a new product service
func NewProductService(repo domain.EcosystemProductRepository, clock domain.Clock, events domain.EventPublisher) *ProductService {
	return &ProductService{repo: repo, clock: clock, events: events}
}

// Create inserts a product and returns its id. Slugs are unique; a
// duplicate surfaces as a validation error.
func (s *ProductService) Create(ctx context.Context, input domain.EcosystemProductCreate) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	now := domain.EpochMillis(s.clock.Now())
	product := &domain.EcosystemProduct{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Status:      input.Status,
		Health:      input.Health,
		Category:    input.Category,
		Metrics:     input.Metrics,
		Links:       input.Links,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		if domain.IsValidation(err) {
			return "", err
		}
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	s.events.Publish(domain.ChangeEvent{Table: "ecosystemProducts", Action: domain.ActionCreated, ID: product.ID})
	return product.ID, nil
}

// List returns products, optionally filtered by status.
func (s *ProductService) List(ctx context.Context, status string) ([]domain.EcosystemProduct, error) {
	products, err := s.repo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetBySlug returns the product carrying the slug.
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*domain.EcosystemProduct, error) {
	product, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Update merges the supplied fields and refreshes updatedAt. The slug
// cannot change after creation.
func (s *ProductService) Update(ctx context.Context, id string, patch domain.EcosystemProductPatch) error {
	if patch.Status != nil {
		switch *patch.Status {
		case domain.ProductStatusActive, domain.ProductStatusDevelopment, domain.ProductStatusConcept:
		default:
			return domain.NewValidationError("status", "has an invalid value")
		}
	}
	if patch.Health != nil && (*patch.Health < 0 || *patch.Health > 100) {
		return domain.NewValidationError("health", "has an invalid value")
	}

	patch.UpdatedAt = domain.EpochMillis(s.clock.Now())
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return err
	}
	s.events.Publish(domain.ChangeEvent{Table: "ecosystemProducts", Action: domain.ActionUpdated, ID: id})
	return nil
}
