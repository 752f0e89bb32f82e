package memory

import (
	"context"
	"sort"

	"github.com/wagneradl/mission-control/internal/domain"
)

// EcosystemProductRepository implements domain.EcosystemProductRepository
// in memory. Slug uniqueness is checked on insert, mirroring the unique
// index on the document store.
type EcosystemProductRepository struct {
	store *Store
}

func (r *EcosystemProductRepository) Insert(ctx context.Context, product *domain.EcosystemProduct) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, p := range r.store.products {
		if p.Slug == product.Slug {
			return domain.NewValidationError("slug", "already in use")
		}
	}
	r.store.products[product.ID] = *product
	r.store.nextSeq(product.ID)
	return nil
}

func (r *EcosystemProductRepository) List(ctx context.Context, status string) ([]domain.EcosystemProduct, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := []domain.EcosystemProduct{}
	for _, p := range r.store.products {
		if status != "" && p.Status != status {
			continue
		}
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool {
		return r.store.insertSeq[products[i].ID] < r.store.insertSeq[products[j].ID]
	})
	return products, nil
}

func (r *EcosystemProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.EcosystemProduct, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.products {
		if p.Slug == slug {
			product := p
			return &product, nil
		}
	}
	return nil, domain.NewNotFoundError("ecosystemProducts", slug)
}

func (r *EcosystemProductRepository) Update(ctx context.Context, id string, patch domain.EcosystemProductPatch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	product, ok := r.store.products[id]
	if !ok {
		return domain.NewNotFoundError("ecosystemProducts", id)
	}
	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Status != nil {
		product.Status = *patch.Status
	}
	if patch.Health != nil {
		product.Health = *patch.Health
	}
	if patch.Category != nil {
		product.Category = *patch.Category
	}
	if patch.Metrics != nil {
		product.Metrics = *patch.Metrics
	}
	if patch.Links != nil {
		product.Links = *patch.Links
	}
	product.UpdatedAt = patch.UpdatedAt
	r.store.products[id] = product
	return nil
}
