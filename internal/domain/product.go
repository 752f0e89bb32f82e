package domain

import "context"

// Ecosystem product lifecycle statuses.
const (
	ProductStatusActive      = "active"
	ProductStatusDevelopment = "development"
	ProductStatusConcept     = "concept"
)

// EcosystemProduct is a product or internal tool tracked on the ecosystem
// view. Slug is the external lookup key and must be unique across the table.
type EcosystemProduct struct {
	ID          string             `json:"id" bson:"_id"`
	Name        string             `json:"name" bson:"name"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Status      string             `json:"status" bson:"status"`
	Health      int                `json:"health,omitempty" bson:"health,omitempty"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Metrics     map[string]float64 `json:"metrics,omitempty" bson:"metrics,omitempty"`
	Links       map[string]any     `json:"links,omitempty" bson:"links,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// EcosystemProductCreate is the input shape for creating a product.
type EcosystemProductCreate struct {
	Name        string             `json:"name" validate:"required"`
	Slug        string             `json:"slug" validate:"required"`
	Description string             `json:"description"`
	Status      string             `json:"status" validate:"required,oneof=active development concept"`
	Health      int                `json:"health" validate:"gte=0,lte=100"`
	Category    string             `json:"category"`
	Metrics     map[string]float64 `json:"metrics"`
	Links       map[string]any     `json:"links"`
}

// EcosystemProductPatch carries the mutable fields of a product. Slug is
// deliberately immutable: it is the external lookup key. UpdatedAt is set
// by the service on every patch.
type EcosystemProductPatch struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Status      *string             `json:"status"`
	Health      *int                `json:"health"`
	Category    *string             `json:"category"`
	Metrics     *map[string]float64 `json:"metrics"`
	Links       *map[string]any     `json:"links"`
	UpdatedAt   int64               `json:"-"`
}

// EcosystemProductRepository defines product storage. GetBySlug returns
// NotFoundError when no product carries the slug.
type EcosystemProductRepository interface {
	Insert(ctx context.Context, product *EcosystemProduct) error
	List(ctx context.Context, status string) ([]EcosystemProduct, error)
	GetBySlug(ctx context.Context, slug string) (*EcosystemProduct, error)
	Update(ctx context.Context, id string, patch EcosystemProductPatch) error
}
