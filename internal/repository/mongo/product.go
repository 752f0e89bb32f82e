package mongo

import (
	"context"

	"github.com/wagneradl/mission-control/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EcosystemProductRepository implements domain.EcosystemProductRepository
// over Mongo. Slug uniqueness is backed by a unique index.
type EcosystemProductRepository struct {
	db *DB
}

// NewEcosystemProductRepository creates a new product repository
func NewEcosystemProductRepository(db *DB) *EcosystemProductRepository {
	return &EcosystemProductRepository{db: db}
}

func (r *EcosystemProductRepository) Insert(ctx context.Context, product *domain.EcosystemProduct) error {
	if _, err := r.db.collection(colProducts).InsertOne(ctx, product); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.NewValidationError("slug", "already in use")
		}
		return storeErr("insert product", err)
	}
	return nil
}

func (r *EcosystemProductRepository) List(ctx context.Context, status string) ([]domain.EcosystemProduct, error) {
	query := bson.M{}
	if status != "" {
		query["status"] = status
	}

	cursor, err := r.db.collection(colProducts).Find(ctx, query)
	if err != nil {
		return nil, storeErr("list products", err)
	}
	defer cursor.Close(ctx)

	products := []domain.EcosystemProduct{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, storeErr("decode products", err)
	}
	return products, nil
}

func (r *EcosystemProductRepository) GetBySlug(ctx context.Context, slug string) (*domain.EcosystemProduct, error) {
	var product domain.EcosystemProduct
	err := r.db.collection(colProducts).FindOne(ctx, bson.M{"slug": slug}).Decode(&product)
	if err != nil {
		return nil, mapLookupErr(err, "ecosystemProducts", slug, "get product by slug")
	}
	return &product, nil
}

func (r *EcosystemProductRepository) Update(ctx context.Context, id string, patch domain.EcosystemProductPatch) error {
	set := bson.M{"updatedAt": patch.UpdatedAt}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Health != nil {
		set["health"] = *patch.Health
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Metrics != nil {
		set["metrics"] = *patch.Metrics
	}
	if patch.Links != nil {
		set["links"] = *patch.Links
	}

	res, err := r.db.collection(colProducts).UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return storeErr("update product", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("ecosystemProducts", id)
	}
	return nil
}
