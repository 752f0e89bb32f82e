package mongo

import (
	"context"

	"github.com/wagneradl/mission-control/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContactRepository implements domain.ContactRepository over Mongo.
type ContactRepository struct {
	db *DB
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Insert(ctx context.Context, contact *domain.Contact) error {
	if _, err := r.db.collection(colContacts).InsertOne(ctx, contact); err != nil {
		return storeErr("insert contact", err)
	}
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.db.collection(colContacts).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, storeErr("list contacts", err)
	}
	defer cursor.Close(ctx)

	contacts := []domain.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, storeErr("decode contacts", err)
	}
	return contacts, nil
}

func (r *ContactRepository) Update(ctx context.Context, id string, patch domain.ContactPatch) error {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Phone != nil {
		set["phone"] = *patch.Phone
	}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.Notes != nil {
		set["notes"] = *patch.Notes
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}
	if patch.LastInteraction != nil {
		set["lastInteraction"] = *patch.LastInteraction
	}
	if patch.Source != nil {
		set["source"] = *patch.Source
	}
	if len(set) == 0 {
		err := r.db.collection(colContacts).FindOne(ctx, bson.M{"_id": id}).Err()
		return mapLookupErr(err, "contacts", id, "update contact")
	}

	res, err := r.db.collection(colContacts).UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return storeErr("update contact", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("contacts", id)
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.collection(colContacts).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return storeErr("delete contact", err)
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFoundError("contacts", id)
	}
	return nil
}
