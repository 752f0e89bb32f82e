package mongo

import (
	"errors"

	"github.com/wagneradl/mission-control/internal/domain"
	"go.mongodb.org/mongo-driver/mongo"
)

// storeErr maps a driver failure onto the transient taxonomy. Not-found and
// duplicate-key outcomes are mapped at the call sites where they have
// entity-specific meaning.
func storeErr(op string, err error) error {
	return &domain.TransientIOError{Op: op, Err: err}
}

// mapLookupErr translates a FindOne error: no documents becomes the entity
// not-found error, anything else is a transient store failure.
func mapLookupErr(err error, table, key, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.NewNotFoundError(table, key)
	}
	return storeErr(op, err)
}
