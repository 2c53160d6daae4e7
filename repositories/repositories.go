package repositories

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when a document does not exist. It wraps
// mongo.ErrNoDocuments so callers never import the driver to test for
// absence.
var ErrNotFound = errors.New("not found")

func mapFindErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
