package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Driver errors never leave this package; handlers branch on these two and
// treat anything else as an internal failure.
var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate key")
)

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}
