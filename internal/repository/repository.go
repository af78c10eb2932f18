package repository

import (
	"context"
	"errors"

	"github.com/GulizarHanum/Birthday/internal/model"
)

// ErrNotFound is returned when no birthday with the requested id exists.
var ErrNotFound = errors.New("birthday not found")

// Store is the persistence layer for birthday records.
type Store interface {
	// FindByID returns the birthday with the given id or ErrNotFound.
	FindByID(ctx context.Context, id int64) (model.Birthday, error)
	// FindAll returns all birthdays ordered by id.
	FindAll(ctx context.Context) ([]model.Birthday, error)
	// Save inserts the birthday if its Id is zero and assigns the new id. Otherwise all
	// fields of the stored birthday with that id are overwritten.
	Save(ctx context.Context, birthday *model.Birthday) error
	// DeleteByID removes the birthday with the given id or returns ErrNotFound.
	DeleteByID(ctx context.Context, id int64) error
}
