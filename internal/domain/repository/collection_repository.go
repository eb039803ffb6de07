package repository

import (
	"context"
	"errors"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCollectionNotFound is returned when a collection does not exist.
var ErrCollectionNotFound = errors.New("collection not found")

// CollectionRepository defines persistence operations for collections.
type CollectionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Collection, error)

	// FindByIDForUpdate locks the collection row so its product index can be rewritten safely.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Collection, error)

	FindByAddress(ctx context.Context, collectionAddress string) (*entity.Collection, error)

	// List returns every collection, newest first.
	List(ctx context.Context) ([]*entity.Collection, error)

	ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*entity.Collection, error)

	Create(ctx context.Context, collection *entity.Collection) error

	Update(ctx context.Context, collection *entity.Collection) error

	Delete(ctx context.Context, id uuid.UUID) error
}
