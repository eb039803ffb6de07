package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// CollectionUsecase defines the operations on designer collections.
type CollectionUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CollectionInput) (*entity.Collection, error)
	Update(ctx context.Context, userID, collectionID uuid.UUID, input *CollectionInput) (*entity.Collection, error)
	Delete(ctx context.Context, userID, collectionID uuid.UUID) error
	ListOwn(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error)
	ListOwnProducts(ctx context.Context, userID, collectionID uuid.UUID) ([]*entity.Product, error)

	List(ctx context.Context) ([]*entity.Collection, error)
	Get(ctx context.Context, collectionID uuid.UUID) (*entity.Collection, error)
	GetByAddress(ctx context.Context, collectionAddress string) (*entity.Collection, error)
	ListProducts(ctx context.Context, collectionID uuid.UUID) ([]*entity.Product, error)
	ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*entity.Collection, error)
}

// CollectionInput carries every editable collection field; all are required.
type CollectionInput struct {
	Name              string
	CollectionAddress string
	ImageURL          string
	JSONURL           string
}
