package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// SizeUsecase manages the per-size stock of products.
type SizeUsecase interface {
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Size, error)
	Create(ctx context.Context, userID uuid.UUID, input *CreateSizeInput) (*entity.Size, error)
	UpdateQuantity(ctx context.Context, userID, sizeID uuid.UUID, quantity int) (*entity.Size, error)
	Delete(ctx context.Context, userID, sizeID uuid.UUID) error
}

// CreateSizeInput defines a new size row.
type CreateSizeInput struct {
	ProductID uuid.UUID
	Label     string
	Quantity  int
}
