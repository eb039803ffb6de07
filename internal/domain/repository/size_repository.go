package repository

import (
	"context"
	"errors"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSizeNotFound is returned when a size row does not exist.
var ErrSizeNotFound = errors.New("size not found")

// SizeRepository defines persistence operations for product sizes.
type SizeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Size, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Size, error)
	Create(ctx context.Context, size *entity.Size) error
	Update(ctx context.Context, size *entity.Size) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByProduct removes every size of the product and reports how many went.
	DeleteByProduct(ctx context.Context, productID uuid.UUID) (int64, error)
}
