package service

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductCache is a read-through cache for public product lookups.
type ProductCache interface {
	// Get returns the cached product; the bool is false on a miss.
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, bool, error)
	Set(ctx context.Context, product *entity.Product) error
	Invalidate(ctx context.Context, id uuid.UUID) error
}
