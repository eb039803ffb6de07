package repository

import (
	"context"
	"errors"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a catalog search. Zero values leave a dimension unfiltered.
type ProductFilter struct {
	Category string
	Designer string // Matches the product's denormalized username.
	MinPrice *float64
	MaxPrice *float64
	Color    string // Case-insensitive match against any product color.
	Size     string // Matches the label of any size row of the product.
	HasNFTs  bool   // Restricts to products with at least one NFT record.
}

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*entity.Product, error)

	ListByCollection(ctx context.Context, collectionID uuid.UUID) ([]*entity.Product, error)

	ListByCategory(ctx context.Context, category string) ([]*entity.Product, error)

	// Search applies the filter and augments each product with its NFT count and earliest NFT.
	Search(ctx context.Context, filter ProductFilter) ([]*entity.ProductSummary, error)

	Create(ctx context.Context, product *entity.Product) error

	Update(ctx context.Context, product *entity.Product) error

	Delete(ctx context.Context, id uuid.UUID) error
}
