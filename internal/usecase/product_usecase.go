package usecase

import (
	"context"

	"atelier/internal/domain/entity"
	"atelier/internal/domain/repository"
	"atelier/internal/util"

	"github.com/google/uuid"
)

// ProductUsecase defines the catalog operations on products.
type ProductUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, userID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
	ListOwn(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)

	Get(ctx context.Context, productID uuid.UUID) (*entity.Product, error)
	GetWithDesigner(ctx context.Context, productID uuid.UUID) (*ProductWithDesigner, error)
	ListDresses(ctx context.Context) ([]*entity.Product, error)
	Search(ctx context.Context, filter repository.ProductFilter) ([]*entity.ProductSummary, error)
	ShareQR(ctx context.Context, productID uuid.UUID) ([]byte, error)
}

// CreateProductInput defines the data required to add a product to a collection.
type CreateProductInput struct {
	Name         string
	Gender       string
	Category     string
	Colors       []string
	Description  string
	Price        *float64 // Required; zero is a valid price.
	CollectionID uuid.UUID
	ImageURLs    [entity.ProductImageSlots]string
	JSONURL      string
	VideoURL     string
}

// UpdateProductInput is a patch. An explicit null clears an optional field and is
// rejected for required ones.
type UpdateProductInput struct {
	Name        util.Optional[string]
	Gender      util.Optional[string]
	Category    util.Optional[string]
	Colors      util.Optional[[]string]
	Description util.Optional[string]
	Price       util.Optional[float64]
	ImageURLs   [entity.ProductImageSlots]util.Optional[string]
	JSONURL     util.Optional[string]
	VideoURL    util.Optional[string]
}

// ProductWithDesigner is a product with its designer's username resolved.
type ProductWithDesigner struct {
	Product          *entity.Product
	DesignerUsername string
}
