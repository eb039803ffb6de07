package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseUsecase records a sale and notifies both parties.
type PurchaseUsecase interface {
	Purchase(ctx context.Context, userID uuid.UUID, input *PurchaseInput) error
}

// PurchaseInput describes a completed on-chain purchase. The buyer's address arrives
// either as a free-form line or as structured fields; at most one is set.
type PurchaseInput struct {
	BuyerEmail          string
	SellerEmail         string
	TokenAddress        string
	ShippingAddressLine string
	ShippingAddress     *entity.ShippingAddress
}
