package service

import (
	"context"

	"atelier/internal/domain/entity"
)

// ChainReader reads marketplace state from the blockchain.
type ChainReader interface {
	// ListListings returns every active listing of the marketplace program.
	ListListings(ctx context.Context) ([]entity.ChainListing, error)

	// TokenOwner returns the wallet currently holding the mint, or "" when it cannot be resolved.
	TokenOwner(ctx context.Context, mint string) (string, error)
}
