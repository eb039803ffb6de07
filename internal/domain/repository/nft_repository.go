package repository

import (
	"context"
	"errors"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrNFTNotFound is returned when no NFT matches the token address.
	ErrNFTNotFound = errors.New("nft not found")
	// ErrNFTAlreadyExists is returned when the token address is already recorded.
	ErrNFTAlreadyExists = errors.New("nft already exists")
)

// NFTRepository defines persistence operations for the NFT listing projection and its event log.
type NFTRepository interface {
	FindByToken(ctx context.Context, tokenAddress string) (*entity.NFT, error)

	// FindByTokenForUpdate locks the NFT row for a read-modify-write transition.
	FindByTokenForUpdate(ctx context.Context, tokenAddress string) (*entity.NFT, error)

	// FindByTokenPrimary reads from the primary, bypassing replicas.
	FindByTokenPrimary(ctx context.Context, tokenAddress string) (*entity.NFT, error)

	// ListByDesigner returns the designer's NFTs with the linked product name.
	ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*entity.NFTWithProduct, error)

	// ListAll returns every NFT with the linked product name.
	ListAll(ctx context.Context) ([]*entity.NFTWithProduct, error)

	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.NFT, error)

	CountActiveByProduct(ctx context.Context, productID uuid.UUID) (int64, error)

	// GroupActiveByProduct returns active NFTs that are assigned to a product, grouped per product.
	GroupActiveByProduct(ctx context.Context) ([]*entity.ProductNFTGroup, error)

	// ListBatchPrimary pages through NFTs by token address on the primary.
	ListBatchPrimary(ctx context.Context, afterToken string, limit int) ([]*entity.NFT, error)

	Create(ctx context.Context, nft *entity.NFT) error

	// Save persists the mutable projection fields.
	Save(ctx context.Context, nft *entity.NFT) error

	AppendEvent(ctx context.Context, event *entity.NFTEvent) error

	ListEvents(ctx context.Context, tokenAddress string) ([]*entity.NFTEvent, error)
}
