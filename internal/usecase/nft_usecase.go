package usecase

import (
	"context"

	"atelier/internal/domain/entity"
	"atelier/internal/util"

	"github.com/google/uuid"
)

// NFTUsecase maintains the off-chain NFT listing projection.
type NFTUsecase interface {
	Save(ctx context.Context, userID uuid.UUID, input *SaveNFTInput) (*entity.NFT, error)
	Update(ctx context.Context, userID uuid.UUID, input *UpdateNFTInput) (*entity.NFT, error)
	MarkListed(ctx context.Context, userID uuid.UUID, tokenAddress string) (*entity.NFT, error)
	UpdateStatus(ctx context.Context, userID uuid.UUID, tokenAddress, active string) (*entity.NFT, error)
	ListOwn(ctx context.Context, userID uuid.UUID) ([]*entity.NFTWithProduct, error)
	ExportOwn(ctx context.Context, userID uuid.UUID) ([]byte, error)
	SyncOwn(ctx context.Context, userID uuid.UUID) (*ReconcileReport, error)

	Get(ctx context.Context, tokenAddress string) (*entity.NFT, error)
	ListAll(ctx context.Context) ([]*entity.NFTWithProduct, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.NFT, error)
	CountActive(ctx context.Context, productID uuid.UUID) (int64, error)
	GroupedByProduct(ctx context.Context) ([]*entity.ProductNFTGroup, error)
	History(ctx context.Context, tokenAddress string) ([]*entity.NFTEvent, error)
}

// SaveNFTInput records a freshly minted token.
type SaveNFTInput struct {
	TokenAddress  string
	WalletAddress string
}

// UpdateNFTInput is a patch of the designer-controlled NFT fields.
type UpdateNFTInput struct {
	TokenAddress string
	ProductID    util.Optional[uuid.UUID]
	Active       util.Optional[string] // "yes" or "no".
}
