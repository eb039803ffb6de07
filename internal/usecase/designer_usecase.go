package usecase

import (
	"context"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

// DesignerUsecase exposes the public designer directory.
type DesignerUsecase interface {
	ListDesigners(ctx context.Context) ([]*entity.User, error)
	GetDesigner(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetDesignerByWallet(ctx context.Context, walletAddress string) (*entity.User, error)
	GetDesignerByUsername(ctx context.Context, username string) (*entity.User, error)
	GetDesignerProfile(ctx context.Context, id uuid.UUID) (*DesignerProfile, error)
}

// DesignerProfile is a designer together with their collections.
type DesignerProfile struct {
	Designer    *entity.User
	Collections []*entity.Collection
}
