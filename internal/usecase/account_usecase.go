// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"atelier/internal/domain/entity"
	"atelier/internal/util"

	"github.com/google/uuid"
)

// AccountUsecase defines registration, login and the self-service profile operations.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	AddWallet(ctx context.Context, userID uuid.UUID, walletAddress string) (*entity.User, error)
	RemoveWallet(ctx context.Context, userID uuid.UUID, walletAddress string) (*entity.User, error)
	VerifyWallet(ctx context.Context, userID uuid.UUID, walletAddress string) (bool, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Username        string
	Password        string
	Email           string
	Role            string // Only "designer" grants the designer role.
	SolanaWallet    string // Optional first wallet.
	ShippingAddress *entity.ShippingAddress
}

// LoginInput defines the credentials used to log in.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput carries the issued token and the authenticated user.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UpdateProfileInput is a patch; only present keys are applied.
type UpdateProfileInput struct {
	Email           util.Optional[string]
	SolanaWallets   util.Optional[[]string]
	ShippingAddress util.Optional[entity.ShippingAddress]
}
