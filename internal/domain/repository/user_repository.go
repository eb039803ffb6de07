// Package repository declares the persistence ports the use cases depend on.
package repository

import (
	"context"
	"errors"

	"atelier/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository stores accounts. Lookups return ErrUserNotFound when nothing matches.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByIDForUpdate row-locks the user until the surrounding transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	// FindByWallet returns the first user whose wallets include walletAddress.
	FindByWallet(ctx context.Context, walletAddress string) (*entity.User, error)
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.User, error)
	// Create fails with ErrUserAlreadyExists when the username or email is taken.
	Create(ctx context.Context, user *entity.User) error
	// Update overwrites every mutable field.
	Update(ctx context.Context, user *entity.User) error
}
