package impl

import (
	"context"
	"log/slog"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// designerService implements the DesignerUsecase interface.
type designerService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewDesignerService is the constructor for designerService.
func NewDesignerService(txManager repository.TransactionManager, logger *slog.Logger) usecase.DesignerUsecase {
	return &designerService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListDesigners returns every account holding the designer role.
func (srv *designerService) ListDesigners(ctx context.Context) ([]*entity.User, error) {
	var designers []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().ListByRole(ctx, entity.RoleDesigner)
		if err != nil {
			return errors.Wrap(err, "failed to list designers")
		}
		designers = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list designers")
	}

	return designers, nil
}

// GetDesigner looks a user up by id. Any role matches, like the public profile links do.
func (srv *designerService) GetDesigner(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var designer *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findDesigner(ctx, repoFactory.NewUserRepository(), id)
		if err != nil {
			return err
		}
		designer = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get designer")
	}

	return designer, nil
}

// GetDesignerByWallet returns the first user who linked the wallet.
func (srv *designerService) GetDesignerByWallet(ctx context.Context, walletAddress string) (*entity.User, error) {
	var designer *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByWallet(ctx, walletAddress)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrDesignerNotFound, "no user holds the wallet")
			}

			return errors.Wrap(err, "failed to find designer by wallet")
		}
		designer = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get designer by wallet")
	}

	return designer, nil
}

// GetDesignerByUsername only matches designers.
func (srv *designerService) GetDesignerByUsername(ctx context.Context, username string) (*entity.User, error) {
	var designer *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewUserRepository().FindByUsername(ctx, username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrDesignerNotFound, "designer not found")
			}

			return errors.Wrap(err, "failed to find designer by username")
		}
		if !found.IsDesigner() {
			return errors.Wrap(domainerrors.ErrDesignerNotFound, "user is not a designer")
		}
		designer = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get designer by username")
	}

	return designer, nil
}

// GetDesignerProfile returns the designer with their collections.
func (srv *designerService) GetDesignerProfile(ctx context.Context, id uuid.UUID) (*usecase.DesignerProfile, error) {
	profile := &usecase.DesignerProfile{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		designer, err := findDesigner(ctx, repoFactory.NewUserRepository(), id)
		if err != nil {
			return err
		}

		collections, err := repoFactory.NewCollectionRepository().ListByDesigner(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to list designer collections")
		}

		profile.Designer = designer
		profile.Collections = collections

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get designer profile")
	}

	return profile, nil
}
