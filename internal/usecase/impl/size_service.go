package impl

import (
	"context"
	"log/slog"
	"time"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sizeService implements the SizeUsecase interface. Mutations are restricted to the
// designer of the parent product.
type sizeService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewSizeService is the constructor for sizeService.
func NewSizeService(txManager repository.TransactionManager, logger *slog.Logger) usecase.SizeUsecase {
	return &sizeService{
		txManager: txManager,
		logger:    logger,
	}
}

// ListByProduct returns a product's sizes.
func (srv *sizeService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Size, error) {
	var sizes []*entity.Size

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewSizeRepository().ListByProduct(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to list sizes")
		}
		sizes = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product sizes")
	}

	return sizes, nil
}

// Create adds a size row to a product the caller designed.
func (srv *sizeService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateSizeInput) (*entity.Size, error) {
	if input.ProductID == uuid.Nil || input.Label == "" || input.Quantity == 0 {
		return nil, errors.WithStack(domainerrors.ErrRequiredFieldsMissing)
	}
	if input.Quantity < 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	var size *entity.Size

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := checkProductDesigner(ctx, repoFactory.NewProductRepository(), input.ProductID, userID); err != nil {
			return err
		}

		now := time.Now()
		size = &entity.Size{
			ID:        uuid.New(),
			ProductID: input.ProductID,
			Label:     input.Label,
			Quantity:  input.Quantity,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := repoFactory.NewSizeRepository().Create(ctx, size); err != nil {
			return errors.Wrap(err, "failed to create size")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create size")
	}

	return size, nil
}

// UpdateQuantity sets the stock of a size; quantity must be positive.
func (srv *sizeService) UpdateQuantity(ctx context.Context, userID, sizeID uuid.UUID, quantity int) (*entity.Size, error) {
	if quantity <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	var size *entity.Size

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sizeRepo := repoFactory.NewSizeRepository()

		found, err := findSize(ctx, sizeRepo, sizeID)
		if err != nil {
			return err
		}
		if err := checkProductDesigner(ctx, repoFactory.NewProductRepository(), found.ProductID, userID); err != nil {
			return err
		}

		found.Quantity = quantity
		found.UpdatedAt = time.Now()
		if err := sizeRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update size")
		}
		size = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update size quantity")
	}

	return size, nil
}

// Delete removes a size row.
func (srv *sizeService) Delete(ctx context.Context, userID, sizeID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sizeRepo := repoFactory.NewSizeRepository()

		found, err := findSize(ctx, sizeRepo, sizeID)
		if err != nil {
			return err
		}
		if err := checkProductDesigner(ctx, repoFactory.NewProductRepository(), found.ProductID, userID); err != nil {
			return err
		}

		if err := sizeRepo.Delete(ctx, sizeID); err != nil {
			if errors.Is(err, repository.ErrSizeNotFound) {
				return errors.Wrap(domainerrors.ErrSizeNotFound, "size not found")
			}

			return errors.Wrap(err, "failed to delete size")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete size")
	}

	return nil
}

func findSize(ctx context.Context, repo repository.SizeRepository, id uuid.UUID) (*entity.Size, error) {
	size, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSizeNotFound) {
			return nil, errors.Wrap(domainerrors.ErrSizeNotFound, "size not found")
		}

		return nil, errors.Wrap(err, "failed to find size")
	}

	return size, nil
}

func checkProductDesigner(ctx context.Context, repo repository.ProductRepository, productID, userID uuid.UUID) error {
	product, err := findProduct(ctx, repo, productID)
	if err != nil {
		return err
	}
	if product.DesignerID != userID {
		return errors.Wrap(domainerrors.ErrForbidden, "product designed by another user")
	}

	return nil
}
