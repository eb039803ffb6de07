package impl

import (
	"context"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func findUser(ctx context.Context, repo repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func findDesigner(ctx context.Context, repo repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrDesignerNotFound, "designer not found")
		}

		return nil, errors.Wrap(err, "failed to find designer")
	}

	return user, nil
}

func findCollection(ctx context.Context, repo repository.CollectionRepository, id uuid.UUID) (*entity.Collection, error) {
	collection, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCollectionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCollectionNotFound, "collection not found")
		}

		return nil, errors.Wrap(err, "failed to find collection")
	}

	return collection, nil
}

// findOwnedCollection locks the collection and hides whether it is missing or foreign:
// both are reported as forbidden.
func findOwnedCollection(ctx context.Context, repo repository.CollectionRepository, id, userID uuid.UUID) (*entity.Collection, error) {
	collection, err := repo.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCollectionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrForbidden, "collection not found")
		}

		return nil, errors.Wrap(err, "failed to find collection")
	}
	if !collection.IsOwnedBy(userID) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "collection owned by another designer")
	}

	return collection, nil
}

func findProduct(ctx context.Context, repo repository.ProductRepository, id uuid.UUID) (*entity.Product, error) {
	product, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product not found")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// findOwnedProduct resolves ownership through the product's collection.
func findOwnedProduct(ctx context.Context, repoFactory repository.RepositoryFactory, id, userID uuid.UUID) (*entity.Product, *entity.Collection, error) {
	product, err := findProduct(ctx, repoFactory.NewProductRepository(), id)
	if err != nil {
		return nil, nil, err
	}

	collection, err := findOwnedCollection(ctx, repoFactory.NewCollectionRepository(), product.CollectionID, userID)
	if err != nil {
		return nil, nil, err
	}

	return product, collection, nil
}

func findNFT(ctx context.Context, repo repository.NFTRepository, tokenAddress string) (*entity.NFT, error) {
	nft, err := repo.FindByToken(ctx, tokenAddress)
	if err != nil {
		if errors.Is(err, repository.ErrNFTNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNFTNotFound, "nft not found")
		}

		return nil, errors.Wrap(err, "failed to find nft")
	}

	return nft, nil
}
