package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// collectionService implements the CollectionUsecase interface.
type collectionService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewCollectionService is the constructor for collectionService.
func NewCollectionService(txManager repository.TransactionManager, logger *slog.Logger) usecase.CollectionUsecase {
	return &collectionService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateCollectionInput(input *usecase.CollectionInput) error {
	if input.Name == "" || input.CollectionAddress == "" || input.ImageURL == "" || input.JSONURL == "" {
		return errors.WithStack(domainerrors.ErrCollectionFieldsRequired)
	}

	return nil
}

// Create inserts the collection and indexes it on the owner in the same transaction.
func (srv *collectionService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CollectionInput) (*entity.Collection, error) {
	if err := validateCollectionInput(input); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Creating collection", slog.Any("userID", userID), slog.String("collectionAddress", input.CollectionAddress))

	var collection *entity.Collection

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		owner, err := userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "collection owner not found")
			}

			return errors.Wrap(err, "failed to find collection owner")
		}

		now := time.Now()
		collection = &entity.Collection{
			ID:                uuid.New(),
			Name:              input.Name,
			CollectionAddress: input.CollectionAddress,
			ImageURL:          input.ImageURL,
			JSONURL:           input.JSONURL,
			DesignerID:        owner.ID,
			DesignerUsername:  owner.Username,
			ProductIDs:        []uuid.UUID{},
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := repoFactory.NewCollectionRepository().Create(ctx, collection); err != nil {
			return errors.Wrap(err, "failed to create collection")
		}

		owner.AddCollectionRef(entity.CollectionRef{
			CollectionID:      collection.ID,
			CollectionAddress: collection.CollectionAddress,
		})
		owner.UpdatedAt = now
		if err := userRepo.Update(ctx, owner); err != nil {
			return errors.Wrap(err, "failed to index collection on owner")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create collection")
	}

	return collection, nil
}

// Update replaces every editable field. Missing and foreign collections are both forbidden.
func (srv *collectionService) Update(ctx context.Context, userID, collectionID uuid.UUID, input *usecase.CollectionInput) (*entity.Collection, error) {
	if err := validateCollectionInput(input); err != nil {
		return nil, err
	}

	var collection *entity.Collection

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collectionRepo := repoFactory.NewCollectionRepository()

		owned, err := findOwnedCollection(ctx, collectionRepo, collectionID, userID)
		if err != nil {
			return err
		}

		owned.Name = input.Name
		owned.CollectionAddress = input.CollectionAddress
		owned.ImageURL = input.ImageURL
		owned.JSONURL = input.JSONURL
		owned.UpdatedAt = time.Now()

		if err := collectionRepo.Update(ctx, owned); err != nil {
			return errors.Wrap(err, "failed to update collection")
		}
		collection = owned

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update collection")
	}

	return collection, nil
}

// Delete removes the collection and its entry on the owner. Products are kept.
func (srv *collectionService) Delete(ctx context.Context, userID, collectionID uuid.UUID) error {
	srv.log(ctx).Info("Deleting collection", slog.Any("userID", userID), slog.Any("collectionID", collectionID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collectionRepo := repoFactory.NewCollectionRepository()
		userRepo := repoFactory.NewUserRepository()

		collection, err := collectionRepo.FindByIDForUpdate(ctx, collectionID)
		if err != nil {
			if errors.Is(err, repository.ErrCollectionNotFound) {
				return errors.Wrap(domainerrors.ErrCollectionNotFound, "collection not found")
			}

			return errors.Wrap(err, "failed to find collection")
		}
		if !collection.IsOwnedBy(userID) {
			return errors.Wrap(domainerrors.ErrForbidden, "collection owned by another designer")
		}

		if err := collectionRepo.Delete(ctx, collectionID); err != nil {
			return errors.Wrap(err, "failed to delete collection")
		}

		owner, err := userRepo.FindByIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find collection owner")
		}
		owner.RemoveCollectionRef(collectionID)
		owner.UpdatedAt = time.Now()
		if err := userRepo.Update(ctx, owner); err != nil {
			return errors.Wrap(err, "failed to unindex collection on owner")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete collection")
	}

	return nil
}

// ListOwn returns the caller's collections.
func (srv *collectionService) ListOwn(ctx context.Context, userID uuid.UUID) ([]*entity.Collection, error) {
	return srv.ListByDesigner(ctx, userID)
}

// ListOwnProducts lists the products of a collection the caller owns.
func (srv *collectionService) ListOwnProducts(ctx context.Context, userID, collectionID uuid.UUID) ([]*entity.Product, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		collection, err := repoFactory.NewCollectionRepository().FindByID(ctx, collectionID)
		if err != nil {
			if errors.Is(err, repository.ErrCollectionNotFound) {
				return errors.Wrap(domainerrors.ErrForbidden, "collection not found")
			}

			return errors.Wrap(err, "failed to find collection")
		}
		if !collection.IsOwnedBy(userID) {
			return errors.Wrap(domainerrors.ErrForbidden, "collection owned by another designer")
		}

		found, err := repoFactory.NewProductRepository().ListByCollection(ctx, collectionID)
		if err != nil {
			return errors.Wrap(err, "failed to list collection products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own collection products")
	}

	return products, nil
}

// List returns every collection.
func (srv *collectionService) List(ctx context.Context) ([]*entity.Collection, error) {
	var collections []*entity.Collection

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCollectionRepository().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list collections")
		}
		collections = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collections")
	}

	return collections, nil
}

// Get returns one collection.
func (srv *collectionService) Get(ctx context.Context, collectionID uuid.UUID) (*entity.Collection, error) {
	var collection *entity.Collection

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findCollection(ctx, repoFactory.NewCollectionRepository(), collectionID)
		if err != nil {
			return err
		}
		collection = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get collection")
	}

	return collection, nil
}

// GetByAddress returns the collection minted at the on-chain address.
func (srv *collectionService) GetByAddress(ctx context.Context, collectionAddress string) (*entity.Collection, error) {
	var collection *entity.Collection

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCollectionRepository().FindByAddress(ctx, collectionAddress)
		if err != nil {
			if errors.Is(err, repository.ErrCollectionNotFound) {
				return errors.Wrap(domainerrors.ErrCollectionNotFound, "collection not found")
			}

			return errors.Wrap(err, "failed to find collection by address")
		}
		collection = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get collection by address")
	}

	return collection, nil
}

// ListProducts lists a collection's products for the public catalog.
func (srv *collectionService) ListProducts(ctx context.Context, collectionID uuid.UUID) ([]*entity.Product, error) {
	var products []*entity.Product

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewProductRepository().ListByCollection(ctx, collectionID)
		if err != nil {
			return errors.Wrap(err, "failed to list collection products")
		}
		products = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list collection products")
	}

	return products, nil
}

// ListByDesigner returns a designer's collections.
func (srv *collectionService) ListByDesigner(ctx context.Context, designerID uuid.UUID) ([]*entity.Collection, error) {
	var collections []*entity.Collection

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewCollectionRepository().ListByDesigner(ctx, designerID)
		if err != nil {
			return errors.Wrap(err, "failed to list designer collections")
		}
		collections = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list designer collections")
	}

	return collections, nil
}
