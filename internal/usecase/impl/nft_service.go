package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// nftService implements the NFTUsecase interface. Every listing change goes through
// entity.NFT.Apply and is logged as an NFTEvent in the same transaction.
type nftService struct {
	txManager  repository.TransactionManager
	publisher  service.EventPublisher
	exporter   service.InventoryExporter
	reconciler usecase.ReconcileUsecase
	logger     *slog.Logger
}

// NFTServiceParams holds dependencies for NFTService, injected by Fx.
type NFTServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Publisher  service.EventPublisher
	Exporter   service.InventoryExporter
	Reconciler usecase.ReconcileUsecase
	Logger     *slog.Logger
}

// NewNFTService is the constructor for nftService.
func NewNFTService(params NFTServiceParams) usecase.NFTUsecase {
	return &nftService{
		txManager:  params.TxManager,
		publisher:  params.Publisher,
		exporter:   params.Exporter,
		reconciler: params.Reconciler,
		logger:     params.Logger,
	}
}

func (srv *nftService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Save records a freshly minted NFT as inactive, unlisted and unassigned.
func (srv *nftService) Save(ctx context.Context, userID uuid.UUID, input *usecase.SaveNFTInput) (*entity.NFT, error) {
	if input.TokenAddress == "" || input.WalletAddress == "" {
		return nil, errors.WithStack(domainerrors.ErrNFTFieldsRequired)
	}

	srv.log(ctx).Info("Saving minted nft", slog.Any("userID", userID), slog.String("tokenAddress", input.TokenAddress))

	var (
		nft   *entity.NFT
		event *entity.NFTEvent
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		designer, err := findDesigner(ctx, repoFactory.NewUserRepository(), userID)
		if err != nil {
			return err
		}

		now := time.Now()
		nft = entity.NewNFT(input.TokenAddress, input.WalletAddress, designer, now)
		event, _, err = nft.Apply(entity.Transition{Kind: entity.TransitionMinted, ActorID: &userID, At: now})
		if err != nil {
			return errors.Wrap(err, "failed to apply mint transition")
		}

		nftRepo := repoFactory.NewNFTRepository()
		if err := nftRepo.Create(ctx, nft); err != nil {
			if errors.Is(err, repository.ErrNFTAlreadyExists) {
				return domainerrors.ErrNFTAlreadyExists.WrapMessage("token already recorded")
			}

			return errors.Wrap(err, "failed to create nft")
		}
		if err := nftRepo.AppendEvent(ctx, event); err != nil {
			return errors.Wrap(err, "failed to append mint event")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save nft")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), event)

	return nft, nil
}

// Update assigns a product and/or changes the active flag of an owned NFT.
func (srv *nftService) Update(ctx context.Context, userID uuid.UUID, input *usecase.UpdateNFTInput) (*entity.NFT, error) {
	var transition *entity.Transition
	if input.Active.Set {
		kind, err := activationKind(input.Active.Value, input.Active.Null)
		if err != nil {
			return nil, err
		}
		transition = &entity.Transition{Kind: kind, ActorID: &userID}
	}

	var (
		nft   *entity.NFT
		event *entity.NFTEvent
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		nftRepo := repoFactory.NewNFTRepository()

		owned, err := findOwnedNFT(ctx, nftRepo, input.TokenAddress, userID)
		if err != nil {
			return err
		}

		now := time.Now()
		assigned := false
		if input.ProductID.Present() {
			if err := checkProductDesigner(ctx, repoFactory.NewProductRepository(), input.ProductID.Value, userID); err != nil {
				return err
			}
			if owned.ProductID == nil || *owned.ProductID != input.ProductID.Value {
				productID := input.ProductID.Value
				owned.ProductID = &productID
				owned.UpdatedAt = now
				assigned = true
			}
		}

		if transition != nil {
			transition.At = now
			event, err = applyTransition(ctx, nftRepo, owned, *transition)
			if err != nil {
				return err
			}
		}
		if assigned && event == nil {
			if err := nftRepo.Save(ctx, owned); err != nil {
				return errors.Wrap(err, "failed to save nft")
			}
		}
		nft = owned

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update nft")
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), event)

	return nft, nil
}

// MarkListed records a client-reported marketplace listing.
func (srv *nftService) MarkListed(ctx context.Context, userID uuid.UUID, tokenAddress string) (*entity.NFT, error) {
	return srv.transitionOwned(ctx, userID, tokenAddress, entity.TransitionListingReported)
}

// UpdateStatus sets the active flag; it follows the same owner policy as Update.
func (srv *nftService) UpdateStatus(ctx context.Context, userID uuid.UUID, tokenAddress, active string) (*entity.NFT, error) {
	kind, err := activationKind(active, false)
	if err != nil {
		return nil, err
	}

	return srv.transitionOwned(ctx, userID, tokenAddress, kind)
}

func (srv *nftService) transitionOwned(ctx context.Context, userID uuid.UUID, tokenAddress string, kind entity.TransitionKind) (*entity.NFT, error) {
	var (
		nft   *entity.NFT
		event *entity.NFTEvent
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		nftRepo := repoFactory.NewNFTRepository()

		owned, err := findOwnedNFT(ctx, nftRepo, tokenAddress, userID)
		if err != nil {
			return err
		}

		event, err = applyTransition(ctx, nftRepo, owned, entity.Transition{Kind: kind, ActorID: &userID, At: time.Now()})
		if err != nil {
			return err
		}
		nft = owned

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to apply %s", kind)
	}

	publishEvents(ctx, srv.publisher, srv.log(ctx), event)

	return nft, nil
}

// ListOwn returns the caller's NFTs with their product names.
func (srv *nftService) ListOwn(ctx context.Context, userID uuid.UUID) ([]*entity.NFTWithProduct, error) {
	var nfts []*entity.NFTWithProduct

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewNFTRepository().ListByDesigner(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list designer nfts")
		}
		nfts = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list own nfts")
	}

	return nfts, nil
}

// ExportOwn renders the caller's NFTs and products as a workbook.
func (srv *nftService) ExportOwn(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	var (
		nfts     []*entity.NFTWithProduct
		products []*entity.Product
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		nfts, err = repoFactory.NewNFTRepository().ListByDesigner(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list designer nfts")
		}
		products, err = repoFactory.NewProductRepository().ListByDesigner(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list designer products")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load inventory")
	}

	workbook, err := srv.exporter.Export(nfts, products)
	if err != nil {
		return nil, errors.Wrap(err, "failed to export inventory")
	}

	return workbook, nil
}

// SyncOwn reconciles the caller's NFTs against the chain now.
func (srv *nftService) SyncOwn(ctx context.Context, userID uuid.UUID) (*usecase.ReconcileReport, error) {
	report, err := srv.reconciler.ReconcileDesigner(ctx, userID, usecase.TriggerManual)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sync nfts")
	}

	return report, nil
}

// Get returns one NFT by token address.
func (srv *nftService) Get(ctx context.Context, tokenAddress string) (*entity.NFT, error) {
	var nft *entity.NFT

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findNFT(ctx, repoFactory.NewNFTRepository(), tokenAddress)
		if err != nil {
			return err
		}
		nft = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get nft")
	}

	return nft, nil
}

// ListAll returns every NFT with its product name.
func (srv *nftService) ListAll(ctx context.Context) ([]*entity.NFTWithProduct, error) {
	var nfts []*entity.NFTWithProduct

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewNFTRepository().ListAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list nfts")
		}
		nfts = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list nfts")
	}

	return nfts, nil
}

// ListByProduct returns the product's NFTs; an empty result is reported as not found.
func (srv *nftService) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.NFT, error) {
	var nfts []*entity.NFT

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewNFTRepository().ListByProduct(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to list product nfts")
		}
		if len(found) == 0 {
			return errors.WithStack(domainerrors.ErrNoNFTsForProduct)
		}
		nfts = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list product nfts")
	}

	return nfts, nil
}

// CountActive counts the product's NFTs whose active flag is set.
func (srv *nftService) CountActive(ctx context.Context, productID uuid.UUID) (int64, error) {
	var count int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.NewNFTRepository().CountActiveByProduct(ctx, productID)
		if err != nil {
			return errors.Wrap(err, "failed to count active nfts")
		}
		count = n

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count active nfts")
	}

	return count, nil
}

// GroupedByProduct lists active NFTs per product.
func (srv *nftService) GroupedByProduct(ctx context.Context) ([]*entity.ProductNFTGroup, error) {
	var groups []*entity.ProductNFTGroup

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.NewNFTRepository().GroupActiveByProduct(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to group nfts")
		}
		groups = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to group nfts by product")
	}

	return groups, nil
}

// History returns the transition log of one NFT, oldest first.
func (srv *nftService) History(ctx context.Context, tokenAddress string) ([]*entity.NFTEvent, error) {
	var events []*entity.NFTEvent

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		nftRepo := repoFactory.NewNFTRepository()

		if _, err := findNFT(ctx, nftRepo, tokenAddress); err != nil {
			return err
		}

		found, err := nftRepo.ListEvents(ctx, tokenAddress)
		if err != nil {
			return errors.Wrap(err, "failed to list nft events")
		}
		events = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get nft history")
	}

	return events, nil
}

// findOwnedNFT locks the NFT; missing and foreign NFTs are indistinguishable to the caller.
func findOwnedNFT(ctx context.Context, repo repository.NFTRepository, tokenAddress string, userID uuid.UUID) (*entity.NFT, error) {
	if tokenAddress == "" {
		return nil, errors.Wrap(domainerrors.ErrRequiredFieldsMissing, "token address is required")
	}

	nft, err := repo.FindByTokenForUpdate(ctx, tokenAddress)
	if err != nil {
		if errors.Is(err, repository.ErrNFTNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNFTNotFoundOrUnauthorized, "nft not found")
		}

		return nil, errors.Wrap(err, "failed to find nft")
	}
	if !nft.IsOwnedBy(userID) {
		return nil, errors.Wrap(domainerrors.ErrNFTNotFoundOrUnauthorized, "nft owned by another designer")
	}

	return nft, nil
}

func activationKind(flag string, null bool) (entity.TransitionKind, error) {
	if null {
		return "", errors.WithStack(domainerrors.ErrInvalidActiveFlag)
	}

	active, err := entity.ParseFlag(flag)
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrInvalidActiveFlag)
	}
	if active {
		return entity.TransitionActivated, nil
	}

	return entity.TransitionDeactivated, nil
}
