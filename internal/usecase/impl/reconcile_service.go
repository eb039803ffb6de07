package impl

import (
	"context"
	"log/slog"
	"time"

	"atelier/config"
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

const defaultReconcileBatchSize = 100

// reconcileService implements the ReconcileUsecase interface. It observes the chain outside
// of any transaction and then applies a chain_observed transition under a row lock, so a run
// can be repeated safely.
type reconcileService struct {
	txManager repository.TransactionManager
	chain     service.ChainReader
	metrics   service.ReconcileMetrics
	batchSize int
	now       func() time.Time
	logger    *slog.Logger
}

// ReconcileServiceParams holds dependencies for ReconcileService, injected by Fx.
type ReconcileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Chain     service.ChainReader
	Metrics   service.ReconcileMetrics
	Config    *config.Config
	Logger    *slog.Logger
}

// NewReconcileService is the constructor for reconcileService.
func NewReconcileService(params ReconcileServiceParams) usecase.ReconcileUsecase {
	batchSize := defaultReconcileBatchSize
	if params.Config != nil && params.Config.Reconcile != nil && params.Config.Reconcile.BatchSize > 0 {
		batchSize = params.Config.Reconcile.BatchSize
	}

	return &reconcileService{
		txManager: params.TxManager,
		chain:     params.Chain,
		metrics:   params.Metrics,
		batchSize: batchSize,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *reconcileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReconcileAll walks every NFT in token order.
func (srv *reconcileService) ReconcileAll(ctx context.Context, trigger string) (*usecase.ReconcileReport, error) {
	return srv.run(ctx, trigger, func(listings map[string]entity.ChainListing, report *usecase.ReconcileReport) error {
		after := ""
		for {
			if err := ctx.Err(); err != nil {
				return errors.Wrap(err, "reconcile interrupted")
			}

			var batch []*entity.NFT
			err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
				found, err := repoFactory.NewNFTRepository().ListBatchPrimary(ctx, after, srv.batchSize)
				if err != nil {
					return errors.Wrap(err, "failed to list nft batch")
				}
				batch = found

				return nil
			})
			if err != nil {
				return errors.Wrap(err, "failed to load nft batch")
			}

			for _, nft := range batch {
				if err := srv.reconcileOne(ctx, nft, listings, report); err != nil {
					return err
				}
			}

			if len(batch) < srv.batchSize {
				return nil
			}
			after = batch[len(batch)-1].TokenAddress
		}
	})
}

// ReconcileToken reconciles a single NFT.
func (srv *reconcileService) ReconcileToken(ctx context.Context, tokenAddress, trigger string) (*usecase.ReconcileReport, error) {
	return srv.run(ctx, trigger, func(listings map[string]entity.ChainListing, report *usecase.ReconcileReport) error {
		var nft *entity.NFT
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			found, err := repoFactory.NewNFTRepository().FindByTokenPrimary(ctx, tokenAddress)
			if err != nil {
				if errors.Is(err, repository.ErrNFTNotFound) {
					return errors.Wrap(domainerrors.ErrNFTNotFound, "nft not found")
				}

				return errors.Wrap(err, "failed to find nft")
			}
			nft = found

			return nil
		})
		if err != nil {
			return err
		}

		return srv.reconcileOne(ctx, nft, listings, report)
	})
}

// ReconcileDesigner reconciles every NFT of one designer.
func (srv *reconcileService) ReconcileDesigner(ctx context.Context, designerID uuid.UUID, trigger string) (*usecase.ReconcileReport, error) {
	return srv.run(ctx, trigger, func(listings map[string]entity.ChainListing, report *usecase.ReconcileReport) error {
		var nfts []*entity.NFTWithProduct
		err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			found, err := repoFactory.NewNFTRepository().ListByDesigner(ctx, designerID)
			if err != nil {
				return errors.Wrap(err, "failed to list designer nfts")
			}
			nfts = found

			return nil
		})
		if err != nil {
			return err
		}

		for _, item := range nfts {
			if err := srv.reconcileOne(ctx, item.NFT, listings, report); err != nil {
				return err
			}
		}

		return nil
	})
}

// run reads the active listings once, hands them to fn and records the outcome.
func (srv *reconcileService) run(
	ctx context.Context,
	trigger string,
	fn func(listings map[string]entity.ChainListing, report *usecase.ReconcileReport) error,
) (*usecase.ReconcileReport, error) {
	start := srv.now()
	report := &usecase.ReconcileReport{}

	err := func() error {
		listings, err := srv.chain.ListListings(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to read marketplace listings")
		}

		byMint := make(map[string]entity.ChainListing, len(listings))
		for _, l := range listings {
			byMint[l.Mint] = l
		}

		return fn(byMint, report)
	}()

	srv.metrics.ObserveRun(trigger, err, time.Since(start))
	srv.metrics.AddCorrections(trigger, report.Corrected)

	if err != nil {
		srv.log(ctx).Error("Reconcile failed", slog.String("trigger", trigger), slog.Int("checked", report.Checked), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to reconcile nfts")
	}

	srv.log(ctx).Info("Reconcile finished",
		slog.String("trigger", trigger),
		slog.Int("checked", report.Checked),
		slog.Int("corrected", report.Corrected))

	return report, nil
}

// observe derives the listing state the chain implies for nft.
func (srv *reconcileService) observe(ctx context.Context, nft *entity.NFT, listings map[string]entity.ChainListing) (entity.ListingState, error) {
	if _, ok := listings[nft.TokenAddress]; ok {
		return entity.ListingListed, nil
	}

	owner, err := srv.chain.TokenOwner(ctx, nft.TokenAddress)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read owner of %s", nft.TokenAddress)
	}
	if owner != "" && owner != nft.WalletAddress {
		return entity.ListingSold, nil
	}

	return entity.ListingUnlisted, nil
}

func (srv *reconcileService) reconcileOne(ctx context.Context, snapshot *entity.NFT, listings map[string]entity.ChainListing, report *usecase.ReconcileReport) error {
	observed, err := srv.observe(ctx, snapshot, listings)
	if err != nil {
		return err
	}

	corrected := false

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		nftRepo := repoFactory.NewNFTRepository()

		nft, err := nftRepo.FindByTokenForUpdate(ctx, snapshot.TokenAddress)
		if err != nil {
			if errors.Is(err, repository.ErrNFTNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to lock nft")
		}

		event, changed, err := nft.Apply(entity.Transition{
			Kind:     entity.TransitionChainObserved,
			Observed: observed,
			At:       srv.now(),
		})
		if err != nil {
			return errors.Wrap(err, "failed to apply chain observation")
		}

		if err := nftRepo.Save(ctx, nft); err != nil {
			return errors.Wrap(err, "failed to save nft")
		}
		if changed {
			if err := nftRepo.AppendEvent(ctx, event); err != nil {
				return errors.Wrap(err, "failed to append nft event")
			}
			corrected = true
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to reconcile %s", snapshot.TokenAddress)
	}

	report.Checked++
	if corrected {
		report.Corrected++
		srv.log(ctx).Info("Listing state corrected", slog.String("tokenAddress", snapshot.TokenAddress), slog.String("observed", string(observed)))
	}

	return nil
}
