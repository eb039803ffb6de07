package impl

import (
	"context"
	"testing"

	"atelier/config"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	mockSvc "atelier/internal/mocks/service"
	"atelier/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reconcileServiceFixtures struct {
	service usecase.ReconcileUsecase
	repos   *repoMocks
	chain   *mockSvc.MockChainReader
	metrics *mockSvc.MockReconcileMetrics
}

func createTestReconcileService(t *testing.T, batchSize int) reconcileServiceFixtures {
	repos := newRepoMocks(t)
	chain := mockSvc.NewMockChainReader(t)
	metrics := mockSvc.NewMockReconcileMetrics(t)

	return reconcileServiceFixtures{
		service: NewReconcileService(ReconcileServiceParams{
			TxManager: repos.txManager,
			Chain:     chain,
			Metrics:   metrics,
			Config:    &config.Config{Reconcile: &config.ReconcileConfig{BatchSize: batchSize}},
			Logger:    discardLogger(),
		}),
		repos:   repos,
		chain:   chain,
		metrics: metrics,
	}
}

func chainNFT(token, wallet string, state entity.ListingState, source entity.ListingSource) *entity.NFT {
	return &entity.NFT{TokenAddress: token, WalletAddress: wallet, ListingState: state, ListingSource: source}
}

func TestReconcileService_ReconcileAll(t *testing.T) {
	fx := createTestReconcileService(t, 2)
	ctx := context.Background()

	listed := chainNFT("MintA", "WalletA", entity.ListingUnlisted, entity.SourceDesigner)
	inSync := chainNFT("MintB", "WalletB", entity.ListingUnlisted, entity.SourceChain)
	sold := chainNFT("MintC", "WalletC", entity.ListingListed, entity.SourceReported)
	sold.Active = true

	fx.chain.EXPECT().ListListings(ctx).Return([]entity.ChainListing{{Mint: "MintA", Seller: "WalletA", Price: 10}}, nil)
	fx.chain.EXPECT().TokenOwner(ctx, "MintB").Return("WalletB", nil)
	fx.chain.EXPECT().TokenOwner(ctx, "MintC").Return("Buyer", nil)

	fx.repos.nfts.EXPECT().ListBatchPrimary(ctx, "", 2).Return([]*entity.NFT{listed, inSync}, nil)
	fx.repos.nfts.EXPECT().ListBatchPrimary(ctx, "MintB", 2).Return([]*entity.NFT{sold}, nil)
	for _, nft := range []*entity.NFT{listed, inSync, sold} {
		fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, nft.TokenAddress).Return(nft, nil)
		fx.repos.nfts.EXPECT().Save(ctx, nft).Return(nil)
	}
	fx.repos.nfts.EXPECT().AppendEvent(ctx, mock.AnythingOfType("*entity.NFTEvent")).Return(nil).Twice()

	fx.metrics.EXPECT().ObserveRun(usecase.TriggerSchedule, nil, mock.Anything)
	fx.metrics.EXPECT().AddCorrections(usecase.TriggerSchedule, 2)

	report, err := fx.service.ReconcileAll(ctx, usecase.TriggerSchedule)

	require.NoError(t, err)
	assert.Equal(t, &usecase.ReconcileReport{Checked: 3, Corrected: 2}, report)
	assert.Equal(t, entity.ListingListed, listed.ListingState)
	assert.Equal(t, entity.SourceChain, listed.ListingSource)
	assert.Equal(t, entity.ListingSold, sold.ListingState)
	assert.False(t, sold.Active)
	assert.NotNil(t, inSync.SyncedAt)
}

func TestReconcileService_ReconcileToken_Idempotent(t *testing.T) {
	fx := createTestReconcileService(t, 0)
	ctx := context.Background()
	nft := chainNFT("MintA", "WalletA", entity.ListingUnlisted, entity.SourceDesigner)

	fx.chain.EXPECT().ListListings(ctx).Return([]entity.ChainListing{{Mint: "MintA"}}, nil).Twice()
	fx.repos.nfts.EXPECT().FindByTokenPrimary(ctx, "MintA").Return(nft, nil).Twice()
	fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, "MintA").Return(nft, nil).Twice()
	fx.repos.nfts.EXPECT().Save(ctx, nft).Return(nil).Twice()
	fx.repos.nfts.EXPECT().AppendEvent(ctx, mock.AnythingOfType("*entity.NFTEvent")).Return(nil).Once()
	fx.metrics.EXPECT().ObserveRun(usecase.TriggerPush, nil, mock.Anything).Twice()
	fx.metrics.EXPECT().AddCorrections(usecase.TriggerPush, 1).Once()
	fx.metrics.EXPECT().AddCorrections(usecase.TriggerPush, 0).Once()

	first, err := fx.service.ReconcileToken(ctx, "MintA", usecase.TriggerPush)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Corrected)

	second, err := fx.service.ReconcileToken(ctx, "MintA", usecase.TriggerPush)
	require.NoError(t, err)
	assert.Equal(t, 1, second.Checked)
	assert.Zero(t, second.Corrected)
}

func TestReconcileService_ReconcileToken_NotFound(t *testing.T) {
	fx := createTestReconcileService(t, 0)
	ctx := context.Background()

	fx.chain.EXPECT().ListListings(ctx).Return(nil, nil)
	fx.repos.nfts.EXPECT().FindByTokenPrimary(ctx, "Nope").Return(nil, repository.ErrNFTNotFound)
	fx.metrics.EXPECT().ObserveRun(usecase.TriggerPush, mock.Anything, mock.Anything)
	fx.metrics.EXPECT().AddCorrections(usecase.TriggerPush, 0)

	_, err := fx.service.ReconcileToken(ctx, "Nope", usecase.TriggerPush)

	assert.True(t, errors.Is(err, domainerrors.ErrNFTNotFound))
}

func TestReconcileService_ChainUnavailable(t *testing.T) {
	fx := createTestReconcileService(t, 0)
	ctx := context.Background()
	chainErr := errors.New("rpc timeout")

	fx.chain.EXPECT().ListListings(ctx).Return(nil, chainErr)
	fx.metrics.EXPECT().ObserveRun(usecase.TriggerManual, mock.MatchedBy(func(err error) bool {
		return errors.Is(err, chainErr)
	}), mock.Anything)
	fx.metrics.EXPECT().AddCorrections(usecase.TriggerManual, 0)

	_, err := fx.service.ReconcileAll(ctx, usecase.TriggerManual)

	assert.True(t, errors.Is(err, chainErr))
}
