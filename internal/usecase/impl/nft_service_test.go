package impl

import (
	"context"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	mockSvc "atelier/internal/mocks/service"
	mockUC "atelier/internal/mocks/usecase"
	"atelier/internal/usecase"
	"atelier/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type nftServiceFixtures struct {
	service    usecase.NFTUsecase
	repos      *repoMocks
	publisher  *mockSvc.MockEventPublisher
	exporter   *mockSvc.MockInventoryExporter
	reconciler *mockUC.MockReconcileUsecase
}

func createTestNFTService(t *testing.T) nftServiceFixtures {
	repos := newRepoMocks(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	exporter := mockSvc.NewMockInventoryExporter(t)
	reconciler := mockUC.NewMockReconcileUsecase(t)

	return nftServiceFixtures{
		service: NewNFTService(NFTServiceParams{
			TxManager:  repos.txManager,
			Publisher:  publisher,
			Exporter:   exporter,
			Reconciler: reconciler,
			Logger:     discardLogger(),
		}),
		repos:      repos,
		publisher:  publisher,
		exporter:   exporter,
		reconciler: reconciler,
	}
}

func ownedNFT(designerID uuid.UUID) *entity.NFT {
	return &entity.NFT{
		TokenAddress:  "Mint111",
		WalletAddress: "Wallet111",
		DesignerID:    designerID,
		ListingState:  entity.ListingUnlisted,
		ListingSource: entity.SourceDesigner,
	}
}

func TestNFTService_Save(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()
	designer := &entity.User{ID: uuid.New(), Username: "ada", Role: entity.RoleDesigner}

	fx.repos.users.EXPECT().FindByID(ctx, designer.ID).Return(designer, nil)
	fx.repos.nfts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.NFT")).Return(nil)
	fx.repos.nfts.EXPECT().AppendEvent(ctx, mock.MatchedBy(func(e *entity.NFTEvent) bool {
		return e.Kind == entity.TransitionMinted && e.TokenAddress == "Mint111"
	})).Return(nil)
	fx.publisher.EXPECT().PublishNFTEvent(ctx, mock.MatchedBy(func(e *service.NFTChangedEvent) bool {
		return e.Kind == "minted" && e.ToState == "unlisted"
	})).Return(nil)

	nft, err := fx.service.Save(ctx, designer.ID, &usecase.SaveNFTInput{TokenAddress: "Mint111", WalletAddress: "Wallet111"})

	require.NoError(t, err)
	assert.False(t, nft.Active)
	assert.Nil(t, nft.ProductID)
	assert.Equal(t, entity.ListingUnlisted, nft.ListingState)
	assert.Equal(t, "ada", nft.Username)
}

func TestNFTService_Save_Duplicate(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()
	designer := &entity.User{ID: uuid.New(), Username: "ada", Role: entity.RoleDesigner}

	fx.repos.users.EXPECT().FindByID(ctx, designer.ID).Return(designer, nil)
	fx.repos.nfts.EXPECT().Create(ctx, mock.AnythingOfType("*entity.NFT")).Return(repository.ErrNFTAlreadyExists)

	_, err := fx.service.Save(ctx, designer.ID, &usecase.SaveNFTInput{TokenAddress: "Mint111", WalletAddress: "Wallet111"})

	assert.True(t, errors.Is(err, domainerrors.ErrNFTAlreadyExists))
}

func TestNFTService_Save_MissingFields(t *testing.T) {
	fx := createTestNFTService(t)

	_, err := fx.service.Save(context.Background(), uuid.New(), &usecase.SaveNFTInput{TokenAddress: "Mint111"})

	assert.True(t, errors.Is(err, domainerrors.ErrNFTFieldsRequired))
}

func TestNFTService_Update_AssignAndActivate(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()
	designerID := uuid.New()
	nft := ownedNFT(designerID)
	product := &entity.Product{ID: uuid.New(), DesignerID: designerID}

	fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, nft.TokenAddress).Return(nft, nil)
	fx.repos.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.repos.nfts.EXPECT().Save(ctx, nft).Return(nil).Once()
	fx.repos.nfts.EXPECT().AppendEvent(ctx, mock.AnythingOfType("*entity.NFTEvent")).Return(nil)
	fx.publisher.EXPECT().PublishNFTEvent(ctx, mock.MatchedBy(func(e *service.NFTChangedEvent) bool {
		return e.Kind == "activated" && e.Active
	})).Return(nil)

	updated, err := fx.service.Update(ctx, designerID, &usecase.UpdateNFTInput{
		TokenAddress: nft.TokenAddress,
		ProductID:    util.Some(product.ID),
		Active:       util.Some(entity.FlagYes),
	})

	require.NoError(t, err)
	assert.True(t, updated.Active)
	require.NotNil(t, updated.ProductID)
	assert.Equal(t, product.ID, *updated.ProductID)
}

func TestNFTService_Update_AssignOnly(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()
	designerID := uuid.New()
	nft := ownedNFT(designerID)
	product := &entity.Product{ID: uuid.New(), DesignerID: designerID}

	fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, nft.TokenAddress).Return(nft, nil)
	fx.repos.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.repos.nfts.EXPECT().Save(ctx, nft).Return(nil).Once()

	updated, err := fx.service.Update(ctx, designerID, &usecase.UpdateNFTInput{
		TokenAddress: nft.TokenAddress,
		ProductID:    util.Some(product.ID),
	})

	require.NoError(t, err)
	assert.False(t, updated.Active)
	assert.Equal(t, product.ID, *updated.ProductID)
}

func TestNFTService_Update_InvalidActiveFlag(t *testing.T) {
	fx := createTestNFTService(t)

	for _, active := range []util.Optional[string]{util.Some("maybe"), util.Null[string]()} {
		_, err := fx.service.Update(context.Background(), uuid.New(), &usecase.UpdateNFTInput{TokenAddress: "Mint111", Active: active})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidActiveFlag))
	}
}

func TestNFTService_Update_OwnerPolicy(t *testing.T) {
	t.Run("foreign nft", func(t *testing.T) {
		fx := createTestNFTService(t)
		ctx := context.Background()
		nft := ownedNFT(uuid.New())

		fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, nft.TokenAddress).Return(nft, nil)

		_, err := fx.service.Update(ctx, uuid.New(), &usecase.UpdateNFTInput{TokenAddress: nft.TokenAddress, Active: util.Some(entity.FlagYes)})

		assert.True(t, errors.Is(err, domainerrors.ErrNFTNotFoundOrUnauthorized))
	})

	t.Run("missing nft", func(t *testing.T) {
		fx := createTestNFTService(t)
		ctx := context.Background()

		fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, "Nope").Return(nil, repository.ErrNFTNotFound)

		_, err := fx.service.Update(ctx, uuid.New(), &usecase.UpdateNFTInput{TokenAddress: "Nope", Active: util.Some(entity.FlagYes)})

		assert.True(t, errors.Is(err, domainerrors.ErrNFTNotFoundOrUnauthorized))
	})

	t.Run("foreign product", func(t *testing.T) {
		fx := createTestNFTService(t)
		ctx := context.Background()
		designerID := uuid.New()
		nft := ownedNFT(designerID)
		product := &entity.Product{ID: uuid.New(), DesignerID: uuid.New()}

		fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, nft.TokenAddress).Return(nft, nil)
		fx.repos.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

		_, err := fx.service.Update(ctx, designerID, &usecase.UpdateNFTInput{TokenAddress: nft.TokenAddress, ProductID: util.Some(product.ID)})

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
		assert.Nil(t, nft.ProductID)
	})
}

func TestNFTService_UpdateStatus_SoldCannotBeActivated(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()
	designerID := uuid.New()
	nft := ownedNFT(designerID)
	nft.ListingState = entity.ListingSold

	fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, nft.TokenAddress).Return(nft, nil)

	_, err := fx.service.UpdateStatus(ctx, designerID, nft.TokenAddress, entity.FlagYes)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidListingTransition))
}

func TestNFTService_UpdateStatus_NoChangeSkipsEvent(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()
	designerID := uuid.New()
	nft := ownedNFT(designerID)

	fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, nft.TokenAddress).Return(nft, nil)

	updated, err := fx.service.UpdateStatus(ctx, designerID, nft.TokenAddress, entity.FlagNo)

	require.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestNFTService_MarkListed(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()
	designerID := uuid.New()
	nft := ownedNFT(designerID)

	fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, nft.TokenAddress).Return(nft, nil)
	fx.repos.nfts.EXPECT().Save(ctx, nft).Return(nil)
	fx.repos.nfts.EXPECT().AppendEvent(ctx, mock.AnythingOfType("*entity.NFTEvent")).Return(nil)
	fx.publisher.EXPECT().PublishNFTEvent(ctx, mock.Anything).Return(errors.New("broker down"))

	updated, err := fx.service.MarkListed(ctx, designerID, nft.TokenAddress)

	require.NoError(t, err)
	assert.Equal(t, entity.ListingListed, updated.ListingState)
	assert.Equal(t, entity.SourceReported, updated.ListingSource)
}

func TestNFTService_ListByProduct_Empty(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.repos.nfts.EXPECT().ListByProduct(ctx, productID).Return([]*entity.NFT{}, nil)

	_, err := fx.service.ListByProduct(ctx, productID)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "No NFTs found for this product", appErr.Message())
}

func TestNFTService_ExportOwn(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()
	designerID := uuid.New()
	nfts := []*entity.NFTWithProduct{{NFT: ownedNFT(designerID)}}
	products := []*entity.Product{{ID: uuid.New()}}

	fx.repos.nfts.EXPECT().ListByDesigner(ctx, designerID).Return(nfts, nil)
	fx.repos.products.EXPECT().ListByDesigner(ctx, designerID).Return(products, nil)
	fx.exporter.EXPECT().Export(nfts, products).Return([]byte("xlsx"), nil)

	workbook, err := fx.service.ExportOwn(ctx, designerID)

	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), workbook)
}

func TestNFTService_SyncOwn(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()
	designerID := uuid.New()

	fx.reconciler.EXPECT().ReconcileDesigner(ctx, designerID, usecase.TriggerManual).
		Return(&usecase.ReconcileReport{Checked: 2, Corrected: 1}, nil)

	report, err := fx.service.SyncOwn(ctx, designerID)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Corrected)
}

func TestNFTService_History_UnknownToken(t *testing.T) {
	fx := createTestNFTService(t)
	ctx := context.Background()

	fx.repos.nfts.EXPECT().FindByToken(ctx, "Nope").Return(nil, repository.ErrNFTNotFound)

	_, err := fx.service.History(ctx, "Nope")

	assert.True(t, errors.Is(err, domainerrors.ErrNFTNotFound))
}
