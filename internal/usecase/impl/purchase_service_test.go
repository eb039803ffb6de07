package impl

import (
	"context"
	"testing"

	"atelier/config"
	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	"atelier/internal/domain/service"
	mockSvc "atelier/internal/mocks/service"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type purchaseServiceFixtures struct {
	service   usecase.PurchaseUsecase
	repos     *repoMocks
	publisher *mockSvc.MockEventPublisher
	email     *mockSvc.MockEmailSender
}

func createTestPurchaseService(t *testing.T) purchaseServiceFixtures {
	repos := newRepoMocks(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	email := mockSvc.NewMockEmailSender(t)

	return purchaseServiceFixtures{
		service: NewPurchaseService(PurchaseServiceParams{
			TxManager:   repos.txManager,
			Publisher:   publisher,
			EmailSender: email,
			Config:      &config.Config{Email: &config.EmailConfig{BuyerTemplateID: 2, SellerTemplateID: 3}},
			Logger:      discardLogger(),
		}),
		repos:     repos,
		publisher: publisher,
		email:     email,
	}
}

func TestPurchaseService_Purchase(t *testing.T) {
	fx := createTestPurchaseService(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Name: "Gown", Price: 1.5}
	nft := ownedNFT(uuid.New())
	nft.Active = true
	nft.ProductID = &product.ID

	fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, nft.TokenAddress).Return(nft, nil)
	fx.repos.nfts.EXPECT().Save(ctx, nft).Return(nil)
	fx.repos.nfts.EXPECT().AppendEvent(ctx, mock.AnythingOfType("*entity.NFTEvent")).Return(nil)
	fx.repos.products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	fx.publisher.EXPECT().PublishNFTEvent(ctx, mock.MatchedBy(func(e *service.NFTChangedEvent) bool {
		return e.ToState == "sold"
	})).Return(nil)
	fx.email.EXPECT().SendTemplate(ctx, mock.MatchedBy(func(e service.TemplateEmail) bool {
		return e.To == "buyer@example.com" && e.TemplateID == 2 &&
			e.Params["product_name"] == "Gown" && e.Params["order_id"] == nft.TokenAddress
	})).Return(nil)
	fx.email.EXPECT().SendTemplate(ctx, mock.MatchedBy(func(e service.TemplateEmail) bool {
		return e.To == "seller@example.com" && e.TemplateID == 3 &&
			e.Params["sale_price"] == "1.5" && e.Params["buyer_address"] == "1 Main St"
	})).Return(errors.New("provider down"))

	err := fx.service.Purchase(ctx, uuid.New(), &usecase.PurchaseInput{
		BuyerEmail:          "buyer@example.com",
		SellerEmail:         "seller@example.com",
		TokenAddress:        nft.TokenAddress,
		ShippingAddressLine: "1 Main St",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.ListingSold, nft.ListingState)
	assert.False(t, nft.Active)
}

func TestPurchaseService_Purchase_AlreadySoldStillEmails(t *testing.T) {
	fx := createTestPurchaseService(t)
	ctx := context.Background()
	nft := ownedNFT(uuid.New())
	nft.ListingState = entity.ListingSold
	nft.ListingSource = entity.SourceReported

	fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, nft.TokenAddress).Return(nft, nil)
	fx.email.EXPECT().SendTemplate(ctx, mock.MatchedBy(func(e service.TemplateEmail) bool {
		return e.To == "buyer@example.com" && e.Params["product_name"] == nft.TokenAddress
	})).Return(nil)

	err := fx.service.Purchase(ctx, uuid.New(), &usecase.PurchaseInput{
		BuyerEmail:   "buyer@example.com",
		TokenAddress: nft.TokenAddress,
	})

	require.NoError(t, err)
}

func TestPurchaseService_Purchase_StructuredAddress(t *testing.T) {
	fx := createTestPurchaseService(t)
	ctx := context.Background()
	nft := ownedNFT(uuid.New())
	nft.ListingState = entity.ListingSold
	nft.ListingSource = entity.SourceReported

	fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, nft.TokenAddress).Return(nft, nil)
	fx.email.EXPECT().SendTemplate(ctx, mock.MatchedBy(func(e service.TemplateEmail) bool {
		addr, ok := e.Params["buyer_address"].(map[string]string)

		return ok && e.To == "seller@example.com" &&
			addr["street"] == "1 Main" && addr["city"] == "Lyon" && len(addr) == 2
	})).Return(nil)

	err := fx.service.Purchase(ctx, uuid.New(), &usecase.PurchaseInput{
		SellerEmail:     "seller@example.com",
		TokenAddress:    nft.TokenAddress,
		ShippingAddress: &entity.ShippingAddress{Street: "1 Main", City: "Lyon"},
	})

	require.NoError(t, err)
}

func TestPurchaseService_Purchase_Errors(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		fx := createTestPurchaseService(t)

		err := fx.service.Purchase(context.Background(), uuid.New(), &usecase.PurchaseInput{})

		assert.True(t, errors.Is(err, domainerrors.ErrRequiredFieldsMissing))
	})

	t.Run("unknown token sends nothing", func(t *testing.T) {
		fx := createTestPurchaseService(t)
		ctx := context.Background()

		fx.repos.nfts.EXPECT().FindByTokenForUpdate(ctx, "Nope").Return(nil, repository.ErrNFTNotFound)

		err := fx.service.Purchase(ctx, uuid.New(), &usecase.PurchaseInput{BuyerEmail: "b@example.com", TokenAddress: "Nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrNFTNotFound))
	})
}
