package handler

import (
	"net/http"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	mockUC "atelier/internal/mocks/usecase"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPurchaseHandler_Purchase(t *testing.T) {
	buyerID := uuid.New()

	t.Run("success", func(t *testing.T) {
		purchaseUC := mockUC.NewMockPurchaseUsecase(t)
		h := NewPurchaseHandler(PurchaseHandlerParams{PurchaseUC: purchaseUC, Logger: discardLogger})

		purchaseUC.EXPECT().
			Purchase(mock.Anything, buyerID, &usecase.PurchaseInput{
				BuyerEmail:          "b@x.com",
				SellerEmail:         "s@x.com",
				TokenAddress:        "Mint1",
				ShippingAddressLine: "1 Main St",
			}).
			Return(nil)

		c, rec := newJSONContext(http.MethodPost, "/api/purchase",
			`{"buyerEmail":"b@x.com","sellerEmail":"s@x.com","nftId":"Mint1","shippingAddress":"1 Main St"}`)
		authenticate(c, buyerID, entity.RoleRegular)

		require.NoError(t, h.Purchase(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got messageView
		decodeData(t, rec, &got)
		assert.Equal(t, "Purchase processed and emails sent.", got.Message)
	})

	t.Run("address object", func(t *testing.T) {
		purchaseUC := mockUC.NewMockPurchaseUsecase(t)
		h := NewPurchaseHandler(PurchaseHandlerParams{PurchaseUC: purchaseUC, Logger: discardLogger})

		purchaseUC.EXPECT().
			Purchase(mock.Anything, buyerID, &usecase.PurchaseInput{
				SellerEmail:     "s@x.com",
				TokenAddress:    "Mint1",
				ShippingAddress: &entity.ShippingAddress{Street: "1 Main", City: "X"},
			}).
			Return(nil)

		c, rec := newJSONContext(http.MethodPost, "/api/purchase",
			`{"sellerEmail":"s@x.com","nftId":"Mint1","shippingAddress":{"street":"1 Main","city":"X"}}`)
		authenticate(c, buyerID, entity.RoleRegular)

		require.NoError(t, h.Purchase(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("address of another shape", func(t *testing.T) {
		h := NewPurchaseHandler(PurchaseHandlerParams{PurchaseUC: mockUC.NewMockPurchaseUsecase(t), Logger: discardLogger})

		c, rec := newJSONContext(http.MethodPost, "/api/purchase", `{"nftId":"Mint1","shippingAddress":[1,2]}`)
		authenticate(c, buyerID, entity.RoleRegular)

		require.NoError(t, h.Purchase(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown nft", func(t *testing.T) {
		purchaseUC := mockUC.NewMockPurchaseUsecase(t)
		h := NewPurchaseHandler(PurchaseHandlerParams{PurchaseUC: purchaseUC, Logger: discardLogger})

		purchaseUC.EXPECT().
			Purchase(mock.Anything, buyerID, mock.Anything).
			Return(errors.WithStack(domainerrors.ErrNFTNotFound))

		c, rec := newJSONContext(http.MethodPost, "/api/purchase", `{"nftId":"Nope"}`)
		authenticate(c, buyerID, entity.RoleRegular)

		require.NoError(t, h.Purchase(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed email", func(t *testing.T) {
		h := NewPurchaseHandler(PurchaseHandlerParams{PurchaseUC: mockUC.NewMockPurchaseUsecase(t), Logger: discardLogger})

		c, rec := newJSONContext(http.MethodPost, "/api/purchase", `{"buyerEmail":"nope","nftId":"Mint1"}`)
		authenticate(c, buyerID, entity.RoleRegular)

		require.NoError(t, h.Purchase(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		env := decodeError(t, rec)
		assert.Equal(t, "email", env.Details["buyerEmail"])
	})
}
