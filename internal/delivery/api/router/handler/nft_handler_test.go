package handler

import (
	"net/http"
	"testing"
	"time"

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

func newNFTHandler(t *testing.T) (*NFTHandler, *mockUC.MockNFTUsecase) {
	nftUC := mockUC.NewMockNFTUsecase(t)

	return NewNFTHandler(NFTHandlerParams{NFTUC: nftUC, Logger: discardLogger}), nftUC
}

func TestNFTHandler_Save(t *testing.T) {
	h, nftUC := newNFTHandler(t)
	designerID := uuid.New()
	designer := &entity.User{ID: designerID, Username: "d1"}

	nftUC.EXPECT().
		Save(mock.Anything, designerID, &usecase.SaveNFTInput{TokenAddress: "Mint1", WalletAddress: "W1"}).
		Return(entity.NewNFT("Mint1", "W1", designer, time.Now()), nil)

	c, rec := newJSONContext(http.MethodPost, "/api/saveNFT", `{"tokenAddress":"Mint1","walletAddress":"W1"}`)
	authenticate(c, designerID, entity.RoleDesigner)

	require.NoError(t, h.Save(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	decodeData(t, rec, &got)
	assert.Equal(t, true, got["success"])

	nft, ok := got["nft"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Mint1", nft["_id"])
	assert.Equal(t, "no", nft["active"])
	assert.Equal(t, "no", nft["listed"])
	assert.Nil(t, nft["productId"])
	assert.NotContains(t, nft, "status")
	assert.Equal(t, "unlisted", nft["listingState"])
}

func TestNFTHandler_Update(t *testing.T) {
	designerID := uuid.New()
	productID := uuid.New()

	t.Run("product and active are optional", func(t *testing.T) {
		h, nftUC := newNFTHandler(t)

		nftUC.EXPECT().
			Update(mock.Anything, designerID, mock.MatchedBy(func(input *usecase.UpdateNFTInput) bool {
				return input.TokenAddress == "Mint1" &&
					input.ProductID.Set && input.ProductID.Value == productID &&
					!input.Active.Set
			})).
			Return(&entity.NFT{TokenAddress: "Mint1", DesignerID: designerID, ProductID: &productID, ListingState: entity.ListingUnlisted}, nil)

		c, rec := newJSONContext(http.MethodPut, "/api/updateNFT",
			`{"tokenAddress":"Mint1","productId":"`+productID.String()+`"}`)
		authenticate(c, designerID, entity.RoleDesigner)

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got nftResultView
		decodeData(t, rec, &got)
		assert.True(t, got.Success)
		require.NotNil(t, got.NFT.ProductID)
		assert.Equal(t, productID, *got.NFT.ProductID)
	})

	t.Run("not owned", func(t *testing.T) {
		h, nftUC := newNFTHandler(t)

		nftUC.EXPECT().
			Update(mock.Anything, designerID, mock.Anything).
			Return(nil, errors.WithStack(domainerrors.ErrNFTNotFoundOrUnauthorized))

		c, rec := newJSONContext(http.MethodPut, "/api/updateNFT", `{"tokenAddress":"Mint9","active":"yes"}`)
		authenticate(c, designerID, entity.RoleDesigner)

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		env := decodeError(t, rec)
		assert.Equal(t, "NFT not found or unauthorized", env.Message)
	})

	t.Run("malformed product id", func(t *testing.T) {
		h, _ := newNFTHandler(t)

		c, rec := newJSONContext(http.MethodPut, "/api/updateNFT", `{"tokenAddress":"Mint1","productId":"nope"}`)
		authenticate(c, designerID, entity.RoleDesigner)

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNFTHandler_UpdateStatus(t *testing.T) {
	h, nftUC := newNFTHandler(t)
	designerID := uuid.New()

	nftUC.EXPECT().
		UpdateStatus(mock.Anything, designerID, "Mint1", "yes").
		Return(&entity.NFT{TokenAddress: "Mint1", DesignerID: designerID, Active: true, ListingState: entity.ListingListed}, nil)

	c, rec := newJSONContext(http.MethodPut, "/api/updateNFTStatus", `{"nftId":"Mint1","active":"yes"}`)
	authenticate(c, designerID, entity.RoleDesigner)

	require.NoError(t, h.UpdateStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got nftResultView
	decodeData(t, rec, &got)
	assert.Equal(t, "yes", got.NFT.Active)
	assert.Equal(t, "yes", got.NFT.Listed)
}

func TestNFTHandler_PublicReads(t *testing.T) {
	productID := uuid.New()

	t.Run("count active", func(t *testing.T) {
		h, nftUC := newNFTHandler(t)
		nftUC.EXPECT().CountActive(mock.Anything, productID).Return(int64(3), nil)

		c, rec := newJSONContext(http.MethodGet, "/api/nfts/count/"+productID.String(), "")
		withParam(c, "id", productID.String())

		require.NoError(t, h.CountActive(c))

		var got map[string]int64
		decodeData(t, rec, &got)
		assert.Equal(t, int64(3), got["count"])
	})

	t.Run("by product with none", func(t *testing.T) {
		h, nftUC := newNFTHandler(t)
		nftUC.EXPECT().
			ListByProduct(mock.Anything, productID).
			Return(nil, errors.WithStack(domainerrors.ErrNoNFTsForProduct))

		c, rec := newJSONContext(http.MethodGet, "/api/public/products/"+productID.String()+"/nfts", "")
		withParam(c, "id", productID.String())

		require.NoError(t, h.ListByProduct(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)

		env := decodeError(t, rec)
		assert.Equal(t, "No NFTs found for this product", env.Message)
	})

	t.Run("grouped by product", func(t *testing.T) {
		h, nftUC := newNFTHandler(t)
		nftUC.EXPECT().
			GroupedByProduct(mock.Anything).
			Return([]*entity.ProductNFTGroup{{
				ProductID:   productID,
				ProductName: "Gown",
				NFTs:        []entity.ProductNFTRef{{TokenAddress: "Mint1", WalletAddress: "W1"}},
			}}, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/nfts/grouped-by-product", "")

		require.NoError(t, h.GroupedByProduct(c))

		var got []productNFTGroupView
		decodeData(t, rec, &got)
		require.Len(t, got, 1)
		assert.Equal(t, "Gown", got[0].ProductName)
		assert.Equal(t, []productNFTRefView{{TokenAddress: "Mint1", WalletAddress: "W1"}}, got[0].NFTs)
	})

	t.Run("all with product names", func(t *testing.T) {
		h, nftUC := newNFTHandler(t)
		name := "Gown"
		nftUC.EXPECT().
			ListAll(mock.Anything).
			Return([]*entity.NFTWithProduct{
				{NFT: &entity.NFT{TokenAddress: "Mint1", ProductID: &productID}, ProductName: &name},
				{NFT: &entity.NFT{TokenAddress: "Mint2", ListingState: entity.ListingSold}},
			}, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/public/nfts", "")

		require.NoError(t, h.ListAll(c))

		var got []map[string]any
		decodeData(t, rec, &got)
		require.Len(t, got, 2)
		assert.Equal(t, "Gown", got[0]["productName"])
		assert.Nil(t, got[1]["productName"])
		assert.Equal(t, "sold", got[1]["status"])
	})
}

func TestNFTHandler_ExportOwn(t *testing.T) {
	h, nftUC := newNFTHandler(t)
	designerID := uuid.New()

	nftUC.EXPECT().ExportOwn(mock.Anything, designerID).Return([]byte("PK\x03\x04"), nil)

	c, rec := newJSONContext(http.MethodGet, "/api/nfts/export", "")
	authenticate(c, designerID, entity.RoleDesigner)

	require.NoError(t, h.ExportOwn(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "inventory.xlsx")
}

func TestNFTHandler_SyncOwn(t *testing.T) {
	h, nftUC := newNFTHandler(t)
	designerID := uuid.New()

	nftUC.EXPECT().
		SyncOwn(mock.Anything, designerID).
		Return(&usecase.ReconcileReport{Checked: 4, Corrected: 1}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/nfts/sync", "")
	authenticate(c, designerID, entity.RoleDesigner)

	require.NoError(t, h.SyncOwn(c))

	var got usecase.ReconcileReport
	decodeData(t, rec, &got)
	assert.Equal(t, usecase.ReconcileReport{Checked: 4, Corrected: 1}, got)
}

func TestNFTHandler_History(t *testing.T) {
	h, nftUC := newNFTHandler(t)

	nftUC.EXPECT().
		History(mock.Anything, "Mint1").
		Return([]*entity.NFTEvent{{
			ID:           uuid.New(),
			TokenAddress: "Mint1",
			Kind:         entity.TransitionActivated,
			FromState:    entity.ListingUnlisted,
			ToState:      entity.ListingUnlisted,
			Active:       true,
			Source:       entity.SourceDesigner,
		}}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/public/nft/Mint1/history", "")
	withParam(c, "tokenAddress", "Mint1")

	require.NoError(t, h.History(c))

	var got []nftEventView
	decodeData(t, rec, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "activated", got[0].Kind)
	assert.Equal(t, "yes", got[0].Active)
}
