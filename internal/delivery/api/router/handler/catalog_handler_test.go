package handler

import (
	"net/http"
	"testing"

	"atelier/internal/domain/entity"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/repository"
	mockUC "atelier/internal/mocks/usecase"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCollectionHandler_Create(t *testing.T) {
	collectionUC := mockUC.NewMockCollectionUsecase(t)
	h := NewCollectionHandler(CollectionHandlerParams{CollectionUC: collectionUC, Logger: discardLogger})
	designerID := uuid.New()
	collectionID := uuid.New()

	collectionUC.EXPECT().
		Create(mock.Anything, designerID, &usecase.CollectionInput{
			Name:              "C1",
			CollectionAddress: "ADDR1",
			ImageURL:          "u",
			JSONURL:           "j",
		}).
		Return(&entity.Collection{
			ID:                collectionID,
			Name:              "C1",
			CollectionAddress: "ADDR1",
			ImageURL:          "u",
			JSONURL:           "j",
			DesignerID:        designerID,
			DesignerUsername:  "d1",
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/collections",
		`{"name":"C1","collectionAddress":"ADDR1","imageUrl":"u","jsonUrl":"j"}`)
	authenticate(c, designerID, entity.RoleDesigner)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got collectionView
	decodeData(t, rec, &got)
	assert.Equal(t, collectionID, got.ID)
	assert.Equal(t, designerID, got.DesignerID)
	assert.Equal(t, []uuid.UUID{}, got.Products)
}

func TestCollectionHandler_Errors(t *testing.T) {
	designerID := uuid.New()

	t.Run("invalid id", func(t *testing.T) {
		h := NewCollectionHandler(CollectionHandlerParams{CollectionUC: mockUC.NewMockCollectionUsecase(t), Logger: discardLogger})

		c, rec := newJSONContext(http.MethodDelete, "/api/collections/nope", "")
		withParam(c, "id", "nope")
		authenticate(c, designerID, entity.RoleDesigner)

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not owner", func(t *testing.T) {
		collectionUC := mockUC.NewMockCollectionUsecase(t)
		h := NewCollectionHandler(CollectionHandlerParams{CollectionUC: collectionUC, Logger: discardLogger})
		collectionID := uuid.New()

		collectionUC.EXPECT().
			Delete(mock.Anything, designerID, collectionID).
			Return(errors.WithStack(domainerrors.ErrForbidden))

		c, rec := newJSONContext(http.MethodDelete, "/api/collections/"+collectionID.String(), "")
		withParam(c, "id", collectionID.String())
		authenticate(c, designerID, entity.RoleDesigner)

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)

		env := decodeError(t, rec)
		assert.Equal(t, "Access denied", env.Message)
	})

	t.Run("unexpected errors bubble up", func(t *testing.T) {
		collectionUC := mockUC.NewMockCollectionUsecase(t)
		h := NewCollectionHandler(CollectionHandlerParams{CollectionUC: collectionUC, Logger: discardLogger})

		collectionUC.EXPECT().List(mock.Anything).Return(nil, errors.New("connection reset"))

		c, _ := newJSONContext(http.MethodGet, "/api/public/collections", "")

		assert.Error(t, h.List(c))
	})
}

func TestProductHandler_Create(t *testing.T) {
	productUC := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: discardLogger})
	designerID := uuid.New()
	collectionID := uuid.New()

	productUC.EXPECT().
		Create(mock.Anything, designerID, mock.MatchedBy(func(input *usecase.CreateProductInput) bool {
			return input.Name == "Gown" &&
				assert.ObjectsAreEqual([]string{"Red"}, input.Colors) &&
				input.Price != nil && *input.Price == 0 &&
				input.CollectionID == collectionID &&
				input.ImageURLs[0] == "img1" && input.ImageURLs[1] == ""
		})).
		Return(&entity.Product{
			ID:           uuid.New(),
			Name:         "Gown",
			Colors:       []string{"Red"},
			CollectionID: collectionID,
			ImageURLs:    [entity.ProductImageSlots]string{"img1"},
			DesignerID:   designerID,
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/products",
		`{"name":"Gown","gender":"F","category":"Dresses","color":"Red","price":0,"collectionId":"`+collectionID.String()+`","imageUrl1":"img1"}`)
	authenticate(c, designerID, entity.RoleDesigner)

	require.NoError(t, h.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	decodeData(t, rec, &got)
	assert.Equal(t, []any{"Red"}, got["color"])
	assert.Equal(t, "img1", got["imageUrl1"])
	assert.InDelta(t, 0.0, got["price"], 0)
}

func TestProductHandler_Update_Patch(t *testing.T) {
	productUC := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: discardLogger})
	designerID := uuid.New()
	productID := uuid.New()

	productUC.EXPECT().
		Update(mock.Anything, designerID, productID, mock.MatchedBy(func(input *usecase.UpdateProductInput) bool {
			return !input.Name.Set &&
				input.Description.Set && input.Description.Null &&
				input.Price.Set && input.Price.Value == 12.5 &&
				input.Colors.Set && assert.ObjectsAreEqual([]string{"red", "blue"}, input.Colors.Value) &&
				input.ImageURLs[2].Set && input.ImageURLs[2].Null &&
				!input.ImageURLs[0].Set
		})).
		Return(&entity.Product{ID: productID, Name: "Gown", DesignerID: designerID}, nil)

	c, rec := newJSONContext(http.MethodPut, "/api/products/"+productID.String(),
		`{"description":null,"price":12.5,"color":["red","blue"],"imageUrl3":null}`)
	withParam(c, "id", productID.String())
	authenticate(c, designerID, entity.RoleDesigner)

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductHandler_Search(t *testing.T) {
	t.Run("passes every filter", func(t *testing.T) {
		productUC := mockUC.NewMockProductUsecase(t)
		h := NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: discardLogger})
		first := "Mint1"
		minPrice, maxPrice := 10.0, 99.5

		productUC.EXPECT().
			Search(mock.Anything, repository.ProductFilter{
				Category: "Dresses",
				Designer: "d1",
				MinPrice: &minPrice,
				MaxPrice: &maxPrice,
				Color:    "RED",
				Size:     "M",
				HasNFTs:  true,
			}).
			Return([]*entity.ProductSummary{
				{Product: &entity.Product{ID: uuid.New(), Name: "Gown"}, NFTCount: 2, FirstNFTTokenAddress: &first},
				{Product: &entity.Product{ID: uuid.New(), Name: "Skirt"}},
			}, nil)

		c, rec := newJSONContext(http.MethodGet,
			"/api/public/products?category=Dresses&designer=d1&minPrice=10&maxPrice=99.5&color=RED&size=M&hasNFTsForSale=true", "")

		require.NoError(t, h.Search(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got []map[string]any
		decodeData(t, rec, &got)
		require.Len(t, got, 2)
		assert.Equal(t, "Gown", got[0]["name"])
		assert.InDelta(t, 2, got[0]["nftCount"], 0)
		assert.Equal(t, "Mint1", got[0]["firstNftTokenAddress"])
		assert.InDelta(t, 0, got[1]["nftCount"], 0)
		assert.Nil(t, got[1]["firstNftTokenAddress"])
	})

	for _, query := range []string{"minPrice=cheap", "maxPrice=NaN", "maxPrice=Inf", "minPrice=-Infinity"} {
		t.Run("rejects bound "+query, func(t *testing.T) {
			h := NewProductHandler(ProductHandlerParams{ProductUC: mockUC.NewMockProductUsecase(t), Logger: discardLogger})

			c, rec := newJSONContext(http.MethodGet, "/api/public/products?"+query, "")

			require.NoError(t, h.Search(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			env := decodeError(t, rec)
			assert.Equal(t, "INVALID_FILTER", env.Code)
		})
	}
}

func TestProductHandler_GetWithDesigner(t *testing.T) {
	productUC := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: discardLogger})
	productID := uuid.New()
	designerID := uuid.New()

	productUC.EXPECT().
		GetWithDesigner(mock.Anything, productID).
		Return(&usecase.ProductWithDesigner{
			Product:          &entity.Product{ID: productID, Name: "Gown", DesignerID: designerID},
			DesignerUsername: "d1",
		}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/public/product/"+productID.String(), "")
	withParam(c, "id", productID.String())

	require.NoError(t, h.GetWithDesigner(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	decodeData(t, rec, &got)
	assert.Equal(t, map[string]any{"_id": designerID.String(), "username": "d1"}, got["designerId"])
}

func TestProductHandler_ShareQR(t *testing.T) {
	productUC := mockUC.NewMockProductUsecase(t)
	h := NewProductHandler(ProductHandlerParams{ProductUC: productUC, Logger: discardLogger})
	productID := uuid.New()

	productUC.EXPECT().ShareQR(mock.Anything, productID).Return([]byte("\x89PNG"), nil)

	c, rec := newJSONContext(http.MethodGet, "/api/public/products/"+productID.String()+"/qr", "")
	withParam(c, "id", productID.String())

	require.NoError(t, h.ShareQR(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestSizeHandler(t *testing.T) {
	designerID := uuid.New()

	t.Run("create", func(t *testing.T) {
		sizeUC := mockUC.NewMockSizeUsecase(t)
		h := NewSizeHandler(SizeHandlerParams{SizeUC: sizeUC, Logger: discardLogger})
		productID := uuid.New()

		sizeUC.EXPECT().
			Create(mock.Anything, designerID, &usecase.CreateSizeInput{ProductID: productID, Label: "M", Quantity: 3}).
			Return(&entity.Size{ID: uuid.New(), ProductID: productID, Label: "M", Quantity: 3}, nil)

		c, rec := newJSONContext(http.MethodPost, "/api/sizes",
			`{"productId":"`+productID.String()+`","size":"M","quantity":3}`)
		authenticate(c, designerID, entity.RoleDesigner)

		require.NoError(t, h.Create(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var got sizeView
		decodeData(t, rec, &got)
		assert.Equal(t, "M", got.Size)
		assert.Equal(t, 3, got.Quantity)
	})

	t.Run("update rejects a non-positive quantity", func(t *testing.T) {
		sizeUC := mockUC.NewMockSizeUsecase(t)
		h := NewSizeHandler(SizeHandlerParams{SizeUC: sizeUC, Logger: discardLogger})
		sizeID := uuid.New()

		sizeUC.EXPECT().
			UpdateQuantity(mock.Anything, designerID, sizeID, 0).
			Return(nil, errors.WithStack(domainerrors.ErrInvalidQuantity))

		c, rec := newJSONContext(http.MethodPut, "/api/sizes/"+sizeID.String(), `{"quantity":0}`)
		withParam(c, "id", sizeID.String())
		authenticate(c, designerID, entity.RoleDesigner)

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		env := decodeError(t, rec)
		assert.Equal(t, "Quantity is required and must be greater than 0", env.Message)
	})

	t.Run("delete", func(t *testing.T) {
		sizeUC := mockUC.NewMockSizeUsecase(t)
		h := NewSizeHandler(SizeHandlerParams{SizeUC: sizeUC, Logger: discardLogger})
		sizeID := uuid.New()

		sizeUC.EXPECT().Delete(mock.Anything, designerID, sizeID).Return(nil)

		c, rec := newJSONContext(http.MethodDelete, "/api/sizes/"+sizeID.String(), "")
		withParam(c, "id", sizeID.String())
		authenticate(c, designerID, entity.RoleDesigner)

		require.NoError(t, h.Delete(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got messageView
		decodeData(t, rec, &got)
		assert.Equal(t, "Size deleted successfully", got.Message)
	})
}

func TestDesignerHandler_GetDesignerProfile(t *testing.T) {
	designerUC := mockUC.NewMockDesignerUsecase(t)
	h := NewDesignerHandler(DesignerHandlerParams{DesignerUC: designerUC, Logger: discardLogger})
	designerID := uuid.New()
	collectionID := uuid.New()

	designerUC.EXPECT().
		GetDesignerProfile(mock.Anything, designerID).
		Return(&usecase.DesignerProfile{
			Designer:    &entity.User{ID: designerID, Username: "d1", SolanaWallets: []string{"W1"}, Role: entity.RoleDesigner},
			Collections: []*entity.Collection{{ID: collectionID, Name: "C1", ImageURL: "u"}},
		}, nil)

	c, rec := newJSONContext(http.MethodGet, "/api/public/designers/"+designerID.String(), "")
	withParam(c, "id", designerID.String())

	require.NoError(t, h.GetDesignerProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got designerProfileView
	decodeData(t, rec, &got)
	assert.Equal(t, "d1", got.Username)
	assert.Equal(t, []designerCollectionView{{ID: collectionID, Name: "C1", ImageURL: "u"}}, got.Collections)
}
