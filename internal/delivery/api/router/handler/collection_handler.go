package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/delivery/api/middleware"
	"atelier/internal/delivery/api/response"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CollectionHandlerParams holds dependencies for CollectionHandler, injected by Fx.
type CollectionHandlerParams struct {
	fx.In

	CollectionUC usecase.CollectionUsecase
	Logger       *slog.Logger
}

// CollectionHandler serves designer collections.
type CollectionHandler struct {
	collectionUC usecase.CollectionUsecase
	logger       *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler
func NewCollectionHandler(params CollectionHandlerParams) *CollectionHandler {
	return &CollectionHandler{
		collectionUC: params.CollectionUC,
		logger:       params.Logger,
	}
}

// CollectionRequest represents the request body for creating or replacing a collection
type CollectionRequest struct {
	Name              string `json:"name" validate:"max=256"`
	CollectionAddress string `json:"collectionAddress" validate:"max=64"`
	ImageURL          string `json:"imageUrl" validate:"max=2048"`
	JSONURL           string `json:"jsonUrl" validate:"max=2048"`
}

func (r *CollectionRequest) toInput() *usecase.CollectionInput {
	return &usecase.CollectionInput{
		Name:              r.Name,
		CollectionAddress: r.CollectionAddress,
		ImageURL:          r.ImageURL,
		JSONURL:           r.JSONURL,
	}
}

// Create handles collection creation
func (h *CollectionHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CollectionRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	collection, err := h.collectionUC.Create(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCollectionView(collection))
}

// Update replaces every editable field of an owned collection
func (h *CollectionHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "collection")
	}

	var req CollectionRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	collection, err := h.collectionUC.Update(c.Request().Context(), userID, collectionID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCollectionView(collection))
}

// Delete removes an owned collection
func (h *CollectionHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "collection")
	}

	if err := h.collectionUC.Delete(c.Request().Context(), userID, collectionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return deleted(c, "Collection deleted successfully")
}

// ListOwn returns the caller's collections
func (h *CollectionHandler) ListOwn(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	collections, err := h.collectionUC.ListOwn(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCollectionViews(collections))
}

// ListOwnProducts returns the products of a collection the caller owns
func (h *CollectionHandler) ListOwnProducts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "collection")
	}

	products, err := h.collectionUC.ListOwnProducts(c.Request().Context(), userID, collectionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products))
}

// List returns every collection
func (h *CollectionHandler) List(c echo.Context) error {
	collections, err := h.collectionUC.List(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCollectionViews(collections))
}

// Get returns a collection by id
func (h *CollectionHandler) Get(c echo.Context) error {
	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "collection")
	}

	collection, err := h.collectionUC.Get(c.Request().Context(), collectionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCollectionView(collection))
}

// GetByAddress returns a collection by its on-chain address
func (h *CollectionHandler) GetByAddress(c echo.Context) error {
	collection, err := h.collectionUC.GetByAddress(c.Request().Context(), c.Param("collectionAddress"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCollectionView(collection))
}

// ListProducts returns the products of any collection
func (h *CollectionHandler) ListProducts(c echo.Context) error {
	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "collection")
	}

	products, err := h.collectionUC.ListProducts(c.Request().Context(), collectionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProductViews(products))
}

// ListByDesigner returns the collection summaries of a designer
func (h *CollectionHandler) ListByDesigner(c echo.Context) error {
	designerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "designer")
	}

	collections, err := h.collectionUC.ListByDesigner(c.Request().Context(), designerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]collectionSummaryView, 0, len(collections))
	for _, collection := range collections {
		views = append(views, collectionSummaryView{
			ID:                collection.ID,
			Name:              collection.Name,
			CollectionAddress: collection.CollectionAddress,
			ImageURL:          collection.ImageURL,
			JSONURL:           collection.JSONURL,
		})
	}

	return response.Success(c, http.StatusOK, views)
}
