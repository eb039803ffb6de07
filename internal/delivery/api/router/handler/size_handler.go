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

// SizeHandlerParams holds dependencies for SizeHandler, injected by Fx.
type SizeHandlerParams struct {
	fx.In

	SizeUC usecase.SizeUsecase
	Logger *slog.Logger
}

// SizeHandler serves the per-size stock of products.
type SizeHandler struct {
	sizeUC usecase.SizeUsecase
	logger *slog.Logger
}

// NewSizeHandler is the constructor for SizeHandler
func NewSizeHandler(params SizeHandlerParams) *SizeHandler {
	return &SizeHandler{
		sizeUC: params.SizeUC,
		logger: params.Logger,
	}
}

// CreateSizeRequest represents the request body for adding a size to a product
type CreateSizeRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size" validate:"max=32"`
	Quantity  int    `json:"quantity"`
}

// UpdateSizeRequest represents the request body for changing a size's stock
type UpdateSizeRequest struct {
	Quantity int `json:"quantity"`
}

// ListByProduct returns the sizes of a product
func (h *SizeHandler) ListByProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "product")
	}

	sizes, err := h.sizeUC.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]sizeView, 0, len(sizes))
	for _, size := range sizes {
		views = append(views, toSizeView(size))
	}

	return response.Success(c, http.StatusOK, views)
}

// Create handles size creation
func (h *SizeHandler) Create(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req CreateSizeRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	productID := uuid.Nil
	if req.ProductID != "" {
		parsed, err := uuid.Parse(req.ProductID)
		if err != nil {
			return invalidIDError(c, "product")
		}
		productID = parsed
	}

	size, err := h.sizeUC.Create(c.Request().Context(), userID, &usecase.CreateSizeInput{
		ProductID: productID,
		Label:     req.Size,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSizeView(size))
}

// Update changes the stock of a size
func (h *SizeHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	sizeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "size")
	}

	var req UpdateSizeRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	size, err := h.sizeUC.UpdateQuantity(c.Request().Context(), userID, sizeID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSizeView(size))
}

// Delete removes a size
func (h *SizeHandler) Delete(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	sizeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "size")
	}

	if err := h.sizeUC.Delete(c.Request().Context(), userID, sizeID); err != nil {
		return response.HandleAppError(c, err)
	}

	return deleted(c, "Size deleted successfully")
}
