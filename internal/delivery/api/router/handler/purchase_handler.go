package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/delivery/api/middleware"
	"atelier/internal/delivery/api/response"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PurchaseHandlerParams holds dependencies for PurchaseHandler, injected by Fx.
type PurchaseHandlerParams struct {
	fx.In

	PurchaseUC usecase.PurchaseUsecase
	Logger     *slog.Logger
}

// PurchaseHandler records completed purchases.
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
	logger     *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler
func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUC: params.PurchaseUC,
		logger:     params.Logger,
	}
}

// PurchaseRequest represents the request body of a completed purchase
type PurchaseRequest struct {
	BuyerEmail      string          `json:"buyerEmail" validate:"omitempty,email"`
	SellerEmail     string          `json:"sellerEmail" validate:"omitempty,email"`
	NFTID           string          `json:"nftId"`
	ShippingAddress purchaseAddress `json:"shippingAddress"`
}

// Purchase marks the NFT sold and notifies buyer and seller
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req PurchaseRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	err := h.purchaseUC.Purchase(c.Request().Context(), userID, &usecase.PurchaseInput{
		BuyerEmail:          req.BuyerEmail,
		SellerEmail:         req.SellerEmail,
		TokenAddress:        req.NFTID,
		ShippingAddressLine: req.ShippingAddress.Line,
		ShippingAddress:     req.ShippingAddress.Structured.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, messageView{Message: "Purchase processed and emails sent."})
}
