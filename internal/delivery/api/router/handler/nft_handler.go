package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/delivery/api/middleware"
	"atelier/internal/delivery/api/response"
	"atelier/internal/usecase"
	"atelier/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// NFTHandlerParams holds dependencies for NFTHandler, injected by Fx.
type NFTHandlerParams struct {
	fx.In

	NFTUC  usecase.NFTUsecase
	Logger *slog.Logger
}

// NFTHandler serves the NFT listing projection.
type NFTHandler struct {
	nftUC  usecase.NFTUsecase
	logger *slog.Logger
}

// NewNFTHandler is the constructor for NFTHandler
func NewNFTHandler(params NFTHandlerParams) *NFTHandler {
	return &NFTHandler{
		nftUC:  params.NFTUC,
		logger: params.Logger,
	}
}

// SaveNFTRequest represents the request body for recording a minted token
type SaveNFTRequest struct {
	TokenAddress  string `json:"tokenAddress" validate:"max=64"`
	WalletAddress string `json:"walletAddress" validate:"max=64"`
}

// UpdateNFTRequest is a patch of the product assignment and the active flag.
type UpdateNFTRequest struct {
	TokenAddress string                   `json:"tokenAddress"`
	ProductID    util.Optional[uuid.UUID] `json:"productId"`
	Active       util.Optional[string]    `json:"active"`
}

// TokenRequest carries a single token address.
type TokenRequest struct {
	TokenAddress string `json:"tokenAddress"`
}

// UpdateNFTStatusRequest represents the request body for toggling the active flag
type UpdateNFTStatusRequest struct {
	NFTID  string `json:"nftId"`
	Active string `json:"active"`
}

// Save records a freshly minted NFT for the caller
func (h *NFTHandler) Save(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req SaveNFTRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	nft, err := h.nftUC.Save(c.Request().Context(), userID, &usecase.SaveNFTInput{
		TokenAddress:  req.TokenAddress,
		WalletAddress: req.WalletAddress,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nftResultView{Success: true, NFT: toNFTView(nft)})
}

// Update assigns a product and/or changes the active flag of an owned NFT
func (h *NFTHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req UpdateNFTRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	nft, err := h.nftUC.Update(c.Request().Context(), userID, &usecase.UpdateNFTInput{
		TokenAddress: req.TokenAddress,
		ProductID:    req.ProductID,
		Active:       req.Active,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nftResultView{Success: true, NFT: toNFTView(nft)})
}

// MarkListed records that the caller listed an owned NFT on the marketplace
func (h *NFTHandler) MarkListed(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	nft, err := h.nftUC.MarkListed(c.Request().Context(), userID, req.TokenAddress)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nftResultView{Success: true, NFT: toNFTView(nft)})
}

// UpdateStatus changes the active flag of an owned NFT
func (h *NFTHandler) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req UpdateNFTStatusRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	nft, err := h.nftUC.UpdateStatus(c.Request().Context(), userID, req.NFTID, req.Active)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nftResultView{Success: true, NFT: toNFTView(nft)})
}

// ListOwn returns the caller's NFTs with their product names
func (h *NFTHandler) ListOwn(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	nfts, err := h.nftUC.ListOwn(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNFTWithProductViews(nfts))
}

// ExportOwn downloads the caller's inventory as an xlsx workbook
func (h *NFTHandler) ExportOwn(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	workbook, err := h.nftUC.ExportOwn(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Blob(c, xlsxContentType, "inventory.xlsx", workbook)
}

// SyncOwn reconciles the caller's NFTs against the chain now
func (h *NFTHandler) SyncOwn(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	report, err := h.nftUC.SyncOwn(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// Get returns an NFT by token address
func (h *NFTHandler) Get(c echo.Context) error {
	nft, err := h.nftUC.Get(c.Request().Context(), c.Param("tokenAddress"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNFTView(nft))
}

// History returns the transition log of an NFT
func (h *NFTHandler) History(c echo.Context) error {
	events, err := h.nftUC.History(c.Request().Context(), c.Param("tokenAddress"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNFTEventViews(events))
}

// ListAll returns every NFT with its product name
func (h *NFTHandler) ListAll(c echo.Context) error {
	nfts, err := h.nftUC.ListAll(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNFTWithProductViews(nfts))
}

// ListByProduct returns the NFTs assigned to a product
func (h *NFTHandler) ListByProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "product")
	}

	nfts, err := h.nftUC.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toNFTViews(nfts))
}

// CountActive returns the number of active NFTs of a product
func (h *NFTHandler) CountActive(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "product")
	}

	count, err := h.nftUC.CountActive(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count})
}

// GroupedByProduct returns the active NFTs grouped by product
func (h *NFTHandler) GroupedByProduct(c echo.Context) error {
	groups, err := h.nftUC.GroupedByProduct(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	views := make([]productNFTGroupView, 0, len(groups))
	for _, group := range groups {
		refs := make([]productNFTRefView, 0, len(group.NFTs))
		for _, ref := range group.NFTs {
			refs = append(refs, productNFTRefView{TokenAddress: ref.TokenAddress, WalletAddress: ref.WalletAddress})
		}
		views = append(views, productNFTGroupView{
			ProductID:   group.ProductID,
			ProductName: group.ProductName,
			NFTs:        refs,
		})
	}

	return response.Success(c, http.StatusOK, views)
}
