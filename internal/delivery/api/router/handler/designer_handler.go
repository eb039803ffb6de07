package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/delivery/api/response"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DesignerHandlerParams holds dependencies for DesignerHandler, injected by Fx.
type DesignerHandlerParams struct {
	fx.In

	DesignerUC usecase.DesignerUsecase
	Logger     *slog.Logger
}

// DesignerHandler serves the public designer directory.
type DesignerHandler struct {
	designerUC usecase.DesignerUsecase
	logger     *slog.Logger
}

// NewDesignerHandler is the constructor for DesignerHandler
func NewDesignerHandler(params DesignerHandlerParams) *DesignerHandler {
	return &DesignerHandler{
		designerUC: params.DesignerUC,
		logger:     params.Logger,
	}
}

// ListDesigners returns every designer account
func (h *DesignerHandler) ListDesigners(c echo.Context) error {
	designers, err := h.designerUC.ListDesigners(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDesignerSummaryViews(designers))
}

// GetDesigner returns a designer's username by id
func (h *DesignerHandler) GetDesigner(c echo.Context) error {
	designerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "designer")
	}

	designer, err := h.designerUC.GetDesigner(c.Request().Context(), designerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, designerRefView{ID: designer.ID, Username: designer.Username})
}

// GetDesignerByWallet returns the designer owning a wallet address
func (h *DesignerHandler) GetDesignerByWallet(c echo.Context) error {
	designer, err := h.designerUC.GetDesignerByWallet(c.Request().Context(), c.Param("walletAddress"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, designerRefView{ID: designer.ID, Username: designer.Username})
}

// GetDesignerByUsername returns a designer account by username
func (h *DesignerHandler) GetDesignerByUsername(c echo.Context) error {
	designer, err := h.designerUC.GetDesignerByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserView(designer))
}

// GetDesignerProfile returns a designer with their collections
func (h *DesignerHandler) GetDesignerProfile(c echo.Context) error {
	designerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return invalidIDError(c, "designer")
	}

	profile, err := h.designerUC.GetDesignerProfile(c.Request().Context(), designerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	collections := make([]designerCollectionView, 0, len(profile.Collections))
	for _, collection := range profile.Collections {
		collections = append(collections, designerCollectionView{
			ID:       collection.ID,
			Name:     collection.Name,
			ImageURL: collection.ImageURL,
		})
	}

	return response.Success(c, http.StatusOK, designerProfileView{
		ID:           profile.Designer.ID,
		Username:     profile.Designer.Username,
		SolanaWallet: orEmpty(profile.Designer.SolanaWallets),
		Collections:  collections,
	})
}
