package handler

import (
	"log/slog"
	"net/http"

	"atelier/internal/delivery/api/middleware"
	"atelier/internal/delivery/api/response"
	"atelier/internal/domain/entity"
	"atelier/internal/usecase"
	"atelier/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler serves registration, login and the caller's own profile.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Username        string                  `json:"username" validate:"max=64"`
	Password        string                  `json:"password" validate:"max=128"`
	Email           string                  `json:"email" validate:"omitempty,email"`
	Role            string                  `json:"role"`
	SolanaWallet    string                  `json:"solanaWallet" validate:"max=64"`
	ShippingAddress *shippingAddressRequest `json:"shippingAddress"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest is a patch; absent keys are left untouched.
type UpdateProfileRequest struct {
	Email           util.Optional[string]                 `json:"email"`
	SolanaWallet    util.Optional[[]string]               `json:"solanaWallet"`
	ShippingAddress util.Optional[shippingAddressRequest] `json:"shippingAddress"`
}

// WalletRequest carries a single wallet address.
type WalletRequest struct {
	WalletAddress string `json:"walletAddress" query:"walletAddress"`
}

// Register handles account creation
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	if err := c.Validate(&req); err != nil {
		return validationError(c, err)
	}

	user, err := h.accountUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:        req.Username,
		Password:        req.Password,
		Email:           req.Email,
		Role:            req.Role,
		SolanaWallet:    req.SolanaWallet,
		ShippingAddress: req.ShippingAddress.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserView(user))
}

// Login handles credential login and returns a bearer token
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	output, err := h.accountUC.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, loginView{
		Token: output.Token,
		User: loginUserView{
			ID:           output.User.ID,
			Username:     output.User.Username,
			Email:        output.User.Email,
			SolanaWallet: orEmpty(output.User.SolanaWallets),
			Role:         output.User.Role.String(),
		},
	})
}

// GetProfile returns the caller's profile
func (h *AccountHandler) GetProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	user, err := h.accountUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileView(user))
}

// UpdateProfile applies a partial profile update
func (h *AccountHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	input := &usecase.UpdateProfileInput{
		Email:         req.Email,
		SolanaWallets: req.SolanaWallet,
	}
	if req.ShippingAddress.Set {
		if req.ShippingAddress.Null {
			input.ShippingAddress = util.Null[entity.ShippingAddress]()
		} else {
			if err := c.Validate(&req.ShippingAddress.Value); err != nil {
				return validationError(c, err)
			}
			input.ShippingAddress = util.Some(*req.ShippingAddress.Value.toEntity())
		}
	}

	user, err := h.accountUC.UpdateProfile(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileView(user))
}

// AddWallet links a wallet address to the caller
func (h *AccountHandler) AddWallet(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req WalletRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	user, err := h.accountUC.AddWallet(c.Request().Context(), userID, req.WalletAddress)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, walletsView{SolanaWallet: orEmpty(user.SolanaWallets)})
}

// RemoveWallet unlinks a wallet address from the caller
func (h *AccountHandler) RemoveWallet(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	var req WalletRequest
	if err := c.Bind(&req); err != nil {
		return bindingError(c)
	}

	user, err := h.accountUC.RemoveWallet(c.Request().Context(), userID, req.WalletAddress)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toProfileView(user))
}

// VerifyWallet reports whether the queried wallet belongs to the caller
func (h *AccountHandler) VerifyWallet(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	isMatch, err := h.accountUC.VerifyWallet(c.Request().Context(), userID, c.QueryParam("walletAddress"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"isMatch": isMatch})
}
