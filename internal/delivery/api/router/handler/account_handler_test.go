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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAccountHandler(t *testing.T) (*AccountHandler, *mockUC.MockAccountUsecase) {
	accountUC := mockUC.NewMockAccountUsecase(t)

	return NewAccountHandler(AccountHandlerParams{AccountUC: accountUC, Logger: discardLogger}), accountUC
}

func TestAccountHandler_Register(t *testing.T) {
	h, accountUC := newAccountHandler(t)
	userID := uuid.New()

	accountUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Username: "d1",
			Password: "p",
			Email:    "d1@x.com",
			Role:     "designer",
		}).
		Return(&entity.User{
			ID:        userID,
			Username:  "d1",
			Email:     "d1@x.com",
			Role:      entity.RoleDesigner,
			CreatedAt: time.Now(),
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/register",
		`{"username":"d1","password":"p","email":"d1@x.com","role":"designer"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var got map[string]any
	decodeData(t, rec, &got)
	assert.Equal(t, userID.String(), got["_id"])
	assert.Equal(t, "designer", got["role"])
	assert.Equal(t, []any{}, got["collectionAddresses"])
	assert.Equal(t, []any{}, got["solanaWallet"])
	assert.NotContains(t, got, "password")
	assert.NotContains(t, got, "passwordHash")
	assert.NotContains(t, got, "data")
}

func TestAccountHandler_Register_InvalidEmail(t *testing.T) {
	h, _ := newAccountHandler(t)

	c, rec := newJSONContext(http.MethodPost, "/api/register",
		`{"username":"d1","password":"p","email":"not-an-email"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Code)
	assert.Equal(t, "email", env.Details["email"])
}

func TestAccountHandler_Login(t *testing.T) {
	h, accountUC := newAccountHandler(t)
	userID := uuid.New()

	accountUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "d1", Password: "p"}).
		Return(&usecase.LoginOutput{
			Token: "signed.jwt.token",
			User:  &entity.User{ID: userID, Username: "d1", Email: "d1@x.com", SolanaWallets: []string{"W1"}, Role: entity.RoleDesigner},
		}, nil)

	c, rec := newJSONContext(http.MethodPost, "/api/login", `{"username":"d1","password":"p"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got loginView
	decodeData(t, rec, &got)
	assert.Equal(t, "signed.jwt.token", got.Token)
	assert.Equal(t, userID, got.User.ID)
	assert.Equal(t, []string{"W1"}, got.User.SolanaWallet)
	assert.Equal(t, "designer", got.User.Role)
}

func TestAccountHandler_Login_InvalidCredentials(t *testing.T) {
	h, accountUC := newAccountHandler(t)

	accountUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidCredentials)

	c, rec := newJSONContext(http.MethodPost, "/api/login", `{"username":"d1","password":"wrong"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeError(t, rec)
	assert.Equal(t, "Invalid credentials", env.Message)
}

func TestAccountHandler_GetProfile_Unauthenticated(t *testing.T) {
	h, _ := newAccountHandler(t)

	c, rec := newJSONContext(http.MethodGet, "/api/userinfo", "")

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	env := decodeError(t, rec)
	assert.Equal(t, "Access denied", env.Message)
}

func TestAccountHandler_UpdateProfile_PresenceSemantics(t *testing.T) {
	h, accountUC := newAccountHandler(t)
	userID := uuid.New()

	accountUC.EXPECT().
		UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(input *usecase.UpdateProfileInput) bool {
			return input.Email.Set && input.Email.Value == "new@x.com" &&
				!input.SolanaWallets.Set &&
				input.ShippingAddress.Set && !input.ShippingAddress.Null &&
				input.ShippingAddress.Value.City == "Lisbon"
		})).
		Return(&entity.User{
			ID:              userID,
			Username:        "d1",
			Email:           "new@x.com",
			Role:            entity.RoleRegular,
			ShippingAddress: &entity.ShippingAddress{City: "Lisbon"},
		}, nil)

	c, rec := newJSONContext(http.MethodPut, "/api/userinfo",
		`{"email":"new@x.com","shippingAddress":{"city":"Lisbon"}}`)
	authenticate(c, userID, entity.RoleRegular)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var got profileView
	decodeData(t, rec, &got)
	assert.Equal(t, userID, got.UserID)
	require.NotNil(t, got.ShippingAddress)
	assert.Equal(t, "Lisbon", got.ShippingAddress.City)
}

func TestAccountHandler_UpdateProfile_NullShippingAddress(t *testing.T) {
	h, accountUC := newAccountHandler(t)
	userID := uuid.New()

	accountUC.EXPECT().
		UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(input *usecase.UpdateProfileInput) bool {
			return input.ShippingAddress.Set && input.ShippingAddress.Null && !input.Email.Set
		})).
		Return(&entity.User{ID: userID, Username: "d1", Role: entity.RoleRegular}, nil)

	c, rec := newJSONContext(http.MethodPut, "/api/userinfo", `{"shippingAddress":null}`)
	authenticate(c, userID, entity.RoleRegular)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAccountHandler_Wallets(t *testing.T) {
	userID := uuid.New()

	t.Run("add returns the wallet list", func(t *testing.T) {
		h, accountUC := newAccountHandler(t)
		accountUC.EXPECT().
			AddWallet(mock.Anything, userID, "W2").
			Return(&entity.User{ID: userID, SolanaWallets: []string{"W1", "W2"}}, nil)

		c, rec := newJSONContext(http.MethodPost, "/api/userinfo/wallet", `{"walletAddress":"W2"}`)
		authenticate(c, userID, entity.RoleRegular)

		require.NoError(t, h.AddWallet(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got walletsView
		decodeData(t, rec, &got)
		assert.Equal(t, []string{"W1", "W2"}, got.SolanaWallet)
	})

	t.Run("remove reads the body of a DELETE", func(t *testing.T) {
		h, accountUC := newAccountHandler(t)
		accountUC.EXPECT().
			RemoveWallet(mock.Anything, userID, "W1").
			Return(&entity.User{ID: userID, Username: "d1"}, nil)

		c, rec := newJSONContext(http.MethodDelete, "/api/userinfo/wallet", `{"walletAddress":"W1"}`)
		authenticate(c, userID, entity.RoleRegular)

		require.NoError(t, h.RemoveWallet(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got profileView
		decodeData(t, rec, &got)
		assert.Equal(t, []string{}, got.SolanaWallet)
	})

	t.Run("verify reads the query", func(t *testing.T) {
		h, accountUC := newAccountHandler(t)
		accountUC.EXPECT().
			VerifyWallet(mock.Anything, userID, "W1").
			Return(true, nil)

		c, rec := newJSONContext(http.MethodGet, "/api/userinfo/verify-wallet?walletAddress=W1", "")
		authenticate(c, userID, entity.RoleRegular)

		require.NoError(t, h.VerifyWallet(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var got map[string]bool
		decodeData(t, rec, &got)
		assert.True(t, got["isMatch"])
	})

	t.Run("verify without an address", func(t *testing.T) {
		h, accountUC := newAccountHandler(t)
		accountUC.EXPECT().
			VerifyWallet(mock.Anything, userID, "").
			Return(false, domainerrors.ErrWalletAddressRequired)

		c, rec := newJSONContext(http.MethodGet, "/api/userinfo/verify-wallet", "")
		authenticate(c, userID, entity.RoleRegular)

		require.NoError(t, h.VerifyWallet(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
