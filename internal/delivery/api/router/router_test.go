package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"atelier/config"
	"atelier/internal/delivery/api/middleware"
	"atelier/internal/delivery/api/router/handler"
	"atelier/internal/delivery/api/validator"
	deliverycontext "atelier/internal/delivery/context"
	deliverymiddleware "atelier/internal/delivery/middleware"
	"atelier/internal/domain/entity"
	"atelier/internal/domain/service"
	"atelier/internal/infra/auth"
	"atelier/internal/infra/ratelimit"
	mockUC "atelier/internal/mocks/usecase"
	"atelier/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type testRouter struct {
	engine       *echo.Echo
	tokens       service.TokenService
	accountUC    *mockUC.MockAccountUsecase
	collectionUC *mockUC.MockCollectionUsecase
}

func newTestRouter(t *testing.T) *testRouter {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "router-test-secret"

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	accountUC := mockUC.NewMockAccountUsecase(t)
	collectionUC := mockUC.NewMockCollectionUsecase(t)

	r := NewRouter(RouterParams{
		AccountHandler:      handler.NewAccountHandler(handler.AccountHandlerParams{AccountUC: accountUC, Logger: discardLogger}),
		DesignerHandler:     handler.NewDesignerHandler(handler.DesignerHandlerParams{Logger: discardLogger}),
		CollectionHandler:   handler.NewCollectionHandler(handler.CollectionHandlerParams{CollectionUC: collectionUC, Logger: discardLogger}),
		ProductHandler:      handler.NewProductHandler(handler.ProductHandlerParams{Logger: discardLogger}),
		SizeHandler:         handler.NewSizeHandler(handler.SizeHandlerParams{Logger: discardLogger}),
		NFTHandler:          handler.NewNFTHandler(handler.NFTHandlerParams{Logger: discardLogger}),
		PurchaseHandler:     handler.NewPurchaseHandler(handler.PurchaseHandlerParams{Logger: discardLogger}),
		ImageHandler:        handler.NewImageHandler(handler.ImageHandlerParams{Logger: discardLogger}),
		TestHandler:         handler.NewTestHandler(),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokens),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(ratelimit.NewMemoryLimiter(100, time.Minute), discardLogger),
		Registry:            prometheus.NewRegistry(),
		Config:              cfg,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.Use(deliverymiddleware.NewRequestIDMiddleware(discardLogger).Process)
	r.RegisterRoutes(e)

	return &testRouter{engine: e, tokens: tokens, accountUC: accountUC, collectionUC: collectionUC}
}

func (tr *testRouter) do(method, target, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	tr.engine.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestRouter_RegisterLoginCreateCollection(t *testing.T) {
	tr := newTestRouter(t)
	designerID := uuid.New()
	designer := &entity.User{
		ID:        designerID,
		Username:  "d1",
		Email:     "d1@x.com",
		Role:      entity.RoleDesigner,
		CreatedAt: time.Now(),
	}

	tr.accountUC.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterInput) bool {
			return in.Username == "d1" && in.Role == "designer"
		})).
		Return(designer, nil)

	rec := tr.do(http.MethodPost, "/api/register",
		`{"username":"d1","password":"p","email":"d1@x.com","role":"designer"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))

	registered := decodeBody(t, rec)
	assert.Equal(t, "designer", registered["role"])
	assert.Equal(t, []any{}, registered["collectionAddresses"])

	issued, err := tr.tokens.GenerateToken(designerID, entity.RoleDesigner.String())
	require.NoError(t, err)
	tr.accountUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "d1", Password: "p"}).
		Return(&usecase.LoginOutput{Token: issued, User: designer}, nil)

	rec = tr.do(http.MethodPost, "/api/login", `{"username":"d1","password":"p"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	token, ok := decodeBody(t, rec)["token"].(string)
	require.True(t, ok)
	claims, err := tr.tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "designer", claims.Role)
	assert.Equal(t, designerID, claims.UserID)

	tr.collectionUC.EXPECT().
		Create(mock.Anything, designerID, &usecase.CollectionInput{Name: "Spring", CollectionAddress: "ADDR1"}).
		Return(&entity.Collection{
			ID:                uuid.New(),
			Name:              "Spring",
			CollectionAddress: "ADDR1",
			DesignerID:        designerID,
			DesignerUsername:  "d1",
		}, nil)

	rec = tr.do(http.MethodPost, "/api/collections", `{"name":"Spring","collectionAddress":"ADDR1"}`, token)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decodeBody(t, rec)
	assert.Equal(t, designerID.String(), created["designerId"])
	assert.Equal(t, []any{}, created["products"])
}

func TestRouter_CreateCollectionRequiresToken(t *testing.T) {
	tr := newTestRouter(t)

	t.Run("missing token", func(t *testing.T) {
		rec := tr.do(http.MethodPost, "/api/collections", `{"name":"Spring"}`, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotEmpty(t, decodeBody(t, rec)["message"])
	})

	t.Run("forged token", func(t *testing.T) {
		rec := tr.do(http.MethodPost, "/api/collections", `{"name":"Spring"}`, "not-a-jwt")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
