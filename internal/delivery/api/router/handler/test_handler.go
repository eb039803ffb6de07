package handler

import (
	"net/http"

	"atelier/internal/delivery/api/middleware"
	"atelier/internal/delivery/api/response"
	deliverycontext "atelier/internal/delivery/context"
	"atelier/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TestHandler serves the diagnostics routes enabled by testRoutes.enabled
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

type whoAmIView struct {
	UserID     uuid.UUID `json:"userId"`
	Role       string    `json:"role"`
	IsDesigner bool      `json:"isDesigner"`
	RequestID  string    `json:"requestId"`
}

// TestAuthMiddleware reports the identity decoded from the bearer token
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return unauthenticated(c)
	}

	role, _ := middleware.GetRole(c)

	return response.Success(c, http.StatusOK, whoAmIView{
		UserID:     userID,
		Role:       string(role),
		IsDesigner: role == entity.RoleDesigner,
		RequestID:  deliverycontext.GetRequestID(c),
	})
}

// TestPublicEndpoint answers without authentication
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"status":    "public",
		"requestId": deliverycontext.GetRequestID(c),
	})
}
