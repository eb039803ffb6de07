package middleware

import (
	"log/slog"

	"atelier/internal/delivery/api/response"
	deliverycontext "atelier/internal/delivery/context"
	domainerrors "atelier/internal/domain/errors"
	"atelier/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware throttles requests per route and client IP.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(limiter service.RateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit rejects the request with 429 once the client's window is exhausted.
// Limiter failures let the request through.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		key := c.Path() + ":" + c.RealIP()

		allowed, err := m.limiter.Allow(ctx, key)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable, allowing request",
				slog.String("key", key),
				slog.Any("error", err),
			)

			return next(c)
		}

		if !allowed {
			return response.HandleAppError(c, domainerrors.ErrRateLimited)
		}

		return next(c)
	}
}
