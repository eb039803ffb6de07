package middleware

import (
	"strconv"
	"time"

	"atelier/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latencies per route.
type MetricsMiddleware struct {
	metrics *metrics.HTTPMetrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(httpMetrics *metrics.HTTPMetrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: httpMetrics}
}

// Handle commits errors through the error handler first so the final status is recorded.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		done := m.metrics.Begin()
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		done(c.Request().Method, route, strconv.Itoa(c.Response().Status), time.Since(start))

		return nil
	}
}
