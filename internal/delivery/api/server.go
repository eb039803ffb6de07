package api

import (
	"log/slog"

	"atelier/config"
	"atelier/internal/delivery"
	apimiddleware "atelier/internal/delivery/api/middleware"
	"atelier/internal/delivery/api/router"
	"atelier/internal/delivery/api/validator"
	"atelier/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for the public API server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	HTTPMetrics  *metrics.HTTPMetrics
	RouterParams router.RouterParams
}

// NewServer assembles the marketplace API and serves it over h2c.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	engine := newEngine(params.Cfg, params.Logger, params.HTTPMetrics)

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(engine)
	r.RegisterTestRoutes(engine)

	srv := &delivery.HTTPServer{
		Name:   "api",
		Port:   params.Cfg.HTTP.Port,
		Engine: engine,
		Logger: params.Logger,
		H2C:    &http2.Server{IdleTimeout: params.Cfg.HTTP.Timeouts.IdleTimeout},
	}

	return srv.Bind(params.Lc), nil
}

// newEngine layers the API concerns over the shared stack. Metrics sit inside
// the logger so they observe the status chosen by the error handler.
func newEngine(cfg *config.Config, logger *slog.Logger, httpMetrics *metrics.HTTPMetrics) *echo.Echo {
	engine := delivery.NewEchoEngine(cfg, logger)

	timeouts := cfg.HTTP.Timeouts
	engine.Server.ReadTimeout = timeouts.ReadTimeout
	engine.Server.ReadHeaderTimeout = timeouts.ReadHeaderTimeout
	engine.Server.WriteTimeout = timeouts.WriteTimeout
	engine.Server.IdleTimeout = timeouts.IdleTimeout

	engine.Use(
		apimiddleware.NewMetricsMiddleware(httpMetrics).Handle,
		echomiddleware.CORS(),
		echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize),
	)

	engine.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	engine.Validator = validator.New()

	return engine
}
