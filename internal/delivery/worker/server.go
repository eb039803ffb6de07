package worker

import (
	"log/slog"
	"net/http"

	"atelier/config"
	"atelier/internal/delivery"
	"atelier/internal/delivery/worker/handler"
	"atelier/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// ServerParams holds dependencies for the sync worker's HTTP server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	Registry    *prometheus.Registry
	PushHandler *handler.PushHandler
}

// NewServer exposes the Pub/Sub push endpoint next to health and metrics probes
func NewServer(params ServerParams) (delivery.Delivery, error) {
	engine := delivery.NewEchoEngine(params.Cfg, params.Logger)
	registerRoutes(engine, params.Registry, params.PushHandler)

	srv := &delivery.HTTPServer{
		Name:   "worker",
		Port:   params.Cfg.Worker.Port,
		Engine: engine,
		Logger: params.Logger,
	}

	return srv.Bind(params.Lc), nil
}

func registerRoutes(e *echo.Echo, registry *prometheus.Registry, push *handler.PushHandler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(registry)))
	e.POST("/push", push.HandlePush)
}
