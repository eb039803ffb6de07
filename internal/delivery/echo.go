package delivery

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"atelier/config"
	"atelier/internal/delivery/middleware"
	"atelier/internal/domain/lifecycle"
	"atelier/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// NewEchoEngine returns an engine carrying the middleware every server shares:
// panic recovery, then request ids, then request logging.
func NewEchoEngine(cfg *config.Config, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(middleware.NewLoggerMiddleware(logger, cfg).Handle)

	return e
}

// HTTPServer runs an echo engine as a Delivery. When H2C is set the engine is
// served over cleartext HTTP/2.
type HTTPServer struct {
	Name   string
	Port   int
	Engine *echo.Echo
	Logger *slog.Logger
	H2C    *http2.Server
}

// Bind registers the graceful stop of s with the fx lifecycle and returns s.
func (s *HTTPServer) Bind(lc fx.Lifecycle) *HTTPServer {
	lc.Append(fx.Hook{OnStop: s.Stop})

	return s
}

func (s *HTTPServer) Addr() string {
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(s.Port))
}

func (s *HTTPServer) Serve(ctx context.Context) error {
	addr := s.Addr()
	s.Logger.Info("HTTP server listening", slog.String("server", s.Name), slog.String("addr", addr))

	var err error
	if s.H2C != nil {
		err = s.Engine.StartH2CServer(addr, s.H2C)
	} else {
		err = s.Engine.Start(addr)
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrapf(err, "%s server stopped", s.Name)
	}

	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.Logger.Info("HTTP server shutting down", slog.String("server", s.Name))

	return errors.WithStack(s.Engine.Shutdown(shutdownCtx))
}
