package main

import (
	"context"
	"log/slog"
	"os"

	"atelier/config"
	"atelier/internal/delivery"
	"atelier/internal/delivery/api"
	"atelier/internal/delivery/api/middleware"
	"atelier/internal/delivery/api/router/handler"
	"atelier/internal/infra/auth"
	"atelier/internal/infra/cache"
	"atelier/internal/infra/chain"
	"atelier/internal/infra/email"
	"atelier/internal/infra/export"
	logs "atelier/internal/infra/log"
	"atelier/internal/infra/metrics"
	"atelier/internal/infra/persistence/postgres"
	"atelier/internal/infra/pubsub"
	"atelier/internal/infra/qrcode"
	"atelier/internal/infra/ratelimit"
	"atelier/internal/infra/storage"
	"atelier/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewRegistry,
		metrics.NewHTTPMetrics,
		metrics.NewReconcileMetrics,
		postgres.New,
		cache.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			cache.NewProductCache,
			ratelimit.NewRateLimiter,
			qrcode.NewQRCodeService,
			export.NewXLSXExporter,
			email.NewEmailSender,
			chain.NewSolanaClient,
			pubsub.NewEventPublisher,
			storage.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewDesignerService,
			impl.NewCollectionService,
			impl.NewProductService,
			impl.NewSizeService,
			impl.NewNFTService,
			impl.NewReconcileService,
			impl.NewPurchaseService,
			impl.NewImageService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewDesignerHandler,
			handler.NewCollectionHandler,
			handler.NewProductHandler,
			handler.NewSizeHandler,
			handler.NewNFTHandler,
			handler.NewPurchaseHandler,
			handler.NewImageHandler,
			handler.NewTestHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
