// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"atelier/config"
	"atelier/internal/delivery/api/middleware"
	"atelier/internal/delivery/api/router/handler"
	"atelier/internal/domain/entity"
	"atelier/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	DesignerHandler     *handler.DesignerHandler
	CollectionHandler   *handler.CollectionHandler
	ProductHandler      *handler.ProductHandler
	SizeHandler         *handler.SizeHandler
	NFTHandler          *handler.NFTHandler
	PurchaseHandler     *handler.PurchaseHandler
	ImageHandler        *handler.ImageHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
	Registry            *prometheus.Registry
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	designerHandler     *handler.DesignerHandler
	collectionHandler   *handler.CollectionHandler
	productHandler      *handler.ProductHandler
	sizeHandler         *handler.SizeHandler
	nftHandler          *handler.NFTHandler
	purchaseHandler     *handler.PurchaseHandler
	imageHandler        *handler.ImageHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
	registry            *prometheus.Registry
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		designerHandler:     params.DesignerHandler,
		collectionHandler:   params.CollectionHandler,
		productHandler:      params.ProductHandler,
		sizeHandler:         params.SizeHandler,
		nftHandler:          params.NFTHandler,
		purchaseHandler:     params.PurchaseHandler,
		imageHandler:        params.ImageHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
		registry:            params.Registry,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	// Account routes, throttled per client
	e.POST("/api/register", r.accountHandler.Register, r.rateLimitMiddleware.Limit)
	e.POST("/api/login", r.accountHandler.Login, r.rateLimitMiddleware.Limit)

	r.registerPublicRoutes(e)
	r.registerAuthenticatedRoutes(e)
}

// registerPublicRoutes sets up the unauthenticated catalog reads.
func (r *router) registerPublicRoutes(e *echo.Echo) {
	public := e.Group("/api/public")
	{
		public.GET("/collections", r.collectionHandler.List)
		public.GET("/collections/:id", r.collectionHandler.Get)
		public.GET("/collections/address/:collectionAddress", r.collectionHandler.GetByAddress)
		public.GET("/collections/:id/products", r.collectionHandler.ListProducts)

		public.GET("/designer/:id", r.designerHandler.GetDesigner)
		public.GET("/designer/by-wallet/:walletAddress", r.designerHandler.GetDesignerByWallet)
		public.GET("/designers/username/:username", r.designerHandler.GetDesignerByUsername)
		public.GET("/designers/:id", r.designerHandler.GetDesignerProfile)

		public.GET("/nft/:tokenAddress", r.nftHandler.Get)
		public.GET("/nft/:tokenAddress/history", r.nftHandler.History)
		public.GET("/nfts", r.nftHandler.ListAll)

		public.GET("/product/:id", r.productHandler.GetWithDesigner)
		public.GET("/products", r.productHandler.Search)
		public.GET("/products/:id/nfts", r.nftHandler.ListByProduct)
		public.GET("/products/:id/qr", r.productHandler.ShareQR)
	}

	e.GET("/api/products/:id", r.productHandler.Get)
	e.GET("/api/products/:id/sizes", r.sizeHandler.ListByProduct)
	e.GET("/api/categories/dresses", r.productHandler.ListDresses)
	e.GET("/api/designers", r.designerHandler.ListDesigners)
	e.GET("/api/collections/by-designer/:id", r.collectionHandler.ListByDesigner)
	e.GET("/api/all-nfts", r.nftHandler.ListAll)
	e.GET("/api/nfts/count/:id", r.nftHandler.CountActive)
	e.GET("/api/nfts/grouped-by-product", r.nftHandler.GroupedByProduct)
}

// registerAuthenticatedRoutes sets up the routes that require a bearer token.
func (r *router) registerAuthenticatedRoutes(e *echo.Echo) {
	authenticate := r.authMiddleware.Authenticate
	designerOnly := r.authMiddleware.RequireRole(entity.RoleDesigner)

	userGroup := e.Group("/api/userinfo", authenticate)
	{
		userGroup.GET("", r.accountHandler.GetProfile)
		userGroup.PUT("", r.accountHandler.UpdateProfile)
		userGroup.POST("/wallet", r.accountHandler.AddWallet)
		userGroup.DELETE("/wallet", r.accountHandler.RemoveWallet)
		userGroup.GET("/verify-wallet", r.accountHandler.VerifyWallet)
	}

	e.GET("/api/collections", r.collectionHandler.ListOwn, authenticate)
	e.POST("/api/collections", r.collectionHandler.Create, authenticate)
	e.PUT("/api/collections/:id", r.collectionHandler.Update, authenticate)
	e.DELETE("/api/collections/:id", r.collectionHandler.Delete, authenticate)
	e.GET("/api/collections/:id/products", r.collectionHandler.ListOwnProducts, authenticate)

	e.GET("/api/products", r.productHandler.ListOwn, authenticate)
	e.POST("/api/products", r.productHandler.Create, authenticate)
	e.PUT("/api/products/:id", r.productHandler.Update, authenticate)
	e.DELETE("/api/products/:id", r.productHandler.Delete, authenticate)

	e.POST("/api/sizes", r.sizeHandler.Create, authenticate)
	e.PUT("/api/sizes/:id", r.sizeHandler.Update, authenticate)
	e.DELETE("/api/sizes/:id", r.sizeHandler.Delete, authenticate)

	e.POST("/api/saveNFT", r.nftHandler.Save, authenticate)
	e.PUT("/api/updateNFT", r.nftHandler.Update, authenticate)
	e.PUT("/api/nft/list", r.nftHandler.MarkListed, authenticate)
	e.PUT("/api/updateNFTStatus", r.nftHandler.UpdateStatus, authenticate)
	e.GET("/api/nfts", r.nftHandler.ListOwn, authenticate)
	e.GET("/api/nfts/export", r.nftHandler.ExportOwn, authenticate, designerOnly)
	e.POST("/api/nfts/sync", r.nftHandler.SyncOwn, authenticate, designerOnly)

	e.POST("/api/purchase", r.purchaseHandler.Purchase, authenticate)

	imagesGroup := e.Group("/api/images", authenticate)
	{
		imagesGroup.GET("", r.imageHandler.List)
		imagesGroup.POST("", r.imageHandler.Upload)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
