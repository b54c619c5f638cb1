package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/stockroom/inventory-system/internal/api/handler"
	"github.com/stockroom/inventory-system/internal/api/middleware"
	"github.com/stockroom/inventory-system/internal/core/service"
	mongodb "github.com/stockroom/inventory-system/internal/infrastructure/db/mongo"
	redisdb "github.com/stockroom/inventory-system/internal/infrastructure/db/redis"
	healthhandlers "github.com/stockroom/inventory-system/internal/infrastructure/http/handlers"
	"github.com/stockroom/inventory-system/internal/pkg/config"

	"github.com/stockroom/inventory-system/internal/core/domain"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// It fails when the token service cannot be constructed (missing signing
// secret), which callers must treat as fatal.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("inventory"))

	// --- Dependencies ---
	tokenService, err := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}

	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	rollupCache := redisdb.NewRollupCache(rdb)

	authService := service.NewAuthService(userRepo, tokenService, log)
	productService := service.NewProductService(productRepo, cfg.DefaultPageLimit, log)
	analyticsService := service.NewAnalyticsService(productRepo, rollupCache, cfg.AnalyticsCacheTTL, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	authRequired := middleware.Auth(tokenService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Protected routes (any authenticated role) ---
	e.GET("/user", authHandler.Me, authRequired)

	e.GET("/products", productHandler.List, authRequired)
	e.GET("/products/low-stock", analyticsHandler.LowStock, authRequired)
	e.GET("/products/:id", productHandler.Get, authRequired)
	e.POST("/products", productHandler.Create, authRequired)
	e.PUT("/products/:id", productHandler.Update, authRequired)

	e.GET("/analytics/top-products", analyticsHandler.TopProducts, authRequired)
	e.GET("/analytics/top-types", analyticsHandler.TopTypes, authRequired)
	e.GET("/analytics/recent", analyticsHandler.Recent, authRequired)

	// --- Admin-only routes ---
	e.GET("/analytics/stock-summary", analyticsHandler.StockSummary, authRequired, adminOnly)

	// --- Observability (no auth required) ---
	e.GET("/metrics", echoprometheus.NewHandler())

	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e, nil
}
