package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/dropshipping/storefront-api/docs"
	"github.com/dropshipping/storefront-api/internal/api/handler"
	"github.com/dropshipping/storefront-api/internal/api/middleware"
	"github.com/dropshipping/storefront-api/internal/core/domain"
	"github.com/dropshipping/storefront-api/internal/core/ports"
	"github.com/dropshipping/storefront-api/internal/core/service"
	"github.com/dropshipping/storefront-api/internal/infrastructure/config"
	mongostore "github.com/dropshipping/storefront-api/internal/infrastructure/db/mongo"
	redisstore "github.com/dropshipping/storefront-api/internal/infrastructure/db/redis"
)

// Deps are the externally constructed dependencies the router wires
// handlers onto. Redis may be nil; the catalog then serves uncached.
type Deps struct {
	Config *config.Config
	Store  *mongostore.Connector
	Redis  *redis.Client
	Audit  ports.AuditRecorder
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(d.Store)
	adminRepo := mongostore.NewAdminRepository(d.Store)
	productRepo := mongostore.NewProductRepository(d.Store)

	var cache service.ListCache
	if d.Redis != nil {
		cache = redisstore.NewListCache(d.Redis)
	}

	tokens := service.NewTokenService(d.Config.JWTSecret, service.SessionTTL)
	authService := service.NewAuthService(userRepo, tokens, d.Audit, d.Logger)
	adminService := service.NewAdminService(userRepo, adminRepo, d.Audit, d.Logger)
	catalogService := service.NewCatalogService(productRepo, cache, d.Logger)

	authHandler := handler.NewAuthHandler(authService, !d.Config.Development())
	adminHandler := handler.NewAdminHandler(adminService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	sessionRequired := middleware.Auth(tokens)
	superadminOnly := middleware.RequireRole(domain.RoleSuperAdmin)

	// --- Catalog (public) ---
	// Category shortcuts and the slug route are static/more specific, so
	// echo matches them ahead of /products/:id.
	e.GET("/products", catalogHandler.List)
	e.GET("/products/clothing", catalogHandler.ListByCategory(domain.CategoryClothing))
	e.GET("/products/traditional-wear", catalogHandler.ListByCategory(domain.CategoryTraditionalWear))
	e.GET("/products/footwear", catalogHandler.ListByCategory(domain.CategoryFootwear))
	e.GET("/products/accessories", catalogHandler.ListByCategory(domain.CategoryAccessories))
	e.GET("/products/category/:slug", catalogHandler.ListBySlug)
	e.GET("/products/:id", catalogHandler.Get)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me, sessionRequired)
	e.PUT("/auth/me", authHandler.UpdateMe, sessionRequired)
	e.PUT("/auth/change-password", authHandler.ChangePassword, sessionRequired)

	// --- Admin directory (superadmin only) ---
	e.POST("/admins", adminHandler.Provision, sessionRequired, superadminOnly)
	e.GET("/admins", adminHandler.List, sessionRequired, superadminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Store, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
