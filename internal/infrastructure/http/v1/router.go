// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"comercio/internal/domain/auth"
	"comercio/internal/domain/catalogs/article"
	"comercio/internal/domain/catalogs/branch"
	"comercio/internal/domain/catalogs/employee"
	"comercio/internal/domain/catalogs/partner"
	"comercio/internal/domain/catalogs/series"
	"comercio/internal/domain/documents/purchase"
	"comercio/internal/domain/documents/sale"
	"comercio/internal/infrastructure/http/v1/handlers"
	"comercio/internal/infrastructure/http/v1/middleware"
	"comercio/internal/infrastructure/storage/postgres"
	"comercio/pkg/logger"
)

// RouterConfig holds the wired services the router exposes.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// AuthService for authentication and account management
	AuthService *auth.Service

	// Catalog services
	Articles  *article.Service
	Partners  *partner.Service
	Employees *employee.Service
	Branches  *branch.Service
	Series    *series.Service

	// Document services
	Purchases *purchase.Service
	Sales     *sale.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	apiV1 := router.Group("/api/v1")
	{
		registerAuthRoutes(apiV1, cfg)

		protected := apiV1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerCatalogRoutes(protected, cfg)
		registerDocumentRoutes(protected, cfg)
		registerUserRoutes(protected, cfg)
	}

	return router
}

// registerAuthRoutes registers authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()
	authHandler := handlers.NewAuthHandler(baseHandler, cfg.AuthService)

	// Public auth endpoints (no JWT required)
	publicAuth := rg.Group("/auth")

	// Protected auth endpoints (JWT required)
	protectedAuth := rg.Group("/auth")
	protectedAuth.Use(middleware.Auth(cfg.JWTValidator))

	authHandler.RegisterRoutes(publicAuth, protectedAuth)
}

// registerCatalogRoutes registers catalog endpoints.
// Catalog mutations are restricted to administrators.
func registerCatalogRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	catalogs := rg.Group("/catalog")
	baseHandler := handlers.NewBaseHandler()
	adminOnly := middleware.RequireRole(auth.RoleAdmin)

	// --- ARTICLES ---
	{
		handler := handlers.NewArticleHandler(baseHandler, cfg.Articles)
		group := catalogs.Group("/articles")
		RegisterCatalogRoutes(group, handler, adminOnly)
		group.PATCH("/:id/state/:active", adminOnly, handler.SetActive)
	}

	// --- BUSINESS PARTNERS ---
	{
		handler := handlers.NewPartnerHandler(baseHandler, cfg.Partners)
		RegisterCatalogRoutes(catalogs.Group("/partners"), handler, adminOnly)
	}

	// --- EMPLOYEES ---
	{
		handler := handlers.NewEmployeeHandler(baseHandler, cfg.Employees)
		group := catalogs.Group("/employees")
		RegisterCatalogRoutes(group, handler, adminOnly)
		group.GET("/by-user/:userId", handler.ByUser)
	}

	// --- BRANCHES ---
	{
		handler := handlers.NewBranchHandler(baseHandler, cfg.Branches)
		RegisterCatalogRoutes(catalogs.Group("/branches"), handler, adminOnly)
	}

	// --- SERIES ---
	{
		handler := handlers.NewSeriesHandler(baseHandler, cfg.Series)
		RegisterCatalogRoutes(catalogs.Group("/series"), handler, adminOnly)
	}
}

// registerDocumentRoutes registers document endpoints.
// Any authenticated user may register and read documents.
func registerDocumentRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	docsGroup := rg.Group("/documents")
	baseHandler := handlers.NewBaseHandler()

	// --- PURCHASES ---
	{
		handler := handlers.NewPurchaseHandler(baseHandler, cfg.Purchases)
		RegisterDocumentRoutes(docsGroup.Group("/purchases"), handler)
	}

	// --- SALES ---
	{
		handler := handlers.NewSaleHandler(baseHandler, cfg.Sales)
		RegisterDocumentRoutes(docsGroup.Group("/sales"), handler)
	}
}

// registerUserRoutes registers account management endpoints.
// The whole group is restricted to administrators.
func registerUserRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	baseHandler := handlers.NewBaseHandler()
	handler := handlers.NewUserHandler(baseHandler, cfg.AuthService)

	users := rg.Group("/users")
	users.Use(middleware.RequireRole(auth.RoleAdmin))
	{
		users.GET("", handler.List)
		users.POST("", handler.Create)
		users.GET("/:id", handler.Get)
		users.PUT("/:id", handler.Update)
		users.DELETE("/:id", handler.Delete)
	}
}
