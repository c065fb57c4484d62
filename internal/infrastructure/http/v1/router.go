// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"stockpilot/internal/domain/catalogs/brand"
	"stockpilot/internal/domain/catalogs/category"
	"stockpilot/internal/domain/catalogs/client"
	"stockpilot/internal/domain/catalogs/product"
	"stockpilot/internal/domain/reports"
	"stockpilot/internal/infrastructure/http/v1/dto"
	"stockpilot/internal/infrastructure/http/v1/handlers"
	"stockpilot/internal/infrastructure/http/v1/middleware"
	"stockpilot/internal/infrastructure/storage/postgres"
	"stockpilot/pkg/logger"
)

// RouterConfig holds all dependencies the HTTP layer needs. Everything
// is injected explicitly; no globals.
type RouterConfig struct {
	Pool   *postgres.Pool
	Logger *logger.Logger

	ProductService  *product.Service
	ClientService   *client.Service
	CategoryService *category.Service
	BrandService    *brand.Service
	ReportsService  *reports.Service
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

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	base := handlers.NewBaseHandler()

	productHandler := handlers.NewProductHandler(base, cfg.ProductService)
	clientHandler := handlers.NewClientHandler(base, cfg.ClientService)
	dashboardHandler := handlers.NewDashboardHandler(base, cfg.ReportsService)

	categoryHandler := handlers.NewReferenceHandler(base, cfg.CategoryService,
		func(item *category.Category) any { return dto.FromCategory(item) })
	brandHandler := handlers.NewReferenceHandler(base, cfg.BrandService,
		func(item *brand.Brand) any { return dto.FromBrand(item) })

	// API v1
	api := router.Group("/api/v1")
	{
		products := api.Group("/products")
		{
			products.GET("", productHandler.List)
			products.POST("", productHandler.Create)
			products.PUT("/edit", productHandler.Edit)
			products.GET("/categories", categoryHandler.List)
			products.GET("/brands", brandHandler.List)
			products.GET("/:id", productHandler.Get)
		}

		clients := api.Group("/clients")
		{
			clients.GET("", clientHandler.List)
			clients.POST("", clientHandler.Create)
			clients.PUT("/edit", clientHandler.Edit)
			clients.DELETE("/delete", clientHandler.Delete)
			clients.GET("/:id", clientHandler.Get)
		}

		api.GET("/dashboard", dashboardHandler.Get)
	}

	return router
}
