package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bizstock/internal/domain/catalogs/category"
	"bizstock/internal/domain/catalogs/customer"
	"bizstock/internal/domain/catalogs/material"
	"bizstock/internal/domain/catalogs/product"
	"bizstock/internal/domain/catalogs/supplier"
	"bizstock/internal/domain/documents/order"
	"bizstock/internal/domain/documents/production"
	"bizstock/internal/domain/documents/purchase"
	"bizstock/internal/domain/inventory"
	"bizstock/internal/infrastructure/http/v1/handlers"
	"bizstock/internal/infrastructure/http/v1/middleware"
	"bizstock/internal/infrastructure/storage/postgres"
	"bizstock/internal/infrastructure/storage/postgres/catalog_repo"
	"bizstock/internal/infrastructure/storage/postgres/document_repo"
	"bizstock/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the database connection pool (for health checks)
	Pool *postgres.Pool

	// TxManager runs repository operations and transactions
	TxManager *postgres.TxManager

	// Logger for request logging
	Logger *logger.Logger

	// MetricsEnabled exposes /metrics and records per-route metrics
	MetricsEnabled bool
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

	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics())
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// Repositories
	categoryRepo := catalog_repo.NewCategoryRepo(cfg.TxManager)
	customerRepo := catalog_repo.NewCustomerRepo(cfg.TxManager)
	supplierRepo := catalog_repo.NewSupplierRepo(cfg.TxManager)
	materialRepo := catalog_repo.NewMaterialRepo(cfg.TxManager)
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	purchaseRepo := document_repo.NewPurchaseRepo(cfg.TxManager)
	productionRepo := document_repo.NewProductionRepo(cfg.TxManager)
	orderRepo := document_repo.NewOrderRepo(cfg.TxManager)

	// Stock deltas from all documents go through one applier so the
	// sufficiency check and the balance update share row locks.
	applier := inventory.NewApplier(materialRepo, productRepo)

	// Services
	categoryService := category.NewService(categoryRepo, cfg.TxManager)
	customerService := customer.NewService(customerRepo, cfg.TxManager)
	supplierService := supplier.NewService(supplierRepo, cfg.TxManager)
	materialService := material.NewService(materialRepo, categoryRepo, cfg.TxManager)
	productService := product.NewService(productRepo, categoryRepo, materialRepo, cfg.TxManager)
	purchaseService := purchase.NewService(purchaseRepo, supplierRepo, materialRepo, applier, cfg.TxManager)
	productionService := production.NewService(productionRepo, productRepo, applier, cfg.TxManager)
	orderService := order.NewService(orderRepo, customerRepo, productRepo, applier, cfg.TxManager)

	// API routes
	api := router.Group("/api")
	base := handlers.NewBaseHandler()

	RegisterCatalogRoutes(api.Group("/categories"), handlers.NewCategoryHandler(base, categoryService))
	RegisterCatalogRoutes(api.Group("/customers"), handlers.NewCustomerHandler(base, customerService))
	RegisterCatalogRoutes(api.Group("/suppliers"), handlers.NewSupplierHandler(base, supplierService))
	RegisterCatalogRoutes(api.Group("/materials"), handlers.NewMaterialHandler(base, materialService))
	RegisterCatalogRoutes(api.Group("/products"), handlers.NewProductHandler(base, productService))

	purchases := api.Group("/purchases")
	purchaseHandler := handlers.NewPurchaseHandler(base, purchaseService)
	RegisterDocumentRoutes(purchases, purchaseHandler)
	purchases.GET("/getpurchasedates", purchaseHandler.Dates)

	productions := api.Group("/productions")
	productionHandler := handlers.NewProductionHandler(base, productionService)
	RegisterDocumentRoutes(productions, productionHandler)
	productions.GET("/alldates", productionHandler.Dates)

	orders := api.Group("/orders")
	orderHandler := handlers.NewOrderHandler(base, orderService)
	RegisterDocumentRoutes(orders, orderHandler)
	orders.GET("/getorderdates", orderHandler.Dates)

	return router
}
