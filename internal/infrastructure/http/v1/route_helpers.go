// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
)

// CRUDHandler defines the routes every entity handler serves.
type CRUDHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Patch(c *gin.Context)
	Delete(c *gin.Context)
}

// CatalogRouteHandler adds the unpaginated dropdown projection.
type CatalogRouteHandler interface {
	CRUDHandler
	GetAll(c *gin.Context)
}

// RegisterCatalogRoutes registers the standard routes for a catalog.
//
// Usage:
//
//	repo := catalog_repo.NewCategoryRepo(txm)
//	service := category.NewService(repo, txm)
//	handler := handlers.NewCategoryHandler(baseHandler, service)
//	RegisterCatalogRoutes(api.Group("/categories"), handler)
func RegisterCatalogRoutes(group *gin.RouterGroup, handler CatalogRouteHandler) {
	group.GET("", handler.List)
	group.GET("/getall", handler.GetAll)
	group.GET("/:id", handler.Get)
	group.POST("/create", handler.Create)
	group.PATCH("/patch", handler.Patch)
	group.DELETE("/delete/:id", handler.Delete)
}

// RegisterDocumentRoutes registers the standard routes for a document.
// Date-list projections differ per document type and are registered by
// the caller.
func RegisterDocumentRoutes(group *gin.RouterGroup, handler CRUDHandler) {
	group.GET("", handler.List)
	group.GET("/:id", handler.Get)
	group.POST("/create", handler.Create)
	group.PATCH("/patch", handler.Patch)
	group.DELETE("/delete/:id", handler.Delete)
}
