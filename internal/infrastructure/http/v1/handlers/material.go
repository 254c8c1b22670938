package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"bizstock/internal/core/id"
	"bizstock/internal/domain/catalogs/material"
	"bizstock/internal/infrastructure/http/v1/dto"
)

// MaterialHTTPHandler is a shorthand for the generic configuration.
type MaterialHTTPHandler = CatalogHandler[
	*material.Material,
	dto.CreateMaterialRequest,
	dto.UpdateMaterialRequest,
]

// NewMaterialHandler wires the generic catalog handler for materials,
// with category filtering on the list endpoint.
func NewMaterialHandler(base *BaseHandler, service *material.Service) *MaterialHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[
		*material.Material,
		dto.CreateMaterialRequest,
		dto.UpdateMaterialRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "material",
		MapCreateDTO: func(req dto.CreateMaterialRequest) *material.Material {
			return req.ToEntity()
		},
		ApplyUpdateDTO: func(req dto.UpdateMaterialRequest, existing *material.Material) *material.Material {
			req.ApplyTo(existing)
			return existing
		},
		UpdateID: func(req dto.UpdateMaterialRequest) string { return req.ID },
		Zero:     func() *material.Material { return &material.Material{} },
		Find: func(ctx context.Context, c *gin.Context) ([]*material.Material, error) {
			filter := material.Filter{Search: c.Query("searchText")}
			if v := c.Query("categoryId"); v != "" {
				if categoryID, err := id.Parse(v); err == nil {
					filter.CategoryID = &categoryID
				}
			}
			return service.Find(ctx, filter)
		},
	})
}
