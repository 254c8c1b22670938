package handlers

import (
	"bizstock/internal/domain/catalogs/category"
	"bizstock/internal/infrastructure/http/v1/dto"
)

// CategoryHTTPHandler is a shorthand for the generic configuration.
type CategoryHTTPHandler = CatalogHandler[
	*category.Category,
	dto.CreateCategoryRequest,
	dto.UpdateCategoryRequest,
]

// NewCategoryHandler wires the generic catalog handler for categories.
func NewCategoryHandler(base *BaseHandler, service *category.Service) *CategoryHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[
		*category.Category,
		dto.CreateCategoryRequest,
		dto.UpdateCategoryRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "category",
		MapCreateDTO: func(req dto.CreateCategoryRequest) *category.Category {
			return req.ToEntity()
		},
		ApplyUpdateDTO: func(req dto.UpdateCategoryRequest, existing *category.Category) *category.Category {
			req.ApplyTo(existing)
			return existing
		},
		UpdateID: func(req dto.UpdateCategoryRequest) string { return req.ID },
		Zero:     func() *category.Category { return &category.Category{} },
	})
}
