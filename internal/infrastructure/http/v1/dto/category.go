package dto

import (
	"bizstock/internal/domain/catalogs/category"
)

// CreateCategoryRequest is the request body for creating a category.
type CreateCategoryRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCategoryRequest) ToEntity() *category.Category {
	item := category.NewCategory(r.Code, r.Name)
	item.Description = r.Description
	return item
}

// UpdateCategoryRequest is the request body for patching a category.
type UpdateCategoryRequest struct {
	ID          string  `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Version     int     `json:"version"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateCategoryRequest) ApplyTo(item *category.Category) {
	item.Code = r.Code
	item.Name = r.Name
	item.Description = r.Description
	if r.Version > 0 {
		item.Version = r.Version
	}
}
