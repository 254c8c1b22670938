package dto

import (
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain/catalogs/material"
)

// CreateMaterialRequest is the request body for creating a material.
// Stock quantity is absent on purpose: only documents move it.
type CreateMaterialRequest struct {
	Code       string      `json:"code"`
	Name       string      `json:"name"`
	CategoryID string      `json:"categoryId"`
	Unit       string      `json:"unit"`
	Price      types.Money `json:"price"`
	ImageURL   *string     `json:"imageUrl"`
}

// ToEntity converts DTO to domain entity. An unparseable category id
// maps to the nil id; the service reports it as a field error.
func (r *CreateMaterialRequest) ToEntity() *material.Material {
	categoryID, _ := id.Parse(r.CategoryID)
	item := material.NewMaterial(r.Code, r.Name, categoryID)
	item.Unit = r.Unit
	item.Price = r.Price
	item.ImageURL = r.ImageURL
	return item
}

// UpdateMaterialRequest is the request body for patching a material.
type UpdateMaterialRequest struct {
	ID         string      `json:"id"`
	Code       string      `json:"code"`
	Name       string      `json:"name"`
	CategoryID string      `json:"categoryId"`
	Unit       string      `json:"unit"`
	Price      types.Money `json:"price"`
	ImageURL   *string     `json:"imageUrl"`
	Version    int         `json:"version"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateMaterialRequest) ApplyTo(item *material.Material) {
	categoryID, _ := id.Parse(r.CategoryID)
	item.Code = r.Code
	item.Name = r.Name
	item.CategoryID = categoryID
	item.Unit = r.Unit
	item.Price = r.Price
	item.ImageURL = r.ImageURL
	if r.Version > 0 {
		item.Version = r.Version
	}
}
