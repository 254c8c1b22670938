package dto

import (
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain/catalogs/product"
)

// ProductDetailRequest is one bill-of-materials line in a product request.
type ProductDetailRequest struct {
	MaterialID string         `json:"materialId"`
	Quantity   types.Quantity `json:"quantity"`
}

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	Code       string                 `json:"code"`
	Name       string                 `json:"name"`
	CategoryID string                 `json:"categoryId"`
	Unit       string                 `json:"unit"`
	Price      types.Money            `json:"price"`
	ImageURL   *string                `json:"imageUrl"`
	Details    []ProductDetailRequest `json:"productDetailDtos"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductRequest) ToEntity() *product.Product {
	categoryID, _ := id.Parse(r.CategoryID)
	item := product.NewProduct(r.Code, r.Name, categoryID)
	item.Unit = r.Unit
	item.Price = r.Price
	item.ImageURL = r.ImageURL
	for _, d := range r.Details {
		materialID, _ := id.Parse(d.MaterialID)
		item.AddDetail(materialID, d.Quantity)
	}
	return item
}

// UpdateProductRequest is the request body for patching a product.
type UpdateProductRequest struct {
	ID         string                 `json:"id"`
	Code       string                 `json:"code"`
	Name       string                 `json:"name"`
	CategoryID string                 `json:"categoryId"`
	Unit       string                 `json:"unit"`
	Price      types.Money            `json:"price"`
	ImageURL   *string                `json:"imageUrl"`
	Details    []ProductDetailRequest `json:"productDetailDtos"`
	Version    int                    `json:"version"`
}

// ApplyTo applies update DTO to existing entity, replacing the bill of
// materials wholesale.
func (r *UpdateProductRequest) ApplyTo(item *product.Product) {
	categoryID, _ := id.Parse(r.CategoryID)
	item.Code = r.Code
	item.Name = r.Name
	item.CategoryID = categoryID
	item.Unit = r.Unit
	item.Price = r.Price
	item.ImageURL = r.ImageURL
	item.Details = item.Details[:0]
	for _, d := range r.Details {
		materialID, _ := id.Parse(d.MaterialID)
		item.AddDetail(materialID, d.Quantity)
	}
	if r.Version > 0 {
		item.Version = r.Version
	}
}
