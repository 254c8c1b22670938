package dto

import (
	"time"

	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain/documents/production"
)

// CreateProductionRequest is the request body for creating a production run.
type CreateProductionRequest struct {
	Code      string         `json:"code"`
	Date      time.Time      `json:"productionDate"`
	ProductID string         `json:"productId"`
	Quantity  types.Quantity `json:"quantity"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateProductionRequest) ToEntity() *production.Production {
	productID, _ := id.Parse(r.ProductID)
	return production.NewProduction(r.Code, r.Date, productID, r.Quantity)
}

// UpdateProductionRequest is the request body for patching a production run.
type UpdateProductionRequest struct {
	ID        string         `json:"id"`
	Code      string         `json:"code"`
	Date      time.Time      `json:"productionDate"`
	ProductID string         `json:"productId"`
	Quantity  types.Quantity `json:"quantity"`
	Version   int            `json:"version"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateProductionRequest) ApplyTo(doc *production.Production) {
	productID, _ := id.Parse(r.ProductID)
	doc.Code = r.Code
	doc.Date = r.Date
	doc.ProductID = productID
	doc.Quantity = r.Quantity
	if r.Version > 0 {
		doc.Version = r.Version
	}
}
