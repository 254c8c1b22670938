package dto

import (
	"time"

	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain/documents/purchase"
)

// PurchaseDetailRequest is one received material line in a purchase request.
type PurchaseDetailRequest struct {
	MaterialID string         `json:"materialId"`
	Quantity   types.Quantity `json:"quantity"`
}

// CreatePurchaseRequest is the request body for creating a purchase.
type CreatePurchaseRequest struct {
	Code       string                  `json:"code"`
	Date       time.Time               `json:"purchaseDate"`
	SupplierID string                  `json:"supplierId"`
	Details    []PurchaseDetailRequest `json:"purchaseDetailDtos"`
}

// ToEntity converts DTO to domain entity.
func (r *CreatePurchaseRequest) ToEntity() *purchase.Purchase {
	supplierID, _ := id.Parse(r.SupplierID)
	doc := purchase.NewPurchase(r.Code, r.Date, supplierID)
	for _, d := range r.Details {
		materialID, _ := id.Parse(d.MaterialID)
		doc.AddDetail(materialID, d.Quantity)
	}
	return doc
}

// UpdatePurchaseRequest is the request body for patching a purchase.
type UpdatePurchaseRequest struct {
	ID         string                  `json:"id"`
	Code       string                  `json:"code"`
	Date       time.Time               `json:"purchaseDate"`
	SupplierID string                  `json:"supplierId"`
	Details    []PurchaseDetailRequest `json:"purchaseDetailDtos"`
	Version    int                     `json:"version"`
}

// ApplyTo applies update DTO to existing entity, replacing the lines
// wholesale.
func (r *UpdatePurchaseRequest) ApplyTo(doc *purchase.Purchase) {
	supplierID, _ := id.Parse(r.SupplierID)
	doc.Code = r.Code
	doc.Date = r.Date
	doc.SupplierID = supplierID
	doc.Details = doc.Details[:0]
	for _, d := range r.Details {
		materialID, _ := id.Parse(d.MaterialID)
		doc.AddDetail(materialID, d.Quantity)
	}
	if r.Version > 0 {
		doc.Version = r.Version
	}
}
