package dto

import (
	"time"

	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain/documents/order"
)

// OrderDetailRequest is one ordered product line in an order request.
type OrderDetailRequest struct {
	ProductID string         `json:"productId"`
	Quantity  types.Quantity `json:"quantity"`
}

// CreateOrderRequest is the request body for creating an order.
type CreateOrderRequest struct {
	Code       string               `json:"code"`
	Date       time.Time            `json:"orderDate"`
	CustomerID string               `json:"customerId"`
	Details    []OrderDetailRequest `json:"orderDetailDtos"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateOrderRequest) ToEntity() *order.Order {
	customerID, _ := id.Parse(r.CustomerID)
	doc := order.NewOrder(r.Code, r.Date, customerID)
	for _, d := range r.Details {
		productID, _ := id.Parse(d.ProductID)
		doc.AddDetail(productID, d.Quantity)
	}
	return doc
}

// UpdateOrderRequest is the request body for patching an order.
type UpdateOrderRequest struct {
	ID         string               `json:"id"`
	Code       string               `json:"code"`
	Date       time.Time            `json:"orderDate"`
	CustomerID string               `json:"customerId"`
	Details    []OrderDetailRequest `json:"orderDetailDtos"`
	Version    int                  `json:"version"`
}

// ApplyTo applies update DTO to existing entity, replacing the lines
// wholesale.
func (r *UpdateOrderRequest) ApplyTo(doc *order.Order) {
	customerID, _ := id.Parse(r.CustomerID)
	doc.Code = r.Code
	doc.Date = r.Date
	doc.CustomerID = customerID
	doc.Details = doc.Details[:0]
	for _, d := range r.Details {
		productID, _ := id.Parse(d.ProductID)
		doc.AddDetail(productID, d.Quantity)
	}
	if r.Version > 0 {
		doc.Version = r.Version
	}
}
