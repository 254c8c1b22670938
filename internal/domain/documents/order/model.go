// Package order provides the Order document.
// An order records products shipped to a customer and debits product
// stock.
package order

import (
	"time"

	"bizstock/internal/core/entity"
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain/inventory"
)

// Order is a customer order shipping products from stock.
type Order struct {
	entity.Document

	// CustomerID is the ordering party (required reference)
	CustomerID id.ID `db:"customer_id" json:"customerId"`

	// Details are the ordered product lines (at least one required)
	Details []Detail `db:"-" json:"orderDetails"`
}

// Detail is one ordered product line.
type Detail struct {
	ID        id.ID          `db:"id" json:"id"`
	OrderID   id.ID          `db:"order_id" json:"orderId"`
	ProductID id.ID          `db:"product_id" json:"productId"`
	Quantity  types.Quantity `db:"quantity" json:"quantity"`
}

// NewOrder creates a new Order document.
func NewOrder(code string, date time.Time, customerID id.ID) *Order {
	return &Order{
		Document:   entity.NewDocument(code, date),
		CustomerID: customerID,
		Details:    make([]Detail, 0),
	}
}

// AddDetail appends an ordered product line.
func (o *Order) AddDetail(productID id.ID, qty types.Quantity) {
	o.Details = append(o.Details, Detail{
		ID:        id.New(),
		OrderID:   o.ID,
		ProductID: productID,
		Quantity:  qty,
	})
}

// LedgerLines converts the details into ledger lines.
func (o *Order) LedgerLines() []inventory.Line {
	lines := make([]inventory.Line, 0, len(o.Details))
	for _, d := range o.Details {
		lines = append(lines, inventory.Line{ItemID: d.ProductID, Qty: d.Quantity})
	}
	return lines
}
