// Package production provides the Production document.
// A production run consumes materials per the product's bill of
// materials and credits product stock.
package production

import (
	"time"

	"bizstock/internal/core/entity"
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
)

// Production is one manufacturing run of a single product.
type Production struct {
	entity.Document

	// ProductID is the manufactured product (required reference)
	ProductID id.ID `db:"product_id" json:"productId"`

	// Quantity is the number of units produced (must be positive)
	Quantity types.Quantity `db:"quantity" json:"quantity"`
}

// NewProduction creates a new Production document.
func NewProduction(code string, date time.Time, productID id.ID, qty types.Quantity) *Production {
	return &Production{
		Document:  entity.NewDocument(code, date),
		ProductID: productID,
		Quantity:  qty,
	}
}
