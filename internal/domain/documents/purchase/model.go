// Package purchase provides the Purchase document.
// A purchase records materials received from a supplier and credits
// material stock.
package purchase

import (
	"time"

	"bizstock/internal/core/entity"
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain/inventory"
)

// Purchase is a receipt of materials from a supplier.
type Purchase struct {
	entity.Document

	// SupplierID is the delivering party (required reference)
	SupplierID id.ID `db:"supplier_id" json:"supplierId"`

	// Details are the received material lines
	Details []Detail `db:"-" json:"purchaseDetails"`
}

// Detail is one received material line.
type Detail struct {
	ID         id.ID          `db:"id" json:"id"`
	PurchaseID id.ID          `db:"purchase_id" json:"purchaseId"`
	MaterialID id.ID          `db:"material_id" json:"materialId"`
	Quantity   types.Quantity `db:"quantity" json:"quantity"`
}

// NewPurchase creates a new Purchase document.
func NewPurchase(code string, date time.Time, supplierID id.ID) *Purchase {
	return &Purchase{
		Document:   entity.NewDocument(code, date),
		SupplierID: supplierID,
		Details:    make([]Detail, 0),
	}
}

// AddDetail appends a received material line.
func (p *Purchase) AddDetail(materialID id.ID, qty types.Quantity) {
	p.Details = append(p.Details, Detail{
		ID:         id.New(),
		PurchaseID: p.ID,
		MaterialID: materialID,
		Quantity:   qty,
	})
}

// LedgerLines converts the details into ledger lines.
func (p *Purchase) LedgerLines() []inventory.Line {
	lines := make([]inventory.Line, 0, len(p.Details))
	for _, d := range p.Details {
		lines = append(lines, inventory.Line{ItemID: d.MaterialID, Qty: d.Quantity})
	}
	return lines
}
