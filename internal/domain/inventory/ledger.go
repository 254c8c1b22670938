// Package inventory computes stock movements for purchase, production and
// order documents. It is pure: deltas are derived from document lines and
// applied elsewhere, inside the same transaction that saves the document.
package inventory

import (
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
)

// Kind identifies which balance a delta applies to.
type Kind string

const (
	KindMaterial Kind = "material"
	KindProduct  Kind = "product"
)

// Delta is one signed stock movement. Deltas are ordered: reversals of a
// previous document state always precede applications of the new state,
// so intermediate balances never mix old and new lines.
type Delta struct {
	Kind   Kind
	ItemID id.ID
	Qty    types.Quantity
}

// Line is a document line referencing a stocked item.
type Line struct {
	ItemID id.ID
	Qty    types.Quantity
}

// BOMLine is a material requirement per unit of product.
type BOMLine struct {
	MaterialID id.ID
	QtyPerUnit types.Quantity
}

// PurchaseCreate increases material stock by each received line.
func PurchaseCreate(lines []Line) []Delta {
	deltas := make([]Delta, 0, len(lines))
	for _, ln := range lines {
		deltas = append(deltas, Delta{Kind: KindMaterial, ItemID: ln.ItemID, Qty: ln.Qty})
	}
	return deltas
}

// PurchaseEdit reverses every old line, then applies every new line.
// A material present in both phases nets out to the difference.
func PurchaseEdit(oldLines, newLines []Line) []Delta {
	deltas := make([]Delta, 0, len(oldLines)+len(newLines))
	for _, ln := range oldLines {
		deltas = append(deltas, Delta{Kind: KindMaterial, ItemID: ln.ItemID, Qty: ln.Qty.Neg()})
	}
	for _, ln := range newLines {
		deltas = append(deltas, Delta{Kind: KindMaterial, ItemID: ln.ItemID, Qty: ln.Qty})
	}
	return deltas
}

// PurchaseDelete removes the document without touching stock. Received
// goods stay on hand; only the paper trail goes away.
func PurchaseDelete() []Delta {
	return nil
}

// ProductionCreate consumes materials per the product's bill of materials
// and adds the produced quantity to product stock. Materials are consumed
// before the product is credited.
func ProductionCreate(productID id.ID, qty types.Quantity, bom []BOMLine) []Delta {
	deltas := make([]Delta, 0, len(bom)+1)
	for _, b := range bom {
		deltas = append(deltas, Delta{Kind: KindMaterial, ItemID: b.MaterialID, Qty: qty.Mul(b.QtyPerUnit).Neg()})
	}
	deltas = append(deltas, Delta{Kind: KindProduct, ItemID: productID, Qty: qty})
	return deltas
}

// ProductionEdit fully reverses the old run (materials restored, product
// debited) before applying the new one, including a product change.
func ProductionEdit(oldProductID id.ID, oldQty types.Quantity, oldBOM []BOMLine,
	newProductID id.ID, newQty types.Quantity, newBOM []BOMLine) []Delta {

	deltas := make([]Delta, 0, len(oldBOM)+len(newBOM)+2)
	for _, b := range oldBOM {
		deltas = append(deltas, Delta{Kind: KindMaterial, ItemID: b.MaterialID, Qty: oldQty.Mul(b.QtyPerUnit)})
	}
	deltas = append(deltas, Delta{Kind: KindProduct, ItemID: oldProductID, Qty: oldQty.Neg()})
	deltas = append(deltas, ProductionCreate(newProductID, newQty, newBOM)...)
	return deltas
}

// ProductionDelete keeps produced stock and consumed materials as they are.
func ProductionDelete() []Delta {
	return nil
}

// OrderCreate decreases product stock by each ordered line.
func OrderCreate(lines []Line) []Delta {
	deltas := make([]Delta, 0, len(lines))
	for _, ln := range lines {
		deltas = append(deltas, Delta{Kind: KindProduct, ItemID: ln.ItemID, Qty: ln.Qty.Neg()})
	}
	return deltas
}

// OrderEdit restores every old line, then deducts every new line.
func OrderEdit(oldLines, newLines []Line) []Delta {
	deltas := make([]Delta, 0, len(oldLines)+len(newLines))
	for _, ln := range oldLines {
		deltas = append(deltas, Delta{Kind: KindProduct, ItemID: ln.ItemID, Qty: ln.Qty})
	}
	for _, ln := range newLines {
		deltas = append(deltas, Delta{Kind: KindProduct, ItemID: ln.ItemID, Qty: ln.Qty.Neg()})
	}
	return deltas
}

// OrderDelete does not return shipped goods to stock.
func OrderDelete() []Delta {
	return nil
}
