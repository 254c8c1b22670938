// Package product provides the Product catalog.
// A product carries a bill of materials: the materials consumed to
// produce one unit.
package product

import (
	"bizstock/internal/core/entity"
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
)

// Product is a manufactured item held in stock.
type Product struct {
	entity.Catalog

	// CategoryID is the owning category (required reference)
	CategoryID id.ID `db:"category_id" json:"categoryId"`

	// Quantity is the current stock balance. Starts at zero; only
	// production and order documents move it.
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// Unit is the unit of measure label
	Unit string `db:"unit" json:"unit"`

	// Price is the reference unit price
	Price types.Money `db:"price" json:"price"`

	ImageURL *string `db:"image_url" json:"imageUrl,omitempty"`

	// Details is the bill of materials (at least one line required)
	Details []Detail `db:"-" json:"productDetails"`
}

// Detail is one bill-of-materials line: material consumed per unit produced.
type Detail struct {
	ID         id.ID          `db:"id" json:"id"`
	ProductID  id.ID          `db:"product_id" json:"productId"`
	MaterialID id.ID          `db:"material_id" json:"materialId"`
	Quantity   types.Quantity `db:"quantity" json:"quantity"`
}

// NewProduct creates a new Product with zero stock.
func NewProduct(code, name string, categoryID id.ID) *Product {
	return &Product{
		Catalog:    entity.NewCatalog(code, name),
		CategoryID: categoryID,
		Price:      types.Zero(),
		Details:    make([]Detail, 0),
	}
}

// AddDetail appends a bill-of-materials line.
func (p *Product) AddDetail(materialID id.ID, qty types.Quantity) {
	p.Details = append(p.Details, Detail{
		ID:         id.New(),
		ProductID:  p.ID,
		MaterialID: materialID,
		Quantity:   qty,
	})
}
