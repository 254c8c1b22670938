// Package material provides the Material catalog.
// Materials are raw stock consumed by production and replenished by purchases.
package material

import (
	"bizstock/internal/core/entity"
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
)

// Material is a raw item held in stock.
type Material struct {
	entity.Catalog

	// CategoryID is the owning category (required reference)
	CategoryID id.ID `db:"category_id" json:"categoryId"`

	// Quantity is the current stock balance. Starts at zero; only
	// purchase and production documents move it.
	Quantity types.Quantity `db:"quantity" json:"quantity"`

	// Unit is the unit of measure label (kg, pcs, m)
	Unit string `db:"unit" json:"unit"`

	// Price is the reference unit price
	Price types.Money `db:"price" json:"price"`

	ImageURL *string `db:"image_url" json:"imageUrl,omitempty"`
}

// NewMaterial creates a new Material with zero stock.
func NewMaterial(code, name string, categoryID id.ID) *Material {
	return &Material{
		Catalog:    entity.NewCatalog(code, name),
		CategoryID: categoryID,
		Price:      types.Zero(),
	}
}
