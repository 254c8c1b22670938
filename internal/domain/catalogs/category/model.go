// Package category provides the Category catalog.
// Categories group materials and products for filtering and reporting.
package category

import (
	"bizstock/internal/core/entity"
)

// Category groups materials and products.
type Category struct {
	entity.Catalog

	// Description is an optional free-form note
	Description *string `db:"description" json:"description,omitempty"`
}

// NewCategory creates a new Category with required fields.
func NewCategory(code, name string) *Category {
	return &Category{
		Catalog: entity.NewCatalog(code, name),
	}
}
