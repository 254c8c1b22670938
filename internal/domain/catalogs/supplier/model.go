// Package supplier provides the Supplier catalog.
package supplier

import (
	"bizstock/internal/core/entity"
)

// Supplier is a party that delivers materials.
type Supplier struct {
	entity.Catalog

	Contact  *string `db:"contact" json:"contact,omitempty"`
	Address  *string `db:"address" json:"address,omitempty"`
	City     *string `db:"city" json:"city,omitempty"`
	Postal   *string `db:"postal_code" json:"postalCode,omitempty"`
	Phone    *string `db:"phone" json:"phone,omitempty"`
	Email    *string `db:"email" json:"email,omitempty"`
	Web      *string `db:"website" json:"website,omitempty"`
	ImageURL *string `db:"image_url" json:"imageUrl,omitempty"`
}

// NewSupplier creates a new Supplier with required fields.
func NewSupplier(code, name string) *Supplier {
	return &Supplier{
		Catalog: entity.NewCatalog(code, name),
	}
}

// EmailValue returns the email or empty string.
func (s *Supplier) EmailValue() string {
	if s.Email == nil {
		return ""
	}
	return *s.Email
}
