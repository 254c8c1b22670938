// Package customer provides the Customer catalog.
package customer

import (
	"bizstock/internal/core/entity"
)

// Customer is a party that places orders.
type Customer struct {
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

// NewCustomer creates a new Customer with required fields.
func NewCustomer(code, name string) *Customer {
	return &Customer{
		Catalog: entity.NewCatalog(code, name),
	}
}

// EmailValue returns the email or empty string.
func (c *Customer) EmailValue() string {
	if c.Email == nil {
		return ""
	}
	return *c.Email
}
