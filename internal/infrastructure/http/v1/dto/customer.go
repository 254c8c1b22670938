package dto

import (
	"bizstock/internal/domain/catalogs/customer"
)

// CreateCustomerRequest is the request body for creating a customer.
type CreateCustomerRequest struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Contact  *string `json:"contact"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Postal   *string `json:"postalCode"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Web      *string `json:"website"`
	ImageURL *string `json:"imageUrl"`
}

// ToEntity converts DTO to domain entity.
func (r *CreateCustomerRequest) ToEntity() *customer.Customer {
	item := customer.NewCustomer(r.Code, r.Name)
	item.Contact = r.Contact
	item.Address = r.Address
	item.City = r.City
	item.Postal = r.Postal
	item.Phone = r.Phone
	item.Email = r.Email
	item.Web = r.Web
	item.ImageURL = r.ImageURL
	return item
}

// UpdateCustomerRequest is the request body for patching a customer.
type UpdateCustomerRequest struct {
	ID       string  `json:"id"`
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Contact  *string `json:"contact"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	Postal   *string `json:"postalCode"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Web      *string `json:"website"`
	ImageURL *string `json:"imageUrl"`
	Version  int     `json:"version"`
}

// ApplyTo applies update DTO to existing entity.
func (r *UpdateCustomerRequest) ApplyTo(item *customer.Customer) {
	item.Code = r.Code
	item.Name = r.Name
	item.Contact = r.Contact
	item.Address = r.Address
	item.City = r.City
	item.Postal = r.Postal
	item.Phone = r.Phone
	item.Email = r.Email
	item.Web = r.Web
	item.ImageURL = r.ImageURL
	if r.Version > 0 {
		item.Version = r.Version
	}
}
