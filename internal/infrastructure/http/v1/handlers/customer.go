package handlers

import (
	"bizstock/internal/domain/catalogs/customer"
	"bizstock/internal/infrastructure/http/v1/dto"
)

// CustomerHTTPHandler is a shorthand for the generic configuration.
type CustomerHTTPHandler = CatalogHandler[
	*customer.Customer,
	dto.CreateCustomerRequest,
	dto.UpdateCustomerRequest,
]

// NewCustomerHandler wires the generic catalog handler for customers.
func NewCustomerHandler(base *BaseHandler, service *customer.Service) *CustomerHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[
		*customer.Customer,
		dto.CreateCustomerRequest,
		dto.UpdateCustomerRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "customer",
		MapCreateDTO: func(req dto.CreateCustomerRequest) *customer.Customer {
			return req.ToEntity()
		},
		ApplyUpdateDTO: func(req dto.UpdateCustomerRequest, existing *customer.Customer) *customer.Customer {
			req.ApplyTo(existing)
			return existing
		},
		UpdateID: func(req dto.UpdateCustomerRequest) string { return req.ID },
		Zero:     func() *customer.Customer { return &customer.Customer{} },
	})
}
