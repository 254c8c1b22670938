package handlers

import (
	"bizstock/internal/domain/catalogs/supplier"
	"bizstock/internal/infrastructure/http/v1/dto"
)

// SupplierHTTPHandler is a shorthand for the generic configuration.
type SupplierHTTPHandler = CatalogHandler[
	*supplier.Supplier,
	dto.CreateSupplierRequest,
	dto.UpdateSupplierRequest,
]

// NewSupplierHandler wires the generic catalog handler for suppliers.
func NewSupplierHandler(base *BaseHandler, service *supplier.Service) *SupplierHTTPHandler {
	return NewCatalogHandler(base, CatalogHandlerConfig[
		*supplier.Supplier,
		dto.CreateSupplierRequest,
		dto.UpdateSupplierRequest,
	]{
		Service:    service.CatalogService,
		EntityName: "supplier",
		MapCreateDTO: func(req dto.CreateSupplierRequest) *supplier.Supplier {
			return req.ToEntity()
		},
		ApplyUpdateDTO: func(req dto.UpdateSupplierRequest, existing *supplier.Supplier) *supplier.Supplier {
			req.ApplyTo(existing)
			return existing
		},
		UpdateID: func(req dto.UpdateSupplierRequest) string { return req.ID },
		Zero:     func() *supplier.Supplier { return &supplier.Supplier{} },
	})
}
