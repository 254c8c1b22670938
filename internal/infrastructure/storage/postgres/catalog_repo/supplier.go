package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"bizstock/internal/domain"
	"bizstock/internal/domain/catalogs/supplier"
	"bizstock/internal/infrastructure/storage/postgres"
)

const supplierTable = "cat_supplier"

// SupplierRepo implements supplier.Repository.
type SupplierRepo struct {
	*BaseCatalogRepo[*supplier.Supplier]
}

// NewSupplierRepo creates a new supplier repository.
func NewSupplierRepo(txm *postgres.TxManager) *SupplierRepo {
	return &SupplierRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			supplierTable,
			postgres.ExtractDBColumns[supplier.Supplier](),
			func() *supplier.Supplier { return &supplier.Supplier{} },
		),
	}
}

// List searches name, code and email, ordered by name.
func (r *SupplierRepo) List(ctx context.Context, filter domain.ListFilter) ([]*supplier.Supplier, error) {
	q := r.baseSelect(ctx)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"code": pattern},
			squirrel.ILike{"email": pattern},
		})
	}

	if len(filter.IDs) > 0 {
		q = q.Where(squirrel.Eq{"id": filter.IDs})
	}

	q = q.OrderBy("name ASC")

	return r.FindMany(ctx, q)
}
