package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"bizstock/internal/domain"
	"bizstock/internal/domain/catalogs/customer"
	"bizstock/internal/infrastructure/storage/postgres"
)

const customerTable = "cat_customer"

// CustomerRepo implements customer.Repository.
type CustomerRepo struct {
	*BaseCatalogRepo[*customer.Customer]
}

// NewCustomerRepo creates a new customer repository.
func NewCustomerRepo(txm *postgres.TxManager) *CustomerRepo {
	return &CustomerRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			customerTable,
			postgres.ExtractDBColumns[customer.Customer](),
			func() *customer.Customer { return &customer.Customer{} },
		),
	}
}

// List searches name, code and email, ordered by name.
func (r *CustomerRepo) List(ctx context.Context, filter domain.ListFilter) ([]*customer.Customer, error) {
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
