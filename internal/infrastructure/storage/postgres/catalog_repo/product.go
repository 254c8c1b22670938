package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain/catalogs/product"
	"bizstock/internal/infrastructure/storage/postgres"
)

const (
	productTable       = "cat_product"
	productDetailTable = "cat_product_detail"
)

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}

// Find retrieves products matching the filter, ordered by name.
func (r *ProductRepo) Find(ctx context.Context, filter product.Filter) ([]*product.Product, error) {
	q := r.baseSelect(ctx)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		q = q.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"code": pattern},
		})
	}

	if filter.CategoryID != nil {
		q = q.Where(squirrel.Eq{"category_id": *filter.CategoryID})
	}

	if filter.Minimum != nil {
		q = q.Where(squirrel.LtOrEq{"quantity": *filter.Minimum})
	}

	q = q.OrderBy("name ASC")

	return r.FindMany(ctx, q)
}

// GetDetails retrieves the bill of materials for a product.
func (r *ProductRepo) GetDetails(ctx context.Context, productID id.ID) ([]product.Detail, error) {
	q := r.Builder().
		Select("id", "product_id", "material_id", "quantity").
		From(productDetailTable).
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var details []product.Detail
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &details, sql, args...); err != nil {
		return nil, fmt.Errorf("get product details: %w", err)
	}

	return details, nil
}

// SaveDetails replaces the bill of materials for a product.
// Runs delete-then-insert; call inside a transaction.
func (r *ProductRepo) SaveDetails(ctx context.Context, productID id.ID, details []product.Detail) error {
	querier := r.txm.GetQuerier(ctx)

	del := r.Builder().
		Delete(productDetailTable).
		Where(squirrel.Eq{"product_id": productID})

	sql, args, err := del.ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("delete product details: %w", err)
	}

	if len(details) == 0 {
		return nil
	}

	ins := r.Builder().
		Insert(productDetailTable).
		Columns("id", "product_id", "material_id", "quantity")
	for _, d := range details {
		lineID := d.ID
		if id.IsNil(lineID) {
			lineID = id.New()
		}
		ins = ins.Values(lineID, productID, d.MaterialID, d.Quantity)
	}

	sql, args, err = ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert product details: %w", err)
	}

	return nil
}

// AddQuantity shifts the stock balance by delta.
func (r *ProductRepo) AddQuantity(ctx context.Context, productID id.ID, delta types.Quantity) error {
	return addQuantity(ctx, r.txm, productTable, productID, delta)
}

// QuantityForUpdate reads the stock balance with a row lock.
func (r *ProductRepo) QuantityForUpdate(ctx context.Context, productID id.ID) (types.Quantity, error) {
	return quantityForUpdate(ctx, r.txm, productTable, productID)
}
