package catalog_repo

import (
	"context"

	"github.com/Masterminds/squirrel"

	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain/catalogs/material"
	"bizstock/internal/infrastructure/storage/postgres"
)

const materialTable = "cat_material"

// MaterialRepo implements material.Repository.
type MaterialRepo struct {
	*BaseCatalogRepo[*material.Material]
}

// NewMaterialRepo creates a new material repository.
func NewMaterialRepo(txm *postgres.TxManager) *MaterialRepo {
	return &MaterialRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			materialTable,
			postgres.ExtractDBColumns[material.Material](),
			func() *material.Material { return &material.Material{} },
		),
	}
}

// Find retrieves materials matching the filter, ordered by name.
func (r *MaterialRepo) Find(ctx context.Context, filter material.Filter) ([]*material.Material, error) {
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

	q = q.OrderBy("name ASC")

	return r.FindMany(ctx, q)
}

// AddQuantity shifts the stock balance by delta.
func (r *MaterialRepo) AddQuantity(ctx context.Context, materialID id.ID, delta types.Quantity) error {
	return addQuantity(ctx, r.txm, materialTable, materialID, delta)
}

// QuantityForUpdate reads the stock balance with a row lock.
func (r *MaterialRepo) QuantityForUpdate(ctx context.Context, materialID id.ID) (types.Quantity, error) {
	return quantityForUpdate(ctx, r.txm, materialTable, materialID)
}
