package document_repo

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"bizstock/internal/domain/documents/production"
	"bizstock/internal/infrastructure/storage/postgres"
)

const productionTable = "doc_production"

// ProductionRepo implements production.Repository.
type ProductionRepo struct {
	*BaseDocumentRepo[*production.Production]
}

// NewProductionRepo creates a new production repository.
func NewProductionRepo(txm *postgres.TxManager) *ProductionRepo {
	return &ProductionRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			productionTable,
			postgres.ExtractDBColumns[production.Production](),
			func() *production.Production { return &production.Production{} },
		),
	}
}

// Find retrieves productions matching the filter, newest first.
func (r *ProductionRepo) Find(ctx context.Context, filter production.Filter) ([]*production.Production, error) {
	q := r.baseSelect(ctx)

	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"code": "%" + filter.Search + "%"})
	}

	if filter.ProductID != nil {
		q = q.Where(squirrel.Eq{"product_id": *filter.ProductID})
	}

	if filter.Date != nil {
		q = q.Where(sameDay("date", *filter.Date))
	}

	q = q.OrderBy("date DESC", "code DESC")

	return r.FindMany(ctx, q)
}

// ListDates returns the distinct business dates of all productions, newest first.
func (r *ProductionRepo) ListDates(ctx context.Context) ([]time.Time, error) {
	return r.listDates(ctx, true)
}
