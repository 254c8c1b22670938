package document_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bizstock/internal/core/id"
	"bizstock/internal/domain/documents/purchase"
	"bizstock/internal/infrastructure/storage/postgres"
)

const (
	purchaseTable       = "doc_purchase"
	purchaseDetailTable = "doc_purchase_detail"
)

// PurchaseRepo implements purchase.Repository.
type PurchaseRepo struct {
	*BaseDocumentRepo[*purchase.Purchase]
}

// NewPurchaseRepo creates a new purchase repository.
func NewPurchaseRepo(txm *postgres.TxManager) *PurchaseRepo {
	return &PurchaseRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			purchaseTable,
			postgres.ExtractDBColumns[purchase.Purchase](),
			func() *purchase.Purchase { return &purchase.Purchase{} },
		),
	}
}

// GetDetails retrieves detail lines for a purchase.
func (r *PurchaseRepo) GetDetails(ctx context.Context, docID id.ID) ([]purchase.Detail, error) {
	q := r.Builder().
		Select("id", "purchase_id", "material_id", "quantity").
		From(purchaseDetailTable).
		Where(squirrel.Eq{"purchase_id": docID}).
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var details []purchase.Detail
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &details, sql, args...); err != nil {
		return nil, fmt.Errorf("get purchase details: %w", err)
	}

	return details, nil
}

// SaveDetails replaces detail lines for a purchase (delete existing + insert new).
// Call inside a transaction.
func (r *PurchaseRepo) SaveDetails(ctx context.Context, docID id.ID, details []purchase.Detail) error {
	querier := r.txm.GetQuerier(ctx)

	deleteSQL := "DELETE FROM " + purchaseDetailTable + " WHERE purchase_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing details: %w", err)
	}

	if len(details) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(purchaseDetailTable).
		Columns("id", "purchase_id", "material_id", "quantity")

	for _, d := range details {
		lineID := d.ID
		if id.IsNil(lineID) {
			lineID = id.New()
		}
		q = q.Values(lineID, docID, d.MaterialID, d.Quantity)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert details: %w", err)
	}

	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert details: %w", err)
	}

	return nil
}

// Find retrieves purchases matching the filter, newest first.
func (r *PurchaseRepo) Find(ctx context.Context, filter purchase.Filter) ([]*purchase.Purchase, error) {
	q := r.baseSelect(ctx)

	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"code": "%" + filter.Search + "%"})
	}

	if filter.SupplierID != nil {
		q = q.Where(squirrel.Eq{"supplier_id": *filter.SupplierID})
	}

	if filter.MaterialID != nil {
		q = q.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM "+purchaseDetailTable+" d WHERE d.purchase_id = "+purchaseTable+".id AND d.material_id = ?)",
			*filter.MaterialID,
		))
	}

	if filter.Date != nil {
		q = q.Where(sameDay("date", *filter.Date))
	}

	q = q.OrderBy("date DESC", "code DESC")

	return r.FindMany(ctx, q)
}

// ListDates returns the business dates of all purchases, newest first.
// One entry per document; days with several purchases repeat.
func (r *PurchaseRepo) ListDates(ctx context.Context) ([]time.Time, error) {
	return r.listDates(ctx, false)
}
