package document_repo

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"bizstock/internal/core/id"
	"bizstock/internal/domain/documents/order"
	"bizstock/internal/infrastructure/storage/postgres"
)

const (
	orderTable       = "doc_order"
	orderDetailTable = "doc_order_detail"
)

// OrderRepo implements order.Repository.
type OrderRepo struct {
	*BaseDocumentRepo[*order.Order]
}

// NewOrderRepo creates a new order repository.
func NewOrderRepo(txm *postgres.TxManager) *OrderRepo {
	return &OrderRepo{
		BaseDocumentRepo: NewBaseDocumentRepo(
			txm,
			orderTable,
			postgres.ExtractDBColumns[order.Order](),
			func() *order.Order { return &order.Order{} },
		),
	}
}

// GetDetails retrieves detail lines for an order.
func (r *OrderRepo) GetDetails(ctx context.Context, docID id.ID) ([]order.Detail, error) {
	q := r.Builder().
		Select("id", "order_id", "product_id", "quantity").
		From(orderDetailTable).
		Where(squirrel.Eq{"order_id": docID}).
		OrderBy("id ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var details []order.Detail
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &details, sql, args...); err != nil {
		return nil, fmt.Errorf("get order details: %w", err)
	}

	return details, nil
}

// SaveDetails replaces detail lines for an order (delete existing + insert new).
// Call inside a transaction.
func (r *OrderRepo) SaveDetails(ctx context.Context, docID id.ID, details []order.Detail) error {
	querier := r.txm.GetQuerier(ctx)

	deleteSQL := "DELETE FROM " + orderDetailTable + " WHERE order_id = $1"
	if _, err := querier.Exec(ctx, deleteSQL, docID); err != nil {
		return fmt.Errorf("delete existing details: %w", err)
	}

	if len(details) == 0 {
		return nil
	}

	q := r.Builder().
		Insert(orderDetailTable).
		Columns("id", "order_id", "product_id", "quantity")

	for _, d := range details {
		lineID := d.ID
		if id.IsNil(lineID) {
			lineID = id.New()
		}
		q = q.Values(lineID, docID, d.ProductID, d.Quantity)
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

// Find retrieves orders matching the filter, newest first.
func (r *OrderRepo) Find(ctx context.Context, filter order.Filter) ([]*order.Order, error) {
	q := r.baseSelect(ctx)

	if filter.Search != "" {
		q = q.Where(squirrel.ILike{"code": "%" + filter.Search + "%"})
	}

	if filter.CustomerID != nil {
		q = q.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}

	if filter.ProductID != nil {
		q = q.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM "+orderDetailTable+" d WHERE d.order_id = "+orderTable+".id AND d.product_id = ?)",
			*filter.ProductID,
		))
	}

	if filter.Date != nil {
		q = q.Where(sameDay("date", *filter.Date))
	}

	q = q.OrderBy("date DESC", "code DESC")

	return r.FindMany(ctx, q)
}

// ListDates returns the distinct business dates of all orders, newest first.
func (r *OrderRepo) ListDates(ctx context.Context) ([]time.Time, error) {
	return r.listDates(ctx, true)
}
