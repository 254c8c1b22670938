package catalog_repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"bizstock/internal/core/apperror"
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/infrastructure/storage/postgres"
)

// addQuantity shifts a stock balance in place. The tables carry a
// CHECK (quantity >= 0) constraint as the last line of defense; a
// violation surfaces as an insufficient stock error.
func addQuantity(ctx context.Context, txm *postgres.TxManager, tableName string, itemID id.ID, delta types.Quantity) error {
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Update(tableName).
		Set("quantity", squirrel.Expr("quantity + ?", delta)).
		Where(squirrel.Eq{"id": itemID})

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build add quantity: %w", err)
	}

	result, err := txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return apperror.NewInsufficientStock(itemID.String(), delta.Neg().Float64()).WithCause(err)
		}
		return fmt.Errorf("add quantity %s: %w", tableName, err)
	}

	if result.RowsAffected() == 0 {
		return apperror.NewNotFound(tableName, itemID.String())
	}

	return nil
}

// quantityForUpdate reads a stock balance with a row lock.
func quantityForUpdate(ctx context.Context, txm *postgres.TxManager, tableName string, itemID id.ID) (types.Quantity, error) {
	q := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("quantity").
		From(tableName).
		Where(squirrel.Eq{"id": itemID}).
		Suffix("FOR UPDATE")

	sql, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build quantity query: %w", err)
	}

	var qty types.Quantity
	if err := txm.GetQuerier(ctx).QueryRow(ctx, sql, args...).Scan(&qty); err != nil {
		return 0, fmt.Errorf("quantity for update %s: %w", tableName, err)
	}

	return qty, nil
}
