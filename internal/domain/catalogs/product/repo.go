package product

import (
	"context"

	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain"
)

// Repository defines the interface for Product persistence.
type Repository interface {
	domain.CatalogRepository[*Product]

	// Find retrieves products matching the filter, ordered by name.
	Find(ctx context.Context, filter Filter) ([]*Product, error)

	// Detail line operations. Lines belong to exactly one product and
	// are removed together with it.
	GetDetails(ctx context.Context, productID id.ID) ([]Detail, error)
	SaveDetails(ctx context.Context, productID id.ID, details []Detail) error

	// AddQuantity shifts the stock balance by delta (positive or negative).
	AddQuantity(ctx context.Context, productID id.ID, delta types.Quantity) error

	// QuantityForUpdate reads the stock balance with a row lock.
	QuantityForUpdate(ctx context.Context, productID id.ID) (types.Quantity, error)
}

// Filter narrows product list queries.
type Filter struct {
	// Search matches code or name, case-insensitive
	Search string

	// CategoryID restricts to one category
	CategoryID *id.ID

	// Minimum, when set, keeps only products with stock at or below it
	// (low-stock view)
	Minimum *types.Quantity
}
