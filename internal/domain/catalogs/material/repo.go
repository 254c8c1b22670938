package material

import (
	"context"

	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain"
)

// Repository defines the interface for Material persistence.
type Repository interface {
	domain.CatalogRepository[*Material]

	// Find retrieves materials matching the filter, ordered by name.
	Find(ctx context.Context, filter Filter) ([]*Material, error)

	// AddQuantity shifts the stock balance by delta (positive or negative).
	AddQuantity(ctx context.Context, materialID id.ID, delta types.Quantity) error

	// QuantityForUpdate reads the stock balance with a row lock.
	QuantityForUpdate(ctx context.Context, materialID id.ID) (types.Quantity, error)
}

// Filter narrows material list queries.
type Filter struct {
	// Search matches code or name, case-insensitive
	Search string

	// CategoryID restricts to one category
	CategoryID *id.ID
}
