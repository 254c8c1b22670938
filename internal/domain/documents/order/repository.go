package order

import (
	"context"
	"time"

	"bizstock/internal/core/id"
)

// Repository defines operations for order documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Order) error
	GetByID(ctx context.Context, docID id.ID) (*Order, error)
	Update(ctx context.Context, doc *Order) error
	Delete(ctx context.Context, docID id.ID) error

	// Detail line operations. Lines belong to exactly one order and are
	// removed together with it.
	GetDetails(ctx context.Context, docID id.ID) ([]Detail, error)
	SaveDetails(ctx context.Context, docID id.ID, details []Detail) error

	// Find retrieves orders matching the filter, newest first.
	Find(ctx context.Context, filter Filter) ([]*Order, error)

	// ListDates returns the distinct business dates of all orders,
	// newest first.
	ListDates(ctx context.Context) ([]time.Time, error)

	// CodeInUse checks whether another order already holds the code
	// (case-insensitive).
	CodeInUse(ctx context.Context, code string, excludeID id.ID) (bool, error)
}

// Filter narrows order list queries.
type Filter struct {
	// Search matches the document code, case-insensitive
	Search string

	CustomerID *id.ID
	ProductID  *id.ID

	// Date keeps orders on this calendar day
	Date *time.Time
}
