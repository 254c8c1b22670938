package purchase

import (
	"context"
	"time"

	"bizstock/internal/core/id"
)

// Repository defines operations for purchase documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Purchase) error
	GetByID(ctx context.Context, docID id.ID) (*Purchase, error)
	Update(ctx context.Context, doc *Purchase) error
	Delete(ctx context.Context, docID id.ID) error

	// Detail line operations. Lines belong to exactly one purchase and
	// are removed together with it.
	GetDetails(ctx context.Context, docID id.ID) ([]Detail, error)
	SaveDetails(ctx context.Context, docID id.ID, details []Detail) error

	// Find retrieves purchases matching the filter, newest first.
	Find(ctx context.Context, filter Filter) ([]*Purchase, error)

	// ListDates returns the business dates of all purchases, newest
	// first. The list is not de-duplicated.
	ListDates(ctx context.Context) ([]time.Time, error)

	// CodeInUse checks whether another purchase already holds the code
	// (case-insensitive).
	CodeInUse(ctx context.Context, code string, excludeID id.ID) (bool, error)
}

// Filter narrows purchase list queries.
type Filter struct {
	// Search matches the document code, case-insensitive
	Search string

	SupplierID *id.ID
	MaterialID *id.ID

	// Date keeps purchases on this calendar day
	Date *time.Time
}
