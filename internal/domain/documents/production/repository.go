package production

import (
	"context"
	"time"

	"bizstock/internal/core/id"
)

// Repository defines operations for production documents.
type Repository interface {
	// CRUD operations
	Create(ctx context.Context, doc *Production) error
	GetByID(ctx context.Context, docID id.ID) (*Production, error)
	Update(ctx context.Context, doc *Production) error
	Delete(ctx context.Context, docID id.ID) error

	// Find retrieves productions matching the filter, newest first.
	Find(ctx context.Context, filter Filter) ([]*Production, error)

	// ListDates returns the distinct business dates of all productions,
	// newest first.
	ListDates(ctx context.Context) ([]time.Time, error)

	// CodeInUse checks whether another production already holds the code
	// (case-insensitive).
	CodeInUse(ctx context.Context, code string, excludeID id.ID) (bool, error)
}

// Filter narrows production list queries.
type Filter struct {
	// Search matches the document code, case-insensitive
	Search string

	ProductID *id.ID

	// Date keeps productions on this calendar day
	Date *time.Time
}
