package entity

import (
	"context"
	"time"

	"bizstock/internal/core/apperror"
)

// Document is the base type for business transactions.
// Examples: Purchase, Production, Order.
type Document struct {
	BaseDocument

	// Code is the document number (unique within type)
	Code string `db:"code" json:"code"`

	// Date is the business date of the document
	Date time.Time `db:"date" json:"date"`
}

// NewDocument creates a new Document with generated ID.
func NewDocument(code string, date time.Time) Document {
	return Document{
		BaseDocument: NewBaseDocument(),
		Code:         code,
		Date:         date,
	}
}

// Validate implements Validatable interface.
func (d *Document) Validate(ctx context.Context) error {
	if d.Code == "" {
		return apperror.NewValidation("code is required").
			WithDetail("field", "code")
	}

	if d.Date.IsZero() {
		return apperror.NewValidation("date is required").
			WithDetail("field", "date")
	}

	return nil
}

// IsBackdated checks if document date is in the past.
func (d *Document) IsBackdated() bool {
	return d.Date.Before(time.Now().UTC().Truncate(24 * time.Hour))
}
