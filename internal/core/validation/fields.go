// Package validation accumulates per-field validation messages.
// Services collect all failures for a request into one Fields map and
// return them as a single field validation error.
package validation

import "bizstock/internal/core/apperror"

// Fields maps a request field name to its validation message.
// Keys follow the API contract (e.g. "Code", "CategoryId", "PurchaseDate").
type Fields map[string]string

// New returns an empty Fields map.
func New() Fields {
	return make(Fields)
}

// Add records a message for a field. The first message for a field wins;
// later messages for the same field are ignored.
func (f Fields) Add(field, message string) {
	if _, exists := f[field]; exists {
		return
	}
	f[field] = message
}

// Has reports whether a message is already recorded for the field.
func (f Fields) Has(field string) bool {
	_, ok := f[field]
	return ok
}

// Empty reports whether no messages were recorded.
func (f Fields) Empty() bool {
	return len(f) == 0
}

// Err converts accumulated messages into an AppError, or nil if none.
func (f Fields) Err() error {
	if len(f) == 0 {
		return nil
	}
	return apperror.NewFieldValidation(f)
}
