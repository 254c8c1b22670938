package inventory

import (
	"context"
	"fmt"

	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
)

// Store is the balance surface a delta kind is applied against.
// Material and product repositories both satisfy it.
type Store interface {
	// AddQuantity shifts the balance by delta (positive or negative).
	AddQuantity(ctx context.Context, itemID id.ID, delta types.Quantity) error

	// QuantityForUpdate reads the balance with a row lock, so checks and
	// the writes that follow see the same value.
	QuantityForUpdate(ctx context.Context, itemID id.ID) (types.Quantity, error)
}

// Shortage describes the first delta that would drive a balance negative.
type Shortage struct {
	Kind      Kind
	ItemID    id.ID
	Available types.Quantity
	Requested types.Quantity
}

// Applier executes ledger deltas against the stock balances.
// All methods must run inside a transaction: sufficiency checks lock the
// rows they read, and the lock must cover the writes that follow.
type Applier struct {
	Materials Store
	Products  Store
}

// NewApplier creates an Applier over the two balance stores.
func NewApplier(materials, products Store) *Applier {
	return &Applier{Materials: materials, Products: products}
}

func (a *Applier) store(kind Kind) (Store, error) {
	switch kind {
	case KindMaterial:
		return a.Materials, nil
	case KindProduct:
		return a.Products, nil
	default:
		return nil, fmt.Errorf("unknown stock kind: %q", kind)
	}
}

// CheckSufficiency locks every affected balance and walks the deltas in
// order, tracking the running balance per item. It returns the first
// delta that would go negative, or nil if all balances stay at or above
// zero. The locks are held until the surrounding transaction ends.
func (a *Applier) CheckSufficiency(ctx context.Context, deltas []Delta) (*Shortage, error) {
	type key struct {
		kind Kind
		id   id.ID
	}
	balances := make(map[key]types.Quantity, len(deltas))

	for _, d := range deltas {
		k := key{d.Kind, d.ItemID}
		bal, seen := balances[k]
		if !seen {
			store, err := a.store(d.Kind)
			if err != nil {
				return nil, err
			}
			bal, err = store.QuantityForUpdate(ctx, d.ItemID)
			if err != nil {
				return nil, err
			}
		}

		bal = bal.Add(d.Qty)
		if bal.IsNegative() {
			return &Shortage{
				Kind:      d.Kind,
				ItemID:    d.ItemID,
				Available: bal.Sub(d.Qty),
				Requested: d.Qty.Neg(),
			}, nil
		}
		balances[k] = bal
	}

	return nil, nil
}

// Apply executes the deltas sequentially, preserving their order.
func (a *Applier) Apply(ctx context.Context, deltas []Delta) error {
	for _, d := range deltas {
		store, err := a.store(d.Kind)
		if err != nil {
			return err
		}
		if err := store.AddQuantity(ctx, d.ItemID, d.Qty); err != nil {
			return fmt.Errorf("apply %s delta for %s: %w", d.Kind, d.ItemID, err)
		}
	}
	return nil
}
