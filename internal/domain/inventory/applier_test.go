package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizstock/internal/core/apperror"
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
)

// fakeStore holds balances in memory and records the order of writes.
type fakeStore struct {
	balances map[id.ID]types.Quantity
	applied  []Delta
	kind     Kind
}

func newFakeStore(kind Kind) *fakeStore {
	return &fakeStore{balances: make(map[id.ID]types.Quantity), kind: kind}
}

func (s *fakeStore) AddQuantity(ctx context.Context, itemID id.ID, delta types.Quantity) error {
	bal, ok := s.balances[itemID]
	if !ok {
		return apperror.NewNotFound("item", itemID)
	}
	next := bal.Add(delta)
	if next.IsNegative() {
		return apperror.NewInsufficientStock(itemID.String(), delta.Neg().Float64())
	}
	s.balances[itemID] = next
	s.applied = append(s.applied, Delta{Kind: s.kind, ItemID: itemID, Qty: delta})
	return nil
}

func (s *fakeStore) QuantityForUpdate(ctx context.Context, itemID id.ID) (types.Quantity, error) {
	bal, ok := s.balances[itemID]
	if !ok {
		return 0, apperror.NewNotFound("item", itemID)
	}
	return bal, nil
}

func newTestApplier() (*Applier, *fakeStore, *fakeStore) {
	materials := newFakeStore(KindMaterial)
	products := newFakeStore(KindProduct)
	return NewApplier(materials, products), materials, products
}

func TestCheckSufficiency_AllCovered(t *testing.T) {
	applier, materials, products := newTestApplier()
	oak := id.New()
	table := id.New()
	materials.balances[oak] = qty(10)
	products.balances[table] = qty(0)

	shortage, err := applier.CheckSufficiency(context.Background(), ProductionCreate(table, qty(4), []BOMLine{
		{MaterialID: oak, QtyPerUnit: qty(2.5)},
	}))

	require.NoError(t, err)
	assert.Nil(t, shortage)
}

func TestCheckSufficiency_ReportsFirstShortage(t *testing.T) {
	applier, materials, products := newTestApplier()
	oak := id.New()
	table := id.New()
	materials.balances[oak] = qty(9)
	products.balances[table] = qty(0)

	shortage, err := applier.CheckSufficiency(context.Background(), ProductionCreate(table, qty(4), []BOMLine{
		{MaterialID: oak, QtyPerUnit: qty(2.5)},
	}))

	require.NoError(t, err)
	require.NotNil(t, shortage)
	assert.Equal(t, KindMaterial, shortage.Kind)
	assert.Equal(t, oak, shortage.ItemID)
	assert.Equal(t, qty(9), shortage.Available)
	assert.Equal(t, qty(10), shortage.Requested)
}

func TestCheckSufficiency_TracksRunningBalance(t *testing.T) {
	applier, _, products := newTestApplier()
	table := id.New()
	products.balances[table] = qty(3)

	// An edit restores 2 before deducting 5: 3 + 2 - 5 = 0, covered.
	shortage, err := applier.CheckSufficiency(context.Background(), OrderEdit(
		[]Line{{ItemID: table, Qty: qty(2)}},
		[]Line{{ItemID: table, Qty: qty(5)}},
	))
	require.NoError(t, err)
	assert.Nil(t, shortage)

	// Deducting 6 would leave -1.
	shortage, err = applier.CheckSufficiency(context.Background(), OrderEdit(
		[]Line{{ItemID: table, Qty: qty(2)}},
		[]Line{{ItemID: table, Qty: qty(6)}},
	))
	require.NoError(t, err)
	require.NotNil(t, shortage)
	assert.Equal(t, qty(5), shortage.Available)
	assert.Equal(t, qty(6), shortage.Requested)
}

func TestCheckSufficiency_UnknownItem(t *testing.T) {
	applier, _, _ := newTestApplier()

	_, err := applier.CheckSufficiency(context.Background(), OrderCreate([]Line{
		{ItemID: id.New(), Qty: qty(1)},
	}))

	require.Error(t, err)
	assert.True(t, apperror.IsNotFound(err))
}

func TestApply_PreservesDeltaOrder(t *testing.T) {
	applier, materials, products := newTestApplier()
	oak := id.New()
	table := id.New()
	materials.balances[oak] = qty(10)
	products.balances[table] = qty(0)

	deltas := ProductionCreate(table, qty(4), []BOMLine{{MaterialID: oak, QtyPerUnit: qty(2.5)}})
	require.NoError(t, applier.Apply(context.Background(), deltas))

	assert.Equal(t, qty(0), materials.balances[oak])
	assert.Equal(t, qty(4), products.balances[table])

	require.Len(t, materials.applied, 1)
	require.Len(t, products.applied, 1)
	assert.Equal(t, qty(-10), materials.applied[0].Qty)
}

func TestApply_StopsOnFirstError(t *testing.T) {
	applier, materials, _ := newTestApplier()
	oak := id.New()
	pine := id.New()
	materials.balances[oak] = qty(5)
	materials.balances[pine] = qty(5)

	err := applier.Apply(context.Background(), []Delta{
		{Kind: KindMaterial, ItemID: oak, Qty: qty(-6)},
		{Kind: KindMaterial, ItemID: pine, Qty: qty(-1)},
	})

	require.Error(t, err)
	// The failing delta left both balances untouched.
	assert.Equal(t, qty(5), materials.balances[oak])
	assert.Equal(t, qty(5), materials.balances[pine])
}

func TestApply_UnknownKind(t *testing.T) {
	applier, _, _ := newTestApplier()

	err := applier.Apply(context.Background(), []Delta{{Kind: Kind("warehouse"), ItemID: id.New(), Qty: qty(1)}})

	assert.Error(t, err)
}
