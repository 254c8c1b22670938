package purchase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizstock/internal/core/apperror"
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain/catalogs/material"
	"bizstock/internal/domain/catalogs/supplier"
	"bizstock/internal/domain/inventory"
)

type passTx struct{}

func (passTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo keeps purchases in memory.
type fakeRepo struct {
	docs    map[id.ID]*Purchase
	details map[id.ID][]Detail
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		docs:    make(map[id.ID]*Purchase),
		details: make(map[id.ID][]Detail),
	}
}

func (r *fakeRepo) Create(ctx context.Context, doc *Purchase) error {
	head := *doc
	head.Details = nil
	r.docs[doc.ID] = &head
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, docID id.ID) (*Purchase, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("purchase", docID)
	}
	head := *doc
	return &head, nil
}

func (r *fakeRepo) Update(ctx context.Context, doc *Purchase) error {
	if _, ok := r.docs[doc.ID]; !ok {
		return apperror.NewNotFound("purchase", doc.ID)
	}
	head := *doc
	head.Details = nil
	r.docs[doc.ID] = &head
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, docID id.ID) error {
	if _, ok := r.docs[docID]; !ok {
		return apperror.NewNotFound("purchase", docID)
	}
	delete(r.docs, docID)
	delete(r.details, docID)
	return nil
}

func (r *fakeRepo) GetDetails(ctx context.Context, docID id.ID) ([]Detail, error) {
	return r.details[docID], nil
}

func (r *fakeRepo) SaveDetails(ctx context.Context, docID id.ID, details []Detail) error {
	r.details[docID] = append([]Detail(nil), details...)
	return nil
}

func (r *fakeRepo) Find(ctx context.Context, filter Filter) ([]*Purchase, error) {
	var out []*Purchase
	for _, doc := range r.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (r *fakeRepo) ListDates(ctx context.Context) ([]time.Time, error) {
	var out []time.Time
	for _, doc := range r.docs {
		out = append(out, doc.Date)
	}
	return out, nil
}

func (r *fakeRepo) CodeInUse(ctx context.Context, code string, excludeID id.ID) (bool, error) {
	for _, doc := range r.docs {
		if doc.ID != excludeID && strings.EqualFold(doc.Code, code) {
			return true, nil
		}
	}
	return false, nil
}

// fakeSuppliers stubs existence checks; the embedded interface panics on
// anything else.
type fakeSuppliers struct {
	supplier.Repository
	ids map[id.ID]bool
}

func (r *fakeSuppliers) Exists(ctx context.Context, supplierID id.ID) (bool, error) {
	return r.ids[supplierID], nil
}

// fakeMaterials holds stock balances; the embedded interface panics on
// anything else.
type fakeMaterials struct {
	material.Repository
	balances map[id.ID]types.Quantity
}

func (r *fakeMaterials) Exists(ctx context.Context, materialID id.ID) (bool, error) {
	_, ok := r.balances[materialID]
	return ok, nil
}

func (r *fakeMaterials) AddQuantity(ctx context.Context, materialID id.ID, delta types.Quantity) error {
	bal, ok := r.balances[materialID]
	if !ok {
		return apperror.NewNotFound("material", materialID)
	}
	next := bal.Add(delta)
	if next.IsNegative() {
		return apperror.NewInsufficientStock(materialID.String(), delta.Neg().Float64())
	}
	r.balances[materialID] = next
	return nil
}

func (r *fakeMaterials) QuantityForUpdate(ctx context.Context, materialID id.ID) (types.Quantity, error) {
	bal, ok := r.balances[materialID]
	if !ok {
		return 0, apperror.NewNotFound("material", materialID)
	}
	return bal, nil
}

type fixture struct {
	service    *Service
	repo       *fakeRepo
	materials  *fakeMaterials
	supplierID id.ID
	oakID      id.ID
	pineID     id.ID
}

func newFixture() *fixture {
	repo := newFakeRepo()
	suppliers := &fakeSuppliers{ids: map[id.ID]bool{}}
	materials := &fakeMaterials{balances: map[id.ID]types.Quantity{}}

	f := &fixture{
		repo:       repo,
		materials:  materials,
		supplierID: id.New(),
		oakID:      id.New(),
		pineID:     id.New(),
	}
	suppliers.ids[f.supplierID] = true
	materials.balances[f.oakID] = 0
	materials.balances[f.pineID] = 0

	applier := inventory.NewApplier(materials, nil)
	f.service = NewService(repo, suppliers, materials, applier, passTx{})
	return f
}

func qty(v float64) types.Quantity {
	return types.NewQuantityFromFloat64(v)
}

func yesterday() time.Time {
	return time.Now().Add(-24 * time.Hour)
}

func TestCreate_CreditsMaterialStock(t *testing.T) {
	f := newFixture()

	doc := NewPurchase("PUR-001", yesterday(), f.supplierID)
	doc.AddDetail(f.oakID, qty(100))
	doc.AddDetail(f.pineID, qty(40))

	require.NoError(t, f.service.Create(context.Background(), doc))

	assert.Equal(t, qty(100), f.materials.balances[f.oakID])
	assert.Equal(t, qty(40), f.materials.balances[f.pineID])

	saved, err := f.service.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "PUR-001", saved.Code)
	assert.Len(t, saved.Details, 2)
}

func TestCreate_ValidationCollectsAllFields(t *testing.T) {
	f := newFixture()

	doc := NewPurchase("", time.Now().Add(time.Hour), id.Nil())
	doc.AddDetail(id.Nil(), qty(0))

	err := f.service.Create(context.Background(), doc)
	require.Error(t, err)

	fields := apperror.FieldErrors(err)
	require.NotNil(t, fields)
	assert.Equal(t, "Code is required", fields["Code"])
	assert.Equal(t, "Supplier is required", fields["SupplierId"])
	assert.Equal(t, "Purchase date cannot be in the future", fields["PurchaseDate"])
	assert.Equal(t, "Material is required", fields["PurchaseDetailDtos"])

	// Nothing was saved and no stock moved.
	assert.Empty(t, f.repo.docs)
	assert.Equal(t, qty(0), f.materials.balances[f.oakID])
}

func TestCreate_RejectsDuplicateCode(t *testing.T) {
	f := newFixture()

	first := NewPurchase("PUR-001", yesterday(), f.supplierID)
	first.AddDetail(f.oakID, qty(10))
	require.NoError(t, f.service.Create(context.Background(), first))

	second := NewPurchase("pur-001", yesterday(), f.supplierID)
	second.AddDetail(f.oakID, qty(10))

	err := f.service.Create(context.Background(), second)
	require.Error(t, err)
	assert.Equal(t, "Code already exists", apperror.FieldErrors(err)["Code"])
}

func TestCreate_RejectsUnknownMaterial(t *testing.T) {
	f := newFixture()

	doc := NewPurchase("PUR-001", yesterday(), f.supplierID)
	doc.AddDetail(id.New(), qty(10))

	err := f.service.Create(context.Background(), doc)
	require.Error(t, err)
	assert.Equal(t, "Material does not exist", apperror.FieldErrors(err)["PurchaseDetailDtos"])
}

func TestUpdate_NetsStockToNewLines(t *testing.T) {
	f := newFixture()

	doc := NewPurchase("PUR-001", yesterday(), f.supplierID)
	doc.AddDetail(f.oakID, qty(100))
	require.NoError(t, f.service.Create(context.Background(), doc))
	require.Equal(t, qty(100), f.materials.balances[f.oakID])

	// Raise the received amount: 100 reversed, 130 applied.
	doc.Details[0].Quantity = qty(130)
	require.NoError(t, f.service.Update(context.Background(), doc))
	assert.Equal(t, qty(130), f.materials.balances[f.oakID])

	// Lower it again.
	doc.Details[0].Quantity = qty(110)
	require.NoError(t, f.service.Update(context.Background(), doc))
	assert.Equal(t, qty(110), f.materials.balances[f.oakID])
}

func TestUpdate_SwapsMaterial(t *testing.T) {
	f := newFixture()

	doc := NewPurchase("PUR-001", yesterday(), f.supplierID)
	doc.AddDetail(f.oakID, qty(50))
	require.NoError(t, f.service.Create(context.Background(), doc))

	doc.Details = doc.Details[:0]
	doc.AddDetail(f.pineID, qty(50))
	require.NoError(t, f.service.Update(context.Background(), doc))

	assert.Equal(t, qty(0), f.materials.balances[f.oakID])
	assert.Equal(t, qty(50), f.materials.balances[f.pineID])
}

func TestUpdate_FailsWhenReversalOverdraws(t *testing.T) {
	f := newFixture()

	doc := NewPurchase("PUR-001", yesterday(), f.supplierID)
	doc.AddDetail(f.oakID, qty(100))
	require.NoError(t, f.service.Create(context.Background(), doc))

	// Most of the received stock has since been consumed.
	require.NoError(t, f.materials.AddQuantity(context.Background(), f.oakID, qty(-80)))

	doc.Details[0].Quantity = qty(10)
	err := f.service.Update(context.Background(), doc)
	assert.Error(t, err)
}

func TestDelete_KeepsStock(t *testing.T) {
	f := newFixture()

	doc := NewPurchase("PUR-001", yesterday(), f.supplierID)
	doc.AddDetail(f.oakID, qty(100))
	require.NoError(t, f.service.Create(context.Background(), doc))

	require.NoError(t, f.service.Delete(context.Background(), doc.ID))

	assert.Equal(t, qty(100), f.materials.balances[f.oakID])
	_, err := f.service.GetByID(context.Background(), doc.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDelete_UnknownDocument(t *testing.T) {
	f := newFixture()

	err := f.service.Delete(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}
