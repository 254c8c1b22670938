package order

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
	"bizstock/internal/domain/catalogs/customer"
	"bizstock/internal/domain/catalogs/product"
	"bizstock/internal/domain/inventory"
)

type passTx struct{}

func (passTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo keeps orders in memory.
type fakeRepo struct {
	docs    map[id.ID]*Order
	details map[id.ID][]Detail
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		docs:    make(map[id.ID]*Order),
		details: make(map[id.ID][]Detail),
	}
}

func (r *fakeRepo) Create(ctx context.Context, doc *Order) error {
	head := *doc
	head.Details = nil
	r.docs[doc.ID] = &head
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, docID id.ID) (*Order, error) {
	doc, ok := r.docs[docID]
	if !ok {
		return nil, apperror.NewNotFound("order", docID)
	}
	head := *doc
	return &head, nil
}

func (r *fakeRepo) Update(ctx context.Context, doc *Order) error {
	if _, ok := r.docs[doc.ID]; !ok {
		return apperror.NewNotFound("order", doc.ID)
	}
	head := *doc
	head.Details = nil
	r.docs[doc.ID] = &head
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, docID id.ID) error {
	if _, ok := r.docs[docID]; !ok {
		return apperror.NewNotFound("order", docID)
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

func (r *fakeRepo) Find(ctx context.Context, filter Filter) ([]*Order, error) {
	var out []*Order
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

// fakeCustomers stubs existence checks; the embedded interface panics on
// anything else.
type fakeCustomers struct {
	customer.Repository
	ids map[id.ID]bool
}

func (r *fakeCustomers) Exists(ctx context.Context, customerID id.ID) (bool, error) {
	return r.ids[customerID], nil
}

// fakeProducts holds product stock; the embedded interface panics on
// anything else.
type fakeProducts struct {
	product.Repository
	balances map[id.ID]types.Quantity
}

func (r *fakeProducts) Exists(ctx context.Context, productID id.ID) (bool, error) {
	_, ok := r.balances[productID]
	return ok, nil
}

func (r *fakeProducts) AddQuantity(ctx context.Context, productID id.ID, delta types.Quantity) error {
	bal, ok := r.balances[productID]
	if !ok {
		return apperror.NewNotFound("product", productID)
	}
	next := bal.Add(delta)
	if next.IsNegative() {
		return apperror.NewInsufficientStock(productID.String(), delta.Neg().Float64())
	}
	r.balances[productID] = next
	return nil
}

func (r *fakeProducts) QuantityForUpdate(ctx context.Context, productID id.ID) (types.Quantity, error) {
	bal, ok := r.balances[productID]
	if !ok {
		return 0, apperror.NewNotFound("product", productID)
	}
	return bal, nil
}

type fixture struct {
	service    *Service
	repo       *fakeRepo
	products   *fakeProducts
	customerID id.ID
	tableID    id.ID
	shelfID    id.ID
}

// newFixture sets up two products with 5 tables and 3 shelves on hand.
func newFixture() *fixture {
	f := &fixture{
		repo:       newFakeRepo(),
		customerID: id.New(),
		tableID:    id.New(),
		shelfID:    id.New(),
	}

	customers := &fakeCustomers{ids: map[id.ID]bool{f.customerID: true}}
	f.products = &fakeProducts{balances: map[id.ID]types.Quantity{
		f.tableID: qty(5),
		f.shelfID: qty(3),
	}}

	applier := inventory.NewApplier(nil, f.products)
	f.service = NewService(f.repo, customers, f.products, applier, passTx{})
	return f
}

func qty(v float64) types.Quantity {
	return types.NewQuantityFromFloat64(v)
}

func yesterday() time.Time {
	return time.Now().Add(-24 * time.Hour)
}

func TestCreate_DebitsProductStock(t *testing.T) {
	f := newFixture()

	doc := NewOrder("ORD-001", yesterday(), f.customerID)
	doc.AddDetail(f.tableID, qty(2))
	doc.AddDetail(f.shelfID, qty(1))

	require.NoError(t, f.service.Create(context.Background(), doc))

	assert.Equal(t, qty(3), f.products.balances[f.tableID])
	assert.Equal(t, qty(2), f.products.balances[f.shelfID])

	saved, err := f.service.GetByID(context.Background(), doc.ID)
	require.NoError(t, err)
	assert.Len(t, saved.Details, 2)
}

func TestCreate_InsufficientStock(t *testing.T) {
	f := newFixture()

	doc := NewOrder("ORD-001", yesterday(), f.customerID)
	doc.AddDetail(f.tableID, qty(6))

	err := f.service.Create(context.Background(), doc)
	require.Error(t, err)
	assert.Equal(t, "Insufficient product stock", apperror.FieldErrors(err)["OrderDetailDtos"])

	// Nothing was saved and no stock moved.
	assert.Empty(t, f.repo.docs)
	assert.Equal(t, qty(5), f.products.balances[f.tableID])
}

func TestCreate_RequiresAtLeastOneLine(t *testing.T) {
	f := newFixture()

	doc := NewOrder("ORD-001", yesterday(), f.customerID)

	err := f.service.Create(context.Background(), doc)
	require.Error(t, err)
	assert.Equal(t, "At least one product is required", apperror.FieldErrors(err)["OrderDetailDtos"])
}

func TestCreate_ValidationCollectsAllFields(t *testing.T) {
	f := newFixture()

	doc := NewOrder("", time.Now().Add(time.Hour), id.Nil())
	doc.AddDetail(id.Nil(), qty(0))

	err := f.service.Create(context.Background(), doc)
	require.Error(t, err)

	fields := apperror.FieldErrors(err)
	require.NotNil(t, fields)
	assert.Equal(t, "Code is required", fields["Code"])
	assert.Equal(t, "Customer is required", fields["CustomerId"])
	assert.Equal(t, "Order date cannot be in the future", fields["OrderDate"])
	assert.Equal(t, "Product is required", fields["ProductId"])
}

func TestUpdate_RestoresOldLinesBeforeDeducting(t *testing.T) {
	f := newFixture()

	doc := NewOrder("ORD-001", yesterday(), f.customerID)
	doc.AddDetail(f.tableID, qty(2))
	require.NoError(t, f.service.Create(context.Background(), doc))
	require.Equal(t, qty(3), f.products.balances[f.tableID])

	// Raising the line to 5 is covered: 3 on hand + 2 restored.
	doc.Details[0].Quantity = qty(5)
	require.NoError(t, f.service.Update(context.Background(), doc))
	assert.Equal(t, qty(0), f.products.balances[f.tableID])

	// Raising it further is not.
	doc.Details[0].Quantity = qty(6)
	err := f.service.Update(context.Background(), doc)
	require.Error(t, err)
	assert.Equal(t, "Insufficient product stock", apperror.FieldErrors(err)["OrderDetailDtos"])
}

func TestDelete_DoesNotReturnStock(t *testing.T) {
	f := newFixture()

	doc := NewOrder("ORD-001", yesterday(), f.customerID)
	doc.AddDetail(f.tableID, qty(2))
	require.NoError(t, f.service.Create(context.Background(), doc))

	require.NoError(t, f.service.Delete(context.Background(), doc.ID))

	assert.Equal(t, qty(3), f.products.balances[f.tableID])
	_, err := f.service.GetByID(context.Background(), doc.ID)
	assert.True(t, apperror.IsNotFound(err))
}
