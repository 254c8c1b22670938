package product

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizstock/internal/core/apperror"
	"bizstock/internal/core/id"
	"bizstock/internal/core/types"
	"bizstock/internal/domain/catalogs/category"
	"bizstock/internal/domain/catalogs/material"
)

type passTx struct{}

func (passTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo keeps products and their bills of materials in memory; the
// embedded interface panics on anything the service does not call.
type fakeRepo struct {
	Repository
	items   map[id.ID]*Product
	details map[id.ID][]Detail
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		items:   make(map[id.ID]*Product),
		details: make(map[id.ID][]Detail),
	}
}

func (r *fakeRepo) Create(ctx context.Context, item *Product) error {
	head := *item
	head.Details = nil
	r.items[item.ID] = &head
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, productID id.ID) (*Product, error) {
	item, ok := r.items[productID]
	if !ok {
		return nil, apperror.NewNotFound("product", productID)
	}
	head := *item
	return &head, nil
}

func (r *fakeRepo) Update(ctx context.Context, item *Product) error {
	if _, ok := r.items[item.ID]; !ok {
		return apperror.NewNotFound("product", item.ID)
	}
	head := *item
	head.Details = nil
	r.items[item.ID] = &head
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, productID id.ID) error {
	if _, ok := r.items[productID]; !ok {
		return apperror.NewNotFound("product", productID)
	}
	delete(r.items, productID)
	delete(r.details, productID)
	return nil
}

func (r *fakeRepo) GetDetails(ctx context.Context, productID id.ID) ([]Detail, error) {
	return r.details[productID], nil
}

func (r *fakeRepo) SaveDetails(ctx context.Context, productID id.ID, details []Detail) error {
	r.details[productID] = append([]Detail(nil), details...)
	return nil
}

func (r *fakeRepo) ValueInUse(ctx context.Context, column, value string, excludeID id.ID) (bool, error) {
	for _, item := range r.items {
		if item.ID == excludeID {
			continue
		}
		switch column {
		case "code":
			if strings.EqualFold(item.Code, value) {
				return true, nil
			}
		case "name":
			if strings.EqualFold(item.Name, value) {
				return true, nil
			}
		}
	}
	return false, nil
}

type fakeCategories struct {
	category.Repository
	ids map[id.ID]bool
}

func (r *fakeCategories) Exists(ctx context.Context, categoryID id.ID) (bool, error) {
	return r.ids[categoryID], nil
}

type fakeMaterials struct {
	material.Repository
	ids map[id.ID]bool
}

func (r *fakeMaterials) Exists(ctx context.Context, materialID id.ID) (bool, error) {
	return r.ids[materialID], nil
}

type fixture struct {
	service    *Service
	repo       *fakeRepo
	categoryID id.ID
	oakID      id.ID
}

func newFixture() *fixture {
	f := &fixture{
		repo:       newFakeRepo(),
		categoryID: id.New(),
		oakID:      id.New(),
	}

	categories := &fakeCategories{ids: map[id.ID]bool{f.categoryID: true}}
	materials := &fakeMaterials{ids: map[id.ID]bool{f.oakID: true}}

	f.service = NewService(f.repo, categories, materials, passTx{})
	return f
}

func qty(v float64) types.Quantity {
	return types.NewQuantityFromFloat64(v)
}

func (f *fixture) validProduct() *Product {
	item := NewProduct("PRD-TABLE", "Oak dining table", f.categoryID)
	item.AddDetail(f.oakID, qty(2.5))
	return item
}

func TestCreate_SavesHeadAndBOM(t *testing.T) {
	f := newFixture()

	item := f.validProduct()
	require.NoError(t, f.service.Create(context.Background(), item))

	saved, err := f.service.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "PRD-TABLE", saved.Code)
	require.Len(t, saved.Details, 1)
	assert.Equal(t, f.oakID, saved.Details[0].MaterialID)
	assert.Equal(t, qty(2.5), saved.Details[0].Quantity)
}

func TestCreate_RequiresBOM(t *testing.T) {
	f := newFixture()

	item := NewProduct("PRD-TABLE", "Oak dining table", f.categoryID)

	err := f.service.Create(context.Background(), item)
	require.Error(t, err)
	assert.Equal(t, "At least one material is required", apperror.FieldErrors(err)["ProductDetailDtos"])
}

func TestCreate_ValidationCollectsAllFields(t *testing.T) {
	f := newFixture()

	item := NewProduct("", "", id.Nil())
	item.AddDetail(id.New(), qty(0))

	err := f.service.Create(context.Background(), item)
	require.Error(t, err)

	fields := apperror.FieldErrors(err)
	require.NotNil(t, fields)
	assert.Equal(t, "Code is required", fields["Code"])
	assert.Equal(t, "Name is required", fields["Name"])
	assert.Equal(t, "Category is required", fields["CategoryId"])
	assert.Equal(t, "Material does not exist", fields["ProductDetailDtos"])
	assert.Equal(t, "Quantity must be greater than zero", fields["Quantity"])
}

func TestCreate_RejectsDuplicateCodeAndName(t *testing.T) {
	f := newFixture()

	require.NoError(t, f.service.Create(context.Background(), f.validProduct()))

	dup := NewProduct("prd-table", "OAK DINING TABLE", f.categoryID)
	dup.AddDetail(f.oakID, qty(1))

	err := f.service.Create(context.Background(), dup)
	require.Error(t, err)

	fields := apperror.FieldErrors(err)
	assert.Equal(t, "Code already exists", fields["Code"])
	assert.Equal(t, "Name already exists", fields["Name"])
}

func TestUpdate_ReplacesBOMAndKeepsStock(t *testing.T) {
	f := newFixture()

	item := f.validProduct()
	require.NoError(t, f.service.Create(context.Background(), item))

	// Stock accrued through documents after creation.
	f.repo.items[item.ID].Quantity = qty(7)

	item.Quantity = qty(999) // must be ignored
	item.Details[0].Quantity = qty(3)
	require.NoError(t, f.service.Update(context.Background(), item))

	saved, err := f.service.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, qty(7), saved.Quantity)
	require.Len(t, saved.Details, 1)
	assert.Equal(t, qty(3), saved.Details[0].Quantity)
}

func TestUpdate_UnknownProduct(t *testing.T) {
	f := newFixture()

	item := f.validProduct()
	err := f.service.Update(context.Background(), item)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDelete_RemovesProductAndBOM(t *testing.T) {
	f := newFixture()

	item := f.validProduct()
	require.NoError(t, f.service.Create(context.Background(), item))

	require.NoError(t, f.service.Delete(context.Background(), item.ID))

	_, err := f.service.GetByID(context.Background(), item.ID)
	assert.True(t, apperror.IsNotFound(err))
	assert.Empty(t, f.repo.details[item.ID])
}
