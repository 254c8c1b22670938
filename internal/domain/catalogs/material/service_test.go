package material

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
)

type passTx struct{}

func (passTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo keeps materials in memory; the embedded interface panics on
// anything the service does not call.
type fakeRepo struct {
	Repository
	items map[id.ID]*Material
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[id.ID]*Material)}
}

func (r *fakeRepo) Create(ctx context.Context, item *Material) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, materialID id.ID) (*Material, error) {
	item, ok := r.items[materialID]
	if !ok {
		return nil, apperror.NewNotFound("material", materialID)
	}
	cp := *item
	return &cp, nil
}

func (r *fakeRepo) Update(ctx context.Context, item *Material) error {
	if _, ok := r.items[item.ID]; !ok {
		return apperror.NewNotFound("material", item.ID)
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeRepo) Find(ctx context.Context, filter Filter) ([]*Material, error) {
	var out []*Material
	for _, item := range r.items {
		if filter.CategoryID != nil && item.CategoryID != *filter.CategoryID {
			continue
		}
		out = append(out, item)
	}
	return out, nil
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

func newTestService() (*Service, *fakeRepo, id.ID) {
	repo := newFakeRepo()
	categoryID := id.New()
	categories := &fakeCategories{ids: map[id.ID]bool{categoryID: true}}
	return NewService(repo, categories, passTx{}), repo, categoryID
}

func qty(v float64) types.Quantity {
	return types.NewQuantityFromFloat64(v)
}

func TestCreate(t *testing.T) {
	svc, repo, categoryID := newTestService()

	item := NewMaterial("MAT-OAK", "Oak board", categoryID)
	item.Unit = "m2"
	require.NoError(t, svc.Create(context.Background(), item))

	saved := repo.items[item.ID]
	require.NotNil(t, saved)
	assert.Equal(t, "MAT-OAK", saved.Code)
	assert.True(t, saved.Quantity.IsZero())
}

func TestCreate_UnknownCategory(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Create(context.Background(), NewMaterial("MAT-OAK", "Oak board", id.New()))
	require.Error(t, err)
	assert.Equal(t, "Category does not exist", apperror.FieldErrors(err)["CategoryId"])
}

func TestUpdate_KeepsStoredQuantity(t *testing.T) {
	svc, repo, categoryID := newTestService()

	item := NewMaterial("MAT-OAK", "Oak board", categoryID)
	require.NoError(t, svc.Create(context.Background(), item))

	// Stock accrued through purchase documents after creation.
	repo.items[item.ID].Quantity = qty(120)

	item.Name = "Oak board 20mm"
	item.Quantity = qty(999) // must be ignored
	require.NoError(t, svc.Update(context.Background(), item))

	saved := repo.items[item.ID]
	assert.Equal(t, "Oak board 20mm", saved.Name)
	assert.Equal(t, qty(120), saved.Quantity)
}

func TestFind_FiltersByCategory(t *testing.T) {
	svc, repo, categoryID := newTestService()

	inCategory := NewMaterial("MAT-OAK", "Oak board", categoryID)
	other := NewMaterial("MAT-GLUE", "Wood glue", id.New())
	repo.items[inCategory.ID] = inCategory
	repo.items[other.ID] = other

	found, err := svc.Find(context.Background(), Filter{CategoryID: &categoryID})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "MAT-OAK", found[0].Code)
}
