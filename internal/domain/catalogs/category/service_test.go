package category

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizstock/internal/core/apperror"
	"bizstock/internal/core/id"
	"bizstock/internal/domain"
)

type passTx struct{}

func (passTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// fakeRepo keeps categories in memory; the embedded interface panics on
// anything the service does not call.
type fakeRepo struct {
	Repository
	items map[id.ID]*Category

	// conflictOnDelete simulates a row still referenced elsewhere
	conflictOnDelete bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[id.ID]*Category)}
}

func (r *fakeRepo) Create(ctx context.Context, item *Category) error {
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, categoryID id.ID) (*Category, error) {
	item, ok := r.items[categoryID]
	if !ok {
		return nil, apperror.NewNotFound("category", categoryID)
	}
	cp := *item
	return &cp, nil
}

func (r *fakeRepo) GetByCode(ctx context.Context, code string) (*Category, error) {
	for _, item := range r.items {
		if item.Code == code {
			cp := *item
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("category", code)
}

func (r *fakeRepo) Update(ctx context.Context, item *Category) error {
	if _, ok := r.items[item.ID]; !ok {
		return apperror.NewNotFound("category", item.ID)
	}
	cp := *item
	r.items[item.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, categoryID id.ID) error {
	if r.conflictOnDelete {
		return apperror.NewConflict("category is referenced by other records")
	}
	if _, ok := r.items[categoryID]; !ok {
		return apperror.NewNotFound("category", categoryID)
	}
	delete(r.items, categoryID)
	return nil
}

func (r *fakeRepo) List(ctx context.Context, filter domain.ListFilter) ([]*Category, error) {
	var out []*Category
	for _, item := range r.items {
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

func newTestService() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, passTx{}), repo
}

func TestCreate(t *testing.T) {
	svc, repo := newTestService()

	item := NewCategory("CAT-WOOD", "Wood")
	require.NoError(t, svc.Create(context.Background(), item))
	assert.Len(t, repo.items, 1)

	saved, err := svc.GetByCode(context.Background(), "CAT-WOOD")
	require.NoError(t, err)
	assert.Equal(t, "Wood", saved.Name)
}

func TestCreate_ValidationCollectsAllFields(t *testing.T) {
	svc, repo := newTestService()

	err := svc.Create(context.Background(), NewCategory("", ""))
	require.Error(t, err)

	fields := apperror.FieldErrors(err)
	require.NotNil(t, fields)
	assert.Equal(t, "Code is required", fields["Code"])
	assert.Equal(t, "Name is required", fields["Name"])
	assert.Empty(t, repo.items)
}

func TestCreate_RejectsDuplicates(t *testing.T) {
	svc, _ := newTestService()

	require.NoError(t, svc.Create(context.Background(), NewCategory("CAT-WOOD", "Wood")))

	err := svc.Create(context.Background(), NewCategory("cat-wood", "WOOD"))
	require.Error(t, err)

	fields := apperror.FieldErrors(err)
	assert.Equal(t, "Code already exists", fields["Code"])
	assert.Equal(t, "Name already exists", fields["Name"])
}

func TestUpdate(t *testing.T) {
	svc, _ := newTestService()

	item := NewCategory("CAT-WOOD", "Wood")
	require.NoError(t, svc.Create(context.Background(), item))

	item.Name = "Timber"
	require.NoError(t, svc.Update(context.Background(), item))

	saved, err := svc.GetByID(context.Background(), item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Timber", saved.Name)
}

func TestUpdate_UnknownCategory(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Update(context.Background(), NewCategory("CAT-X", "X"))
	assert.True(t, apperror.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	svc, _ := newTestService()

	item := NewCategory("CAT-WOOD", "Wood")
	require.NoError(t, svc.Create(context.Background(), item))

	require.NoError(t, svc.Delete(context.Background(), item.ID))
	_, err := svc.GetByID(context.Background(), item.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDelete_ReferencedElsewhere(t *testing.T) {
	svc, repo := newTestService()

	item := NewCategory("CAT-WOOD", "Wood")
	require.NoError(t, svc.Create(context.Background(), item))

	repo.conflictOnDelete = true
	err := svc.Delete(context.Background(), item.ID)
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), id.New())
	assert.True(t, apperror.IsNotFound(err))
}
