package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		pageIndex int
		pageSize  int
		wantIndex int
		wantSize  int
	}{
		{"both valid", 2, 10, 2, 10},
		{"zero index", 0, 10, DefaultPageIndex, 10},
		{"negative index", -3, 10, DefaultPageIndex, 10},
		{"zero size", 2, 0, 2, DefaultPageSize},
		{"both omitted", 0, 0, DefaultPageIndex, DefaultPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotIndex, gotSize := Normalize(tt.pageIndex, tt.pageSize)
			assert.Equal(t, tt.wantIndex, gotIndex)
			assert.Equal(t, tt.wantSize, gotSize)
		})
	}
}

func TestPaginate_FirstPage(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	page := Paginate(items, 1, 2)

	assert.Equal(t, []string{"a", "b"}, page.DataList)
	assert.Equal(t, 1, page.PageIndex)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, 3, page.TotalPages)
}

func TestPaginate_LastPartialPage(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	page := Paginate(items, 3, 2)

	assert.Equal(t, []string{"e"}, page.DataList)
	assert.Equal(t, 3, page.TotalPages)
}

func TestPaginate_PastTheEnd(t *testing.T) {
	items := []string{"a", "b"}

	page := Paginate(items, 9, 2)

	assert.NotNil(t, page.DataList)
	assert.Empty(t, page.DataList)
	assert.Equal(t, 9, page.PageIndex)
	assert.Equal(t, 1, page.TotalPages)
}

func TestPaginate_Defaults(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}

	page := Paginate(items, 0, 0)

	assert.Equal(t, []int{1, 2, 3, 4}, page.DataList)
	assert.Equal(t, DefaultPageIndex, page.PageIndex)
	assert.Equal(t, DefaultPageSize, page.PageSize)
	assert.Equal(t, 2, page.TotalPages)
}

func TestPaginate_EmptyInput(t *testing.T) {
	page := Paginate([]int(nil), 1, 4)

	assert.NotNil(t, page.DataList)
	assert.Empty(t, page.DataList)
	assert.Equal(t, 0, page.TotalPages)
}

func TestPaginate_CopiesPage(t *testing.T) {
	items := []string{"a", "b", "c"}

	page := Paginate(items, 1, 2)
	page.DataList[0] = "mutated"

	assert.Equal(t, "a", items[0])
}
