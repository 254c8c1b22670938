// Package pagination projects full result sets onto fixed-size pages.
package pagination

// Default values applied when the request omits paging parameters.
const (
	DefaultPageIndex = 1
	DefaultPageSize  = 4
)

// Page is one page of a result set plus paging metadata.
type Page[T any] struct {
	DataList   []T `json:"dataList"`
	PageIndex  int `json:"pageIndex"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Normalize replaces non-positive paging parameters with the defaults.
func Normalize(pageIndex, pageSize int) (int, int) {
	if pageIndex < 1 {
		pageIndex = DefaultPageIndex
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return pageIndex, pageSize
}

// Paginate slices items down to the requested page. TotalPages is the
// ceiling of len(items)/pageSize; a page index past the end yields an
// empty (non-nil) DataList with the metadata intact.
func Paginate[T any](items []T, pageIndex, pageSize int) Page[T] {
	pageIndex, pageSize = Normalize(pageIndex, pageSize)

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (pageIndex - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	page := items[start:end]
	dataList := make([]T, len(page))
	copy(dataList, page)

	return Page[T]{
		DataList:   dataList,
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
