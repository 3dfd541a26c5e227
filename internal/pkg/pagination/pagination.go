package pagination

// Default page sizes per listing.
const (
	PostPageSize     = 10
	CommentPageSize  = 20
	CategoryPageSize = 10
	UserPageSize     = 10
)

// Page is the envelope returned by every paginated listing: a bounded slice of
// an ordered collection plus the metadata the rendering layer needs.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
	TotalCount int64 `json:"total_count"`
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a further page exists.
func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }

// Clamp normalizes a 1-based page number. Out-of-range pages are kept as-is so
// that they resolve to an empty item slice instead of an error; only values
// below 1 are lifted to the first page.
func Clamp(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// Offset translates a 1-based page number into a row offset for the datastore.
func Offset(page, pageSize int) int {
	return (Clamp(page) - 1) * pageSize
}

// New assembles an envelope from an already-sliced item set and the total
// number of rows in the underlying collection.
func New[T any](items []T, page, pageSize int, totalCount int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:      items,
		Page:       Clamp(page),
		PageSize:   pageSize,
		TotalPages: totalPages(totalCount, pageSize),
		TotalCount: totalCount,
	}
}

// FromSlice paginates an in-memory ordered slice.
func FromSlice[T any](items []T, page, pageSize int) Page[T] {
	total := int64(len(items))
	start := Offset(page, pageSize)
	if start > len(items) {
		start = len(items)
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}

	return New(items[start:end], page, pageSize, total)
}

func totalPages(totalCount int64, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}
	pages := totalCount / int64(pageSize)
	if totalCount%int64(pageSize) != 0 {
		pages++
	}
	return int(pages)
}
