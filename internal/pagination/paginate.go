// Package pagination provides fixed-size page windowing over ordered
// sequences. All feed surfaces share the same page size.
package pagination

// DefaultPageSize is the number of items per page on every feed surface.
const DefaultPageSize = 10

// Page is one window of an ordered sequence plus navigation metadata.
type Page[T any] struct {
	Items      []T
	Number     int
	PageSize   int
	TotalCount int
	HasNext    bool
	HasPrev    bool
}

// TotalPages returns how many pages the underlying sequence spans.
// An empty sequence still has one (empty) page.
func (p Page[T]) TotalPages() int {
	return totalPages(p.TotalCount, p.PageSize)
}

// NextNumber returns the number of the following page.
// Only meaningful when HasNext is true.
func (p Page[T]) NextNumber() int { return p.Number + 1 }

// PrevNumber returns the number of the preceding page.
// Only meaningful when HasPrev is true.
func (p Page[T]) PrevNumber() int { return p.Number - 1 }

func totalPages(totalCount, pageSize int) int {
	if totalCount <= 0 {
		return 1
	}
	return (totalCount + pageSize - 1) / pageSize
}

// Paginate windows items into the requested 1-based page of size
// DefaultPageSize. An out-of-range page number clamps to the nearest
// valid page instead of failing.
func Paginate[T any](items []T, pageNumber int) Page[T] {
	return PaginateSize(items, pageNumber, DefaultPageSize)
}

// PaginateSize is Paginate with an explicit page size.
func PaginateSize[T any](items []T, pageNumber, pageSize int) Page[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := len(items)
	last := totalPages(total, pageSize)

	// Clamp to the nearest valid page
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > last {
		pageNumber = last
	}

	start := (pageNumber - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     pageNumber,
		PageSize:   pageSize,
		TotalCount: total,
		HasNext:    pageNumber < last,
		HasPrev:    pageNumber > 1,
	}
}
