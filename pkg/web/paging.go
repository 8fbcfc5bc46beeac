package web

// PagedResult holds one page of items together with paging metadata.
type PagedResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	Page       int32 `json:"page"`
	Size       int32 `json:"size"`
}

// NewPagedResult returns a PagedResult for the given page of items.
func NewPagedResult[T any](items []T, totalCount int64, page, size int32) PagedResult[T] {
	return PagedResult[T]{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		Size:       size,
	}
}

// TotalPages returns the number of pages needed to hold TotalCount items.
func (p PagedResult[T]) TotalPages() int32 {
	if p.Size == 0 {
		return 0
	}

	pages := p.TotalCount / int64(p.Size)
	if p.TotalCount%int64(p.Size) != 0 {
		pages++
	}

	return int32(pages)
}

// HasNextPage reports whether a page exists after the current one.
func (p PagedResult[T]) HasNextPage() bool {
	return p.Page < p.TotalPages()
}

// HasPreviousPage reports whether a page exists before the current one.
func (p PagedResult[T]) HasPreviousPage() bool {
	return p.Page > 1
}
