// Package pagination implements the zero-indexed page/size scheme used by
// every list endpoint.
package pagination

// Params carries the requested page window. Page is zero-indexed.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps the params into a valid window: negative pages become 0,
// and the page size falls back to defaultSize and is capped at maxSize.
func (p Params) Normalize(defaultSize, maxSize int) Params {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.PageSize <= 0 {
		p.PageSize = defaultSize
	}
	if p.PageSize > maxSize {
		p.PageSize = maxSize
	}

	return p
}

// Offset returns the row offset for the window.
func (p Params) Offset() int {
	return p.Page * p.PageSize
}

// Meta describes a returned page.
type Meta struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// CalculateMeta derives the page metadata for a total row count.
func CalculateMeta(page, pageSize int, totalItems int64) Meta {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	}

	return Meta{
		Page:        page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     page < totalPages-1,
		HasPrevious: page > 0,
	}
}
