package utils

// Page describes the pagination block attached to every paginated listing
// response.
type Page struct {
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// Paginate clamps page/pageSize to sane values and computes the half-open
// slice window [start, end) over a collection of total items. Pages past
// the end produce an empty window rather than an error.
func Paginate(total, page, pageSize int) (start, end int, meta Page) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start = (page - 1) * pageSize
	if start > total {
		start = total
	}
	end = start + pageSize
	if end > total {
		end = total
	}

	meta = Page{
		Page:        page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrevious: page > 1 && total > 0,
	}
	return start, end, meta
}
