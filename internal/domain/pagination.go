package domain

type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"page_size"`
	PageCount int `json:"page_count"`
	Total     int `json:"total"`
}

// PageCount returns the number of pages needed for total items. An empty
// collection still has one (empty) page so that page 1 is always valid.
func PageCount(total, pageSize int) int {
	if pageSize <= 0 {
		return 1
	}
	count := (total + pageSize - 1) / pageSize
	if count < 1 {
		return 1
	}
	return count
}

// PageWindow returns the [start, end) slice bounds for a 1-based page over a
// collection of the given length.
func PageWindow(length, page, pageSize int) (int, int) {
	start := (page - 1) * pageSize
	if start < 0 {
		start = 0
	}
	if start > length {
		start = length
	}
	end := start + pageSize
	if end > length {
		end = length
	}
	return start, end
}

func NewPagination(page, pageSize, total int) Pagination {
	return Pagination{
		Page:      page,
		PageSize:  pageSize,
		PageCount: PageCount(total, pageSize),
		Total:     total,
	}
}
