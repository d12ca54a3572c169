package utils

// Pagination metadata trả về kèm mọi danh sách phân trang.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination tính metadata từ page/limit đã được clamp và tổng số rows.
// totalPages = ceil(total/limit); total = 0 → totalPages = 0.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    int64(page*limit) < total,
		HasPrev:    page > 1,
	}
}

// Offset cho SQL OFFSET clause.
func Offset(page, limit int) int {
	return (page - 1) * limit
}
