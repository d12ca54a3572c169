package category

import "context"

// Repository là data access contract cho category domain.
type Repository interface {
	Create(ctx context.Context, c *Category) (*Category, error)

	// ListWithCounts trả về toàn bộ categories (order name ASC)
	// kèm số bài viết mỗi category.
	ListWithCounts(ctx context.Context) ([]Category, error)

	// GetByName tìm category theo tên chính xác.
	// Returns ErrCategoryNotFound nếu không có.
	GetByName(ctx context.Context, name string) (*Category, error)

	// SlugExists check slug đã được dùng chưa.
	SlugExists(ctx context.Context, slug string) (bool, error)
}
