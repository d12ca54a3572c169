package category

import "time"

// Category là danh mục bài viết. Slug unique, sinh từ name.
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// ArticleCount được populate bởi list query (LEFT JOIN + COUNT),
	// không phải cột trong bảng categories.
	ArticleCount int64 `json:"-"`
}
