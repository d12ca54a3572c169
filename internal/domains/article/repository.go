package article

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter là filter đã chuẩn hóa cho các list query công khai.
type ListFilter struct {
	// CategoryID filter theo category; nil = mọi category.
	CategoryID *int64

	// NoMatch = true khi category name không resolve được:
	// query trả empty result thay vì error.
	NoMatch bool

	// Search match title ILIKE.
	Search string

	// SlugFragment != "" → OR thêm điều kiện slug LIKE (case-sensitive).
	// Chỉ set khi search term không dấu và chỉ gồm chữ + khoảng trắng.
	SlugFragment string

	Offset int
	Limit  int
}

// AuthorFilter cho my-articles listing.
type AuthorFilter struct {
	AuthorID uuid.UUID

	// Search match title/summary/content ILIKE.
	Search string

	// SlugFragment != "" → OR thêm điều kiện slug LIKE,
	// cùng heuristic với ListFilter.
	SlugFragment string

	SortCol   string // đã whitelist, vd "a.updated_at"
	SortOrder string // "ASC" | "DESC"
	Offset    int
	Limit     int
}

// Repository là data access contract cho article domain.
type Repository interface {
	Create(ctx context.Context, a *Article) (*Article, error)

	// GetByID/GetBySlug trả article đầy đủ (content + joined fields).
	// Không có → ErrArticleNotFound.
	GetByID(ctx context.Context, id int64) (*Article, error)
	GetBySlug(ctx context.Context, slug string) (*Article, error)

	// List: main paginated list, sort priority DESC, created_at DESC.
	// Returns (articles không content, tổng rows match filter).
	List(ctx context.Context, f ListFilter) ([]Article, int64, error)

	// ListFeatured: priority > FeaturedMinPriority, priority DESC,
	// cap FeaturedCap. Cùng filter, bỏ qua Offset/Limit của request.
	ListFeatured(ctx context.Context, f ListFilter) ([]Article, error)

	// ListLatest: created_at DESC, offset của request, cap LatestCap.
	ListLatest(ctx context.Context, f ListFilter) ([]Article, error)

	// ListByAuthor trả (articles của author, total).
	ListByAuthor(ctx context.Context, f AuthorFilter) ([]Article, int64, error)

	// StatsByAuthor: GROUP BY category trên bài của author.
	StatsByAuthor(ctx context.Context, authorID uuid.UUID) ([]CategoryStat, error)

	// Update ghi với điều kiện WHERE id AND author_id trong một
	// statement. 0 rows → ErrArticleNotFound.
	Update(ctx context.Context, a *Article) (*Article, error)

	// Delete với cùng điều kiện ownership. 0 rows → ErrArticleNotFound.
	Delete(ctx context.Context, id int64, authorID uuid.UUID) error

	// ImageURLInUse check còn bài viết nào tham chiếu URL không
	// (dùng cho orphan sweep).
	ImageURLInUse(ctx context.Context, url string) (bool, error)
}
