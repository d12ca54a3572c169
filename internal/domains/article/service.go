package article

import (
	"context"

	"github.com/google/uuid"
)

// Service là business logic contract cho article domain.
type Service interface {
	// List trả về home feed: articles + featured + latest.
	List(ctx context.Context, req ListArticlesRequest) (*ListArticlesResponse, error)

	// Get theo numeric id; id không phải số → ErrInvalidArticleID.
	Get(ctx context.Context, rawID string) (*ArticleResponse, error)

	// GetBySlug cho trang detail công khai.
	GetBySlug(ctx context.Context, slug string) (*ArticleResponse, error)

	Create(ctx context.Context, authorID uuid.UUID, req CreateArticleRequest) (*ArticleResponse, error)

	// Update/Delete yêu cầu ownership: bài của author khác → ErrNotOwner.
	Update(ctx context.Context, authorID uuid.UUID, rawID string, req UpdateArticleRequest) (*ArticleResponse, error)
	Delete(ctx context.Context, authorID uuid.UUID, rawID string) error

	MyArticles(ctx context.Context, authorID uuid.UUID, req MyArticlesRequest) (*MyArticlesResponse, error)
}
