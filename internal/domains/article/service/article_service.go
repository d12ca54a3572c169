package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"newsroom-backend/internal/domains/article"
	"newsroom-backend/internal/domains/category"
	"newsroom-backend/internal/shared/utils"
	"newsroom-backend/pkg/cache"
	"newsroom-backend/pkg/logger"
)

const (
	listCachePrefix = "articles:list:"
	listCacheTTL    = 30 * time.Second
)

type articleService struct {
	repo         article.Repository
	categoryRepo category.Repository
	cache        cache.Cache
}

func NewArticleService(repo article.Repository, categoryRepo category.Repository, c cache.Cache) article.Service {
	return &articleService{repo: repo, categoryRepo: categoryRepo, cache: c}
}

// ========================================
// PUBLIC READS
// ========================================

func (s *articleService) List(ctx context.Context, req article.ListArticlesRequest) (*article.ListArticlesResponse, error) {
	req.SetDefaults()

	cacheKey := fmt.Sprintf("%s%s:%s:%d:%d",
		listCachePrefix, req.Category, req.Search, req.Page, req.Limit)

	var cached article.ListArticlesResponse
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err != nil {
		logger.Error("Article list cache read failed", err)
	} else if found {
		return &cached, nil
	}

	filter, err := s.buildFilter(ctx, &req)
	if err != nil {
		return nil, err
	}

	articles, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	featured, err := s.repo.ListFeatured(ctx, filter)
	if err != nil {
		return nil, err
	}
	latest, err := s.repo.ListLatest(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &article.ListArticlesResponse{
		Articles:   toListItems(articles),
		Featured:   toListItems(featured),
		Latest:     toListItems(latest),
		Pagination: utils.NewPagination(req.Page, req.Limit, total),
	}

	if err := s.cache.Set(ctx, cacheKey, resp, listCacheTTL); err != nil {
		logger.Error("Article list cache write failed", err)
	}

	return resp, nil
}

// buildFilter resolve category name → id và áp search heuristic.
func (s *articleService) buildFilter(ctx context.Context, req *article.ListArticlesRequest) (article.ListFilter, error) {
	filter := article.ListFilter{
		Search: req.Search,
		Offset: utils.Offset(req.Page, req.Limit),
		Limit:  req.Limit,
	}

	if !req.AllCategories() {
		cat, err := s.categoryRepo.GetByName(ctx, req.Category)
		if err != nil {
			if errors.Is(err, category.ErrCategoryNotFound) {
				// Tên category lạ → kết quả rỗng, không phải lỗi
				filter.NoMatch = true
				return filter, nil
			}
			return filter, err
		}
		filter.CategoryID = &cat.ID
	}

	filter.SlugFragment = slugFragmentFor(req.Search)

	return filter, nil
}

// slugFragmentFor áp search heuristic: term không dấu, chỉ chữ và
// khoảng trắng → match thêm trên slug fragment.
func slugFragmentFor(search string) string {
	if search == "" || utils.HasDiacritics(search) || !utils.IsPlainSearchTerm(search) {
		return ""
	}
	return utils.GenerateSlug(search)
}

func (s *articleService) Get(ctx context.Context, rawID string) (*article.ArticleResponse, error) {
	id, err := parseArticleID(rawID)
	if err != nil {
		return nil, err
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := article.ToDetail(a)
	return &resp, nil
}

func (s *articleService) GetBySlug(ctx context.Context, slug string) (*article.ArticleResponse, error) {
	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	resp := article.ToDetail(a)
	return &resp, nil
}

// ========================================
// AUTHOR WRITES
// ========================================

func (s *articleService) Create(ctx context.Context, authorID uuid.UUID, req article.CreateArticleRequest) (*article.ArticleResponse, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &article.Article{
		// Article slug luôn mang timestamp suffix, không check DB
		Slug:       utils.GenerateArticleSlug(req.Title),
		Title:      req.Title,
		Summary:    req.Summary,
		Content:    req.Content,
		ImageURL:   req.ImageURL,
		Priority:   req.Priority,
		CategoryID: req.CategoryID,
		AuthorID:   authorID,
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx)

	resp := article.ToDetail(created)
	return &resp, nil
}

func (s *articleService) Update(ctx context.Context, authorID uuid.UUID, rawID string, req article.UpdateArticleRequest) (*article.ArticleResponse, error) {
	id, err := parseArticleID(rawID)
	if err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Phân biệt 404 và 403 cần một lần đọc; write phía dưới vẫn
	// conditional theo author_id
	if existing.AuthorID != authorID {
		return nil, article.ErrNotOwner
	}

	if req.Title != nil && *req.Title != existing.Title {
		existing.Title = *req.Title
		// Đổi title → slug mới với timestamp suffix mới
		existing.Slug = utils.GenerateArticleSlug(*req.Title)
	}
	if req.Summary != nil {
		existing.Summary = *req.Summary
	}
	if req.Content != nil {
		existing.Content = *req.Content
	}
	if req.CategoryID != nil {
		existing.CategoryID = *req.CategoryID
	}
	if req.ImageURL != nil {
		existing.ImageURL = req.ImageURL
	}
	if req.Priority != nil {
		existing.Priority = *req.Priority
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidateCaches(ctx)

	resp := article.ToDetail(updated)
	return &resp, nil
}

func (s *articleService) Delete(ctx context.Context, authorID uuid.UUID, rawID string) error {
	id, err := parseArticleID(rawID)
	if err != nil {
		return err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.AuthorID != authorID {
		return article.ErrNotOwner
	}

	if err := s.repo.Delete(ctx, id, authorID); err != nil {
		return err
	}

	s.invalidateCaches(ctx)
	return nil
}

func (s *articleService) MyArticles(ctx context.Context, authorID uuid.UUID, req article.MyArticlesRequest) (*article.MyArticlesResponse, error) {
	req.SetDefaults()

	articles, total, err := s.repo.ListByAuthor(ctx, article.AuthorFilter{
		AuthorID:     authorID,
		Search:       req.Search,
		SlugFragment: slugFragmentFor(req.Search),
		SortCol:      req.SortColumn(),
		SortOrder:    req.SortOrder(),
		Offset:       utils.Offset(req.Page, req.Limit),
		Limit:        req.Limit,
	})
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.StatsByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	return &article.MyArticlesResponse{
		Articles: toListItems(articles),
		Stats: article.AuthorStats{
			TotalArticles: total,
			ByCategory:    stats,
		},
		Pagination: utils.NewPagination(req.Page, req.Limit, total),
	}, nil
}

// invalidateCaches xóa list cache sau mọi mutation.
// Categories cache cũng phải đi vì article counts đổi.
func (s *articleService) invalidateCaches(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, listCachePrefix+"*"); err != nil {
		logger.Error("Failed to invalidate article list cache", err)
	}
	if err := s.cache.Delete(ctx, "categories:all"); err != nil {
		logger.Error("Failed to invalidate categories cache", err)
	}
}

func parseArticleID(rawID string) (int64, error) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || id < 1 {
		return 0, article.ErrInvalidArticleID
	}
	return id, nil
}

func toListItems(articles []article.Article) []article.ArticleResponse {
	items := make([]article.ArticleResponse, 0, len(articles))
	for i := range articles {
		items = append(items, article.ToListItem(&articles[i]))
	}
	return items
}
