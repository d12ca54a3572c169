package service

import (
	"context"
	"fmt"
	"time"

	"newsroom-backend/internal/domains/category"
	"newsroom-backend/internal/shared/utils"
	"newsroom-backend/pkg/cache"
	"newsroom-backend/pkg/logger"
)

const (
	categoriesCacheKey = "categories:all"
	categoriesCacheTTL = 60 * time.Second
)

type categoryService struct {
	repo  category.Repository
	cache cache.Cache
}

func NewCategoryService(repo category.Repository, cache cache.Cache) category.Service {
	return &categoryService{repo: repo, cache: cache}
}

func (s *categoryService) Create(ctx context.Context, req category.CreateCategoryRequest) (*category.CategoryResponse, error) {
	req.SetDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Category slug: check tồn tại trước, chỉ append timestamp khi đụng.
	// Khác với article slug (luôn mang suffix).
	slug := utils.GenerateSlug(req.Name)
	exists, err := s.repo.SlugExists(ctx, slug)
	if err != nil {
		return nil, err
	}
	if exists {
		slug = fmt.Sprintf("%s-%d", slug, time.Now().UnixMilli())
	}

	created, err := s.repo.Create(ctx, &category.Category{
		Name: req.Name,
		Slug: slug,
	})
	if err != nil {
		return nil, err
	}

	// Invalidate list cache; lỗi cache không chặn response
	if err := s.cache.Delete(ctx, categoriesCacheKey); err != nil {
		logger.Error("Failed to invalidate categories cache", err)
	}

	resp := category.ToResponse(created)
	return &resp, nil
}

func (s *categoryService) List(ctx context.Context) ([]category.CategoryResponse, error) {
	var cached []category.CategoryResponse
	if found, err := s.cache.Get(ctx, categoriesCacheKey, &cached); err != nil {
		logger.Error("Categories cache read failed", err)
	} else if found {
		return cached, nil
	}

	categories, err := s.repo.ListWithCounts(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]category.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, category.ToResponse(&categories[i]))
	}

	if err := s.cache.Set(ctx, categoriesCacheKey, responses, categoriesCacheTTL); err != nil {
		logger.Error("Categories cache write failed", err)
	}

	return responses, nil
}
