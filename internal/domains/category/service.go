package category

import "context"

// Service là business logic contract cho category domain.
type Service interface {
	Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error)
	List(ctx context.Context) ([]CategoryResponse, error)
}
