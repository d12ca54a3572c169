package user

import (
	"context"

	"github.com/google/uuid"
)

// Service là business logic contract cho user domain.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Me đọc lại user từ DB theo id trong token.
	Me(ctx context.Context, id uuid.UUID) (*MeResponse, error)

	List(ctx context.Context, req ListUsersRequest) (*ListUsersResponse, error)

	// Get/Delete nhận raw id string; format UUID sai → ErrInvalidUUID.
	Get(ctx context.Context, rawID string) (*UserWithCountResponse, error)
	Delete(ctx context.Context, rawID string) error
}
