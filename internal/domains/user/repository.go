package user

import (
	"context"

	"github.com/google/uuid"
)

// ListFilter là filter đã được chuẩn hóa cho List.
type ListFilter struct {
	Search string // match name/email, case-insensitive
	Role   string // "" = mọi role
	Offset int
	Limit  int
}

// Repository là data access contract cho user domain.
type Repository interface {
	// Create insert user mới. Email trùng → ErrEmailAlreadyExists.
	Create(ctx context.Context, u *User) (*User, error)

	// GetByEmail dùng cho login. Không có → ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID trả user kèm ArticleCount.
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)

	// List trả về (users kèm ArticleCount, tổng rows match filter).
	List(ctx context.Context, f ListFilter) ([]User, int64, error)

	// Delete xóa user chỉ khi user không còn bài viết nào
	// (conditional DELETE, đóng race giữa check và write).
	// Returns ErrUserNotFound hoặc ErrUserHasArticles.
	Delete(ctx context.Context, id uuid.UUID) error
}
