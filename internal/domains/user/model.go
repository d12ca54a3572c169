package user

import (
	"time"

	"github.com/google/uuid"
)

// Roles của hệ thống. Reader chỉ đọc; author được tạo/sửa/xóa
// bài viết của chính mình.
const (
	RoleReader = "reader"
	RoleAuthor = "author"
)

func IsValidRole(role string) bool {
	return role == RoleReader || role == RoleAuthor
}

type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// ArticleCount populate bởi list query, không phải cột bảng users.
	ArticleCount int64 `json:"-"`
}
