package user

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"newsroom-backend/internal/shared/utils"
)

const (
	defaultUserPage  = 1
	defaultUserLimit = 10
	maxUserLimit     = 100
)

// ========================================
// REQUESTS
// ========================================

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *RegisterRequest) SetDefaults() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	// Không gửi role → mặc định reader
	if r.Role == "" {
		r.Role = RoleReader
	}
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 128)),
		validation.Field(&r.Role, validation.In(RoleReader, RoleAuthor)),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) SetDefaults() {
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// ListUsersRequest cho admin listing: search trên name/email, filter role.
type ListUsersRequest struct {
	Search string `form:"search"`
	Role   string `form:"role"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// SetDefaults clamp page/limit: giá trị thiếu hoặc <1 rơi về default,
// limit chặn trên tại 100. Không bao giờ trả 400 vì pagination xấu.
func (r *ListUsersRequest) SetDefaults() {
	r.Search = strings.TrimSpace(r.Search)
	if r.Page < 1 {
		r.Page = defaultUserPage
	}
	if r.Limit < 1 {
		r.Limit = defaultUserLimit
	}
	if r.Limit > maxUserLimit {
		r.Limit = maxUserLimit
	}
}

// ========================================
// RESPONSES
// ========================================

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserWithCountResponse thêm số bài viết, shape "_count.articles"
// giữ nguyên theo API cũ.
type UserWithCountResponse struct {
	UserResponse
	Count UserArticleCount `json:"_count"`
}

type UserArticleCount struct {
	Articles int64 `json:"articles"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeResponse cho GET /api/auth/me: đọc lại DB, không tin claims.
type MeResponse struct {
	UserResponse
	ArticlesCount int64 `json:"articles_count"`
}

type ListUsersResponse struct {
	Users      []UserWithCountResponse `json:"users"`
	Pagination utils.Pagination        `json:"pagination"`
}

func ToResponse(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToResponseWithCount(u *User) UserWithCountResponse {
	return UserWithCountResponse{
		UserResponse: ToResponse(u),
		Count:        UserArticleCount{Articles: u.ArticleCount},
	}
}
