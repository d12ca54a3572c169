package article

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"newsroom-backend/internal/shared/utils"
)

const (
	defaultListLimit = 12
	defaultMineLimit = 10
	maxListLimit     = 100
)

// CategoryAll là sentinel nghĩa "không filter theo category".
// Frontend cũ gửi "Tất cả"; "all" cũng được chấp nhận.
const CategoryAll = "Tất cả"

// ========================================
// REQUESTS
// ========================================

type ListArticlesRequest struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page"`
	Limit    int    `form:"limit"`
}

// SetDefaults clamp pagination: thiếu hoặc <1 → default, limit chặn trên
// tại 100. Query xấu (page=abc) không bao giờ thành 400.
func (r *ListArticlesRequest) SetDefaults() {
	r.Category = strings.TrimSpace(r.Category)
	r.Search = strings.TrimSpace(r.Search)
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = defaultListLimit
	}
	if r.Limit > maxListLimit {
		r.Limit = maxListLimit
	}
}

// AllCategories báo request không constraint theo category.
func (r *ListArticlesRequest) AllCategories() bool {
	return r.Category == "" || r.Category == CategoryAll || strings.EqualFold(r.Category, "all")
}

// Sort whitelist cho my-articles; raw input không bao giờ
// được nối vào SQL.
var (
	mineSortColumns = map[string]string{
		"updated_at":   "a.updated_at",
		"published_at": "a.published_at",
		"title":        "a.title",
	}
	mineSortOrders = map[string]string{
		"asc":  "ASC",
		"desc": "DESC",
	}
)

type MyArticlesRequest struct {
	Search string `form:"search"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	SortBy string `form:"sortBy"`
	Order  string `form:"order"`
}

func (r *MyArticlesRequest) SetDefaults() {
	r.Search = strings.TrimSpace(r.Search)
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = defaultMineLimit
	}
	if r.Limit > maxListLimit {
		r.Limit = maxListLimit
	}
	if _, ok := mineSortColumns[r.SortBy]; !ok {
		r.SortBy = "updated_at"
	}
	if _, ok := mineSortOrders[strings.ToLower(r.Order)]; !ok {
		r.Order = "desc"
	}
	r.Order = strings.ToLower(r.Order)
}

// SortColumn trả về cột SQL đã whitelist.
func (r *MyArticlesRequest) SortColumn() string {
	return mineSortColumns[r.SortBy]
}

// SortOrder trả về ASC/DESC đã whitelist.
func (r *MyArticlesRequest) SortOrder() string {
	return mineSortOrders[r.Order]
}

type CreateArticleRequest struct {
	Title      string  `json:"title"`
	Summary    string  `json:"summary"`
	Content    string  `json:"content"`
	CategoryID int64   `json:"category_id"`
	ImageURL   *string `json:"image_url"`
	Priority   int     `json:"priority"`
}

func (r *CreateArticleRequest) SetDefaults() {
	r.Title = strings.TrimSpace(r.Title)
	r.Summary = strings.TrimSpace(r.Summary)
}

func (r CreateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 300)),
		validation.Field(&r.Summary, validation.Required),
		validation.Field(&r.Content, validation.Required),
		validation.Field(&r.CategoryID, validation.Required, validation.Min(int64(1))),
		validation.Field(&r.Priority, validation.Min(0), validation.Max(10)),
	)
}

// UpdateArticleRequest là partial update: field nil giữ nguyên giá trị cũ.
type UpdateArticleRequest struct {
	Title      *string `json:"title"`
	Summary    *string `json:"summary"`
	Content    *string `json:"content"`
	CategoryID *int64  `json:"category_id"`
	ImageURL   *string `json:"image_url"`
	Priority   *int    `json:"priority"`
}

func (r UpdateArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(1, 300)),
		validation.Field(&r.Summary, validation.NilOrNotEmpty),
		validation.Field(&r.Content, validation.NilOrNotEmpty),
		validation.Field(&r.CategoryID, validation.Min(int64(1))),
		validation.Field(&r.Priority, validation.Min(0), validation.Max(10)),
	)
}

// ========================================
// RESPONSES
// ========================================

// ArticleResponse giữ JSON shape của API cũ. Content omitempty:
// list endpoints không trả content, chỉ detail mới có.
type ArticleResponse struct {
	ID           int64     `json:"id"`
	Slug         string    `json:"slug"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	Content      string    `json:"content,omitempty"`
	ImageURL     *string   `json:"image_url"`
	Priority     int       `json:"priority"`
	Category     string    `json:"category"`
	CategorySlug string    `json:"category_slug"`
	CategoryID   int64     `json:"category_id"`
	Author       string    `json:"author,omitempty"`
	AuthorID     uuid.UUID `json:"author_id"`
	AuthorEmail  string    `json:"author_email,omitempty"`
	PublishedAt  time.Time `json:"published_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ListArticlesResponse: ba mảng độc lập tính trên cùng filter.
// Featured/latest có thể trùng bài với articles - không dedupe,
// đó là display contract của frontend.
type ListArticlesResponse struct {
	Articles   []ArticleResponse `json:"articles"`
	Featured   []ArticleResponse `json:"featured"`
	Latest     []ArticleResponse `json:"latest"`
	Pagination utils.Pagination  `json:"pagination"`
}

type MyArticlesResponse struct {
	Articles   []ArticleResponse `json:"articles"`
	Stats      AuthorStats       `json:"stats"`
	Pagination utils.Pagination  `json:"pagination"`
}

type AuthorStats struct {
	TotalArticles int64          `json:"total_articles"`
	ByCategory    []CategoryStat `json:"by_category"`
}

// CategoryStat giữ JSON shape cũ: {"category": <name>, "count": n}.
type CategoryStat struct {
	CategoryID   int64  `json:"-"`
	CategoryName string `json:"category"`
	Count        int64  `json:"count"`
}

// ToListItem projection cho list: không content, không author email.
func ToListItem(a *Article) ArticleResponse {
	return ArticleResponse{
		ID:           a.ID,
		Slug:         a.Slug,
		Title:        a.Title,
		Summary:      a.Summary,
		ImageURL:     a.ImageURL,
		Priority:     a.Priority,
		Category:     a.CategoryName,
		CategorySlug: a.CategorySlug,
		CategoryID:   a.CategoryID,
		Author:       a.AuthorName,
		AuthorID:     a.AuthorID,
		PublishedAt:  a.PublishedAt,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// ToDetail projection đầy đủ cho detail endpoints.
func ToDetail(a *Article) ArticleResponse {
	resp := ToListItem(a)
	resp.Content = a.Content
	resp.AuthorEmail = a.AuthorEmail
	return resp
}
