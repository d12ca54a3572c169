package category

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateCategoryRequest struct {
	Name string `json:"name"`
}

func (r *CreateCategoryRequest) SetDefaults() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 120)),
	)
}

// CategoryResponse giữ nguyên JSON shape của API cũ,
// article count nằm trong "_count.articles".
type CategoryResponse struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name"`
	Slug      string        `json:"slug"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Count     CategoryCount `json:"_count"`
}

type CategoryCount struct {
	Articles int64 `json:"articles"`
}

func ToResponse(c *Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Count:     CategoryCount{Articles: c.ArticleCount},
	}
}
