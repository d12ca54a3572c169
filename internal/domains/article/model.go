package article

import (
	"time"

	"github.com/google/uuid"
)

// Ranking constants cho home feed.
const (
	// FeaturedMinPriority: bài featured phải có priority > 3
	FeaturedMinPriority = 3
	// FeaturedCap: section featured tối đa 2 bài
	FeaturedCap = 2
	// LatestCap: section latest tối đa 12 bài, bất kể limit request
	LatestCap = 12
)

// Article là bài viết. Slug luôn mang timestamp suffix nên unique
// mà không cần check database.
type Article struct {
	ID          int64      `json:"id"`
	Slug        string     `json:"slug"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	ImageURL    *string    `json:"image_url"`
	Priority    int        `json:"priority"`
	CategoryID  int64      `json:"category_id"`
	AuthorID    uuid.UUID  `json:"author_id"`
	PublishedAt time.Time  `json:"published_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Joined fields, populate bởi repository (JOIN categories/users)
	CategoryName string `json:"-"`
	CategorySlug string `json:"-"`
	AuthorName   string `json:"-"`
	AuthorEmail  string `json:"-"`
}
