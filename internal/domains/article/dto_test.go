package article

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListArticlesRequestSetDefaults(t *testing.T) {
	tests := []struct {
		name      string
		req       ListArticlesRequest
		wantPage  int
		wantLimit int
	}{
		{"zero values", ListArticlesRequest{}, 1, 12},
		{"negative page", ListArticlesRequest{Page: -3, Limit: 20}, 1, 20},
		{"limit over cap", ListArticlesRequest{Page: 2, Limit: 500}, 2, 100},
		{"limit at cap", ListArticlesRequest{Page: 1, Limit: 100}, 1, 100},
		{"valid values kept", ListArticlesRequest{Page: 4, Limit: 6}, 4, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.SetDefaults()
			assert.Equal(t, tt.wantPage, tt.req.Page)
			assert.Equal(t, tt.wantLimit, tt.req.Limit)
		})
	}
}

func TestListArticlesRequestTrimsFilters(t *testing.T) {
	req := ListArticlesRequest{Category: "  Thể thao  ", Search: " bóng đá "}
	req.SetDefaults()

	assert.Equal(t, "Thể thao", req.Category)
	assert.Equal(t, "bóng đá", req.Search)
}

func TestListArticlesRequestAllCategories(t *testing.T) {
	tests := []struct {
		category string
		want     bool
	}{
		{"", true},
		{"Tất cả", true},
		{"all", true},
		{"ALL", true},
		{"Thể thao", false},
		{"tất cả ", false},
	}

	for _, tt := range tests {
		req := ListArticlesRequest{Category: tt.category}
		assert.Equal(t, tt.want, req.AllCategories(), "category=%q", tt.category)
	}
}

func TestMyArticlesRequestSetDefaults(t *testing.T) {
	req := MyArticlesRequest{Search: " bóng đá "}
	req.SetDefaults()

	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 10, req.Limit)
	assert.Equal(t, "bóng đá", req.Search)
	assert.Equal(t, "a.updated_at", req.SortColumn())
	assert.Equal(t, "DESC", req.SortOrder())
}

func TestMyArticlesRequestSortWhitelist(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		order     string
		wantCol   string
		wantOrder string
	}{
		{"valid title asc", "title", "asc", "a.title", "ASC"},
		{"valid published_at", "published_at", "desc", "a.published_at", "DESC"},
		{"case insensitive order", "title", "ASC", "a.title", "ASC"},
		{"unknown column falls back", "author_id; DROP TABLE articles", "asc", "a.updated_at", "ASC"},
		{"unknown order falls back", "title", "random()", "a.title", "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := MyArticlesRequest{SortBy: tt.sortBy, Order: tt.order}
			req.SetDefaults()
			assert.Equal(t, tt.wantCol, req.SortColumn())
			assert.Equal(t, tt.wantOrder, req.SortOrder())
		})
	}
}

func TestCreateArticleRequestValidate(t *testing.T) {
	valid := CreateArticleRequest{
		Title:      "Tin mới",
		Summary:    "Tóm tắt",
		Content:    "Nội dung",
		CategoryID: 1,
		Priority:   5,
	}
	assert.NoError(t, valid.Validate())

	missingTitle := valid
	missingTitle.Title = ""
	assert.Error(t, missingTitle.Validate())

	badCategory := valid
	badCategory.CategoryID = 0
	assert.Error(t, badCategory.Validate())

	badPriority := valid
	badPriority.Priority = 11
	assert.Error(t, badPriority.Validate())
}

func TestUpdateArticleRequestValidate(t *testing.T) {
	assert.NoError(t, UpdateArticleRequest{}.Validate())

	title := "Tiêu đề mới"
	assert.NoError(t, UpdateArticleRequest{Title: &title}.Validate())

	empty := ""
	assert.Error(t, UpdateArticleRequest{Title: &empty}.Validate())
}

func TestCategoryStatJSONShape(t *testing.T) {
	stat := CategoryStat{CategoryID: 7, CategoryName: "Thể thao", Count: 4}

	raw, err := json.Marshal(stat)
	require.NoError(t, err)
	assert.JSONEq(t, `{"category": "Thể thao", "count": 4}`, string(raw))
}
