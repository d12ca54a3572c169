package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"newsroom-backend/internal/domains/article"
)

// stubArticleService ghi lại request nhận được và trả lỗi cấu hình sẵn.
type stubArticleService struct {
	listReq   article.ListArticlesRequest
	mineReq   article.MyArticlesRequest
	createErr error
	updateErr error
}

func (s *stubArticleService) List(_ context.Context, req article.ListArticlesRequest) (*article.ListArticlesResponse, error) {
	s.listReq = req
	return &article.ListArticlesResponse{}, nil
}

func (s *stubArticleService) Get(context.Context, string) (*article.ArticleResponse, error) {
	return nil, article.ErrArticleNotFound
}

func (s *stubArticleService) GetBySlug(context.Context, string) (*article.ArticleResponse, error) {
	return nil, article.ErrArticleNotFound
}

func (s *stubArticleService) Create(_ context.Context, _ uuid.UUID, _ article.CreateArticleRequest) (*article.ArticleResponse, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &article.ArticleResponse{}, nil
}

func (s *stubArticleService) Update(_ context.Context, _ uuid.UUID, _ string, _ article.UpdateArticleRequest) (*article.ArticleResponse, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return &article.ArticleResponse{}, nil
}

func (s *stubArticleService) Delete(context.Context, uuid.UUID, string) error {
	return nil
}

func (s *stubArticleService) MyArticles(_ context.Context, _ uuid.UUID, req article.MyArticlesRequest) (*article.MyArticlesResponse, error) {
	s.mineReq = req
	return &article.MyArticlesResponse{}, nil
}

func setupArticleRouter(svc *stubArticleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewArticleHandler(svc)

	// Test router set sẵn userID như AuthMiddleware làm
	authed := func(c *gin.Context) { c.Set("userID", uuid.New()) }

	r := gin.New()
	r.GET("/articles", h.List)
	r.POST("/articles", authed, h.Create)
	r.PUT("/articles/:id", authed, h.Update)
	r.GET("/my-articles", authed, h.MyArticles)
	return r
}

func TestCreateUnknownCategoryReturns400(t *testing.T) {
	svc := &stubArticleService{createErr: article.ErrInvalidCategory}
	r := setupArticleRouter(svc)

	body := `{"title":"Tin","summary":"s","content":"c","category_id":999}`
	req := httptest.NewRequest(http.MethodPost, "/articles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Category not found"}`, w.Body.String())
}

func TestUpdateUnknownCategoryReturns400(t *testing.T) {
	svc := &stubArticleService{updateErr: article.ErrInvalidCategory}
	r := setupArticleRouter(svc)

	req := httptest.NewRequest(http.MethodPut, "/articles/5", strings.NewReader(`{"category_id":999}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Category not found"}`, w.Body.String())
}

func TestListBadPageKeepsValidLimit(t *testing.T) {
	svc := &stubArticleService{}
	r := setupArticleRouter(svc)

	// page=abc không được kéo limit=50 hợp lệ bên cạnh về default
	req := httptest.NewRequest(http.MethodGet, "/articles?page=abc&limit=50&search=tin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, svc.listReq.Page)
	assert.Equal(t, 50, svc.listReq.Limit)
	assert.Equal(t, "tin", svc.listReq.Search)
}

func TestMyArticlesQueryParams(t *testing.T) {
	svc := &stubArticleService{}
	r := setupArticleRouter(svc)

	req := httptest.NewRequest(http.MethodGet,
		"/my-articles?search=bong+da&limit=xyz&page=3&sortBy=title&order=asc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bong da", svc.mineReq.Search)
	assert.Equal(t, 3, svc.mineReq.Page)
	assert.Equal(t, 0, svc.mineReq.Limit)
	assert.Equal(t, "title", svc.mineReq.SortBy)
	assert.Equal(t, "asc", svc.mineReq.Order)
}
