package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/domains/article"
	"newsroom-backend/internal/shared/middleware"
	"newsroom-backend/internal/shared/response"
	"newsroom-backend/pkg/logger"
)

// ArticleHandler xử lý HTTP requests cho article domain.
type ArticleHandler struct {
	service article.Service
}

func NewArticleHandler(service article.Service) *ArticleHandler {
	return &ArticleHandler{service: service}
}

// List xử lý GET /api/articles - home feed công khai.
func (h *ArticleHandler) List(c *gin.Context) {
	// Parse từng param riêng: page=abc rơi về default mà không kéo
	// theo limit hợp lệ bên cạnh
	req := article.ListArticlesRequest{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     queryInt(c, "page"),
		Limit:    queryInt(c, "limit"),
	}

	result, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Get xử lý GET /api/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// GetBySlug xử lý GET /api/article-detail/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	result, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Create xử lý POST /api/articles (author only).
func (h *ArticleHandler) Create(c *gin.Context) {
	authorID, ok := middleware.UserIDFrom(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req article.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), authorID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// Update xử lý PUT /api/articles/:id (author + owner).
func (h *ArticleHandler) Update(c *gin.Context) {
	authorID, ok := middleware.UserIDFrom(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	var req article.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.Update(c.Request.Context(), authorID, c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, updated)
}

// Delete xử lý DELETE /api/articles/:id (author + owner).
func (h *ArticleHandler) Delete(c *gin.Context) {
	authorID, ok := middleware.UserIDFrom(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	if err := h.service.Delete(c.Request.Context(), authorID, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

// MyArticles xử lý GET /api/my-articles (author only).
func (h *ArticleHandler) MyArticles(c *gin.Context) {
	authorID, ok := middleware.UserIDFrom(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	req := article.MyArticlesRequest{
		Search: c.Query("search"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
		SortBy: c.Query("sortBy"),
		Order:  c.Query("order"),
	}

	result, err := h.service.MyArticles(c.Request.Context(), authorID, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// queryInt parse một query param thành int; giá trị xấu trả 0
// để SetDefaults clamp, không ảnh hưởng param bên cạnh.
func queryInt(c *gin.Context, key string) int {
	v, _ := strconv.Atoi(c.Query(key))
	return v
}

// handleError map domain errors thành HTTP status codes.
func (h *ArticleHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, article.ErrInvalidArticleID):
		response.BadRequest(c, "Invalid article id")
	case errors.Is(err, article.ErrInvalidCategory):
		response.BadRequest(c, "Category not found")
	case errors.Is(err, article.ErrNotOwner):
		response.Forbidden(c, "You can only modify your own articles")
	case errors.Is(err, article.ErrArticleNotFound):
		response.NotFound(c, "Article not found")
	default:
		logger.Error("Article handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
