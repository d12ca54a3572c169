package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/domains/category"
	"newsroom-backend/internal/shared/response"
	"newsroom-backend/pkg/logger"
)

// CategoryHandler xử lý HTTP requests cho category domain.
type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(service category.Service) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// List xử lý GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, categories)
}

// Create xử lý POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

func (h *CategoryHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, category.ErrCategoryAlreadyExists):
		response.BadRequest(c, "Category already exists")
	case errors.Is(err, category.ErrCategoryNotFound):
		response.NotFound(c, "Category not found")
	default:
		logger.Error("Category handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
