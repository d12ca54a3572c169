package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/domains/user"
	"newsroom-backend/internal/shared/middleware"
	"newsroom-backend/internal/shared/response"
	"newsroom-backend/pkg/jwt"
	"newsroom-backend/pkg/logger"
)

// cookieMaxAge khớp với jwt.TokenTTL (7 ngày).
const cookieMaxAge = int(jwt.TokenTTL / time.Second)

// UserHandler xử lý HTTP requests cho user domain.
// Struct này là stateless - chỉ chứa dependencies.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// ========================================
// AUTHENTICATION ENDPOINTS
// ========================================

// Register xử lý POST /api/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	created, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusCreated, created)
}

// Login xử lý POST /api/auth/login.
// Token được set vào httpOnly cookie "token" VÀ trả trong body
// để client dùng bearer header nếu muốn.
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	loginResp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.SetCookie("token", loginResp.Token, cookieMaxAge, "/", "", false, true)

	response.JSON(c, http.StatusOK, loginResp)
}

// Logout xử lý POST /api/auth/logout - chỉ clear cookie, luôn 200.
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", false, true)
	response.JSON(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me xử lý GET /api/auth/me - đọc lại user từ DB theo id trong token.
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	me, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"user": me})
}

// ========================================
// USER MANAGEMENT ENDPOINTS
// ========================================

// List xử lý GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	// Parse từng param riêng: page=abc rơi về default mà không kéo
	// theo limit hợp lệ bên cạnh, và không bao giờ trả 400
	req := user.ListUsersRequest{
		Search: c.Query("search"),
		Role:   c.Query("role"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}

	result, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Get xử lý GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	result, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, result)
}

// Delete xử lý DELETE /api/users/:id.
// Bị chặn (400) khi user còn sở hữu bài viết.
func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// queryInt parse một query param thành int; giá trị xấu trả 0
// để SetDefaults clamp.
func queryInt(c *gin.Context, key string) int {
	v, _ := strconv.Atoi(c.Query(key))
	return v
}

// handleError map domain errors thành HTTP status codes.
func (h *UserHandler) handleError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	switch {
	case errors.As(err, &validationErrs):
		response.BadRequest(c, err.Error())
	case errors.Is(err, user.ErrInvalidUUID):
		response.BadRequest(c, "Invalid user id")
	case errors.Is(err, user.ErrUserHasArticles):
		response.BadRequest(c, "Cannot delete user with existing articles")
	case errors.Is(err, user.ErrInvalidCredentials):
		response.Unauthorized(c, "Invalid email or password")
	case errors.Is(err, user.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, user.ErrEmailAlreadyExists):
		response.Conflict(c, "Email already exists")
	default:
		logger.Error("User handler error", err)
		response.InternalServerError(c, "Internal server error")
	}
}
