package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"newsroom-backend/internal/shared/response"
	"newsroom-backend/pkg/jwt"
)

const claimsKey = "claims"

// AuthMiddleware xác thực JWT session token.
// Token lấy từ Authorization header ("Bearer <token>") hoặc cookie "token";
// thiếu / sai / hết hạn đều trả 401 và abort.
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		claims, err := jwtManager.Validate(token)
		if err != nil {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)
		c.Set("userID", userID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireAuthor chặn user không có role author. Chạy sau AuthMiddleware.
func RequireAuthor() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFrom(c)
		if !ok {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}
		if !claims.IsAuthor() {
			response.Forbidden(c, "Forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}

// ClaimsFrom lấy claims đã được AuthMiddleware set vào context.
func ClaimsFrom(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	return claims, ok
}

// UserIDFrom lấy user id (uuid) từ context.
func UserIDFrom(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	// Fallback: cookie do /api/auth/login set
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie
	}
	return ""
}
