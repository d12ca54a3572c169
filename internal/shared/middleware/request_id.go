package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID gắn id duy nhất cho mỗi request để trace qua logs.
// Tôn trọng X-Request-ID do client/proxy gửi lên.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)

		c.Next()
	}
}

// RequestIDFrom lấy request id đã được RequestID middleware set.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
