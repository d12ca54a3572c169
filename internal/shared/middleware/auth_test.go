package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsroom-backend/pkg/jwt"
)

func setupAuthRouter(t *testing.T, manager *jwt.Manager, authorOnly bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware(manager)}
	if authorOnly {
		handlers = append(handlers, RequireAuthor())
	}
	handlers = append(handlers, func(c *gin.Context) {
		id, ok := UserIDFrom(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"userID": id.String()})
	})
	r.GET("/protected", handlers...)
	return r
}

func TestAuthMiddlewareBearerHeader(t *testing.T) {
	manager := jwt.NewManager("test-secret")
	userID := uuid.New()
	token, err := manager.Generate(userID.String(), "a@example.com", "reader")
	require.NoError(t, err)

	r := setupAuthRouter(t, manager, false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestAuthMiddlewareCookieFallback(t *testing.T) {
	manager := jwt.NewManager("test-secret")
	token, err := manager.Generate(uuid.NewString(), "a@example.com", "reader")
	require.NoError(t, err)

	r := setupAuthRouter(t, manager, false)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareRejects(t *testing.T) {
	manager := jwt.NewManager("test-secret")
	staleToken, err := jwt.NewManager("other-secret").Generate(uuid.NewString(), "a@example.com", "reader")
	require.NoError(t, err)
	badSubject, err := manager.Generate("not-a-uuid", "a@example.com", "reader")
	require.NoError(t, err)

	tests := []struct {
		name    string
		prepare func(req *http.Request)
	}{
		{"no credentials", func(*http.Request) {}},
		{"malformed header", func(req *http.Request) {
			req.Header.Set("Authorization", "Token abc")
		}},
		{"wrong signature", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+staleToken)
		}},
		{"non uuid subject", func(req *http.Request) {
			req.Header.Set("Authorization", "Bearer "+badSubject)
		}},
		{"garbage cookie", func(req *http.Request) {
			req.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})
		}},
	}

	r := setupAuthRouter(t, manager, false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tt.prepare(req)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error": "Unauthorized"}`, w.Body.String())
		})
	}
}

func TestRequireAuthor(t *testing.T) {
	manager := jwt.NewManager("test-secret")
	r := setupAuthRouter(t, manager, true)

	readerToken, err := manager.Generate(uuid.NewString(), "reader@example.com", "reader")
	require.NoError(t, err)
	authorToken, err := manager.Generate(uuid.NewString(), "author@example.com", "author")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+readerToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error": "Forbidden"}`, w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+authorToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
