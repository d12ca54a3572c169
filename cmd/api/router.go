package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsroom-backend/internal/shared/middleware"
	"newsroom-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	// Driver local: serve uploads trực tiếp từ disk
	if c.Config.Storage.Driver == "local" {
		router.Static(c.Config.Storage.BaseURL, c.Config.Storage.LocalDir)
	}

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupArticleRoutes(api, c)
		setupCategoryRoutes(api, c)
		setupUserRoutes(api, c)
		setupUploadRoutes(api, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/logout", c.UserHandler.Logout)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Me)
	}
}

// ========================================
// ARTICLE ROUTES
// ========================================
func setupArticleRoutes(api *gin.RouterGroup, c *container.Container) {
	authorOnly := []gin.HandlerFunc{
		middleware.AuthMiddleware(c.JWTManager),
		middleware.RequireAuthor(),
	}

	articles := api.Group("/articles")
	{
		articles.GET("", c.ArticleHandler.List)
		articles.GET("/:id", c.ArticleHandler.Get)

		articles.POST("", append(authorOnly, c.ArticleHandler.Create)...)
		articles.PUT("/:id", append(authorOnly, c.ArticleHandler.Update)...)
		articles.DELETE("/:id", append(authorOnly, c.ArticleHandler.Delete)...)
	}

	api.GET("/article-detail/:slug", c.ArticleHandler.GetBySlug)
	api.GET("/my-articles", append(authorOnly, c.ArticleHandler.MyArticles)...)
}

// ========================================
// CATEGORY ROUTES
// ========================================
func setupCategoryRoutes(api *gin.RouterGroup, c *container.Container) {
	categories := api.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.POST("", c.CategoryHandler.Create)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(api *gin.RouterGroup, c *container.Container) {
	users := api.Group("/users")
	{
		users.GET("", c.UserHandler.List)
		users.GET("/:id", c.UserHandler.Get)
		users.DELETE("/:id", c.UserHandler.Delete)
	}
}

// ========================================
// UPLOAD ROUTES
// ========================================
func setupUploadRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/upload", c.UploadHandler.Upload)
}

// healthCheckHandler check database; cache down chỉ degraded, vẫn 200.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}

		status := "ok"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status = "degraded"
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  status,
			"version": c.Config.App.Version,
		})
	}
}
