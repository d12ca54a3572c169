package container

import (
	"context"
	"fmt"
	"log"

	"newsroom-backend/internal/config"
	articleHandler "newsroom-backend/internal/domains/article/handler"
	articleRepository "newsroom-backend/internal/domains/article/repository"
	articleService "newsroom-backend/internal/domains/article/service"
	categoryHandler "newsroom-backend/internal/domains/category/handler"
	categoryRepository "newsroom-backend/internal/domains/category/repository"
	categoryService "newsroom-backend/internal/domains/category/service"
	uploadHandler "newsroom-backend/internal/domains/upload/handler"
	uploadService "newsroom-backend/internal/domains/upload/service"
	userHandler "newsroom-backend/internal/domains/user/handler"
	userRepository "newsroom-backend/internal/domains/user/repository"
	userService "newsroom-backend/internal/domains/user/service"
	infraCache "newsroom-backend/internal/infrastructure/cache"
	"newsroom-backend/internal/infrastructure/database"
	"newsroom-backend/internal/infrastructure/queue"
	"newsroom-backend/internal/infrastructure/storage"

	"newsroom-backend/internal/domains/article"
	"newsroom-backend/internal/domains/category"
	"newsroom-backend/internal/domains/upload"
	"newsroom-backend/internal/domains/user"
	"newsroom-backend/pkg/cache"
	"newsroom-backend/pkg/jwt"
	"newsroom-backend/pkg/logger"
)

// Container khởi tạo và giữ toàn bộ dependencies theo thứ tự:
// config → database → cache → storage → queue → repos → services → handlers.
// Lỗi ở bất kỳ bước nào → application không start.
type Container struct {
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	Storage    storage.Storage
	Queue      *queue.Client
	JWTManager *jwt.Manager

	ArticleRepo  article.Repository
	CategoryRepo category.Repository
	UserRepo     user.Repository

	ArticleService  article.Service
	CategoryService category.Service
	UserService     user.Service
	UploadService   upload.Service

	ArticleHandler  *articleHandler.ArticleHandler
	CategoryHandler *categoryHandler.CategoryHandler
	UserHandler     *userHandler.UserHandler
	UploadHandler   *uploadHandler.UploadHandler
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	c.Config = cfg

	logger.Init(cfg.App.Environment)

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	c.DB = database.NewPostgresDB(dbConfig)
	if err := c.DB.Connect(context.Background()); err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	// Cache down không chặn startup: service layer coi cache là best-effort
	c.Cache = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Cache.Ping(context.Background()); err != nil {
		log.Printf("[CACHE] Redis unavailable, continuing without warm cache: %v", err)
	}

	c.Storage, err = newStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	c.Queue = queue.NewClient(cfg.Queue)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// Repositories
	c.ArticleRepo = articleRepository.NewPostgresRepository(c.DB.Pool)
	c.CategoryRepo = categoryRepository.NewPostgresRepository(c.DB.Pool)
	c.UserRepo = userRepository.NewPostgresRepository(c.DB.Pool)

	// Services
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo, c.CategoryRepo, c.Cache)
	c.CategoryService = categoryService.NewCategoryService(c.CategoryRepo, c.Cache)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.UploadService = uploadService.NewUploadService(c.Storage, c.Queue)

	// Handlers
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler(c.CategoryService)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.UploadHandler = uploadHandler.NewUploadHandler(c.UploadService)

	return c, nil
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case "minio":
		return storage.NewMinIOStorage(cfg.MinIO)
	default:
		return storage.NewLocalStorage(cfg.Storage)
	}
}

// Cleanup đóng các connections khi shutdown.
func (c *Container) Cleanup() {
	if c.Queue != nil {
		if err := c.Queue.Close(); err != nil {
			log.Printf("[CLEANUP] Queue close failed: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
