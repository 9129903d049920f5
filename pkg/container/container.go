package container

import (
	"context"
	"fmt"
	"time"

	"locallibrary-backend/internal/config"
	infraCache "locallibrary-backend/internal/infrastructure/cache"
	"locallibrary-backend/internal/infrastructure/database"
	"locallibrary-backend/pkg/cache"
	"locallibrary-backend/pkg/logger"

	"locallibrary-backend/internal/domains/author"
	authorHandler "locallibrary-backend/internal/domains/author/handler"
	authorRepo "locallibrary-backend/internal/domains/author/repository"
	authorService "locallibrary-backend/internal/domains/author/service"

	"locallibrary-backend/internal/domains/book"
	bookHandler "locallibrary-backend/internal/domains/book/handler"
	bookRepo "locallibrary-backend/internal/domains/book/repository"
	bookService "locallibrary-backend/internal/domains/book/service"

	"locallibrary-backend/internal/domains/bookinstance"
	instanceHandler "locallibrary-backend/internal/domains/bookinstance/handler"
	instanceRepo "locallibrary-backend/internal/domains/bookinstance/repository"
	instanceService "locallibrary-backend/internal/domains/bookinstance/service"

	"locallibrary-backend/internal/domains/catalog"
	catalogHandler "locallibrary-backend/internal/domains/catalog/handler"
	catalogService "locallibrary-backend/internal/domains/catalog/service"

	"locallibrary-backend/internal/domains/genre"
	genreHandler "locallibrary-backend/internal/domains/genre/handler"
	genreRepo "locallibrary-backend/internal/domains/genre/repository"
	genreService "locallibrary-backend/internal/domains/genre/service"
)

// Container holds every dependency of the application, wired in order:
// config, infrastructure, repositories, services, handlers.
type Container struct {
	Config *config.Config
	DB     *database.PostgresDB
	Cache  cache.Cache

	AuthorRepo   author.Repository
	BookRepo     book.Repository
	GenreRepo    genre.Repository
	InstanceRepo bookinstance.Repository

	AuthorService   author.Service
	BookService     book.Service
	GenreService    genre.Service
	InstanceService bookinstance.Service
	CatalogService  catalog.Service

	AuthorHandler   *authorHandler.AuthorHandler
	BookHandler     *bookHandler.BookHandler
	GenreHandler    *genreHandler.GenreHandler
	InstanceHandler *instanceHandler.InstanceHandler
	CatalogHandler  *catalogHandler.CatalogHandler

	redis *infraCache.RedisCache
}

// NewContainer initializes the whole dependency graph.
func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisCache.Ping(ctx); err != nil {
		// The cache only fronts the reference-data lists; the app
		// still serves without it.
		logger.Error("redis unavailable, running without cache", err)
	} else {
		c.Cache = redisCache
		c.redis = redisCache
	}

	// Repositories
	c.AuthorRepo = authorRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.BookRepo = bookRepo.NewPostgresRepository(db.Pool)
	c.GenreRepo = genreRepo.NewPostgresRepository(db.Pool, c.Cache)
	c.InstanceRepo = instanceRepo.NewPostgresRepository(db.Pool)

	// Services
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo, c.BookRepo)
	c.BookService = bookService.NewBookService(c.BookRepo, c.AuthorRepo, c.GenreRepo, c.InstanceRepo)
	c.GenreService = genreService.NewGenreService(c.GenreRepo, c.BookRepo)
	c.InstanceService = instanceService.NewInstanceService(c.InstanceRepo)
	c.CatalogService = catalogService.NewCatalogService(c.BookRepo, c.InstanceRepo, c.AuthorRepo, c.GenreRepo)

	// Handlers
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewBookHandler(c.BookService)
	c.GenreHandler = genreHandler.NewGenreHandler(c.GenreService)
	c.InstanceHandler = instanceHandler.NewInstanceHandler(c.InstanceService)
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService)

	return c, nil
}

// Cleanup releases infrastructure resources on shutdown.
func (c *Container) Cleanup() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
