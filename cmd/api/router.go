package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"locallibrary-backend/internal/shared/middleware"
	"locallibrary-backend/internal/shared/response"
	"locallibrary-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
	)

	router.GET("/health", healthCheckHandler(c))

	catalog := router.Group("/catalog")
	{
		catalog.GET("", c.CatalogHandler.Index)

		setupBookRoutes(catalog, c)
		setupAuthorRoutes(catalog, c)
		setupGenreRoutes(catalog, c)
		setupBookInstanceRoutes(catalog, c)
	}

	return router
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(catalog *gin.RouterGroup, c *container.Container) {
	books := catalog.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/new", c.BookHandler.NewForm)
		books.POST("", c.BookHandler.Create)
		books.GET("/:id", c.BookHandler.Detail)
		books.GET("/:id/edit", c.BookHandler.EditForm)
		books.POST("/:id", c.BookHandler.Update)
		books.POST("/:id/delete", c.BookHandler.Delete)
	}
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(catalog *gin.RouterGroup, c *container.Container) {
	authors := catalog.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.POST("", c.AuthorHandler.Create)
		authors.GET("/:id", c.AuthorHandler.Detail)
		authors.POST("/:id", c.AuthorHandler.Update)
		authors.POST("/:id/delete", c.AuthorHandler.Delete)
	}
}

// ========================================
// GENRE ROUTES
// ========================================
func setupGenreRoutes(catalog *gin.RouterGroup, c *container.Container) {
	genres := catalog.Group("/genres")
	{
		genres.GET("", c.GenreHandler.List)
		genres.GET("/new", c.GenreHandler.NewForm)
		genres.POST("", c.GenreHandler.Create)
		genres.GET("/:id", c.GenreHandler.Detail)
		genres.POST("/:id", c.GenreHandler.Update)
		genres.POST("/:id/delete", c.GenreHandler.Delete)
	}
}

// ========================================
// BOOK INSTANCE ROUTES
// ========================================
func setupBookInstanceRoutes(catalog *gin.RouterGroup, c *container.Container) {
	instances := catalog.Group("/bookinstances")
	{
		instances.GET("", c.InstanceHandler.List)
		instances.POST("", c.InstanceHandler.Create)
		instances.GET("/:id", c.InstanceHandler.Detail)
		instances.POST("/:id", c.InstanceHandler.Update)
		instances.POST("/:id/delete", c.InstanceHandler.Delete)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			response.ErrorResponse(ctx, http.StatusServiceUnavailable, "UNHEALTHY", err.Error())
			return
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	}
}
