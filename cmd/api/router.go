package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"boighor-backend/internal/shared/middleware"
	"boighor-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		cors.Default(),
	)

	jwtSecret := c.Config.JWT.Secret

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		// Public reads; identity is optional so shop pages can report
		// ownership for the viewer.
		public := v1.Group("", middleware.OptionalAuth(jwtSecret))
		{
			public.GET("/home", c.ShopHandler.GetOfficialCatalog)
			public.GET("/shops", c.ShopHandler.ListShops)
			public.GET("/shops/:slug", c.ShopHandler.GetShopBySlug)
			public.GET("/categories", c.CategoryHandler.ListCategories)
			public.GET("/me", c.UserHandler.GetCurrentUser)
		}

		// Catalog mutations require an authenticated caller.
		authed := v1.Group("", middleware.Auth(jwtSecret))
		{
			authed.POST("/shops", c.ShopHandler.CreateShop)
			authed.POST("/categories", c.CategoryHandler.CreateCategory)
			authed.POST("/books", c.BookHandler.AddBook)
			authed.PUT("/books/:id", c.BookHandler.UpdateBook)
			authed.DELETE("/books/:id", c.BookHandler.DeleteBook)
			authed.GET("/books/:id/edit", c.BookHandler.GetBookForEdit)
		}

		admin := v1.Group("/admin", middleware.Auth(jwtSecret), middleware.RequireAdmin(c.UserRepo))
		{
			admin.POST("/official-shop", c.ShopHandler.CreateOfficialShop)
		}
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "cache": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["database"] = err.Error()
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["cache"] = err.Error()
		}

		ctx.JSON(status, gin.H{"success": status == http.StatusOK, "data": checks})
	}
}
