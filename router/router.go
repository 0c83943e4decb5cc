// Package router assembles the gin engine: CORS, metrics middleware,
// health endpoints and the API routes.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"atleti-backend/handler"
	"atleti-backend/middleware"
)

// Setup builds the engine from the wired handlers.
func Setup(articles *handler.ArticleHandler, players *handler.PlayerHandler, uploads *handler.UploadHandler) *gin.Engine {
	r := gin.Default()

	// CORS is fully open, matching what the site frontend expects.
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"*"}
	config.AllowMethods = []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE", "OPTIONS"}
	r.Use(cors.New(config))

	r.Use(middleware.Prometheus())

	// Health check endpoints
	r.GET("/", healthCheck)
	r.GET("/health", healthCheck)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	articleRoutes := r.Group("/articles")
	{
		articleRoutes.POST("", articles.Create)
		// Fixed paths before the :id wildcard.
		articleRoutes.GET("/featured", articles.Featured)
		articleRoutes.GET("/recent", articles.Recent)
		articleRoutes.GET("/by-keywords", articles.ByKeywords)
		articleRoutes.GET("", articles.List)
		articleRoutes.GET("/:id", articles.Get)
		articleRoutes.PATCH("/:id", articles.Update)
		articleRoutes.DELETE("/:id", articles.Delete)
		articleRoutes.PUT("/:id/views", articles.IncrementViews)
		articleRoutes.PUT("/:id/like", articles.ToggleLike)
	}

	playerRoutes := r.Group("/players")
	{
		playerRoutes.POST("", players.Create)
		playerRoutes.GET("", players.List)
		playerRoutes.GET("/:id", players.Get)
		playerRoutes.PATCH("/:id", players.Update)
		playerRoutes.DELETE("/:id", players.Delete)
	}

	uploadRoutes := r.Group("/s3")
	{
		uploadRoutes.POST("/upload/article-cover", uploads.UploadCover)
		uploadRoutes.POST("/upload/article-image", uploads.UploadImage)
	}

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "healthy", "service": "atleti-backend"})
}
