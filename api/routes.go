package api

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/gameshelf-api/api/bggsearch"
	"github.com/killallgit/gameshelf-api/api/games"
	"github.com/killallgit/gameshelf-api/api/health"
	"github.com/killallgit/gameshelf-api/api/types"
	"github.com/killallgit/gameshelf-api/api/version"
	_ "github.com/killallgit/gameshelf-api/docs/swagger"
	"github.com/killallgit/gameshelf-api/pkg/config"
	apperrors "github.com/killallgit/gameshelf-api/pkg/errors"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, limits config.RateLimitConfig, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil || deps.GameResolver == nil || deps.DetailFetcher == nil {
		return apperrors.New(apperrors.ErrCodeConfigRequired, "search dependencies are not configured")
	}

	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	v1 := engine.Group("/api/v1")

	searchGroup := v1.Group("/bgg-search")
	if limits.Enabled {
		searchGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, limits.SearchRPS, limits.SearchBurst))
	}
	bggsearch.RegisterRoutes(searchGroup, deps)

	// Catalog routes need a database
	if deps.DB != nil && deps.DB.DB != nil && deps.Catalog != nil {
		gamesGroup := v1.Group("/games")
		if limits.Enabled {
			gamesGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, limits.DefaultRPS, limits.DefaultBurst))
		}
		games.RegisterRoutes(gamesGroup, deps)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Success: false,
			Error:   "The requested endpoint was not found",
		})
	}
}
