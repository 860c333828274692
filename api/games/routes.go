package games

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/gameshelf-api/api/types"
)

// RegisterRoutes registers catalog routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", List(deps))
	router.GET("/:id", Get(deps))
	router.POST("/import", PostImport(deps))
}
