package bggsearch

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/gameshelf-api/api/types"
)

// RegisterRoutes registers the search dispatcher
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/bgg-search (router already includes the /bgg-search prefix)
	router.POST("", Post(deps))
}
