package version

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/gameshelf-api/api/types"
)

// Name is the service name reported to clients
const Name = "GameShelf API"

// Response is the body of the version endpoint
type Response struct {
	Name        string `json:"name" example:"GameShelf API"`
	Version     string `json:"version" example:"1.0.0"`
	Description string `json:"description"`
	Status      string `json:"status" example:"running"`
}

// Get handles version requests
// @Summary      Service version
// @Tags         health
// @Produce      json
// @Success      200 {object} version.Response
// @Router       /version [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	v := "dev"
	if deps != nil && deps.Version != "" {
		v = deps.Version
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Name:        Name,
			Version:     v,
			Description: "Board game search and catalog API backed by BoardGameGeek",
			Status:      "running",
		})
	}
}
