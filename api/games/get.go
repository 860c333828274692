package games

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/gameshelf-api/api/types"
	"github.com/killallgit/gameshelf-api/pkg/logging"
)

// Get returns one catalog game
// @Summary      Get a catalog game
// @Tags         games
// @Produce      json
// @Param        id path string true "Catalog id (UUID)"
// @Success      200 {object} types.GameResponse "The game"
// @Failure      404 {object} types.ErrorResponse "Game not found"
// @Failure      500 {object} types.ErrorResponse "Database failure"
// @Router       /api/v1/games/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	logger := logging.OrNop(deps.Logger).Named("games")

	return func(c *gin.Context) {
		game, err := deps.Catalog.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			types.SendError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, types.GameResponse{Success: true, Data: game})
	}
}
