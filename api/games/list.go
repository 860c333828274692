package games

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/gameshelf-api/api/types"
	"github.com/killallgit/gameshelf-api/internal/models"
	"github.com/killallgit/gameshelf-api/internal/services/catalog"
	"github.com/killallgit/gameshelf-api/pkg/logging"
)

// List returns a page of catalog games, newest first
// @Summary      List catalog games
// @Description  Returns stored games ordered by creation time, newest first.
// @Tags         games
// @Produce      json
// @Param        limit  query int false "Page size (max 200)" default(50)
// @Param        offset query int false "Rows to skip" default(0)
// @Success      200 {object} types.GamesResponse "Page of games"
// @Failure      400 {object} types.ErrorResponse "Invalid paging parameters"
// @Failure      500 {object} types.ErrorResponse "Database failure"
// @Router       /api/v1/games [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	logger := logging.OrNop(deps.Logger).Named("games")

	return func(c *gin.Context) {
		limit, ok := types.QueryInt(c, "limit", catalog.DefaultListLimit)
		if !ok {
			return
		}
		offset, ok := types.QueryInt(c, "offset", 0)
		if !ok {
			return
		}
		limit = min(max(limit, 1), catalog.MaxListLimit)
		offset = max(offset, 0)

		games, total, err := deps.Catalog.List(c.Request.Context(), limit, offset)
		if err != nil {
			types.SendError(c, logger, err)
			return
		}
		if games == nil {
			games = []models.BoardGame{}
		}

		c.JSON(http.StatusOK, types.GamesResponse{
			Success: true,
			Data:    games,
			Total:   total,
			Limit:   limit,
			Offset:  offset,
		})
	}
}
