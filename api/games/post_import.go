// Package games exposes the board game catalog: games a user picked from
// search results and stored locally, keyed by their BGG id.
package games

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/gameshelf-api/api/types"
	"github.com/killallgit/gameshelf-api/pkg/logging"
)

// PostImport fetches games from BGG and stores them in the catalog
// @Summary      Import games into the catalog
// @Description  Fetches the given BoardGameGeek ids and upserts them into the catalog. Importing an id twice updates the existing row.
// @Description  Ids BGG does not know are skipped.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        request body types.ImportGamesRequest true "Ids to import"
// @Success      200 {object} types.GamesResponse "Stored games"
// @Failure      400 {object} types.ErrorResponse "Missing or invalid ids"
// @Failure      500 {object} types.ErrorResponse "Upstream or database failure"
// @Router       /api/v1/games/import [post]
func PostImport(deps *types.Dependencies) gin.HandlerFunc {
	logger := logging.OrNop(deps.Logger).Named("games")

	return func(c *gin.Context) {
		var req types.ImportGamesRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		games, err := deps.Catalog.Import(c.Request.Context(), req.BGGIDs)
		if err != nil {
			types.SendError(c, logger, err)
			return
		}

		c.JSON(http.StatusOK, types.GamesResponse{
			Success: true,
			Data:    games,
			Total:   int64(len(games)),
			Limit:   len(games),
		})
	}
}
