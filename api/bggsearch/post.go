// Package bggsearch is the single search entry point used by the app: a
// free-text query or a batch of BGG ids in, normalized game records out.
package bggsearch

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/killallgit/gameshelf-api/api/types"
	"github.com/killallgit/gameshelf-api/internal/models"
	apperrors "github.com/killallgit/gameshelf-api/pkg/errors"
	"github.com/killallgit/gameshelf-api/pkg/logging"
)

// MsgMissingInput is returned when neither mode can be selected
const MsgMissingInput = "Provide query or bggIds"

// Post handles board game search requests
// @Summary      Search board games
// @Description  Resolves a free-text query (search mode) or a list of BoardGameGeek ids (batch mode) to normalized game records. A non-empty query wins over bggIds.
// @Tags         search
// @Accept       json
// @Produce      json
// @Param        request body types.BGGSearchRequest true "Query or id batch"
// @Success      200 {object} types.SearchResponse "Normalized game records"
// @Failure      400 {object} types.ErrorResponse "Neither query nor bggIds, or malformed body"
// @Failure      402 {object} types.ErrorResponse "AI credits exhausted"
// @Failure      429 {object} types.ErrorResponse "Too many requests"
// @Failure      500 {object} types.ErrorResponse "Upstream catalog failure"
// @Router       /api/v1/bgg-search [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	logger := logging.OrNop(deps.Logger).Named("bgg-search")

	return func(c *gin.Context) {
		var req types.BGGSearchRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		var (
			records []models.GameRecord
			err     error
		)

		if req.Query != nil && strings.TrimSpace(*req.Query) != "" {
			query := strings.TrimSpace(*req.Query)
			logger.Info("search", zap.String("query", query))
			records, err = deps.GameResolver.ResolveGames(c.Request.Context(), query)
		} else {
			ids, ok := parseIDs(req.BGGIDs)
			if !ok {
				types.SendBadRequest(c, MsgMissingInput)
				return
			}
			if ids == nil {
				types.SendError(c, logger, apperrors.ValidationError("bggIds", "must be an array of positive integers"))
				return
			}
			logger.Info("batch", zap.Ints("bggIds", ids))
			records, err = deps.DetailFetcher.FetchDetails(c.Request.Context(), ids)
		}

		if err != nil {
			types.SendError(c, logger, err)
			return
		}

		if records == nil {
			records = []models.GameRecord{}
		}
		c.JSON(http.StatusOK, types.SearchResponse{Success: true, Data: records})
	}
}

// parseIDs reports ok=false when raw is not a JSON array at all. An array
// holding anything but positive integers yields ok=true and nil ids.
func parseIDs(raw json.RawMessage) ([]int, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}

	var ids []int
	if err := json.Unmarshal(trimmed, &ids); err != nil {
		return nil, true
	}
	for _, id := range ids {
		if id <= 0 {
			return nil, true
		}
	}
	return ids, true
}
