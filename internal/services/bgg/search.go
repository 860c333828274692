package bgg

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/killallgit/gameshelf-api/internal/models"
	apperrors "github.com/killallgit/gameshelf-api/pkg/errors"
)

const itemTypeBoardGame = "boardgame"

// Search resolves a free-text query to candidates in BGG's relevance
// order. A blank query is rejected before any request is made.
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchCandidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.ValidationError("query", "must not be empty")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("type", itemTypeBoardGame)

	body, err := c.get(ctx, "search", params)
	if err != nil {
		return nil, err
	}

	candidates := parseSearch(body, c.config.SearchLimit)
	c.logger.Debug("search resolved",
		zap.String("query", query),
		zap.Int("candidates", len(candidates)))
	return candidates, nil
}

// parseSearch keeps boardgame items with a positive id and a primary name,
// in document order, up to limit.
func parseSearch(doc []byte, limit int) []models.SearchCandidate {
	candidates := make([]models.SearchCandidate, 0)
	for _, block := range SplitBlocks(doc, "item") {
		if len(candidates) >= limit {
			break
		}
		if typ, ok := block.RootAttr("type"); ok && typ != itemTypeBoardGame {
			continue
		}
		id, ok := blockID(block)
		if !ok {
			continue
		}
		name, ok := primaryName(block)
		if !ok {
			continue
		}
		candidates = append(candidates, models.SearchCandidate{
			ExternalID:    id,
			PrimaryName:   name,
			YearPublished: intAttr(block, "yearpublished"),
		})
	}
	return candidates
}

func blockID(block Block) (int, bool) {
	raw, ok := block.RootAttr("id")
	if !ok {
		return 0, false
	}
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func primaryName(block Block) (string, bool) {
	raw, ok := block.AttrWhere("name", "type", "primary", "value")
	if !ok {
		return "", false
	}
	name := strings.TrimSpace(DecodeEntities(raw))
	return name, name != ""
}

// intAttr reads <tag value="N"/>; anything unparsable is absent.
func intAttr(block Block, tag string) *int {
	raw, ok := block.Attr(tag, "value")
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &v
}

// floatAttr reads <tag value="N.N"/>; anything unparsable is absent.
func floatAttr(block Block, tag string) *float64 {
	raw, ok := block.Attr(tag, "value")
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &v
}
