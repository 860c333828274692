package bgg

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/killallgit/gameshelf-api/internal/models"
	apperrors "github.com/killallgit/gameshelf-api/pkg/errors"
)

// FetchDetails resolves a batch of BGG ids to normalized records.
//
// No request is made for an empty batch. Records come back in the order of
// ids, not the order BGG happens to return them in, and there are never
// more records than ids. Items without a primary name are dropped; a field
// that fails to parse is left absent.
func (c *Client) FetchDetails(ctx context.Context, ids []int) ([]models.GameRecord, error) {
	if len(ids) == 0 {
		return []models.GameRecord{}, nil
	}
	if len(ids) > c.config.MaxBatch {
		return nil, apperrors.ValidationError("bggIds",
			fmt.Sprintf("at most %d ids per request, got %d", c.config.MaxBatch, len(ids)))
	}

	joined := make([]string, len(ids))
	for i, id := range ids {
		joined[i] = strconv.Itoa(id)
	}

	params := url.Values{}
	params.Set("id", strings.Join(joined, ","))
	params.Set("stats", "1")

	body, err := c.get(ctx, "thing", params)
	if err != nil {
		return nil, err
	}

	records, err := c.parseThings(ctx, body)
	if err != nil {
		return nil, err
	}

	records = orderByIDs(records, ids)
	c.logger.Debug("details resolved",
		zap.Ints("ids", ids),
		zap.Int("records", len(records)))
	return records, nil
}

// parseThings normalizes every item block on a bounded worker group. Each
// worker writes only its own slot, so document order survives.
func (c *Client) parseThings(ctx context.Context, doc []byte) ([]models.GameRecord, error) {
	blocks := SplitBlocks(doc, "item")
	slots := make([]*models.GameRecord, len(blocks))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.config.Workers)
	for i, block := range blocks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if rec, ok := parseThing(block); ok {
				slots[i] = &rec
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, apperrors.UpstreamTransportError(serviceName, 0, err)
	}

	records := make([]models.GameRecord, 0, len(blocks))
	for _, rec := range slots {
		if rec != nil {
			records = append(records, *rec)
		}
	}
	return records, nil
}

// parseThing maps one <item> of a thing reply onto a GameRecord.
func parseThing(block Block) (models.GameRecord, bool) {
	id, ok := blockID(block)
	if !ok {
		return models.GameRecord{}, false
	}
	name, ok := primaryName(block)
	if !ok {
		return models.GameRecord{}, false
	}

	rec := models.GameRecord{
		ExternalID:    id,
		Name:          name,
		YearPublished: intAttr(block, "yearpublished"),
		MinPlayers:    intAttr(block, "minplayers"),
		MaxPlayers:    intAttr(block, "maxplayers"),
		PlayingTime:   intAttr(block, "playingtime"),
		MinAge:        intAttr(block, "minage"),
		Rating:        floatAttr(block, "average"),
		Weight:        floatAttr(block, "averageweight"),
		Thumbnail:     textField(block, "thumbnail", false),
		Image:         textField(block, "image", false),
		Description:   textField(block, "description", true),
		Categories:    linkValues(block, "boardgamecategory"),
		Mechanics:     linkValues(block, "boardgamemechanic"),
	}
	return rec.Normalize(), true
}

func textField(block Block, tag string, decode bool) *string {
	raw, ok := block.Text(tag)
	if !ok {
		return nil
	}
	if decode {
		raw = DecodeEntities(raw)
	}
	return &raw
}

func linkValues(block Block, linkType string) []string {
	values := block.EachAttr("link", "type", linkType, "value")
	for i, v := range values {
		values[i] = DecodeEntities(v)
	}
	return values
}

// orderByIDs sorts records into the order of ids. A game BGG lists twice
// is kept once, and the result is capped at len(ids).
func orderByIDs(records []models.GameRecord, ids []int) []models.GameRecord {
	rank := make(map[int]int, len(ids))
	for i, id := range ids {
		if _, seen := rank[id]; !seen {
			rank[id] = i
		}
	}
	position := func(id int) int {
		if r, ok := rank[id]; ok {
			return r
		}
		return len(ids)
	}

	seen := make(map[int]bool, len(records))
	unique := records[:0]
	for _, rec := range records {
		if seen[rec.ExternalID] {
			continue
		}
		seen[rec.ExternalID] = true
		unique = append(unique, rec)
	}

	sort.SliceStable(unique, func(a, b int) bool {
		return position(unique[a].ExternalID) < position(unique[b].ExternalID)
	})
	if len(unique) > len(ids) {
		unique = unique[:len(ids)]
	}
	return unique
}
