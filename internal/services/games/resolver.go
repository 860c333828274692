// Package games picks how a free-text query becomes game records: by
// scraping the BGG XML API or by asking the AI gateway.
package games

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/killallgit/gameshelf-api/internal/models"
	apperrors "github.com/killallgit/gameshelf-api/pkg/errors"
	"github.com/killallgit/gameshelf-api/pkg/logging"
)

// Resolver turns a query into normalized game records
type Resolver interface {
	ResolveGames(ctx context.Context, query string) ([]models.GameRecord, error)
}

// Searcher finds candidate games for a query
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.SearchCandidate, error)
}

// DetailFetcher resolves a batch of ids to full records
type DetailFetcher interface {
	FetchDetails(ctx context.Context, ids []int) ([]models.GameRecord, error)
}

// DefaultDetailTopN is how many candidates get a detail lookup
const DefaultDetailTopN = 10

// ScrapeResolver searches first, then fetches details for the top hits.
// The two calls are sequential; a failed search never reaches the detail
// endpoint.
type ScrapeResolver struct {
	searcher Searcher
	details  DetailFetcher
	topN     int
	logger   *zap.Logger
}

// NewScrapeResolver builds a ScrapeResolver. topN <= 0 selects
// DefaultDetailTopN.
func NewScrapeResolver(searcher Searcher, details DetailFetcher, topN int, logger *zap.Logger) *ScrapeResolver {
	if topN <= 0 {
		topN = DefaultDetailTopN
	}
	return &ScrapeResolver{
		searcher: searcher,
		details:  details,
		topN:     topN,
		logger:   logging.OrNop(logger),
	}
}

// ResolveGames implements Resolver
func (r *ScrapeResolver) ResolveGames(ctx context.Context, query string) ([]models.GameRecord, error) {
	candidates, err := r.searcher.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	if len(candidates) == 0 {
		return []models.GameRecord{}, nil
	}

	n := min(len(candidates), r.topN)
	ids := make([]int, n)
	for i := range n {
		ids[i] = candidates[i].ExternalID
	}

	records, err := r.details.FetchDetails(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch details: %w", err)
	}

	r.logger.Debug("query resolved",
		zap.String("query", query),
		zap.Int("candidates", len(candidates)),
		zap.Int("records", len(records)))
	return records, nil
}

// Provider names accepted by NewResolver
const (
	ProviderBGG = "bgg"
	ProviderAI  = "ai"
)

// NewResolver selects the strategy for provider. ai must be non-nil when
// provider is "ai".
func NewResolver(provider string, scrape *ScrapeResolver, ai Resolver) (Resolver, error) {
	switch provider {
	case "", ProviderBGG:
		return scrape, nil
	case ProviderAI:
		if ai == nil {
			return nil, apperrors.ConfigRequiredError("ai.api_key")
		}
		return ai, nil
	default:
		return nil, apperrors.ConfigError("search.provider", fmt.Sprintf("unknown provider %q", provider))
	}
}
