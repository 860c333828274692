package cmd

import (
	"go.uber.org/zap"

	"github.com/killallgit/gameshelf-api/api/types"
	"github.com/killallgit/gameshelf-api/internal/database"
	"github.com/killallgit/gameshelf-api/internal/services/aisearch"
	"github.com/killallgit/gameshelf-api/internal/services/bgg"
	"github.com/killallgit/gameshelf-api/internal/services/catalog"
	"github.com/killallgit/gameshelf-api/internal/services/games"
	"github.com/killallgit/gameshelf-api/pkg/config"
	"github.com/killallgit/gameshelf-api/pkg/logging"
)

// searchStack is the part of the dependency graph every command shares
type searchStack struct {
	bgg       *bgg.Client
	resolver  games.Resolver
	upstreams map[string]types.MetricsReporter
}

// newSearchStack wires the BGG client and the configured query resolver.
// Selecting the ai provider without an API key fails here.
func newSearchStack(cfg *config.Config, logger *zap.Logger) (*searchStack, error) {
	bggClient := bgg.NewClient(bgg.Config{
		BaseURL:     cfg.BGG.BaseURL,
		Token:       cfg.BGG.Token,
		UserAgent:   cfg.BGG.UserAgent,
		Timeout:     cfg.BGG.Timeout,
		SearchLimit: cfg.BGG.SearchLimit,
		MaxBatch:    cfg.BGG.MaxBatch,
		Workers:     cfg.BGG.Workers,
	}, logger)

	upstreams := map[string]types.MetricsReporter{"bgg": bggClient}
	scrape := games.NewScrapeResolver(bggClient, bggClient, cfg.Search.DetailTopN, logger)

	var ai games.Resolver
	if cfg.Search.Provider == config.ProviderAI {
		aiClient, err := aisearch.NewClient(aisearch.Config{
			APIKey:     cfg.AI.APIKey,
			BaseURL:    cfg.AI.BaseURL,
			Model:      cfg.AI.Model,
			Timeout:    cfg.AI.Timeout,
			MaxResults: cfg.AI.MaxResults,
		}, logger)
		if err != nil {
			return nil, err
		}
		ai = aiClient
		upstreams[aisearch.ServiceName] = aiClient
	}

	resolver, err := games.NewResolver(cfg.Search.Provider, scrape, ai)
	if err != nil {
		return nil, err
	}

	return &searchStack{bgg: bggClient, resolver: resolver, upstreams: upstreams}, nil
}

// buildDependencies assembles everything the HTTP server needs. The
// catalog is only wired when database.path is set; the returned cleanup
// closes the database.
func buildDependencies(cfg *config.Config, logger *zap.Logger) (*types.Dependencies, func(), error) {
	logger = logging.OrNop(logger)
	stack, err := newSearchStack(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	deps := &types.Dependencies{
		Logger:        logger,
		GameResolver:  stack.resolver,
		DetailFetcher: stack.bgg,
		Upstreams:     stack.upstreams,
		Version:       Version,
	}
	cleanup := func() {}

	if cfg.Database.Path != "" {
		db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose, logger)
		if err != nil {
			return nil, nil, err
		}
		if err := db.MigrateCatalog(); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		deps.DB = db
		deps.Catalog = catalog.NewService(catalog.NewRepository(db.DB), stack.bgg, logger)
		cleanup = func() {
			if err := db.Close(); err != nil {
				logger.Warn("closing database", zap.Error(err))
			}
		}
	}

	return deps, cleanup, nil
}
