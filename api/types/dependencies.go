package types

import (
	"go.uber.org/zap"

	"github.com/killallgit/gameshelf-api/internal/database"
	"github.com/killallgit/gameshelf-api/internal/services/catalog"
	"github.com/killallgit/gameshelf-api/internal/services/games"
)

// MetricsReporter exposes upstream client counters for the health check
type MetricsReporter interface {
	GetMetrics() map[string]int64
}

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB            *database.DB
	Logger        *zap.Logger
	GameResolver  games.Resolver
	DetailFetcher games.DetailFetcher
	Catalog       catalog.GameService
	Upstreams     map[string]MetricsReporter

	// Version is reported by the version endpoint
	Version string
}
