package catalog

import (
	"context"

	"github.com/killallgit/gameshelf-api/internal/models"
)

// GameRepository defines the data access interface for catalog games
type GameRepository interface {
	// Create/Update
	UpsertGame(ctx context.Context, game *models.BoardGame) error
	UpsertGames(ctx context.Context, games []*models.BoardGame) error

	// Read
	GetGameByID(ctx context.Context, id string) (*models.BoardGame, error)
	GetGameByBGGID(ctx context.Context, bggID int) (*models.BoardGame, error)

	// List
	ListGames(ctx context.Context, limit, offset int) ([]models.BoardGame, int64, error)
}

// DetailFetcher resolves BGG ids to normalized records
type DetailFetcher interface {
	FetchDetails(ctx context.Context, ids []int) ([]models.GameRecord, error)
}

// GameService defines the business logic interface for the catalog
type GameService interface {
	// Import fetches ids from BGG and stores them, one row per BGG id
	Import(ctx context.Context, ids []int) ([]models.BoardGame, error)

	GetByID(ctx context.Context, id string) (*models.BoardGame, error)
	List(ctx context.Context, limit, offset int) ([]models.BoardGame, int64, error)
}
