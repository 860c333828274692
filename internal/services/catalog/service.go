package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/killallgit/gameshelf-api/internal/models"
	apperrors "github.com/killallgit/gameshelf-api/pkg/errors"
	"github.com/killallgit/gameshelf-api/pkg/logging"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type Service struct {
	repository GameRepository
	details    DetailFetcher
	logger     *zap.Logger
}

func NewService(repository GameRepository, details DetailFetcher, logger *zap.Logger) GameService {
	return &Service{
		repository: repository,
		details:    details,
		logger:     logging.OrNop(logger).Named("catalog"),
	}
}

// Import resolves ids through BGG and upserts every record it gets back
// in a single transaction.
// Ids BGG does not know are skipped, so the result may be shorter than ids.
func (s *Service) Import(ctx context.Context, ids []int) ([]models.BoardGame, error) {
	if len(ids) == 0 {
		return nil, apperrors.MissingFieldError("bggIds")
	}
	for _, id := range ids {
		if id <= 0 {
			return nil, apperrors.ValidationError("bggIds", "ids must be positive integers")
		}
	}

	records, err := s.details.FetchDetails(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]*models.BoardGame, len(records))
	for i, rec := range records {
		rows[i] = models.NewBoardGame(rec)
	}
	if err := s.repository.UpsertGames(ctx, rows); err != nil {
		return nil, err
	}

	games := make([]models.BoardGame, len(rows))
	for i, row := range rows {
		games[i] = *row
	}

	s.logger.Info("games imported",
		zap.Ints("requested", ids),
		zap.Int("stored", len(games)))
	return games, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*models.BoardGame, error) {
	return s.repository.GetGameByID(ctx, id)
}

// List clamps limit to [1, MaxListLimit] and offset to >= 0
func (s *Service) List(ctx context.Context, limit, offset int) ([]models.BoardGame, int64, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.repository.ListGames(ctx, limit, offset)
}
