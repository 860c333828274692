// Package catalog stores the board games users add to their shelf.
package catalog

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/killallgit/gameshelf-api/internal/models"
	apperrors "github.com/killallgit/gameshelf-api/pkg/errors"
)

type Repository struct {
	db *gorm.DB
}

// Ensure Repository implements GameRepository interface
var _ GameRepository = (*Repository)(nil)

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// UpsertGame inserts game, or updates the row that already holds its BGG id
func (r *Repository) UpsertGame(ctx context.Context, game *models.BoardGame) error {
	return upsertGame(r.db.WithContext(ctx), game)
}

// UpsertGames upserts every game in one transaction. Either all rows are
// written or none are.
func (r *Repository) UpsertGames(ctx context.Context, games []*models.BoardGame) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, game := range games {
			if err := upsertGame(tx, game); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertGame(db *gorm.DB, game *models.BoardGame) error {
	if game.BGGID != nil {
		// Find instead of First: a missing row is the normal case here
		var existing models.BoardGame
		result := db.Where("bgg_id = ?", *game.BGGID).Limit(1).Find(&existing)
		if result.Error != nil {
			return apperrors.DatabaseError("get game", result.Error)
		}
		if result.RowsAffected > 0 {
			game.ID = existing.ID
			game.CreatedAt = existing.CreatedAt
			if err := db.Save(game).Error; err != nil {
				return apperrors.DatabaseError("update game", err)
			}
			return nil
		}
	}

	if err := db.Create(game).Error; err != nil {
		return apperrors.DatabaseError("create game", err)
	}
	return nil
}

func (r *Repository) GetGameByID(ctx context.Context, id string) (*models.BoardGame, error) {
	var game models.BoardGame
	if err := r.db.WithContext(ctx).First(&game, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("game", id)
		}
		return nil, apperrors.DatabaseError("get game", err)
	}
	return &game, nil
}

func (r *Repository) GetGameByBGGID(ctx context.Context, bggID int) (*models.BoardGame, error) {
	var game models.BoardGame
	if err := r.db.WithContext(ctx).Where("bgg_id = ?", bggID).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("game", bggID)
		}
		return nil, apperrors.DatabaseError("get game", err)
	}
	return &game, nil
}

// ListGames returns one page of games, newest first, and the total count
func (r *Repository) ListGames(ctx context.Context, limit, offset int) ([]models.BoardGame, int64, error) {
	var games []models.BoardGame
	var total int64

	query := r.db.WithContext(ctx).Model(&models.BoardGame{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.DatabaseError("count games", err)
	}

	if err := query.
		Order("created_at DESC").
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&games).Error; err != nil {
		return nil, 0, apperrors.DatabaseError("list games", err)
	}

	return games, total, nil
}
