package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BoardGame is a catalog row: a game somebody added to the shelf.
// BGGID links it back to the external catalog and is unique when set.
type BoardGame struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	BGGID         *int      `json:"bggId,omitempty" gorm:"column:bgg_id;uniqueIndex"`
	Name          string    `json:"name" gorm:"not null"`
	Thumbnail     *string   `json:"thumbnail,omitempty"`
	Image         *string   `json:"image,omitempty"`
	YearPublished *int      `json:"yearPublished,omitempty"`
	MinPlayers    *int      `json:"minPlayers,omitempty"`
	MaxPlayers    *int      `json:"maxPlayers,omitempty"`
	PlayingTime   *int      `json:"playingTime,omitempty"`
	MinAge        *int      `json:"minAge,omitempty"`
	Description   *string   `json:"description,omitempty" gorm:"type:text"`
	Rating        *float64  `json:"rating,omitempty"`
	Weight        *float64  `json:"weight,omitempty"`
	Categories    []string  `json:"categories,omitempty" gorm:"serializer:json"`
	Mechanics     []string  `json:"mechanics,omitempty" gorm:"serializer:json"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName keeps the table name used by the app's other clients
func (BoardGame) TableName() string {
	return "board_games"
}

// BeforeCreate assigns a UUID primary key
func (b *BoardGame) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// NewBoardGame builds a catalog row from a normalized record
func NewBoardGame(rec GameRecord) *BoardGame {
	id := rec.ExternalID
	return &BoardGame{
		BGGID:         &id,
		Name:          rec.Name,
		Thumbnail:     rec.Thumbnail,
		Image:         rec.Image,
		YearPublished: rec.YearPublished,
		MinPlayers:    rec.MinPlayers,
		MaxPlayers:    rec.MaxPlayers,
		PlayingTime:   rec.PlayingTime,
		MinAge:        rec.MinAge,
		Description:   rec.Description,
		Rating:        rec.Rating,
		Weight:        rec.Weight,
		Categories:    rec.Categories,
		Mechanics:     rec.Mechanics,
	}
}

// Record converts the row back to the wire shape
func (b *BoardGame) Record() GameRecord {
	rec := GameRecord{
		Name:          b.Name,
		YearPublished: b.YearPublished,
		MinPlayers:    b.MinPlayers,
		MaxPlayers:    b.MaxPlayers,
		PlayingTime:   b.PlayingTime,
		MinAge:        b.MinAge,
		Description:   b.Description,
		Thumbnail:     b.Thumbnail,
		Image:         b.Image,
		Rating:        b.Rating,
		Weight:        b.Weight,
		Categories:    b.Categories,
		Mechanics:     b.Mechanics,
	}
	if b.BGGID != nil {
		rec.ExternalID = *b.BGGID
	}
	return rec.Normalize()
}
