package types

import (
	"github.com/killallgit/gameshelf-api/internal/models"
)

// Status constants for health responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// SearchResponse is the success envelope of the search endpoint.
// Data is never null.
type SearchResponse struct {
	Success bool                `json:"success" example:"true"`
	Data    []models.GameRecord `json:"data"`
}

// ErrorResponse is the failure envelope shared by every endpoint
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"Provide query or bggIds"`
}

// GameResponse wraps a single catalog game
type GameResponse struct {
	Success bool              `json:"success" example:"true"`
	Data    *models.BoardGame `json:"data"`
}

// GamesResponse wraps a page of catalog games
type GamesResponse struct {
	Success bool               `json:"success" example:"true"`
	Data    []models.BoardGame `json:"data"`
	Total   int64              `json:"total" example:"42"`
	Limit   int                `json:"limit" example:"50"`
	Offset  int                `json:"offset" example:"0"`
}

// HealthResponse for health check endpoint
type HealthResponse struct {
	Status    string                      `json:"status" example:"ok"`
	Timestamp string                      `json:"timestamp"`
	Database  map[string]string           `json:"database"`
	Upstreams map[string]map[string]int64 `json:"upstreams,omitempty"`
}
