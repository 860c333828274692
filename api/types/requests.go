package types

import "encoding/json"

// BGGSearchRequest is the body of POST /api/v1/bgg-search. A non-empty
// query selects search mode; otherwise BGGIDs must be a JSON array.
type BGGSearchRequest struct {
	Query  *string         `json:"query,omitempty" example:"Catan"`
	BGGIDs json.RawMessage `json:"bggIds,omitempty" swaggertype:"array,integer" example:"13,822"`
}

// ImportGamesRequest is the body of POST /api/v1/games/import
type ImportGamesRequest struct {
	BGGIDs []int `json:"bggIds" binding:"required" example:"13,822"`
}
