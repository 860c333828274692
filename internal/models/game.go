package models

import (
	"math"
	"strings"
	"unicode/utf8"
)

// MaxDescriptionLength caps GameRecord.Description, in characters
const MaxDescriptionLength = 2000

// SearchCandidate is one hit from the catalog's free-text search, in
// relevance order. It only lives long enough to feed a detail lookup.
type SearchCandidate struct {
	ExternalID    int    `json:"bggId"`
	PrimaryName   string `json:"name"`
	YearPublished *int   `json:"yearPublished,omitempty"`
}

// GameRecord is the normalized board game returned to clients.
// Absent values are nil and omitted from JSON; only ExternalID and Name
// are always set.
type GameRecord struct {
	ExternalID    int      `json:"bggId" example:"13"`
	Name          string   `json:"name" example:"Catan"`
	YearPublished *int     `json:"yearPublished,omitempty" example:"1995"`
	MinPlayers    *int     `json:"minPlayers,omitempty" example:"3"`
	MaxPlayers    *int     `json:"maxPlayers,omitempty" example:"4"`
	PlayingTime   *int     `json:"playingTime,omitempty" example:"120"`
	MinAge        *int     `json:"minAge,omitempty" example:"10"`
	Description   *string  `json:"description,omitempty"`
	Thumbnail     *string  `json:"thumbnail,omitempty"`
	Image         *string  `json:"image,omitempty"`
	Rating        *float64 `json:"rating,omitempty" example:"7.1"`
	Weight        *float64 `json:"weight,omitempty" example:"2.3"`
	Categories    []string `json:"categories,omitempty"`
	Mechanics     []string `json:"mechanics,omitempty"`
}

// Normalize applies the presence rules shared by every transport: zero
// scores and negative counts become absent, blank text becomes absent,
// empty label lists become absent and the description is capped.
// A true zero rating cannot be told apart from "unrated"; the catalog
// uses 0 for the latter. Likewise BGG dates ancient games with negative
// years (Go is -2200), and those years come out absent.
func (g GameRecord) Normalize() GameRecord {
	g.Name = strings.TrimSpace(g.Name)
	g.YearPublished = nonNegative(g.YearPublished)
	g.MinPlayers = nonNegative(g.MinPlayers)
	g.MaxPlayers = nonNegative(g.MaxPlayers)
	g.PlayingTime = nonNegative(g.PlayingTime)
	g.MinAge = nonNegative(g.MinAge)
	g.Rating = positive(g.Rating)
	g.Weight = positive(g.Weight)
	g.Thumbnail = nonBlank(g.Thumbnail)
	g.Image = nonBlank(g.Image)
	if d := nonBlank(g.Description); d != nil {
		capped := TruncateRunes(*d, MaxDescriptionLength)
		g.Description = &capped
	} else {
		g.Description = nil
	}
	g.Categories = nonEmpty(g.Categories)
	g.Mechanics = nonEmpty(g.Mechanics)
	return g
}

// Valid reports whether the record carries both required fields.
func (g GameRecord) Valid() bool {
	return g.ExternalID > 0 && strings.TrimSpace(g.Name) != ""
}

// TruncateRunes cuts s to at most n characters without splitting a rune.
func TruncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func nonNegative(v *int) *int {
	if v == nil || *v < 0 {
		return nil
	}
	return v
}

func positive(v *float64) *float64 {
	if v == nil || !(*v > 0) || math.IsInf(*v, 1) {
		return nil
	}
	return v
}

func nonBlank(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

func nonEmpty(labels []string) []string {
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
