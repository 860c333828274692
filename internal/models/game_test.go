package models

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string  { return &v }

func TestGameRecord_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		in    GameRecord
		check func(t *testing.T, got GameRecord)
	}{
		{
			name: "zero rating and weight collapse to absent",
			in:   GameRecord{ExternalID: 1, Name: "A", Rating: floatPtr(0), Weight: floatPtr(0)},
			check: func(t *testing.T, got GameRecord) {
				assert.Nil(t, got.Rating)
				assert.Nil(t, got.Weight)
			},
		},
		{
			name: "positive scores are kept",
			in:   GameRecord{ExternalID: 1, Name: "A", Rating: floatPtr(7.2), Weight: floatPtr(2.31)},
			check: func(t *testing.T, got GameRecord) {
				require.NotNil(t, got.Rating)
				assert.Equal(t, 7.2, *got.Rating)
				require.NotNil(t, got.Weight)
				assert.Equal(t, 2.31, *got.Weight)
			},
		},
		{
			name: "NaN and infinite scores are dropped",
			in:   GameRecord{ExternalID: 1, Name: "A", Rating: floatPtr(math.NaN()), Weight: floatPtr(math.Inf(1))},
			check: func(t *testing.T, got GameRecord) {
				assert.Nil(t, got.Rating)
				assert.Nil(t, got.Weight)
			},
		},
		{
			name: "empty label lists collapse to absent",
			in:   GameRecord{ExternalID: 1, Name: "A", Categories: []string{}, Mechanics: []string{" ", ""}},
			check: func(t *testing.T, got GameRecord) {
				assert.Nil(t, got.Categories)
				assert.Nil(t, got.Mechanics)
			},
		},
		{
			name: "negative counts are dropped, zero counts kept",
			in:   GameRecord{ExternalID: 1, Name: "A", MinPlayers: intPtr(-1), MinAge: intPtr(0)},
			check: func(t *testing.T, got GameRecord) {
				assert.Nil(t, got.MinPlayers)
				require.NotNil(t, got.MinAge)
				assert.Equal(t, 0, *got.MinAge)
			},
		},
		{
			name: "negative year is absent",
			in:   GameRecord{ExternalID: 188, Name: "Go", YearPublished: intPtr(-2200)},
			check: func(t *testing.T, got GameRecord) {
				assert.Nil(t, got.YearPublished)
			},
		},
		{
			name: "blank text becomes absent",
			in:   GameRecord{ExternalID: 1, Name: " A ", Description: stringPtr("  "), Image: stringPtr("")},
			check: func(t *testing.T, got GameRecord) {
				assert.Equal(t, "A", got.Name)
				assert.Nil(t, got.Description)
				assert.Nil(t, got.Image)
			},
		},
		{
			name: "description is capped at 2000 characters",
			in:   GameRecord{ExternalID: 1, Name: "A", Description: stringPtr(strings.Repeat("é", 2500))},
			check: func(t *testing.T, got GameRecord) {
				require.NotNil(t, got.Description)
				assert.Equal(t, MaxDescriptionLength, len([]rune(*got.Description)))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.in.Normalize())
		})
	}
}

func TestGameRecord_JSONOmitsAbsentFields(t *testing.T) {
	rec := GameRecord{ExternalID: 13, Name: "Catan", Rating: floatPtr(0)}.Normalize()

	data, err := json.Marshal(rec)
	require.NoError(t, err)
	assert.JSONEq(t, `{"bggId":13,"name":"Catan"}`, string(data))
}

func TestGameRecord_Valid(t *testing.T) {
	assert.True(t, GameRecord{ExternalID: 13, Name: "Catan"}.Valid())
	assert.False(t, GameRecord{ExternalID: 0, Name: "Catan"}.Valid())
	assert.False(t, GameRecord{ExternalID: 13, Name: "  "}.Valid())
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", TruncateRunes("abc", 5))
	assert.Equal(t, "ab", TruncateRunes("abc", 2))
	assert.Equal(t, "卡坦", TruncateRunes("卡坦島", 2))
	assert.Equal(t, "", TruncateRunes("abc", 0))
}

func TestBoardGame_RoundTrip(t *testing.T) {
	rec := GameRecord{
		ExternalID: 13,
		Name:       "Catan",
		MinPlayers: intPtr(3),
		Rating:     floatPtr(7.1),
		Categories: []string{"Negotiation"},
	}

	row := NewBoardGame(rec)
	require.NotNil(t, row.BGGID)
	assert.Equal(t, 13, *row.BGGID)
	assert.Equal(t, "board_games", row.TableName())

	require.NoError(t, row.BeforeCreate(nil))
	assert.Len(t, row.ID, 36)

	assert.Equal(t, rec, row.Record())
}
