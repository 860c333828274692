package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/killallgit/gameshelf-api/internal/models"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name   string
		dbPath string
	}{
		{name: "in-memory database", dbPath: ":memory:"},
		{name: "file database in a new directory", dbPath: filepath.Join(t.TempDir(), "nested", "test.db")},
		{name: "empty path", dbPath: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Initialize(tt.dbPath, false, nil)
			require.NoError(t, err)
			require.NotNil(t, conn)
			defer conn.Close()

			assert.NoError(t, conn.HealthCheck(context.Background()))
		})
	}
}

func TestDB_HealthCheck(t *testing.T) {
	t.Run("closed connection", func(t *testing.T) {
		conn, err := Initialize(":memory:", false, nil)
		require.NoError(t, err)
		require.NoError(t, conn.Close())

		assert.Error(t, conn.HealthCheck(context.Background()))
	})

	t.Run("nil connection", func(t *testing.T) {
		var conn *DB
		assert.Error(t, conn.HealthCheck(context.Background()))
	})
}

func TestDB_AutoMigrate(t *testing.T) {
	type TestModel struct {
		gorm.Model
		Name string
	}

	conn, err := Initialize(":memory:", false, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.AutoMigrate(&TestModel{}))
	require.NoError(t, conn.AutoMigrate())

	var count int64
	err = conn.DB.Raw("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='test_models'").Scan(&count).Error
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestDB_CatalogStatus(t *testing.T) {
	conn, err := Initialize(":memory:", false, nil)
	require.NoError(t, err)
	defer conn.Close()

	status, err := conn.CatalogStatus()
	require.NoError(t, err)
	assert.Equal(t, []TableStatus{{Table: "board_games", Migrated: false}}, status)

	require.NoError(t, conn.MigrateCatalog())

	status, err = conn.CatalogStatus()
	require.NoError(t, err)
	assert.Equal(t, []TableStatus{{Table: "board_games", Migrated: true}}, status)
}

func TestDB_BoardGameRoundTrip(t *testing.T) {
	conn, err := Initialize(":memory:", false, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.MigrateCatalog())

	rating := 7.1
	row := models.NewBoardGame(models.GameRecord{
		ExternalID: 13,
		Name:       "Catan",
		Rating:     &rating,
		Categories: []string{"Economic", "Negotiation"},
	})
	require.NoError(t, conn.DB.Create(row).Error)
	assert.NotEmpty(t, row.ID)

	var loaded models.BoardGame
	require.NoError(t, conn.DB.First(&loaded, "bgg_id = ?", 13).Error)
	assert.Equal(t, row.ID, loaded.ID)
	assert.Equal(t, []string{"Economic", "Negotiation"}, loaded.Categories)
	assert.Nil(t, loaded.Mechanics)
	require.NotNil(t, loaded.Rating)
	assert.Equal(t, 7.1, *loaded.Rating)

	dup := models.NewBoardGame(models.GameRecord{ExternalID: 13, Name: "Catan again"})
	assert.Error(t, conn.DB.Create(dup).Error, "bgg_id is unique")
}
