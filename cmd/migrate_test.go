package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateCommandHelp(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput string
	}{
		{name: "migrate command with help", args: []string{"migrate", "--help"}, expectedOutput: "Manage the catalog database schema"},
		{name: "migrate up subcommand", args: []string{"migrate", "up", "--help"}, expectedOutput: "Apply the catalog schema"},
		{name: "migrate status subcommand", args: []string{"migrate", "status", "--help"}, expectedOutput: "Display the current status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, nil, tt.args...)
			require.NoError(t, err)
			assert.Contains(t, output, tt.expectedOutput)
		})
	}
}

func TestMigrateUpAndStatus(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "shelf.db")
	setConfig(t, "database.path", dbPath)

	output, err := execute(t, nil, "migrate", "status")
	require.NoError(t, err)
	assert.Regexp(t, `board_games\s+pending`, output)

	output, err = execute(t, nil, "migrate", "up", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, output, "Dry run mode")
	assert.Regexp(t, `board_games\s+pending`, output)

	output, err = execute(t, nil, "migrate", "up")
	require.NoError(t, err)
	assert.Contains(t, output, "Catalog schema is up to date")
	assert.Regexp(t, `board_games\s+applied`, output)

	output, err = execute(t, nil, "migrate", "status")
	require.NoError(t, err)
	assert.Regexp(t, `board_games\s+applied`, output)
}

func TestMigrateDBFlagOverridesConfig(t *testing.T) {
	setConfig(t, "database.path", "")

	_, err := execute(t, nil, "migrate", "status")
	assert.ErrorContains(t, err, "no database configured")

	override := filepath.Join(t.TempDir(), "override.db")
	output, err := execute(t, nil, "migrate", "up", "--db", override)
	require.NoError(t, err)
	assert.Regexp(t, `board_games\s+applied`, output)
	assert.FileExists(t, override)
}
