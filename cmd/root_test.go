package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/killallgit/gameshelf-api/pkg/config"
)

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		wantErr        bool
		expectedOutput string
	}{
		{
			name:           "root command without args shows help",
			args:           []string{},
			expectedOutput: "GameShelf API",
		},
		{
			name:           "root command with --help",
			args:           []string{"--help"},
			expectedOutput: "Available Commands:",
		},
		{
			name:    "root command with invalid flag",
			args:    []string{"--invalid-flag"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := execute(t, nil, tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, output, tt.expectedOutput)
		})
	}
}

func TestLogFlags(t *testing.T) {
	cmd := NewRootCmd()

	logFlag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, logFlag)
	assert.Equal(t, "", logFlag.DefValue)

	assert.NotNil(t, cmd.PersistentFlags().Lookup("json-logs"))
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		cfgLevel      string
		expectedLevel zapcore.Level
		wantErr       bool
	}{
		{name: "config level", cfgLevel: "warn", expectedLevel: zapcore.WarnLevel},
		{name: "flag wins", args: []string{"--log-level", "debug"}, cfgLevel: "warn", expectedLevel: zapcore.DebugLevel},
		{name: "empty falls back to info", expectedLevel: zapcore.InfoLevel},
		{name: "bad level", args: []string{"--log-level", "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			resetFlags(cmd)
			require.NoError(t, cmd.ParseFlags(tt.args))

			cfg := &config.Config{Logging: config.LoggingConfig{Level: tt.cfgLevel, Format: "console"}}
			logger, err := newLogger(cmd, cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.expectedLevel))
			assert.False(t, logger.Core().Enabled(tt.expectedLevel-1))
		})
	}
}
