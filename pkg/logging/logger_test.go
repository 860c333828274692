package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		format  string
		want    zapcore.Level
		wantErr bool
	}{
		{name: "json info", level: "info", format: "json", want: zapcore.InfoLevel},
		{name: "console debug", level: "DEBUG", format: "console", want: zapcore.DebugLevel},
		{name: "warn with spaces", level: " warn ", format: "json", want: zapcore.WarnLevel},
		{name: "invalid level", level: "loud", format: "json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.level, tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			assert.False(t, logger.Core().Enabled(tt.want-1))
		})
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))
}

func TestSnippet(t *testing.T) {
	assert.Equal(t, "short", Snippet([]byte("short"), 10))
	assert.Equal(t, "abc...", Snippet([]byte("abcdef"), 3))
}
