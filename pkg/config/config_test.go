package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/killallgit/gameshelf-api/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr bool
		check   func(t *testing.T)
	}{
		{
			name: "load from settings.yaml",
			content: `
server:
  host: "127.0.0.1"
  port: 8181
bgg:
  timeout: 12s
  workers: 8
`,
			check: func(t *testing.T) {
				assert.Equal(t, 8181, GetInt("server.port"))
				assert.Equal(t, 12*time.Second, GetDuration("bgg.timeout"))

				cfg, err := GetConfig()
				require.NoError(t, err)
				assert.Equal(t, 8, cfg.BGG.Workers)
			},
		},
		{
			name: "environment variable override",
			content: `
server:
  port: 8080
`,
			env: map[string]string{
				"GAMESHELF_SERVER_PORT": "9090",
				"GAMESHELF_BGG_TOKEN":   "secret-token",
			},
			check: func(t *testing.T) {
				assert.Equal(t, 9090, GetInt("server.port"))

				cfg, err := GetConfig()
				require.NoError(t, err)
				assert.Equal(t, "secret-token", cfg.BGG.Token)
			},
		},
		{
			name: "missing config file with defaults",
			check: func(t *testing.T) {
				cfg, err := GetConfig()
				require.NoError(t, err)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, ProviderBGG, cfg.Search.Provider)
				assert.Equal(t, 20, cfg.BGG.SearchLimit)
				assert.Equal(t, 4, cfg.BGG.Workers)
				assert.Equal(t, 10, cfg.Search.DetailTopN)
				assert.Equal(t, 15*time.Second, cfg.BGG.Timeout)
				assert.Contains(t, cfg.Security.CORSHeaders, "x-client-info")
			},
		},
		{
			name: "ai provider without key fails fast",
			content: `
search:
  provider: ai
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reset()
			t.Cleanup(reset)

			dir := t.TempDir()
			configFile = filepath.Join(dir, "settings.yaml")
			t.Cleanup(func() { configFile = "./config/settings.yaml" })
			if tt.content != "" {
				require.NoError(t, os.WriteFile(configFile, []byte(tt.content), 0o644))
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			err := Init()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			if tt.check != nil {
				tt.check(t)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		wantCode apperrors.ErrorCode
		wantErr  bool
	}{
		{
			name: "valid bgg config",
			config: &Config{
				Server: ServerConfig{Port: 8080},
				Search: SearchConfig{Provider: ProviderBGG},
			},
		},
		{
			name: "invalid port",
			config: &Config{
				Server: ServerConfig{Port: 0},
				Search: SearchConfig{Provider: ProviderBGG},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: &Config{
				Server: ServerConfig{Port: 8080},
				Search: SearchConfig{Provider: "scraper"},
			},
			wantErr:  true,
			wantCode: apperrors.ErrCodeConfigInvalid,
		},
		{
			name: "ai provider requires key",
			config: &Config{
				Server: ServerConfig{Port: 8080},
				Search: SearchConfig{Provider: ProviderAI},
				AI:     AIConfig{APIKey: "  "},
			},
			wantErr:  true,
			wantCode: apperrors.ErrCodeConfigRequired,
		},
		{
			name: "ai provider with key",
			config: &Config{
				Server: ServerConfig{Port: 8080},
				Search: SearchConfig{Provider: ProviderAI},
				AI:     AIConfig{APIKey: "key"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, apperrors.GetCode(err))
			}
		})
	}
}

func TestConfig_ValidateFillsLimits(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Search: SearchConfig{Provider: ProviderBGG},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.BGG.SearchLimit)
	assert.Equal(t, 20, cfg.BGG.MaxBatch)
	assert.Equal(t, 4, cfg.BGG.Workers)
	assert.Equal(t, 10, cfg.Search.DetailTopN)
}
