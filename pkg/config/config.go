package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	apperrors "github.com/killallgit/gameshelf-api/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// ProviderBGG resolves queries by scraping the BGG XML API
	ProviderBGG = "bgg"
	// ProviderAI resolves queries through a chat-completion tool call
	ProviderAI = "ai"
)

var (
	once    sync.Once
	initErr error

	// configFile is the optional YAML settings file
	configFile = "./config/settings.yaml"
)

// Init initializes the configuration system. Loading happens once;
// validation runs on every call so later overrides are checked too.
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment overrides, e.g. GAMESHELF_BGG_TOKEN
		viper.SetEnvPrefix("GAMESHELF")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean(configFile)
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// A missing file is fine, defaults and env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
			}
		}
	})
	if initErr != nil {
		return initErr
	}

	cfg, err := GetConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// reset clears viper and the init guard (tests only)
func reset() {
	viper.Reset()
	once = sync.Once{}
	initErr = nil
}

// GetConfig returns the current configuration as a struct
// Init() must be called before using this
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// Validate validates a Config struct and fills in corrected values
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	switch c.Search.Provider {
	case ProviderBGG:
	case ProviderAI:
		if strings.TrimSpace(c.AI.APIKey) == "" {
			return apperrors.ConfigRequiredError("ai.api_key")
		}
	default:
		return apperrors.ConfigError("search.provider", fmt.Sprintf("unknown provider %q", c.Search.Provider))
	}

	if c.BGG.SearchLimit <= 0 {
		c.BGG.SearchLimit = 20
	}
	if c.BGG.MaxBatch <= 0 {
		c.BGG.MaxBatch = 20
	}
	if c.BGG.Workers <= 0 {
		c.BGG.Workers = 4
	}
	if c.Search.DetailTopN <= 0 {
		c.Search.DetailTopN = 10
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 45*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)
	viper.SetDefault("server.max_body_bytes", 1048576)

	// Database defaults (catalog persistence)
	viper.SetDefault("database.path", "./data/gameshelf.db")
	viper.SetDefault("database.verbose", false)

	// BoardGameGeek defaults
	viper.SetDefault("bgg.base_url", "https://boardgamegeek.com/xmlapi2")
	viper.SetDefault("bgg.token", "")
	viper.SetDefault("bgg.user_agent", "GameShelf/1.0 (+https://github.com/killallgit/gameshelf-api)")
	viper.SetDefault("bgg.timeout", 15*time.Second)
	viper.SetDefault("bgg.search_limit", 20)
	viper.SetDefault("bgg.max_batch", 20)
	viper.SetDefault("bgg.workers", 4)

	// Search defaults
	viper.SetDefault("search.provider", ProviderBGG)
	viper.SetDefault("search.detail_top_n", 10)

	// AI provider defaults
	viper.SetDefault("ai.api_key", "")
	viper.SetDefault("ai.base_url", "https://ai.gateway.lovable.dev/v1")
	viper.SetDefault("ai.model", "google/gemini-3-flash-preview")
	viper.SetDefault("ai.timeout", 15*time.Second)
	viper.SetDefault("ai.max_results", 10)

	// Security defaults
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{
		"authorization",
		"x-client-info",
		"apikey",
		"content-type",
		"x-supabase-client-platform",
		"x-supabase-client-platform-version",
		"x-supabase-client-runtime",
		"x-supabase-client-runtime-version",
	})

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.search_rps", 5)
	viper.SetDefault("rate_limiting.search_burst", 10)
	viper.SetDefault("rate_limiting.default_rps", 10)
	viper.SetDefault("rate_limiting.default_burst", 20)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}
