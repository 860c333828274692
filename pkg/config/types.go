package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Environment  string          `mapstructure:"environment"`
	Server       ServerConfig    `mapstructure:"server"`
	Database     DatabaseConfig  `mapstructure:"database"`
	BGG          BGGConfig       `mapstructure:"bgg"`
	Search       SearchConfig    `mapstructure:"search"`
	AI           AIConfig        `mapstructure:"ai"`
	Security     SecurityConfig  `mapstructure:"security"`
	RateLimiting RateLimitConfig `mapstructure:"rate_limiting"`
	Logging      LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
	MaxBodyBytes    int64         `mapstructure:"max_body_bytes"`
}

// DatabaseConfig contains database settings. An empty Path disables the catalog.
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// BGGConfig contains BoardGameGeek XML API settings
type BGGConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	Token       string        `mapstructure:"token"`
	UserAgent   string        `mapstructure:"user_agent"`
	Timeout     time.Duration `mapstructure:"timeout"`
	SearchLimit int           `mapstructure:"search_limit"`
	MaxBatch    int           `mapstructure:"max_batch"`
	Workers     int           `mapstructure:"workers"` // parallel item normalizers per reply
}

// SearchConfig selects how free-text queries are resolved
type SearchConfig struct {
	Provider   string `mapstructure:"provider"` // "bgg" or "ai"
	DetailTopN int    `mapstructure:"detail_top_n"`
}

// AIConfig contains settings for the chat-completion search provider
type AIConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	Model      string        `mapstructure:"model"`
	Timeout    time.Duration `mapstructure:"timeout"`
	MaxResults int           `mapstructure:"max_results"`
}

// SecurityConfig contains CORS settings
type SecurityConfig struct {
	CORSOrigins []string `mapstructure:"cors_origins"`
	CORSMethods []string `mapstructure:"cors_methods"`
	CORSHeaders []string `mapstructure:"cors_headers"`
}

// RateLimitConfig contains inbound rate limiting settings
type RateLimitConfig struct {
	Enabled      bool `mapstructure:"enabled"`
	SearchRPS    int  `mapstructure:"search_rps"`
	SearchBurst  int  `mapstructure:"search_burst"`
	DefaultRPS   int  `mapstructure:"default_rps"`
	DefaultBurst int  `mapstructure:"default_burst"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}
