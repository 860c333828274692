package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/gameshelf-api/pkg/config"
	"github.com/killallgit/gameshelf-api/pkg/logging"
)

// configErr holds the result of the lazy config load
var configErr error

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gameshelf-api",
	Short: "GameShelf board game API server",
	Long: `GameShelf API - board game search and catalog backend

Resolves free-text queries and BoardGameGeek ids to normalized game
records, either by scraping the BGG XML API or through an AI gateway,
and keeps a local catalog of games added to the shelf.

Configuration is read from ./config/settings.yaml and GAMESHELF_*
environment variables (e.g. GAMESHELF_BGG_TOKEN, GAMESHELF_AI_API_KEY).`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)

	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); overrides logging.level")
	rootCmd.PersistentFlags().Bool("json-logs", false, "enable JSON formatted logs; overrides logging.format")
}

// loadConfig runs before every command. Commands that need settings
// call appConfig, which reports any load failure.
func loadConfig() {
	configErr = config.Init()
}

// appConfig returns the validated configuration
func appConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newLogger builds the process logger. Flags win over configuration.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*zap.Logger, error) {
	level := cfg.Logging.Level
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		level = l
	}
	if level == "" {
		level = "info"
	}

	format := cfg.Logging.Format
	if cmd.Flags().Changed("json-logs") {
		if jsonLogs, _ := cmd.Flags().GetBool("json-logs"); jsonLogs {
			format = "json"
		} else {
			format = "console"
		}
	}

	return logging.New(level, format)
}
