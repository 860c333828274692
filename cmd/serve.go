package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/killallgit/gameshelf-api/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the GameShelf API server with the configured settings.

The server answers POST /api/v1/bgg-search and, when database.path is
set, the /api/v1/games catalog endpoints.

Example:
  gameshelf-api serve
  gameshelf-api serve --port 9090
  gameshelf-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "", "server host (overrides config)")
	serveCmd.Flags().Int("port", -1, "server port (overrides config, 0 picks a free port)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := appConfig()
	if err != nil {
		return err
	}
	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port >= 0 {
		cfg.Server.Port = port
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	deps, cleanup, err := buildDependencies(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to build dependencies: %w", err)
	}
	defer cleanup()

	server := api.NewServer(cfg, deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	logger.Info("server started",
		zap.String("addr", server.Addr()),
		zap.String("provider", cfg.Search.Provider),
		zap.Bool("catalog", deps.Catalog != nil))

	select {
	case <-ctx.Done():
		logger.Info("shutting down server")
	case err = <-serverErr:
		logger.Error("server stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if shutdownErr := server.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("server forced to shutdown", zap.Error(shutdownErr))
		return shutdownErr
	}

	logger.Info("server gracefully stopped")
	return err
}
