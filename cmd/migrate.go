package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/killallgit/gameshelf-api/internal/database"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the catalog database schema.

Migrations are GORM auto-migrations of the catalog tables: they create
missing tables and columns and never drop anything.

Available subcommands:
  up      - Create or update the catalog tables
  status  - Show which catalog tables exist`,
}

// migrateUpCmd applies the catalog schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Create or update the catalog tables",
	Long: `Apply the catalog schema to the configured database.

Tables and columns that are missing are created; existing data is kept.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the catalog tables.

Each catalog table is listed as applied when it exists in the database
and pending otherwise.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().String("db", "", "database path (overrides database.path)")
	migrateUpCmd.Flags().Bool("dry-run", false, "show what would be done without making changes")
}

// openDatabase opens the database named by --db or the configuration
func openDatabase(cmd *cobra.Command) (*database.DB, error) {
	cfg, err := appConfig()
	if err != nil {
		return nil, err
	}
	path := cfg.Database.Path
	if override, _ := cmd.Flags().GetString("db"); override != "" {
		path = override
	}
	if path == "" {
		return nil, errors.New("no database configured: set database.path or pass --db")
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, err
	}
	return database.Initialize(path, cfg.Database.Verbose, logger)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	out := cmd.OutOrStdout()
	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		fmt.Fprintln(out, "Dry run mode - no changes will be made")
		return printStatus(cmd, db)
	}

	if err := db.MigrateCatalog(); err != nil {
		return err
	}
	fmt.Fprintln(out, "Catalog schema is up to date")
	return printStatus(cmd, db)
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return printStatus(cmd, db)
}

func printStatus(cmd *cobra.Command, db *database.DB) error {
	tables, err := db.CatalogStatus()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Migration Status")
	fmt.Fprintln(out, strings.Repeat("=", 40))
	for _, t := range tables {
		state := "pending"
		if t.Migrated {
			state = "applied"
		}
		fmt.Fprintf(out, "  %-20s %s\n", t.Table, state)
	}
	return nil
}
