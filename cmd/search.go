package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/killallgit/gameshelf-api/internal/models"
)

// searchCmd runs the same resolvers as the HTTP endpoint
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search board games from the command line",
	Long: `Resolve a free-text query, or a list of BGG ids, and print the
normalized records as JSON.

Example:
  gameshelf-api search catan
  gameshelf-api search --ids 13,822`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().String("ids", "", "comma-separated BGG ids (batch mode)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	rawIDs, _ := cmd.Flags().GetString("ids")
	if query == "" && strings.TrimSpace(rawIDs) == "" {
		return errors.New("provide a query or --ids")
	}

	cfg, err := appConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	stack, err := newSearchStack(cfg, logger)
	if err != nil {
		return err
	}

	var records []models.GameRecord
	if query != "" {
		records, err = stack.resolver.ResolveGames(cmd.Context(), query)
	} else {
		var ids []int
		if ids, err = parseIDList(rawIDs); err != nil {
			return err
		}
		records, err = stack.bgg.FetchDetails(cmd.Context(), ids)
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func parseIDList(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid BGG id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
