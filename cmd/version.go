package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/killallgit/gameshelf-api/api/version"
)

// Set at build time with -ldflags "-X .../cmd.Version=..."
var (
	Version   = "dev"
	GitCommit = "unknown"
)

// buildInfo is what `version --json` prints
type buildInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	Provider  string `json:"searchProvider,omitempty"`
	BGGURL    string `json:"bggBaseUrl,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the build version and the search backend this binary is
configured to use. The backend lines are omitted when the configuration
cannot be loaded.`,
	RunE: runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "print just the version number")
	versionCmd.Flags().Bool("json", false, "print version information as JSON")
}

func currentBuildInfo() buildInfo {
	info := buildInfo{Name: version.Name, Version: Version, GitCommit: GitCommit}
	if cfg, err := appConfig(); err == nil {
		info.Provider = cfg.Search.Provider
		info.BGGURL = cfg.BGG.BaseURL
	}
	return info
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if short, _ := cmd.Flags().GetBool("short"); short {
		fmt.Fprintf(out, "v%s\n", Version)
		return nil
	}

	info := currentBuildInfo()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Fprintf(out, "%s v%s (%s)\n", info.Name, info.Version, info.GitCommit)
	if info.Provider != "" {
		fmt.Fprintf(out, "Search:   %s\n", info.Provider)
		fmt.Fprintf(out, "BGG API:  %s\n", info.BGGURL)
	}
	return nil
}
