package cmd

import (
	"fmt"

	"github.com/huangsam/gridiron/core"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/parquet"
	"github.com/spf13/cobra"
)

// leaderboardCmd manages the precomputed season leaderboard.
var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Build and browse the precomputed fantasy leaderboard",
	Long: `Manage the precomputed leaderboard of season fantasy points.

The leaderboard powers rankings, recommendations and fast player lookups for the
chat assistant and the HTTP service. It is stored as JSON in --leaderboard-file.

Subcommands:
  build  - Score every active player and save the leaderboard
  show   - Print the top players, optionally for one position
  export - Write the ranked leaderboard to a Parquet file

Examples:
  # Rebuild with 16 concurrent workers
  gridiron leaderboard build --workers 16

  # Show the top 5 running backs
  gridiron leaderboard show RB --limit 5`,
}

// leaderboardBuildCmd scores the directory and saves the leaderboard file.
var leaderboardBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Score every active player and save the leaderboard",
	Long: `Fetch season statistics for every active player in the athlete directory,
score the configured season and save the ranked results to --leaderboard-file.

Players without stats for the season are left out. Provider responses are cached,
so rebuilding within --cache-ttl is fast.

Examples:
  gridiron leaderboard build
  gridiron leaderboard build --season 2023 --leaderboard-file leaderboard-2023.json`,
	Args:    cobra.NoArgs,
	PreRunE: playerSetupWrapper,
	Run:     runExecutor("Cannot build leaderboard", core.ExecuteLeaderboardBuild),
}

// leaderboardShowCmd prints the top of the saved leaderboard.
var leaderboardShowCmd = &cobra.Command{
	Use:   "show [position]",
	Short: "Print the top players from the saved leaderboard",
	Long: `Print the highest scoring players from --leaderboard-file.

Pass a position (QB, RB, WR, TE, K) to filter.

Examples:
  gridiron leaderboard show
  gridiron leaderboard show wr --limit 20 --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: offlineSetupWrapper,
	Run:     runExecutor("Cannot show leaderboard", core.ExecuteLeaderboard),
}

// leaderboardExportCmd writes the leaderboard to Parquet.
var leaderboardExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ranked leaderboard to Parquet",
	Long: `Write every leaderboard entry with its rank and tier label to a Parquet file.

Requires: --output-file parameter

Examples:
  gridiron leaderboard export --output-file leaderboard.parquet
  duckdb -c "SELECT position, avg(fantasy_points) FROM 'leaderboard.parquet' GROUP BY 1"`,
	Args:    cobra.NoArgs,
	PreRunE: offlineSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.OutputFile == "" {
			contract.LogFatal("Failed to export leaderboard", fmt.Errorf("--output-file is required for export command"))
		}
		board := env.Resolver.Leaderboard()
		if board.Len() == 0 {
			contract.LogFatal("Failed to export leaderboard", core.ErrEmptyLeaderboard)
		}
		rows := parquet.ConvertLeaderboardEntries(board.All())
		if err := parquet.WriteLeaderboardParquet(rows, cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export leaderboard", err)
		}
		fmt.Printf("Exported %d players to %s\n", len(rows), cfg.OutputFile)
	},
}
