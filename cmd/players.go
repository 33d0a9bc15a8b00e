package cmd

import (
	"github.com/huangsam/gridiron/core"
	"github.com/spf13/cobra"
)

// playerCmd prints a player card.
var playerCmd = &cobra.Command{
	Use:   "player <name>",
	Short: "Show a player's profile and season fantasy points.",
	Long: `Look up a player by name and print the profile card.

Players on the precomputed leaderboard keep their stored season total; everyone
else is scored live from the provider's season statistics.

Examples:
  gridiron player "Lamar Jackson"
  gridiron player Josh Allen --output json`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: playerSetupWrapper,
	Run:     runExecutor("Cannot look up player", core.ExecutePlayer),
}

// scoreCmd prints the per-season fantasy breakdown.
var scoreCmd = &cobra.Command{
	Use:   "score <name>",
	Short: "Score every season of a player's career.",
	Long: `Convert a player's season statistics into fantasy points.

Each season is scored per category (passing, rushing, receiving, kicking) using the
active scoring weights. Seasons split across teams are merged, and career total
rows are ignored.

Examples:
  # Score with the default PPR weights
  gridiron score "Ja'Marr Chase"

  # Score a specific season in half-PPR
  gridiron score "Ja'Marr Chase" --season 2023 --scoring-preset half-ppr

  # Export the breakdown to CSV
  gridiron score "Ja'Marr Chase" --output csv --output-file chase.csv`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: playerSetupWrapper,
	Run:     runExecutor("Cannot score player", core.ExecuteScore),
}

// projectCmd prints the next-season projection.
var projectCmd = &cobra.Command{
	Use:   "project <name>",
	Short: "Project a player's next season.",
	Long: `Project next season's stat line and fantasy points for a player.

The projection blends up to three recent seasons, then applies age, trend,
situation and experience factors plus regression toward positional averages.

Examples:
  gridiron project "Jahmyr Gibbs"

  # Account for an offseason change
  gridiron project "Jahmyr Gibbs" --new-coordinator --injury`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: playerSetupWrapper,
	Run:     runExecutor("Cannot project player", core.ExecuteProject),
}

// compareCmd prints a head-to-head of two players.
var compareCmd = &cobra.Command{
	Use:   "compare <first> <second>",
	Short: "Compare two players by season fantasy points.",
	Long: `Compare two players head-to-head and report the winner and margin.

Quote names that contain spaces.

Examples:
  gridiron compare "Lamar Jackson" "Josh Allen"
  gridiron compare "Lamar Jackson" "Josh Allen" --season 2023`,
	Args:    cobra.ExactArgs(2),
	PreRunE: playerSetupWrapper,
	Run:     runExecutor("Cannot compare players", core.ExecuteCompare),
}

// scoringCmd prints the effective scoring weights.
var scoringCmd = &cobra.Command{
	Use:   "scoring",
	Short: "Show the active scoring weights.",
	Long: `Print the scoring weights after applying the preset and config file overrides.

Examples:
  gridiron scoring
  gridiron scoring --scoring-preset non-ppr`,
	Args:    cobra.NoArgs,
	PreRunE: configSetupWrapper,
	Run:     runExecutor("Cannot show scoring", core.ExecuteScoring),
}
