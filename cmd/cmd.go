// Package cmd defines the command-line interface for gridiron.
package cmd

import (
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(playerCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(scoringCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(searchesCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the leaderboard subcommands to the parent leaderboard command
	leaderboardCmd.AddCommand(leaderboardBuildCmd)
	leaderboardCmd.AddCommand(leaderboardShowCmd)
	leaderboardCmd.AddCommand(leaderboardExportCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the searches subcommands to the parent searches command
	searchesCmd.AddCommand(searchesStatusCmd)
	searchesCmd.AddCommand(searchesTrendingCmd)
	searchesCmd.AddCommand(searchesExportCmd)
	searchesCmd.AddCommand(searchesClearCmd)
	searchesCmd.AddCommand(searchesMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("scoring-preset", string(schema.PPRPreset), "Scoring preset: ppr or half-ppr or non-ppr")
	rootCmd.PersistentFlags().Int("season", 0, "Season year to score (0 = latest season in the data)")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("workers", contract.DefaultWorkers, "Number of concurrent workers")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("profile", "", "Enable profiling and write profiles to files with this prefix")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Response cache backend: sqlite or mysql or postgresql or redis or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Connection string for mysql/postgresql/redis (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("cache-ttl", contract.DefaultCacheTTL.String(), "How long cached provider responses stay fresh")
	rootCmd.PersistentFlags().String("search-backend", "", "Search tracking backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("search-db-connect", "", "Connection string for search tracking (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("leaderboard-file", contract.DefaultLeaderboardFile, "Path to the precomputed leaderboard JSON file")
	rootCmd.PersistentFlags().String("espn-core-url", contract.DefaultESPNCoreURL, "Base URL of the ESPN core API")
	rootCmd.PersistentFlags().String("espn-site-url", contract.DefaultESPNSiteURL, "Base URL of the ESPN site API")
	rootCmd.PersistentFlags().String("http-timeout", contract.DefaultHTTPTimeout.String(), "Timeout for each provider request")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of projectCmd to Viper
	projectCmd.Flags().Bool("injury", false, "Player is coming back from an injury")
	projectCmd.Flags().Bool("new-team", false, "Player changed teams in the offseason")
	projectCmd.Flags().Bool("new-coordinator", false, "Player's team has a new offensive coordinator")
	if err := viper.BindPFlags(projectCmd.Flags()); err != nil {
		contract.LogFatal("Error binding project flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().String("addr", contract.DefaultAddr, "Address for the HTTP service to listen on")
	serveCmd.Flags().String("cors-origins", "*", "Comma-separated list of allowed CORS origins")
	serveCmd.Flags().String("log-level", contract.DefaultLogLevel, "Log level: debug or info or warn or error")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		contract.LogFatal("Error binding serve flags", err)
	}

	// Bind all flags of searchesMigrateCmd to Viper
	searchesMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(searchesMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding searches migrate flags", err)
	}
}
