package cmd

import (
	"fmt"
	"os"

	"github.com/huangsam/gridiron/core"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/iocache"
	"github.com/huangsam/gridiron/internal/outwriter"
	"github.com/huangsam/gridiron/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// searchBackendFromViper reads the search backend, treating empty as NoneBackend.
func searchBackendFromViper() (schema.DatabaseBackend, string, error) {
	backend := schema.NoneBackend
	if backendStr := viper.GetString("search-backend"); backendStr != "" {
		backend = schema.DatabaseBackend(backendStr)
	}
	connStr := viper.GetString("search-db-connect")

	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return "", "", err
	}
	return backend, connStr, nil
}

// searchesSetup loads minimal configuration needed for search operations.
// This is used by commands that need search access without full shared setup.
func searchesSetup() error {
	if err := loadConfig(); err != nil {
		return err
	}

	backend, connStr, err := searchBackendFromViper()
	if err != nil {
		return err
	}

	// No response cache for search commands
	if err := iocache.InitStores("", "", backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize search tracking: %w", err)
	}

	cfg.SearchBackend = backend
	cfg.SearchDBConnect = connStr
	env.Cache = iocache.Manager
	env.Out = outwriter.NewOutWriter()

	return nil
}

// searchesSetupWrapper wraps searchesSetup to provide PreRunE for search commands.
func searchesSetupWrapper(_ *cobra.Command, _ []string) error {
	return searchesSetup()
}

// searchesMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func searchesMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	backend, connStr, err := searchBackendFromViper()
	if err != nil {
		return err
	}

	if backend == schema.SQLiteBackend {
		connStr = sqlitePath(connStr, contract.GetSearchDBFilePath())
	}

	cfg.SearchBackend = backend
	cfg.SearchDBConnect = connStr

	return nil
}

// searchesMigrateSetupWrapper wraps searchesMigrateSetup to provide PreRunE for migrate command.
func searchesMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return searchesMigrateSetup()
}

// requireSearchStore returns the configured search store or exits.
func requireSearchStore() contract.SearchStore {
	store := iocache.Manager.GetSearchStore()
	if store == nil {
		contract.LogFatal("Search tracking unavailable", core.ErrSearchesDisabled)
	}
	return store
}

// searchesCmd focused on player search tracking.
//
// Note: Searches subcommands use minimal initialization (searchesSetup) instead of
// the full sharedSetup. This avoids loading the athlete directory and the
// leaderboard for simple search operations.
var searchesCmd = &cobra.Command{
	Use:   "searches",
	Short: "Manage player search tracking and exports",
	Long: `Manage the per-player search counts behind trending players.

When enabled, every successful player lookup from the CLI, the HTTP service and
the chat assistant increments a counter for that player, storing:
- The latest search term that resolved to the player
- Name, position, team and headshot at the time of the search
- The time of the latest search

Supported backends: SQLite, MySQL, PostgreSQL, or None (disabled, default)

Subcommands:
  status   - Show search tracking statistics
  trending - Print the most searched players
  export   - Export data to Parquet for analytics
  clear    - Remove all search data
  migrate  - Run database schema migrations

Examples:
  # Check tracking status
  GRIDIRON_SEARCH_BACKEND=sqlite gridiron searches status

  # Export for analysis in pandas/DuckDB
  gridiron searches export --search-backend sqlite --output-file searches.parquet`,
}

// searchesStatusCmd shows search tracking status.
var searchesStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display search tracking statistics and connection details",
	Long: `Show detailed information about player search tracking.

Displays:
- Backend type and connection status
- Number of players searched and total searches
- Time of the latest search
- Database table size

Examples:
  gridiron searches status --search-backend sqlite`,
	PreRunE: searchesSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := requireSearchStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get search status", err)
		}
		iocache.PrintSearchStatus(os.Stdout, status)
	},
}

// searchesTrendingCmd prints the most searched players.
var searchesTrendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Print the most searched players",
	Long: `List players ordered by search count, highest first.

Examples:
  gridiron searches trending --search-backend sqlite --limit 5
  gridiron searches trending --search-backend sqlite --output json`,
	PreRunE: searchesSetupWrapper,
	Run:     runExecutor("Cannot list trending players", core.ExecuteTrending),
}

// searchesExportCmd exports search data to a Parquet file.
var searchesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export search counts to Parquet for BI tools and analytics",
	Long: `Export every player search record to Parquet format for use with analytics tools.

Parquet format enables:
- Fast querying with DuckDB, Apache Spark, pandas
- Efficient storage with columnar compression
- Direct import into BI tools (Tableau, Metabase, etc.)

Requires: --output-file parameter

Examples:
  gridiron searches export --search-backend sqlite --output-file searches.parquet
  duckdb -c "SELECT name, search_count FROM 'searches.parquet' ORDER BY 2 DESC LIMIT 10"`,
	PreRunE: searchesSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ExecuteSearchExport(iocache.Manager.GetSearchStore(), cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export search data", err)
		}
	},
}

// searchesClearCmd clears the search data.
var searchesClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all player search tracking data",
	Long: `Delete all stored player search counts.

WARNING: This action cannot be undone. Consider exporting data first.

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the searches table

Examples:
  # Export before clearing
  gridiron searches export --search-backend sqlite --output-file backup.parquet
  gridiron searches clear --search-backend sqlite`,
	PreRunE: searchesMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearSearches(cfg.SearchBackend, cfg.SearchDBConnect, cfg.SearchDBConnect); err != nil {
			contract.LogFatal("Failed to clear search data", err)
		}
		fmt.Println("Search data cleared successfully.")
	},
}

// searchesMigrateCmd runs database migrations for the search store.
var searchesMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the player search store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  gridiron searches migrate --search-backend postgresql

  # Rollback to initial state
  gridiron searches migrate --search-backend postgresql --target-version 0`,
	PreRunE: searchesMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := iocache.MigrateSearches(cfg.SearchBackend, cfg.SearchDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
