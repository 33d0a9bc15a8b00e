package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/gridiron/core"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/espn"
	"github.com/huangsam/gridiron/internal/iocache"
	"github.com/huangsam/gridiron/internal/outwriter"
	"github.com/huangsam/gridiron/internal/roster"
	"github.com/huangsam/gridiron/schema"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// profile holds profiling configuration.
var profile = &contract.ProfileConfig{}

// env holds the resolver, stores and writer shared by the player commands.
var env = &core.Env{}

// startProfiling starts CPU and memory profiling if enabled.
func startProfiling() error {
	if !profile.Enabled {
		return nil
	}

	cpuFile, err := os.Create(profile.Prefix + ".cpu.prof")
	if err != nil {
		return fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		return fmt.Errorf("could not start CPU profiling: %w", err)
	}

	// Memory profiling will be captured at the end
	_, err = fmt.Fprintf(os.Stderr, "Profiling enabled. CPU profile: %s.cpu.prof, Memory profile: %s.mem.prof\n", profile.Prefix, profile.Prefix)
	return err
}

// stopProfiling stops profiling and writes memory profile.
func stopProfiling() error {
	if !profile.Enabled {
		return nil
	}

	pprof.StopCPUProfile()

	memFile, err := os.Create(profile.Prefix + ".mem.prof")
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	defer func() { _ = memFile.Close() }()

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		return fmt.Errorf("could not write memory profile: %w", err)
	}

	_, err = fmt.Fprintf(os.Stderr, "Profiling complete. Use 'go tool pprof %s.cpu.prof' to analyze.\n", profile.Prefix)
	return err
}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "gridiron",
	Short:              "Score, project and compare NFL players for fantasy football.",
	Long:               `Gridiron turns NFL season statistics into fantasy points, next-season projections and head-to-head comparisons.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in .env files, the config file and ENV variables if set.
func initConfig() {
	// A missing .env file is the common case.
	_ = godotenv.Load()

	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".gridiron")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("GRIDIRON")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("scoring-preset", schema.PPRPreset)
	viper.SetDefault("limit", contract.DefaultResultLimit)
	viper.SetDefault("workers", contract.DefaultWorkers)
	viper.SetDefault("precision", contract.DefaultPrecision)
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("cache-backend", schema.SQLiteBackend)
	viper.SetDefault("cache-db-connect", "")
	viper.SetDefault("search-backend", "")
	viper.SetDefault("search-db-connect", "")
	viper.SetDefault("leaderboard-file", contract.DefaultLeaderboardFile)
	viper.SetDefault("addr", contract.DefaultAddr)
	viper.SetDefault("log-level", contract.DefaultLogLevel)
	viper.SetDefault("color", "yes")
}

// loadConfig merges defaults, file, env and flags, then validates them into cfg.
func loadConfig() error {
	profilePrefix := viper.GetString("profile")
	if err := contract.ProcessProfilingConfig(profile, profilePrefix); err != nil {
		return fmt.Errorf("failed to process profiling config: %w", err)
	}
	if profile.Enabled {
		if err := startProfiling(); err != nil {
			return fmt.Errorf("failed to start profiling: %w", err)
		}
	}

	if err := loadConfigFile(); err != nil {
		return err
	}
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}
	color.NoColor = !cfg.UseColors
	return nil
}

// sharedSetup validates config, opens the stores and loads the leaderboard.
// The athlete directory is only fetched when withDirectory is set.
func sharedSetup(ctx context.Context, withDirectory bool) error {
	if err := loadConfig(); err != nil {
		return err
	}

	if err := iocache.InitStores(cfg.CacheBackend, cfg.CacheDBConnect, cfg.SearchBackend, cfg.SearchDBConnect); err != nil {
		return fmt.Errorf("failed to initialize persistence: %w", err)
	}
	client := espn.NewClient(cfg, iocache.Manager.GetResponseStore())

	leaderboard, err := roster.LoadLeaderboard(cfg.LeaderboardFile)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to load leaderboard: %w", err)
		}
		leaderboard = roster.NewLeaderboard(nil)
	}

	var directory *roster.Directory
	if withDirectory {
		directory, err = roster.LoadDirectory(ctx, client)
		if err != nil {
			// The leaderboard still answers for the top players.
			contract.LogWarn("Failed to load athlete directory", err)
		}
	}

	env.Resolver = core.NewResolver(cfg, client, directory, leaderboard)
	env.Cache = iocache.Manager
	env.Out = outwriter.NewOutWriter()
	return nil
}

// playerSetupWrapper runs sharedSetup with the athlete directory for Cobra's PreRunE.
func playerSetupWrapper(_ *cobra.Command, _ []string) error {
	return sharedSetup(rootCtx, true)
}

// offlineSetupWrapper runs sharedSetup without any provider calls.
func offlineSetupWrapper(_ *cobra.Command, _ []string) error {
	return sharedSetup(rootCtx, false)
}

// configSetupWrapper validates config for commands that need no stores or provider.
func configSetupWrapper(_ *cobra.Command, _ []string) error {
	if err := loadConfig(); err != nil {
		return err
	}
	env.Out = outwriter.NewOutWriter()
	return nil
}

// loadConfigFile reads the config file if one is present.
func loadConfigFile() error {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// runExecutor adapts a core executor into a Cobra Run function.
func runExecutor(action string, executor core.ExecutorFunc) func(*cobra.Command, []string) {
	return func(_ *cobra.Command, args []string) {
		if err := executor(rootCtx, cfg, env, args); err != nil {
			contract.LogFatal(action, err)
		}
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// StopProfiling stops profiling if enabled.
func StopProfiling() error {
	return stopProfiling()
}
