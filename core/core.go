// Package core has core logic for scoring, projection, lookup and ranking.
package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/roster"
	"github.com/huangsam/gridiron/schema"
)

// ErrEmptyLeaderboard is returned when a command needs the precomputed leaderboard.
var ErrEmptyLeaderboard = errors.New("leaderboard is empty, run 'gridiron leaderboard build' first")

// ErrSearchesDisabled is returned when the search store is not configured.
var ErrSearchesDisabled = errors.New("search tracking is disabled, set --search-backend")

// Env bundles the collaborators every executor needs.
type Env struct {
	Resolver *Resolver
	Cache    contract.CacheManager
	Out      contract.OutputWriter
}

// ExecutorFunc defines the function signature for executing CLI commands.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, env *Env, args []string) error

// ExecutePlayer prints the player card for a name and records the search.
func ExecutePlayer(ctx context.Context, cfg *contract.Config, env *Env, args []string) error {
	name := joinName(args)
	player, err := env.Resolver.FindPlayer(ctx, name)
	if err != nil {
		return fmt.Errorf("%q: %w", name, err)
	}
	recordSearch(env, player, name)
	return env.Out.WritePlayer(player, cfg)
}

// ExecuteScore prints the per-season fantasy breakdown for a player.
func ExecuteScore(ctx context.Context, cfg *contract.Config, env *Env, args []string) error {
	start := time.Now()
	name := joinName(args)
	report, err := env.Resolver.Report(ctx, name, false)
	if err != nil {
		return fmt.Errorf("%q: %w", name, err)
	}
	recordSearch(env, report.Player, name)
	return env.Out.WriteSeasons(report, cfg, time.Since(start))
}

// ExecuteProject prints the next-season projection for a player.
func ExecuteProject(ctx context.Context, cfg *contract.Config, env *Env, args []string) error {
	start := time.Now()
	name := joinName(args)
	report, err := env.Resolver.Report(ctx, name, true)
	if err != nil {
		return fmt.Errorf("%q: %w", name, err)
	}
	if report.Projection == nil {
		return fmt.Errorf("cannot project %s", report.Player.Name)
	}
	if report.Projection.Error != "" {
		return fmt.Errorf("cannot project %s: %s", report.Player.Name, report.Projection.Error)
	}
	recordSearch(env, report.Player, name)
	return env.Out.WriteProjection(report, cfg, time.Since(start))
}

// ExecuteCompare prints a head-to-head of two players.
func ExecuteCompare(ctx context.Context, cfg *contract.Config, env *Env, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("compare needs exactly two player names, got %d. Example: gridiron compare \"Lamar Jackson\" \"Josh Allen\"", len(args))
	}
	start := time.Now()
	result, err := env.Resolver.Compare(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return env.Out.WriteComparison(result, cfg, time.Since(start))
}

// ExecuteLeaderboard prints the top players, optionally for a single position.
func ExecuteLeaderboard(_ context.Context, cfg *contract.Config, env *Env, args []string) error {
	start := time.Now()
	board := env.Resolver.Leaderboard()
	if board.Len() == 0 {
		return ErrEmptyLeaderboard
	}
	var entries []schema.LeaderboardEntry
	if len(args) > 0 {
		entries = board.TopByPosition(schema.NormalizePosition(args[0]), cfg.ResultLimit)
	} else {
		entries = rankEntries(board.All(), cfg.ResultLimit)
	}
	return env.Out.WriteLeaderboard(entries, cfg, time.Since(start))
}

// ExecuteLeaderboardBuild scores the whole directory and saves the leaderboard file.
func ExecuteLeaderboardBuild(ctx context.Context, cfg *contract.Config, env *Env, _ []string) error {
	start := time.Now()
	directory := env.Resolver.Directory()
	if directory.Len() == 0 {
		return fmt.Errorf("athlete directory is empty")
	}
	if !shouldSuppressProgress(ctx) {
		_, _ = fmt.Fprintf(os.Stderr, "🏈 Scoring %d athletes with %d workers...\n", directory.Len(), cfg.Workers)
	}
	entries, stats, err := BuildLeaderboard(ctx, cfg, env.Resolver.Provider(), directory)
	if err != nil {
		return fmt.Errorf("leaderboard build interrupted after %d athletes: %w", stats.Scanned, err)
	}
	basis := schema.LeaderboardBasis{Season: cfg.Season, Scoring: cfg.Scoring}
	if err := roster.SaveLeaderboard(cfg.LeaderboardFile, basis, entries); err != nil {
		return err
	}
	if !shouldSuppressProgress(ctx) {
		_, _ = fmt.Fprintf(os.Stderr, "💾 Wrote %d players to %s (%d failed)\n", stats.Scored, cfg.LeaderboardFile, stats.Failed)
	}
	return env.Out.WriteLeaderboard(rankEntries(entries, cfg.ResultLimit), cfg, time.Since(start))
}

// ExecuteScoring prints the active scoring weights.
func ExecuteScoring(_ context.Context, cfg *contract.Config, env *Env, _ []string) error {
	return env.Out.WriteScoring(cfg)
}

// ExecuteTrending prints the most searched players.
func ExecuteTrending(_ context.Context, cfg *contract.Config, env *Env, _ []string) error {
	store := searchStore(env)
	if store == nil {
		return ErrSearchesDisabled
	}
	records, err := store.Trending(cfg.ResultLimit)
	if err != nil {
		return fmt.Errorf("failed to load trending players: %w", err)
	}
	return env.Out.WriteTrending(records, cfg)
}

// joinName rebuilds a player name from unquoted CLI arguments.
func joinName(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// searchStore returns the configured search store, or nil.
func searchStore(env *Env) contract.SearchStore {
	if env.Cache == nil {
		return nil
	}
	return env.Cache.GetSearchStore()
}

// recordSearch bumps the search count for a player. Failures are only logged.
func recordSearch(env *Env, player schema.Player, term string) {
	store := searchStore(env)
	if store == nil || player.ID == "" {
		return
	}
	if _, err := store.RecordSearch(player, term); err != nil {
		contract.LogWarn(fmt.Sprintf("Failed to record search for %s", player.Name), err)
	}
}
