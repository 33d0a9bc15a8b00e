package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/roster"
	"github.com/huangsam/gridiron/schema"
)

// Resolver turns free-text player names into fully populated players.
// It consults the precomputed leaderboard first and falls back to the
// athlete directory plus live stats.
type Resolver struct {
	cfg         *contract.Config
	provider    contract.StatsProvider
	directory   *roster.Directory
	leaderboard *roster.Leaderboard
}

// NewResolver wires a resolver. A nil directory or leaderboard is treated as empty.
func NewResolver(cfg *contract.Config, provider contract.StatsProvider, directory *roster.Directory, leaderboard *roster.Leaderboard) *Resolver {
	return &Resolver{cfg: cfg, provider: provider, directory: directory, leaderboard: leaderboard}
}

// Config returns the resolver's configuration.
func (r *Resolver) Config() *contract.Config { return r.cfg }

// Directory returns the athlete directory.
func (r *Resolver) Directory() *roster.Directory { return r.directory }

// Leaderboard returns the precomputed leaderboard.
func (r *Resolver) Leaderboard() *roster.Leaderboard { return r.leaderboard }

// Provider returns the stats provider.
func (r *Resolver) Provider() contract.StatsProvider { return r.provider }

// FindPlayer resolves a name to a player with profile details and season points.
// Leaderboard players keep their precomputed points while the board matches the
// active season and weights; everyone else is scored live.
func (r *Resolver) FindPlayer(ctx context.Context, name string) (schema.Player, error) {
	if strings.TrimSpace(name) == "" {
		return schema.Player{}, contract.ErrPlayerNotFound
	}

	if entry, ok := r.leaderboard.Find(name); ok {
		player, err := r.provider.GetPlayer(ctx, entry.ID)
		if err != nil {
			contract.LogWarn(fmt.Sprintf("Failed to fetch profile for %s", entry.Name), err)
			player = entry.ToPlayer()
		}
		points, err := r.PlayerPoints(ctx, entry.ID)
		if err != nil {
			points = 0
		}
		player.FantasyPoints = points
		return player, nil
	}

	athlete, ok := r.directory.Find(name)
	if !ok {
		return schema.Player{}, contract.ErrPlayerNotFound
	}

	points, err := r.SeasonPoints(ctx, athlete.ID)
	if err != nil {
		points = 0
	}
	player, err := r.provider.GetPlayer(ctx, athlete.ID)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("Failed to fetch profile for %s", athlete.FullName), err)
		player = schema.Player{ID: athlete.ID, Name: athlete.FullName, Jersey: athlete.Jersey}
	}
	player.FantasyPoints = points
	return player, nil
}

// SeasonPoints scores the configured season (latest when unset) for an athlete id.
func (r *Resolver) SeasonPoints(ctx context.Context, id string) (float64, error) {
	stats, err := r.provider.GetStats(ctx, id)
	if err != nil {
		return 0, err
	}
	return SeasonFantasyPoints(stats, r.cfg.Season, r.cfg.Scoring), nil
}

// PlayerPoints returns the leaderboard points for id while the board matches the
// active season and weights, and scores the player live otherwise.
func (r *Resolver) PlayerPoints(ctx context.Context, id string) (float64, error) {
	if entry, ok := r.leaderboard.FindByID(id); ok && r.leaderboard.Basis().Matches(r.cfg.Season, r.cfg.Scoring) {
		return entry.FantasyPoints, nil
	}
	return r.SeasonPoints(ctx, id)
}

// Report builds the season breakdown for a named player, optionally with a projection.
func (r *Resolver) Report(ctx context.Context, name string, project bool) (schema.PlayerReport, error) {
	player, err := r.FindPlayer(ctx, name)
	if err != nil {
		return schema.PlayerReport{}, err
	}
	builder := NewPlayerReportBuilder(ctx, r.cfg, r.provider, player.ID).
		WithPlayer(player).
		FetchStats().
		ScoreSeasons()
	if project {
		builder = builder.Project(r.cfg.Situation)
	}
	return builder.Build()
}

// Project projects next season for an already resolved player.
func (r *Resolver) Project(ctx context.Context, player schema.Player, situation schema.SituationalFactors) (schema.ProjectionResult, error) {
	stats, err := r.provider.GetStats(ctx, player.ID)
	if err != nil {
		return schema.ProjectionResult{}, fmt.Errorf("failed to fetch stats for %s: %w", player.Name, err)
	}
	records := BuildSeasonRecords(stats, r.cfg.Scoring)
	return Project(player.Attributes(), records, r.cfg.Scoring, situation), nil
}

// Compare resolves two names and compares their season points.
func (r *Resolver) Compare(ctx context.Context, first, second string) (schema.ComparisonResult, error) {
	a, err := r.FindPlayer(ctx, first)
	if err != nil {
		return schema.ComparisonResult{}, fmt.Errorf("%q: %w", first, err)
	}
	b, err := r.FindPlayer(ctx, second)
	if err != nil {
		return schema.ComparisonResult{}, fmt.Errorf("%q: %w", second, err)
	}
	return ComparePlayers(a, b), nil
}

// ComparePlayers picks the player with more fantasy points.
// Winner is empty and Margin zero when the totals are equal.
func ComparePlayers(first, second schema.Player) schema.ComparisonResult {
	result := schema.ComparisonResult{First: first, Second: second}
	switch {
	case first.FantasyPoints > second.FantasyPoints:
		result.Winner = first.Name
		result.Margin = Round2(first.FantasyPoints - second.FantasyPoints)
	case second.FantasyPoints > first.FantasyPoints:
		result.Winner = second.Name
		result.Margin = Round2(second.FantasyPoints - first.FantasyPoints)
	}
	return result
}
