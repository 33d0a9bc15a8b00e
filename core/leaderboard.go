package core

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/roster"
	"github.com/huangsam/gridiron/schema"
)

// progressEvery controls how often the leaderboard build reports progress.
const progressEvery = 500

// BuildStats summarizes a leaderboard build.
type BuildStats struct {
	Scanned int
	Scored  int
	Failed  int
}

// BuildLeaderboard scores every athlete in the directory for the configured season
// using a worker pool. Athletes without points are left out and provider failures
// are counted rather than returned. Entries come back highest first.
func BuildLeaderboard(ctx context.Context, cfg *contract.Config, provider contract.StatsProvider, directory *roster.Directory) ([]schema.LeaderboardEntry, BuildStats, error) {
	athletes := directory.All()
	athleteCh := make(chan schema.AthleteSummary, len(athletes))
	entryCh := make(chan schema.LeaderboardEntry, len(athletes))
	var failed, scanned atomic.Int64
	var wg sync.WaitGroup

	quiet := shouldSuppressProgress(ctx)
	for range max(cfg.Workers, 1) {
		wg.Go(func() {
			for athlete := range athleteCh {
				if ctx.Err() != nil {
					continue
				}
				entry, ok, err := scoreAthlete(ctx, cfg, provider, athlete)
				if n := scanned.Add(1); !quiet && n%progressEvery == 0 {
					_, _ = fmt.Fprintf(os.Stderr, "⏳ Scored %d/%d athletes\n", n, len(athletes))
				}
				if err != nil {
					failed.Add(1)
					continue
				}
				if ok {
					entryCh <- entry
				}
			}
		})
	}

	for _, athlete := range athletes {
		athleteCh <- athlete
	}
	close(athleteCh)

	wg.Wait()
	close(entryCh)

	entries := make([]schema.LeaderboardEntry, 0, len(entryCh))
	for e := range entryCh {
		entries = append(entries, e)
	}
	roster.SortEntries(entries)

	stats := BuildStats{Scanned: int(scanned.Load()), Scored: len(entries), Failed: int(failed.Load())}
	if err := ctx.Err(); err != nil {
		return entries, stats, err
	}
	return entries, stats, nil
}

// scoreAthlete computes one athlete's entry. ok is false when the athlete scored nothing.
func scoreAthlete(ctx context.Context, cfg *contract.Config, provider contract.StatsProvider, athlete schema.AthleteSummary) (schema.LeaderboardEntry, bool, error) {
	stats, err := provider.GetStats(ctx, athlete.ID)
	if err != nil {
		return schema.LeaderboardEntry{}, false, err
	}
	points := SeasonFantasyPoints(stats, cfg.Season, cfg.Scoring)
	if points <= 0 {
		return schema.LeaderboardEntry{}, false, nil
	}
	player, err := provider.GetPlayer(ctx, athlete.ID)
	if err != nil {
		return schema.LeaderboardEntry{}, false, err
	}
	return schema.LeaderboardEntry{
		ID:            athlete.ID,
		Name:          athlete.FullName,
		Position:      player.Position,
		Team:          player.Team,
		FantasyPoints: points,
	}, true, nil
}
