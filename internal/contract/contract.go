// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"errors"
	"time"

	"github.com/huangsam/gridiron/schema"
)

// ErrPlayerNotFound is returned when a name or id does not resolve to a player.
var ErrPlayerNotFound = errors.New("player not found")

// StatsProvider defines the operations needed from an external stats source.
// This allows the scoring and projection flows to be tested without network access.
type StatsProvider interface {
	// ListAthletes returns the full athlete index.
	ListAthletes(ctx context.Context) ([]schema.AthleteSummary, error)

	// GetPlayer returns the resolved profile of one athlete, including the team name.
	GetPlayer(ctx context.Context, id string) (schema.Player, error)

	// GetStats returns the per-category season statistics of one athlete.
	GetStats(ctx context.Context, id string) (schema.StatsResponse, error)
}

// CacheManager defines the interface for managing cache stores.
// This allows the cache layer to be mocked for testing.
type CacheManager interface {
	GetResponseStore() CacheStore
	GetSearchStore() SearchStore
}

// CacheStore defines the interface for cached provider responses.
// This allows mocking the store for testing.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// SearchStore defines the interface for per-player search counts.
type SearchStore interface {
	// RecordSearch increments the count for a player, creating the record on first search.
	RecordSearch(player schema.Player, searchTerm string) (schema.SearchRecord, error)

	// Trending returns the most searched players, highest count first.
	Trending(limit int) ([]schema.SearchRecord, error)

	// ListSearches returns every record, used for exports.
	ListSearches() ([]schema.SearchRecord, error)

	// GetStatus returns status information about the search store
	GetStatus() (schema.SearchStatus, error)

	// Close closes the underlying connection
	Close() error
}

// OutputWriter renders command results in the configured output format.
// This allows the executors to be tested without capturing stdout.
type OutputWriter interface {
	WritePlayer(player schema.Player, cfg *Config) error
	WriteSeasons(report schema.PlayerReport, cfg *Config, duration time.Duration) error
	WriteProjection(report schema.PlayerReport, cfg *Config, duration time.Duration) error
	WriteComparison(result schema.ComparisonResult, cfg *Config, duration time.Duration) error
	WriteLeaderboard(entries []schema.LeaderboardEntry, cfg *Config, duration time.Duration) error
	WriteScoring(cfg *Config) error
	WriteTrending(records []schema.SearchRecord, cfg *Config) error
}
