// Package outwriter has output and writer logic.
package outwriter

import (
	"time"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

var _ contract.OutputWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WritePlayer prints a player card using the configured output format.
func (ow *OutWriter) WritePlayer(player schema.Player, cfg *contract.Config) error {
	return PrintPlayer(player, cfg)
}

// WriteSeasons prints a per-season scoring breakdown using the configured output format.
func (ow *OutWriter) WriteSeasons(report schema.PlayerReport, cfg *contract.Config, duration time.Duration) error {
	return PrintSeasons(report, cfg, duration)
}

// WriteProjection prints a next-season projection using the configured output format.
func (ow *OutWriter) WriteProjection(report schema.PlayerReport, cfg *contract.Config, duration time.Duration) error {
	return PrintProjection(report, cfg, duration)
}

// WriteComparison prints a head-to-head comparison using the configured output format.
func (ow *OutWriter) WriteComparison(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return PrintComparison(result, cfg, duration)
}

// WriteLeaderboard prints ranked leaderboard entries using the configured output format.
func (ow *OutWriter) WriteLeaderboard(entries []schema.LeaderboardEntry, cfg *contract.Config, duration time.Duration) error {
	return PrintLeaderboard(entries, cfg, duration)
}

// WriteScoring prints the active scoring weights using the configured output format.
func (ow *OutWriter) WriteScoring(cfg *contract.Config) error {
	return PrintScoring(cfg)
}

// WriteTrending prints the most searched players using the configured output format.
func (ow *OutWriter) WriteTrending(records []schema.SearchRecord, cfg *contract.Config) error {
	return PrintTrending(records, cfg)
}
