package core

import (
	"context"
	"fmt"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
)

// PlayerReportBuilder builds a player report from provider data.
// The first failing step short-circuits the rest; Build reports it.
type PlayerReportBuilder struct {
	ctx      context.Context
	cfg      *contract.Config
	provider contract.StatsProvider
	id       string
	stats    schema.StatsResponse
	records  []schema.SeasonFantasyRecord
	report   *schema.PlayerReport
	err      error
}

// NewPlayerReportBuilder is the starting point for building a player report.
func NewPlayerReportBuilder(ctx context.Context, cfg *contract.Config, provider contract.StatsProvider, id string) *PlayerReportBuilder {
	return &PlayerReportBuilder{
		ctx:      ctx,
		cfg:      cfg,
		provider: provider,
		id:       id,
		report:   &schema.PlayerReport{Player: schema.Player{ID: id}},
	}
}

// WithPlayer seeds the report with an already resolved player instead of fetching it.
func (b *PlayerReportBuilder) WithPlayer(player schema.Player) *PlayerReportBuilder {
	b.report.Player = player
	return b
}

// FetchProfile loads the player's profile from the provider.
func (b *PlayerReportBuilder) FetchProfile() *PlayerReportBuilder {
	if b.err != nil {
		return b
	}
	player, err := b.provider.GetPlayer(b.ctx, b.id)
	if err != nil {
		b.err = fmt.Errorf("failed to fetch profile for %s: %w", b.id, err)
		return b
	}
	b.report.Player = player
	return b
}

// FetchStats loads the player's season statistics from the provider.
func (b *PlayerReportBuilder) FetchStats() *PlayerReportBuilder {
	if b.err != nil {
		return b
	}
	stats, err := b.provider.GetStats(b.ctx, b.id)
	if err != nil {
		b.err = fmt.Errorf("failed to fetch stats for %s: %w", b.id, err)
		return b
	}
	b.stats = stats
	return b
}

// ScoreSeasons scores every season and sets the player's points for the configured season.
func (b *PlayerReportBuilder) ScoreSeasons() *PlayerReportBuilder {
	if b.err != nil {
		return b
	}
	season := b.cfg.Season
	if season == 0 {
		season = LatestSeason(b.stats)
	}
	b.report.Season = season
	b.report.Seasons = ScoreSeasons(b.stats, b.cfg.Scoring)
	b.report.Player.FantasyPoints = SeasonFantasyPoints(b.stats, season, b.cfg.Scoring)
	b.records = BuildSeasonRecords(b.stats, b.cfg.Scoring)
	return b
}

// Project attaches a next-season projection built from the scored seasons.
func (b *PlayerReportBuilder) Project(situation schema.SituationalFactors) *PlayerReportBuilder {
	if b.err != nil {
		return b
	}
	result := Project(b.report.Player.Attributes(), b.records, b.cfg.Scoring, situation)
	b.report.Projection = &result
	return b
}

// Build returns the final report.
func (b *PlayerReportBuilder) Build() (schema.PlayerReport, error) {
	if b.err != nil {
		return schema.PlayerReport{}, b.err
	}
	return *b.report, nil
}
