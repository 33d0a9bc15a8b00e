package core

import (
	"context"
	"errors"
	"testing"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlayerReportBuilder(t *testing.T) {
	cfg := testConfig()
	cfg.Season = 2023

	report, err := NewPlayerReportBuilder(context.Background(), cfg, lamarProvider(), "3916387").
		FetchProfile().
		FetchStats().
		ScoreSeasons().
		Project(schema.SituationalFactors{NewTeam: true}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "Lamar Jackson", report.Player.Name)
	assert.Equal(t, 2023, report.Season)
	assert.Equal(t, 335.22, report.Player.FantasyPoints)
	require.NotNil(t, report.Projection)
	assert.Equal(t, 0.9, report.Projection.Factors.Situation)
}

func TestPlayerReportBuilderStopsOnError(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetPlayer", mock.Anything, "1").Return(schema.Player{}, errors.New("not found upstream"))

	_, err := NewPlayerReportBuilder(context.Background(), testConfig(), provider, "1").
		FetchProfile().
		FetchStats().
		ScoreSeasons().
		Build()
	assert.ErrorContains(t, err, "not found upstream")
	provider.AssertNotCalled(t, "GetStats", mock.Anything, mock.Anything)
}
