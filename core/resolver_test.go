package core

import (
	"context"
	"errors"
	"testing"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/roster"
	"github.com/huangsam/gridiron/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *contract.Config {
	return &contract.Config{
		Scoring:     schema.DefaultScoringConfig(),
		ResultLimit: contract.DefaultResultLimit,
		Workers:     2,
		Output:      schema.TextOut,
	}
}

func testDirectory() *roster.Directory {
	return roster.NewDirectory([]schema.AthleteSummary{
		{ID: "3918298", FullName: "Josh Allen", Jersey: "17"},
		{ID: "3916387", FullName: "Lamar Jackson", Jersey: "8"},
		{ID: "4429795", FullName: "Jahmyr Gibbs", Jersey: "26"},
	})
}

func testLeaderboard() *roster.Leaderboard {
	return roster.NewLeaderboard([]schema.LeaderboardEntry{
		{ID: "3918298", Name: "Josh Allen", Position: schema.QB, Team: "Buffalo Bills", FantasyPoints: 385},
		{ID: "3121427", Name: "George Kittle", Position: schema.TE, Team: "San Francisco 49ers", FantasyPoints: 240.6},
	})
}

func TestFindPlayerFromLeaderboard(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetPlayer", mock.Anything, "3918298").Return(schema.Player{
		ID: "3918298", Name: "Josh Allen", Position: schema.QB, Team: "Buffalo Bills", Age: 29, Jersey: "17",
	}, nil)

	r := NewResolver(testConfig(), provider, testDirectory(), testLeaderboard())
	player, err := r.FindPlayer(context.Background(), "josh")
	require.NoError(t, err)

	assert.Equal(t, "Josh Allen", player.Name)
	assert.Equal(t, 29, player.Age)
	assert.Equal(t, 385.0, player.FantasyPoints, "leaderboard points win over live scoring")
	provider.AssertExpectations(t)
	provider.AssertNotCalled(t, "GetStats", mock.Anything, mock.Anything)
}

func TestFindPlayerLeaderboardWithoutDirectory(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetPlayer", mock.Anything, "3121427").Return(schema.Player{
		ID: "3121427", Name: "George Kittle", Position: schema.TE, Team: "San Francisco 49ers", Age: 31,
	}, nil)

	r := NewResolver(testConfig(), provider, nil, testLeaderboard())
	player, err := r.FindPlayer(context.Background(), "kittle")
	require.NoError(t, err)
	assert.Equal(t, schema.TE, player.Position)
	assert.Equal(t, 31, player.Age, "profile is fetched by leaderboard id")
	assert.Equal(t, 240.6, player.FantasyPoints)
	provider.AssertExpectations(t)
	provider.AssertNotCalled(t, "GetStats", mock.Anything, mock.Anything)
}

// receiverStats is one 2024 season of 100 catches, 1000 yards and 5 touchdowns:
// 230 points in full PPR, 130 in non-PPR.
func receiverStats() schema.StatsResponse {
	return schema.StatsResponse{Categories: []schema.StatCategory{{
		Name:       "receiving",
		Labels:     []string{"GP", "REC", "YDS", "TD"},
		Statistics: []schema.SeasonStatistic{row(2024, "team", "17", "100", "1000", "5")},
	}}}
}

func TestFindPlayerRescoresStaleLeaderboard(t *testing.T) {
	board := roster.NewLeaderboard([]schema.LeaderboardEntry{
		{ID: "1", Name: "Board Guy", Position: schema.WR, Team: "A", FantasyPoints: 230},
	})
	directory := roster.NewDirectory([]schema.AthleteSummary{
		{ID: "1", FullName: "Board Guy"},
		{ID: "2", FullName: "Live Guy"},
	})
	provider := &contract.MockStatsProvider{}
	for _, id := range []string{"1", "2"} {
		provider.On("GetStats", mock.Anything, id).Return(receiverStats(), nil)
	}
	provider.On("GetPlayer", mock.Anything, "1").Return(schema.Player{ID: "1", Name: "Board Guy"}, nil)
	provider.On("GetPlayer", mock.Anything, "2").Return(schema.Player{ID: "2", Name: "Live Guy"}, nil)

	cfg := testConfig()
	nonPPR, err := schema.PresetScoringConfig(schema.NonPPRPreset)
	require.NoError(t, err)
	cfg.Scoring = nonPPR

	r := NewResolver(cfg, provider, directory, board)
	result, err := r.Compare(context.Background(), "Board Guy", "Live Guy")
	require.NoError(t, err)
	assert.Equal(t, 130.0, result.First.FantasyPoints)
	assert.Equal(t, 130.0, result.Second.FantasyPoints)
	assert.Empty(t, result.Winner)
	assert.Zero(t, result.Margin)

	cfg.Scoring = schema.DefaultScoringConfig()
	cfg.Season = 2024
	points, err := r.PlayerPoints(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 230.0, points, "rescored for an explicit season")
	provider.AssertNumberOfCalls(t, "GetStats", 3)
}

func TestPlayerPointsTrustsMatchingLeaderboard(t *testing.T) {
	nonPPR, err := schema.PresetScoringConfig(schema.NonPPRPreset)
	require.NoError(t, err)
	board := roster.NewLeaderboard([]schema.LeaderboardEntry{
		{ID: "1", Name: "Board Guy", Position: schema.WR, Team: "A", FantasyPoints: 130},
	}).WithBasis(schema.LeaderboardBasis{Scoring: nonPPR})

	cfg := testConfig()
	cfg.Scoring = nonPPR
	provider := &contract.MockStatsProvider{}
	r := NewResolver(cfg, provider, nil, board)

	points, err := r.PlayerPoints(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 130.0, points)
	provider.AssertNotCalled(t, "GetStats", mock.Anything, mock.Anything)
}

func TestFindPlayerProfileFailureFallsBack(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetPlayer", mock.Anything, "3918298").Return(schema.Player{}, errors.New("timeout"))

	r := NewResolver(testConfig(), provider, testDirectory(), testLeaderboard())
	player, err := r.FindPlayer(context.Background(), "Josh Allen")
	require.NoError(t, err)
	assert.Equal(t, "Buffalo Bills", player.Team)
	assert.Equal(t, 385.0, player.FantasyPoints)
}

func TestFindPlayerFromDirectory(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetStats", mock.Anything, "3916387").Return(quarterbackStats(), nil)
	provider.On("GetPlayer", mock.Anything, "3916387").Return(schema.Player{
		ID: "3916387", Name: "Lamar Jackson", Position: schema.QB, Team: "Baltimore Ravens",
	}, nil)

	r := NewResolver(testConfig(), provider, testDirectory(), testLeaderboard())
	player, err := r.FindPlayer(context.Background(), "Lamar Jackson")
	require.NoError(t, err)
	assert.Equal(t, "Baltimore Ravens", player.Team)
	assert.Equal(t, 434.38, player.FantasyPoints)
	provider.AssertExpectations(t)
}

func TestFindPlayerStatsFailureScoresZero(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetStats", mock.Anything, "4429795").Return(schema.StatsResponse{}, errors.New("502"))
	provider.On("GetPlayer", mock.Anything, "4429795").Return(schema.Player{}, errors.New("502"))

	r := NewResolver(testConfig(), provider, testDirectory(), nil)
	player, err := r.FindPlayer(context.Background(), "gibbs")
	require.NoError(t, err)
	assert.Equal(t, "Jahmyr Gibbs", player.Name)
	assert.Equal(t, "26", player.Jersey)
	assert.Equal(t, 0.0, player.FantasyPoints)
}

func TestFindPlayerNotFound(t *testing.T) {
	r := NewResolver(testConfig(), &contract.MockStatsProvider{}, testDirectory(), testLeaderboard())

	_, err := r.FindPlayer(context.Background(), "Tom Brady")
	assert.ErrorIs(t, err, contract.ErrPlayerNotFound)

	_, err = r.FindPlayer(context.Background(), "   ")
	assert.ErrorIs(t, err, contract.ErrPlayerNotFound)
}

func TestResolverSeasonPoints(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetStats", mock.Anything, "3916387").Return(quarterbackStats(), nil)

	cfg := testConfig()
	cfg.Season = 2023
	r := NewResolver(cfg, provider, nil, nil)

	points, err := r.SeasonPoints(context.Background(), "3916387")
	require.NoError(t, err)
	assert.Equal(t, 335.22, points)
}

func TestResolverReport(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetStats", mock.Anything, "3916387").Return(quarterbackStats(), nil)
	provider.On("GetPlayer", mock.Anything, "3916387").Return(schema.Player{
		ID: "3916387", Name: "Lamar Jackson", Position: schema.QB, Age: 27, Experience: 7,
	}, nil)

	r := NewResolver(testConfig(), provider, testDirectory(), nil)

	report, err := r.Report(context.Background(), "Lamar Jackson", true)
	require.NoError(t, err)
	assert.Equal(t, 2024, report.Season)
	assert.Len(t, report.Seasons, 2)
	assert.Equal(t, 434.38, report.Player.FantasyPoints)
	require.NotNil(t, report.Projection)
	assert.Empty(t, report.Projection.Error)
	assert.Greater(t, report.Projection.FantasyPoints, 0.0)

	withoutProjection, err := r.Report(context.Background(), "Lamar Jackson", false)
	require.NoError(t, err)
	assert.Nil(t, withoutProjection.Projection)
}

func TestResolverProject(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetStats", mock.Anything, "1").Return(schema.StatsResponse{}, errors.New("boom"))
	provider.On("GetStats", mock.Anything, "2").Return(schema.StatsResponse{}, nil)

	r := NewResolver(testConfig(), provider, nil, nil)

	_, err := r.Project(context.Background(), schema.Player{ID: "1", Name: "Broken"}, schema.SituationalFactors{})
	assert.ErrorContains(t, err, "boom")

	result, err := r.Project(context.Background(), schema.Player{ID: "2", Name: "Rookie"}, schema.SituationalFactors{})
	require.NoError(t, err)
	assert.Equal(t, ErrMissingProjectionInput, result.Error)
}

func TestComparePlayers(t *testing.T) {
	allen := schema.Player{Name: "Josh Allen", FantasyPoints: 385}
	lamar := schema.Player{Name: "Lamar Jackson", FantasyPoints: 430.38}

	tests := []struct {
		name       string
		first      schema.Player
		second     schema.Player
		wantWinner string
		wantMargin float64
	}{
		{"second wins", allen, lamar, "Lamar Jackson", 45.38},
		{"first wins", lamar, allen, "Lamar Jackson", 45.38},
		{"tie", allen, schema.Player{Name: "Clone", FantasyPoints: 385}, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComparePlayers(tt.first, tt.second)
			assert.Equal(t, tt.wantWinner, result.Winner)
			assert.Equal(t, tt.wantMargin, result.Margin)
			assert.Equal(t, tt.first, result.First)
		})
	}
}

func TestResolverCompare(t *testing.T) {
	provider := &contract.MockStatsProvider{}
	provider.On("GetPlayer", mock.Anything, "3918298").Return(schema.Player{ID: "3918298", Name: "Josh Allen"}, nil)
	provider.On("GetPlayer", mock.Anything, "3121427").Return(schema.Player{}, errors.New("timeout"))

	r := NewResolver(testConfig(), provider, testDirectory(), testLeaderboard())

	result, err := r.Compare(context.Background(), "Josh Allen", "George Kittle")
	require.NoError(t, err)
	assert.Equal(t, "Josh Allen", result.Winner)
	assert.Equal(t, 144.4, result.Margin)

	_, err = r.Compare(context.Background(), "Josh Allen", "Tom Brady")
	assert.ErrorIs(t, err, contract.ErrPlayerNotFound)
}
