package contract

import (
	"context"
	"time"

	"github.com/huangsam/gridiron/schema"
	"github.com/stretchr/testify/mock"
)

// MockStatsProvider is a mock implementation of StatsProvider for testing.
type MockStatsProvider struct {
	mock.Mock
}

var _ StatsProvider = &MockStatsProvider{} // Compile-time check

// ListAthletes implements the StatsProvider interface.
func (m *MockStatsProvider) ListAthletes(ctx context.Context) ([]schema.AthleteSummary, error) {
	ret := m.Called(ctx)
	athletes, _ := ret.Get(0).([]schema.AthleteSummary)
	return athletes, ret.Error(1)
}

// GetPlayer implements the StatsProvider interface.
func (m *MockStatsProvider) GetPlayer(ctx context.Context, id string) (schema.Player, error) {
	ret := m.Called(ctx, id)
	player, _ := ret.Get(0).(schema.Player)
	return player, ret.Error(1)
}

// GetStats implements the StatsProvider interface.
func (m *MockStatsProvider) GetStats(ctx context.Context, id string) (schema.StatsResponse, error) {
	ret := m.Called(ctx, id)
	stats, _ := ret.Get(0).(schema.StatsResponse)
	return stats, ret.Error(1)
}

// MockOutputWriter is a mock implementation of OutputWriter for testing.
type MockOutputWriter struct {
	mock.Mock
}

var _ OutputWriter = &MockOutputWriter{} // Compile-time check

// WritePlayer implements the OutputWriter interface.
func (m *MockOutputWriter) WritePlayer(player schema.Player, cfg *Config) error {
	return m.Called(player, cfg).Error(0)
}

// WriteSeasons implements the OutputWriter interface.
func (m *MockOutputWriter) WriteSeasons(report schema.PlayerReport, cfg *Config, duration time.Duration) error {
	return m.Called(report, cfg, duration).Error(0)
}

// WriteProjection implements the OutputWriter interface.
func (m *MockOutputWriter) WriteProjection(report schema.PlayerReport, cfg *Config, duration time.Duration) error {
	return m.Called(report, cfg, duration).Error(0)
}

// WriteComparison implements the OutputWriter interface.
func (m *MockOutputWriter) WriteComparison(result schema.ComparisonResult, cfg *Config, duration time.Duration) error {
	return m.Called(result, cfg, duration).Error(0)
}

// WriteLeaderboard implements the OutputWriter interface.
func (m *MockOutputWriter) WriteLeaderboard(entries []schema.LeaderboardEntry, cfg *Config, duration time.Duration) error {
	return m.Called(entries, cfg, duration).Error(0)
}

// WriteScoring implements the OutputWriter interface.
func (m *MockOutputWriter) WriteScoring(cfg *Config) error {
	return m.Called(cfg).Error(0)
}

// WriteTrending implements the OutputWriter interface.
func (m *MockOutputWriter) WriteTrending(records []schema.SearchRecord, cfg *Config) error {
	return m.Called(records, cfg).Error(0)
}
