package parquet

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/gridiron/schema"
	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerSearchStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(PlayerSearch))
	require.NotNil(t, s)

	expectedColumns := []string{
		"id",
		"player_id",
		"search_count",
		"search_term",
		"name",
		"position",
		"team",
		"headshot_url",
		"updated_at",
	}
	for _, colName := range expectedColumns {
		col, ok := s.Lookup(colName)
		require.True(t, ok, "Column %s should exist in schema", colName)
		require.NotNil(t, col, "Column %s should not be nil", colName)
	}
}

func TestLeaderboardRowStructTags(t *testing.T) {
	s := parquet.SchemaOf(new(LeaderboardRow))
	for _, colName := range []string{"rank", "player_id", "name", "position", "team", "fantasy_points", "label"} {
		_, ok := s.Lookup(colName)
		assert.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func sampleSearchRecords() []schema.SearchRecord {
	updated := time.Date(2024, 12, 1, 20, 15, 0, 0, time.UTC)
	return []schema.SearchRecord{
		{
			ID: "0b6f6b6e-6a43-4a7c-9d1e-3c1e0f0b7a01", PlayerID: "3916387", Count: 12, SearchTerm: "lamar",
			Name: "Lamar Jackson", Position: "QB", Team: "Baltimore Ravens",
			HeadshotURL: "https://a.espncdn.com/i/headshots/nfl/players/full/3916387.png", UpdatedAt: updated,
		},
		{
			ID: "5d1f38a4-2f2c-4c0e-8f3e-1b8d5a7c9e02", PlayerID: "1", Count: 1, SearchTerm: "mystery",
			Name: "Mystery Man", UpdatedAt: updated.Add(-time.Hour),
		},
	}
}

func TestConvertSearchRecords(t *testing.T) {
	rows := ConvertSearchRecords(sampleSearchRecords())
	require.Len(t, rows, 2)

	assert.Equal(t, int32(12), rows[0].SearchCount)
	require.NotNil(t, rows[0].Team)
	assert.Equal(t, "Baltimore Ravens", *rows[0].Team)

	assert.Nil(t, rows[1].Position, "empty strings become null columns")
	assert.Nil(t, rows[1].Team)
	assert.Nil(t, rows[1].HeadshotURL)
}

func TestPlayerSearchesRoundTrip(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "searches.parquet")
	data := ConvertSearchRecords(sampleSearchRecords())

	require.NoError(t, WritePlayerSearchesParquet(data, outputPath))

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	got, err := ReadPlayerSearchesParquet(outputPath)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, data[0].ID, got[0].ID)
	assert.Equal(t, data[0].SearchTerm, got[0].SearchTerm)
	assert.True(t, data[0].UpdatedAt.Equal(got[0].UpdatedAt))
	assert.Nil(t, got[1].Team)
}

func TestWriteEmptySearches(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "empty.parquet")
	require.NoError(t, WritePlayerSearchesParquet(nil, outputPath))

	got, err := ReadPlayerSearchesParquet(outputPath)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestWriteToMissingDirectory(t *testing.T) {
	err := WritePlayerSearchesParquet(nil, filepath.Join(t.TempDir(), "nope", "out.parquet"))
	assert.ErrorContains(t, err, "failed to create output file")
}

func TestReadMissingFile(t *testing.T) {
	_, err := ReadPlayerSearchesParquet(filepath.Join(t.TempDir(), "missing.parquet"))
	assert.Error(t, err)
}

func TestLeaderboardParquet(t *testing.T) {
	entries := []schema.LeaderboardEntry{
		{ID: "3916387", Name: "Lamar Jackson", Position: schema.QB, Team: "Baltimore Ravens", FantasyPoints: 430.38},
		{ID: "3121427", Name: "George Kittle", Position: schema.TE, Team: "San Francisco 49ers", FantasyPoints: 240.6},
	}
	rows := ConvertLeaderboardEntries(entries)
	require.Len(t, rows, 2)
	assert.Equal(t, int32(2), rows[1].Rank)
	assert.Equal(t, "Strong starter", rows[1].Label)

	outputPath := filepath.Join(t.TempDir(), "leaderboard.parquet")
	require.NoError(t, WriteLeaderboardParquet(rows, outputPath))

	got, err := parquet.ReadFile[LeaderboardRow](outputPath)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
