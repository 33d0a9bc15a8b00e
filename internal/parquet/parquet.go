// Package parquet provides data structures and functions for exporting gridiron
// search counts and leaderboards to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/gridiron/schema"
	"github.com/parquet-go/parquet-go"
)

// PlayerSearch represents the search count of a single player.
// This struct maps to the gridiron_player_searches database table.
type PlayerSearch struct {
	// ID is the uuid of the search record
	ID string `parquet:"id,snappy"`

	// PlayerID is the stats provider athlete id
	PlayerID string `parquet:"player_id,snappy"`

	// SearchCount is how many times the player was looked up
	SearchCount int32 `parquet:"search_count,snappy"`

	// SearchTerm is the most recent text that resolved to this player
	SearchTerm string `parquet:"search_term,snappy"`

	Name string `parquet:"name,snappy"`

	// Position, Team and HeadshotURL are empty for partially resolved players
	Position    *string `parquet:"position,optional,snappy"`
	Team        *string `parquet:"team,optional,snappy"`
	HeadshotURL *string `parquet:"headshot_url,optional,snappy"`

	// UpdatedAt is the time of the latest search (TIMESTAMP with nanosecond precision)
	UpdatedAt time.Time `parquet:"updated_at,snappy"`
}

// LeaderboardRow represents one precomputed season total.
type LeaderboardRow struct {
	Rank          int32   `parquet:"rank,snappy"`
	PlayerID      string  `parquet:"player_id,snappy"`
	Name          string  `parquet:"name,snappy"`
	Position      string  `parquet:"position,dict,snappy"`
	Team          string  `parquet:"team,dict,snappy"`
	FantasyPoints float64 `parquet:"fantasy_points,snappy"`
	Label         string  `parquet:"label,dict,snappy"`
}

// writeParquet writes rows of any struct type to a new Parquet file.
func writeParquet[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is derived from the struct tags of T
	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// WritePlayerSearchesParquet writes search counts to a Parquet file.
func WritePlayerSearchesParquet(data []PlayerSearch, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ReadPlayerSearchesParquet reads search counts back from a Parquet file.
func ReadPlayerSearchesParquet(path string) ([]PlayerSearch, error) {
	rows, err := parquet.ReadFile[PlayerSearch](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet file %s: %w", path, err)
	}
	return rows, nil
}

// WriteLeaderboardParquet writes ranked leaderboard rows to a Parquet file.
func WriteLeaderboardParquet(data []LeaderboardRow, outputPath string) error {
	return writeParquet(data, outputPath)
}

// ConvertSearchRecords converts schema.SearchRecord to PlayerSearch for Parquet export.
func ConvertSearchRecords(records []schema.SearchRecord) []PlayerSearch {
	result := make([]PlayerSearch, len(records))
	for i, r := range records {
		result[i] = PlayerSearch{
			ID:          r.ID,
			PlayerID:    r.PlayerID,
			SearchCount: int32(r.Count),
			SearchTerm:  r.SearchTerm,
			Name:        r.Name,
			Position:    optional(r.Position),
			Team:        optional(r.Team),
			HeadshotURL: optional(r.HeadshotURL),
			UpdatedAt:   r.UpdatedAt,
		}
	}
	return result
}

// ConvertLeaderboardEntries converts leaderboard entries to ranked LeaderboardRow values.
func ConvertLeaderboardEntries(entries []schema.LeaderboardEntry) []LeaderboardRow {
	ranked := schema.RankEntries(entries)
	result := make([]LeaderboardRow, len(ranked))
	for i, e := range ranked {
		result[i] = LeaderboardRow{
			Rank:          int32(e.Rank),
			PlayerID:      e.ID,
			Name:          e.Name,
			Position:      string(e.Position),
			Team:          e.Team,
			FantasyPoints: e.FantasyPoints,
			Label:         e.Label,
		}
	}
	return result
}

// optional maps an empty string to a null column value.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
