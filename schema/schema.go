// Package schema has configs, models and constants for all parts of gridiron.
package schema

import "fmt"

// CategoryStatLine is one stat category's raw values for one season.
// Values may carry thousands separators, e.g. "1,234".
type CategoryStatLine struct {
	Category Category          `json:"category"`
	Values   map[string]string `json:"values"`
}

// CategoryScore is the scored result of a single CategoryStatLine.
type CategoryScore struct {
	Total     float64                  `json:"total"`
	Breakdown map[BreakdownKey]float64 `json:"breakdown"`
}

// SeasonFantasyRecord is one player-season normalized for projection math.
type SeasonFantasyRecord struct {
	Year          int                `json:"year"`
	GamesPlayed   float64            `json:"gamesPlayed"`   // 0 when unknown
	FantasyPoints float64            `json:"fantasyPoints"` // sum of all category totals
	Stats         map[string]float64 `json:"stats"`         // keyed by StatKey
}

// SeasonScore is a season's fantasy total for presentation, grouped by year and team.
type SeasonScore struct {
	Year      int                      `json:"year"`
	Team      string                   `json:"team"`
	Total     float64                  `json:"total"`
	Breakdown map[BreakdownKey]float64 `json:"breakdown"`
}

// PlayerAttributes describes the player being projected.
type PlayerAttributes struct {
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Position      Position `json:"position"`
	YearsInLeague int      `json:"yearsInLeague"`
}

// SituationalFactors are optional caller-supplied context flags for projections.
type SituationalFactors struct {
	InjuryHistory           bool `json:"injuryHistory"`
	NewTeam                 bool `json:"newTeam"`
	NewOffensiveCoordinator bool `json:"newOffensiveCoordinator"`
}

// ProjectionFactors are the scalar multipliers applied to the baseline.
type ProjectionFactors struct {
	Age        float64 `json:"ageFactor"`
	Trend      float64 `json:"trendFactor"`
	Situation  float64 `json:"situationFactor"`
	Experience float64 `json:"experienceFactor"`
}

// PlayerInfo echoes the resolved player attributes on a projection.
type PlayerInfo struct {
	Name          string   `json:"name"`
	Age           int      `json:"age"`
	Position      Position `json:"position"`
	YearsInLeague int      `json:"yearsInNFL"`
}

// ProjectionResult is the output of a next-season projection.
// Callers must check Error before reading the other fields.
type ProjectionResult struct {
	Error           string                `json:"error,omitempty"`
	ProjectedStats  map[string]float64    `json:"projectedStats,omitempty"`
	FantasyPoints   float64               `json:"projectedFantasyPoints"`
	Confidence      float64               `json:"confidence"`
	Factors         ProjectionFactors     `json:"factors"`
	PlayerInfo      PlayerInfo            `json:"playerInfo"`
	HistoricalStats []SeasonFantasyRecord `json:"historicalStats,omitempty"`
}

// StatKey returns the "<category>_<label>" key used in season records.
func StatKey(category Category, label string) string {
	return fmt.Sprintf("%s_%s", category, label)
}
