package schema

import "time"

// Player is a resolved athlete with the details shown to users.
type Player struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Position      Position `json:"position"`
	Team          string   `json:"team"`
	Jersey        string   `json:"jersey"`
	Age           int      `json:"age"`
	Height        string   `json:"height"`
	Weight        string   `json:"weight"`
	Experience    int      `json:"experience"`
	HeadshotURL   string   `json:"headshotUrl,omitempty"`
	FantasyPoints float64  `json:"fantasyPoints"`
}

// Attributes returns the projection inputs for this player.
func (p Player) Attributes() *PlayerAttributes {
	return &PlayerAttributes{
		Name:          p.Name,
		Age:           p.Age,
		Position:      p.Position,
		YearsInLeague: p.Experience,
	}
}

// LeaderboardEntry is one precomputed season total.
type LeaderboardEntry struct {
	ID            string   `json:"-"`
	Name          string   `json:"name"`
	Position      Position `json:"position"`
	Team          string   `json:"team"`
	FantasyPoints float64  `json:"fantasyPoints"`
}

// LeaderboardBasis records the settings a leaderboard was scored with.
type LeaderboardBasis struct {
	Season  int           `json:"season"` // 0 = each player's latest season
	Scoring ScoringConfig `json:"scoring"`
}

// DefaultLeaderboardBasis is assumed for files that do not record a basis:
// latest season under full-PPR weights.
func DefaultLeaderboardBasis() LeaderboardBasis {
	return LeaderboardBasis{Scoring: DefaultScoringConfig()}
}

// Matches reports whether points scored under b hold for season and scoring.
func (b LeaderboardBasis) Matches(season int, scoring ScoringConfig) bool {
	return b.Season == season && b.Scoring == scoring
}

// ComparisonResult describes a head-to-head of two players.
type ComparisonResult struct {
	First  Player  `json:"first"`
	Second Player  `json:"second"`
	Winner string  `json:"winner,omitempty"` // empty on a tie
	Margin float64 `json:"margin"`
}

// SearchRecord is a row from the gridiron_player_searches table.
type SearchRecord struct {
	ID          string    `json:"id"`
	PlayerID    string    `json:"playerId"`
	Count       int       `json:"count"`
	SearchTerm  string    `json:"searchTerm"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	Team        string    `json:"team"`
	HeadshotURL string    `json:"headshotUrl"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FallbackHeadshot is used when a player has no photo.
const FallbackHeadshot = "/fallback-headshot.png"

// PlayerReport is everything gridiron knows about one player for a season.
type PlayerReport struct {
	Player     Player            `json:"player"`
	Season     int               `json:"season"`
	Seasons    []SeasonScore     `json:"seasons"`
	Projection *ProjectionResult `json:"projection,omitempty"`
}

// ToPlayer converts a leaderboard entry into a partial Player.
func (e LeaderboardEntry) ToPlayer() Player {
	return Player{
		ID:            e.ID,
		Name:          e.Name,
		Position:      e.Position,
		Team:          e.Team,
		FantasyPoints: e.FantasyPoints,
	}
}
