package schema

// RankedEntry adds presentation data to a LeaderboardEntry.
type RankedEntry struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	LeaderboardEntry
}

// GetPlainLabel returns a plain text recommendation tier
// based on a season's fantasy points.
func GetPlainLabel(points float64) string {
	switch {
	case points >= 300:
		return "Must-start"
	case points >= 200:
		return "Strong starter"
	case points >= 100:
		return "Flex option"
	case points > 0:
		return "Bench/depth"
	default:
		return "Deep league"
	}
}

// RankEntries adds rank and label to a list of leaderboard entries.
func RankEntries(entries []LeaderboardEntry) []RankedEntry {
	output := make([]RankedEntry, len(entries))
	for i, e := range entries {
		output[i] = RankedEntry{
			Rank:             i + 1,
			Label:            GetPlainLabel(e.FantasyPoints),
			LeaderboardEntry: e,
		}
	}
	return output
}
