package core

import (
	"sort"

	"github.com/huangsam/gridiron/schema"
)

// rankEntries sorts entries by fantasy points in descending order
// and returns the top 'limit' entries. Ties keep input order; a non-positive
// limit returns every entry.
func rankEntries(entries []schema.LeaderboardEntry, limit int) []schema.LeaderboardEntry {
	ranked := make([]schema.LeaderboardEntry, len(entries))
	copy(ranked, entries)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FantasyPoints > ranked[j].FantasyPoints
	})
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}
