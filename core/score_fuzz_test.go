package core

import (
	"math"
	"testing"

	"github.com/huangsam/gridiron/schema"
)

// FuzzParseStatValue fuzzes ParseStatValue with arbitrary provider cells.
func FuzzParseStatValue(f *testing.F) {
	for _, seed := range []string{"", "1,234", "30-35", "-", "--", "1e400", ".", "+.5e-3", "NaN"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		v := ParseStatValue(raw)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("ParseStatValue(%q) = %v, want a finite number", raw, v)
		}
	})
}

// FuzzScoreCategory fuzzes ScoreCategory with random passing lines.
// Breakdown entries are always present, even for unparsable cells.
func FuzzScoreCategory(f *testing.F) {
	f.Add("4,172", "41", "12")
	f.Add("", "", "")
	f.Add("abc", "1e3", "-4")

	cfg := schema.DefaultScoringConfig()
	f.Fuzz(func(t *testing.T, yds, td, interceptions string) {
		result := ScoreCategory(schema.CategoryStatLine{
			Category: schema.PassingCategory,
			Values:   map[string]string{"YDS": yds, "TD": td, "INT": interceptions},
		}, cfg)
		if len(result.Breakdown) != 3 {
			t.Errorf("expected 3 breakdown entries, got %d", len(result.Breakdown))
		}
	})
}
