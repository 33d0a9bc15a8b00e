package core

import (
	"testing"

	"github.com/huangsam/gridiron/schema"
	"github.com/stretchr/testify/assert"
)

// TestScoreCategory tests the per-category scoring formulas.
func TestScoreCategory(t *testing.T) {
	ppr := schema.DefaultScoringConfig()

	tests := []struct {
		name     string
		stat     schema.CategoryStatLine
		expected float64
	}{
		{
			name: "passing with separators",
			stat: schema.CategoryStatLine{
				Category: schema.PassingCategory,
				Values:   map[string]string{"YDS": "4,172", "TD": "41", "INT": "12"},
			},
			expected: 306.88,
		},
		{
			name: "rushing",
			stat: schema.CategoryStatLine{
				Category: schema.RushingCategory,
				Values:   map[string]string{"YDS": "1,921", "TD": "13", "FUM": "2"},
			},
			expected: 266.1,
		},
		{
			name: "receiving",
			stat: schema.CategoryStatLine{
				Category: schema.ReceivingCategory,
				Values:   map[string]string{"REC": "100", "YDS": "1,708", "TD": "17"},
			},
			expected: 372.8,
		},
		{
			name: "kicking uses a flat field goal weight",
			stat: schema.CategoryStatLine{
				Category: schema.KickingCategory,
				Values:   map[string]string{"FG": "35", "XPM": "40"},
			},
			expected: 162.5,
		},
		{
			name: "category name is case insensitive",
			stat: schema.CategoryStatLine{
				Category: "Rushing",
				Values:   map[string]string{"YDS": "100"},
			},
			expected: 10,
		},
		{
			name: "missing labels count as zero",
			stat: schema.CategoryStatLine{
				Category: schema.ReceivingCategory,
				Values:   map[string]string{"REC": "5"},
			},
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ScoreCategory(tt.stat, ppr)
			assert.Equal(t, tt.expected, result.Total)
		})
	}
}

// TestScoreCategoryBreakdown tests breakdown keys and rounding.
func TestScoreCategoryBreakdown(t *testing.T) {
	result := ScoreCategory(schema.CategoryStatLine{
		Category: schema.PassingCategory,
		Values:   map[string]string{"YDS": "4,172", "TD": "41", "INT": "12"},
	}, schema.DefaultScoringConfig())

	assert.Len(t, result.Breakdown, 3)
	assert.Equal(t, 166.88, result.Breakdown[schema.BreakdownPassingYards])
	assert.Equal(t, 164.0, result.Breakdown[schema.BreakdownPassingTDs])
	assert.Equal(t, -24.0, result.Breakdown[schema.BreakdownInterceptions])
}

// TestScoreCategoryUnknown tests that unscored categories yield nothing.
func TestScoreCategoryUnknown(t *testing.T) {
	result := ScoreCategory(schema.CategoryStatLine{
		Category: "defensive",
		Values:   map[string]string{"TOT": "120", "SACK": "11"},
	}, schema.DefaultScoringConfig())

	assert.Equal(t, 0.0, result.Total)
	assert.NotNil(t, result.Breakdown)
	assert.Empty(t, result.Breakdown)
}

// TestScoreCategoryPresets tests that presets only change the reception weight.
func TestScoreCategoryPresets(t *testing.T) {
	stat := schema.CategoryStatLine{
		Category: schema.ReceivingCategory,
		Values:   map[string]string{"REC": "100", "YDS": "1,708", "TD": "17"},
	}

	tests := []struct {
		preset   schema.ScoringPreset
		expected float64
	}{
		{schema.PPRPreset, 372.8},
		{schema.HalfPPRPreset, 322.8},
		{schema.NonPPRPreset, 272.8},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg, err := schema.PresetScoringConfig(tt.preset)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ScoreCategory(stat, cfg).Total)
		})
	}
}

// TestScoreCategoryLinear tests that scaling every stat scales the total.
func TestScoreCategoryLinear(t *testing.T) {
	cfg := schema.DefaultScoringConfig()
	single := ScoreCategory(schema.CategoryStatLine{
		Category: schema.RushingCategory,
		Values:   map[string]string{"YDS": "733", "TD": "7", "FUM": "1"},
	}, cfg)
	double := ScoreCategory(schema.CategoryStatLine{
		Category: schema.RushingCategory,
		Values:   map[string]string{"YDS": "1,466", "TD": "14", "FUM": "2"},
	}, cfg)

	assert.InDelta(t, single.Total*2, double.Total, 0.011)
}

// TestScoreStatMap tests scoring a flat projected stat map.
func TestScoreStatMap(t *testing.T) {
	stats := map[string]float64{
		"receiving_REC": 10.85,
		"receiving_YDS": 108.89,
		"unknown_STAT":  1000,
	}
	assert.Equal(t, 21.74, scoreStatMap(stats, schema.DefaultScoringConfig()))
	assert.Equal(t, 0.0, scoreStatMap(nil, schema.DefaultScoringConfig()))
}

// TestScoredLabels tests the labels each formula reads.
func TestScoredLabels(t *testing.T) {
	assert.Equal(t, []string{"YDS", "TD", "INT"}, ScoredLabels(schema.PassingCategory))
	assert.Equal(t, []string{"FG", "XPM"}, ScoredLabels(schema.KickingCategory))
	assert.Empty(t, ScoredLabels("punting"))
}

// TestParseStatValue tests lenient parsing of provider stat cells.
func TestParseStatValue(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
	}{
		{"1,234", 1234},
		{"30-35", 30},
		{"", 0},
		{"abc", 0},
		{"-2", -2},
		{"+3", 3},
		{".5", 0.5},
		{"1e3", 1000},
		{" 12 ", 12},
		{"NaN", 0},
		{"Infinity", 0},
		{"1e400", 0},
		{"4,172.5", 4172.5},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseStatValue(tt.raw))
		})
	}
}

// TestRound2 tests half-up rounding to two decimals.
func TestRound2(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0, 0},
		{1.005, 1.01},
		{2.675, 2.68},
		{0.125, 0.13},
		{306.879, 306.88},
		{-1.005, -1},
		{192.10000000000002, 192.1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Round2(tt.input), "Round2(%v)", tt.input)
	}
}

func BenchmarkScoreCategory(b *testing.B) {
	cfg := schema.DefaultScoringConfig()
	stat := schema.CategoryStatLine{
		Category: schema.PassingCategory,
		Values:   map[string]string{"YDS": "4,172", "TD": "41", "INT": "12"},
	}
	for b.Loop() {
		ScoreCategory(stat, cfg)
	}
}

func BenchmarkParseStatValue(b *testing.B) {
	for b.Loop() {
		ParseStatValue("1,921")
	}
}
