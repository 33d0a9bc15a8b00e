package core

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/huangsam/gridiron/schema"
	"github.com/shopspring/decimal"
)

// leadingNumber matches the numeric prefix accepted by parseFloat-style parsing.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// half is the rounding offset used by Round2.
var half = decimal.New(5, -1)

// scoringTerm is one weighted stat label of a category formula.
type scoringTerm struct {
	label  string
	key    schema.BreakdownKey
	weight func(schema.ScoringConfig) float64
}

// formulas holds the fixed per-category scoring formulas.
// Kicking uses a flat field goal weight.
var formulas = map[schema.Category][]scoringTerm{
	schema.PassingCategory: {
		{"YDS", schema.BreakdownPassingYards, func(c schema.ScoringConfig) float64 { return c.PassingYards }},
		{"TD", schema.BreakdownPassingTDs, func(c schema.ScoringConfig) float64 { return c.PassingTDs }},
		{"INT", schema.BreakdownInterceptions, func(c schema.ScoringConfig) float64 { return c.Interceptions }},
	},
	schema.RushingCategory: {
		{"YDS", schema.BreakdownRushingYards, func(c schema.ScoringConfig) float64 { return c.RushingYards }},
		{"TD", schema.BreakdownRushingTDs, func(c schema.ScoringConfig) float64 { return c.RushingTDs }},
		{"FUM", schema.BreakdownFumbles, func(c schema.ScoringConfig) float64 { return c.Fumbles }},
	},
	schema.ReceivingCategory: {
		{"REC", schema.BreakdownReceptions, func(c schema.ScoringConfig) float64 { return c.Receptions }},
		{"YDS", schema.BreakdownReceivingYards, func(c schema.ScoringConfig) float64 { return c.ReceivingYards }},
		{"TD", schema.BreakdownReceivingTDs, func(c schema.ScoringConfig) float64 { return c.ReceivingTDs }},
	},
	schema.KickingCategory: {
		{"FG", schema.BreakdownFieldGoals, func(c schema.ScoringConfig) float64 { return c.FieldGoals }},
		{"XPM", schema.BreakdownExtraPoints, func(c schema.ScoringConfig) float64 { return c.ExtraPoints }},
	},
}

// ScoreCategory converts one category's raw stat line into fantasy points.
// Missing labels count as zero and an unknown category yields an empty breakdown.
func ScoreCategory(stat schema.CategoryStatLine, cfg schema.ScoringConfig) schema.CategoryScore {
	terms, ok := formulas[schema.Category(strings.ToLower(string(stat.Category)))]
	if !ok {
		return schema.CategoryScore{Breakdown: map[schema.BreakdownKey]float64{}}
	}

	breakdown := make(map[schema.BreakdownKey]float64, len(terms))
	var raw float64
	for _, term := range terms {
		points := ParseStatValue(stat.Values[term.label]) * term.weight(cfg)
		breakdown[term.key] = Round2(points)
		raw += points
	}

	return schema.CategoryScore{Total: Round2(raw), Breakdown: breakdown}
}

// scoreStatMap applies the category formulas to a flat "<category>_<label>" map.
// It is used when a projection carries raw stats but no fantasy point total.
func scoreStatMap(stats map[string]float64, cfg schema.ScoringConfig) float64 {
	var total float64
	for _, category := range schema.AllCategories {
		for _, term := range formulas[category] {
			total += stats[schema.StatKey(category, term.label)] * term.weight(cfg)
		}
	}
	return Round2(total)
}

// ScoredLabels returns the stat labels a category formula reads, in formula order.
func ScoredLabels(category schema.Category) []string {
	terms := formulas[category]
	labels := make([]string, len(terms))
	for i, term := range terms {
		labels[i] = term.label
	}
	return labels
}

// ParseStatValue parses a provider stat cell. Thousands separators are stripped
// and the longest numeric prefix is used, so "30-35" parses as 30.
// Anything unparsable or non-finite is treated as 0.
func ParseStatValue(raw string) float64 {
	cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
	match := leadingNumber.FindString(cleaned)
	if match == "" {
		return 0
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Round2 rounds to two decimal places with ties going up, matching
// floor(v*100 + 0.5) / 100 but computed in decimal to avoid binary drift.
// Ties are judged on the shortest decimal form of v, so 1.005 rounds to 1.01
// even though the float64 nearest 1.005 is slightly below it.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Shift(2).Add(half).Floor().Shift(-2).InexactFloat64()
}
