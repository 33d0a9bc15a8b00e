package core

import (
	"sort"

	"github.com/huangsam/gridiron/schema"
)

// agePoint is one entry of an aging curve.
type agePoint struct {
	age    int
	factor float64
}

// ageCurves map ages to projection multipliers, sorted by ascending age.
// Running backs decline earliest and steepest, quarterbacks latest.
var ageCurves = map[schema.Position][]agePoint{
	schema.QB: {
		{22, 1.05}, {23, 1.05}, {24, 1.05}, {25, 1.05}, {26, 1.05},
		{27, 1.02}, {28, 1.02}, {29, 1.00}, {30, 1.00}, {31, 1.00}, {32, 1.00},
		{33, 0.95}, {34, 0.95}, {35, 0.95},
		{36, 0.85}, {37, 0.85}, {38, 0.85},
		{39, 0.70}, {40, 0.70},
	},
	schema.RB: {
		{21, 1.15}, {22, 1.10}, {23, 1.08}, {24, 1.05},
		{25, 1.02}, {26, 1.00},
		{27, 0.95}, {28, 0.90},
		{29, 0.80}, {30, 0.75},
		{31, 0.65}, {32, 0.60}, {33, 0.55},
	},
	schema.WR: {
		{21, 1.10}, {22, 1.08}, {23, 1.06}, {24, 1.05}, {25, 1.03},
		{26, 1.02}, {27, 1.02}, {28, 1.00},
		{29, 0.98}, {30, 0.95},
		{31, 0.90}, {32, 0.85},
		{33, 0.75}, {34, 0.70}, {35, 0.65},
	},
	schema.TE: {
		{22, 1.08}, {23, 1.06}, {24, 1.05}, {25, 1.03}, {26, 1.02},
		{27, 1.00}, {28, 1.00}, {29, 1.00},
		{30, 0.95}, {31, 0.92}, {32, 0.90},
		{33, 0.85}, {34, 0.80}, {35, 0.75},
	},
	schema.K: {
		{22, 1.02}, {23, 1.02}, {24, 1.01}, {25, 1.01}, {26, 1.00},
		{27, 1.00}, {28, 1.00}, {29, 1.00}, {30, 1.00}, {31, 1.00}, {32, 1.00},
		{33, 0.98}, {34, 0.98}, {35, 0.95},
		{36, 0.90}, {37, 0.85}, {38, 0.80},
	},
}

// positionAverages are typical full-season outputs used for regression to the mean.
// Stats without an entry are not regressed.
var positionAverages = map[schema.Position]map[string]float64{
	schema.QB: {
		"passing_YDS": 3800,
		"passing_TD":  25,
		"passing_INT": 12,
		"rushing_YDS": 250,
		"rushing_TD":  3,
	},
	schema.RB: {
		"rushing_YDS":   800,
		"rushing_TD":    8,
		"receiving_REC": 35,
		"receiving_YDS": 300,
		"receiving_TD":  2,
	},
	schema.WR: {
		"receiving_REC": 65,
		"receiving_YDS": 900,
		"receiving_TD":  7,
		"rushing_YDS":   50,
		"rushing_TD":    1,
	},
	schema.TE: {
		"receiving_REC": 50,
		"receiving_YDS": 600,
		"receiving_TD":  5,
	},
	schema.K: {
		"kicking_FG":  25,
		"kicking_XPM": 35,
	},
}

// AgeFactor returns the aging multiplier for a position.
// Ages outside the table use the nearest tabulated age; on a tie the younger age wins.
// Unknown positions use the WR curve.
func AgeFactor(age int, position schema.Position) float64 {
	curve, ok := ageCurves[position]
	if !ok {
		curve = ageCurves[schema.WR]
	}

	i := sort.Search(len(curve), func(i int) bool { return curve[i].age >= age })
	switch {
	case i < len(curve) && curve[i].age == age:
		return curve[i].factor
	case i == 0:
		return curve[0].factor
	case i == len(curve):
		return curve[len(curve)-1].factor
	}

	below, above := curve[i-1], curve[i]
	if above.age-age < age-below.age {
		return above.factor
	}
	return below.factor
}

// PositionAverage returns the regression target for a stat, or 0 when none exists.
func PositionAverage(position schema.Position, stat string) float64 {
	return positionAverages[position][stat]
}
