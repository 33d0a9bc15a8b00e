package core

import (
	"math"

	"github.com/huangsam/gridiron/schema"
)

// FantasyPointsKey is the projected stat key holding the fantasy point total.
const FantasyPointsKey = "fantasyPoints"

// ErrMissingProjectionInput is reported on a ProjectionResult when inputs are absent.
const ErrMissingProjectionInput = "Missing player data or stats"

// Defaults applied when player attributes are zero-valued.
const (
	defaultAge      = 25
	defaultPosition = schema.WR
)

// Trend inference rules.
const (
	minTrendGames     = 12
	unknownTrendGames = 17
)

// baselineWeights are keyed by the number of seasons blended, newest first.
var baselineWeights = map[int][]float64{
	2: {0.3, 0.7},
	3: {0.25, 0.40, 0.35},
}

// Project estimates next season's stat line and fantasy points for a player.
// It never fails hard: missing inputs are reported through the Error field.
func Project(attrs *schema.PlayerAttributes, seasons []schema.SeasonFantasyRecord, cfg schema.ScoringConfig, situation schema.SituationalFactors) schema.ProjectionResult {
	if attrs == nil || len(seasons) == 0 {
		return schema.ProjectionResult{Error: ErrMissingProjectionInput}
	}

	resolved := resolveAttributes(*attrs)
	historical := make([]schema.SeasonFantasyRecord, len(seasons))
	for i, season := range seasons {
		historical[i] = NormalizeSeason(season)
	}
	SortSeasons(historical)

	baseline := Baseline(historical)
	factors := schema.ProjectionFactors{
		Age:        AgeFactor(resolved.Age, resolved.Position),
		Trend:      TrendFactor(historical),
		Situation:  SituationFactor(situation),
		Experience: 1.0,
	}
	combined := factors.Age * factors.Trend * factors.Situation
	if resolved.YearsInLeague < 3 {
		factors.Experience = ExperienceFactor(resolved.YearsInLeague)
		combined *= factors.Experience
	}

	projected := make(map[string]float64, len(baseline))
	for stat, value := range baseline {
		regression := RegressionFactor(value, PositionAverage(resolved.Position, stat))
		projected[stat] = Round2(value * combined * regression)
	}

	points := projected[FantasyPointsKey]
	if points == 0 {
		points = scoreStatMap(projected, cfg)
	}

	return schema.ProjectionResult{
		ProjectedStats: projected,
		FantasyPoints:  points,
		Confidence:     Confidence(resolved, historical, situation),
		Factors:        factors,
		PlayerInfo: schema.PlayerInfo{
			Name:          resolved.Name,
			Age:           resolved.Age,
			Position:      resolved.Position,
			YearsInLeague: resolved.YearsInLeague,
		},
		HistoricalStats: historical,
	}
}

// resolveAttributes fills zero-valued attributes with defaults.
func resolveAttributes(attrs schema.PlayerAttributes) schema.PlayerAttributes {
	if attrs.Age == 0 {
		attrs.Age = defaultAge
	}
	if attrs.Position == "" {
		attrs.Position = defaultPosition
	}
	return attrs
}

// Baseline blends the most recent seasons per stat. Seasons must be newest first.
// Only stats present in the newest season are blended; older seasons missing a
// stat contribute zero. The fantasy total is blended under FantasyPointsKey.
func Baseline(seasons []schema.SeasonFantasyRecord) map[string]float64 {
	baseline := make(map[string]float64)
	if len(seasons) == 0 {
		return baseline
	}

	if len(seasons) == 1 {
		for stat, v := range seasons[0].Stats {
			baseline[stat] = v
		}
		baseline[FantasyPointsKey] = seasons[0].FantasyPoints
		return baseline
	}

	weights := baselineWeights[min(len(seasons), 3)]
	for stat := range seasons[0].Stats {
		var sum float64
		for i, w := range weights {
			sum += seasons[i].Stats[stat] * w
		}
		baseline[stat] = sum
	}
	var points float64
	for i, w := range weights {
		points += seasons[i].FantasyPoints * w
	}
	baseline[FantasyPointsKey] = points
	return baseline
}

// TrendFactor maps year-over-year fantasy point changes to a multiplier.
// Seasons must be newest first. Pairs involving a season shorter than 12 games
// are skipped, as are pairs whose earlier season scored nothing.
func TrendFactor(seasons []schema.SeasonFantasyRecord) float64 {
	if len(seasons) < 2 {
		return 1.0
	}

	games := func(s schema.SeasonFantasyRecord) float64 {
		if s.GamesPlayed > 0 {
			return s.GamesPlayed
		}
		return unknownTrendGames
	}

	var trends []float64
	for i := 0; i < len(seasons)-1; i++ {
		current, previous := seasons[i], seasons[i+1]
		if games(current) < minTrendGames || games(previous) < minTrendGames {
			continue
		}
		if previous.FantasyPoints > 0 {
			trends = append(trends, (current.FantasyPoints-previous.FantasyPoints)/previous.FantasyPoints)
		}
	}

	var weighted float64
	switch len(trends) {
	case 0:
		return 1.0
	case 1:
		weighted = trends[0]
	default:
		weighted = trends[0]*0.7 + trends[1]*0.3
	}

	switch {
	case weighted > 0.15:
		return 1.15
	case weighted > 0.05:
		return 1.08
	case weighted > -0.05:
		return 1.00
	case weighted > -0.15:
		return 0.92
	default:
		return 0.85
	}
}

// SituationFactor applies caller-flagged context, clamped to [0.7, 1.3].
func SituationFactor(situation schema.SituationalFactors) float64 {
	factor := 1.0
	if situation.InjuryHistory {
		factor *= 0.92
	}
	if situation.NewTeam {
		factor *= 0.90
	}
	return clamp(factor, 0.7, 1.3)
}

// ExperienceFactor rewards early-career growth.
func ExperienceFactor(yearsInLeague int) float64 {
	switch yearsInLeague {
	case 0:
		return 1.25
	case 1:
		return 1.15
	case 2:
		return 1.08
	default:
		return 1.0
	}
}

// RegressionFactor pulls a baseline toward the position average by at most 15%.
func RegressionFactor(baseline, average float64) float64 {
	if average == 0 {
		return 1.0
	}
	strength := math.Min(0.15, math.Abs(baseline-average)/average*0.1)
	if baseline > average {
		return 1 - strength
	}
	return 1 + strength
}

// Confidence scores projection reliability in [0.3, 1.0].
func Confidence(attrs schema.PlayerAttributes, seasons []schema.SeasonFantasyRecord, situation schema.SituationalFactors) float64 {
	confidence := 1.0

	if situation.NewTeam {
		confidence *= 0.85
	}
	if situation.NewOffensiveCoordinator {
		confidence *= 0.9
	}

	switch {
	case attrs.Position == schema.RB && attrs.Age > 30:
		confidence *= 0.75
	case attrs.Position == schema.WR && attrs.Age > 32:
		confidence *= 0.8
	case attrs.Position == schema.QB && attrs.Age > 35:
		confidence *= 0.85
	}

	if attrs.YearsInLeague > 5 {
		confidence *= 1.1
	}

	if len(seasons) >= 3 && coefficientOfVariation(seasons) < 0.2 {
		confidence *= 1.05
	}

	return clamp(confidence, 0.3, 1.0)
}

// coefficientOfVariation returns the population stdev over mean of fantasy points.
// A zero mean yields +Inf so the consistency bonus is never granted.
func coefficientOfVariation(seasons []schema.SeasonFantasyRecord) float64 {
	var mean float64
	for _, s := range seasons {
		mean += s.FantasyPoints
	}
	mean /= float64(len(seasons))
	if mean == 0 {
		return math.Inf(1)
	}

	var variance float64
	for _, s := range seasons {
		variance += (s.FantasyPoints - mean) * (s.FantasyPoints - mean)
	}
	variance /= float64(len(seasons))
	return math.Sqrt(variance) / mean
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
