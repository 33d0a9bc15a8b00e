package schema

import (
	"fmt"
	"math"
)

// ScoringConfig holds one weight per countable event.
// The mapstructure tags match the keys accepted under `scoring:` in the config file.
type ScoringConfig struct {
	PassingYards   float64 `json:"passingYards" mapstructure:"passing-yards"`
	PassingTDs     float64 `json:"passingTDs" mapstructure:"passing-tds"`
	Interceptions  float64 `json:"interceptions" mapstructure:"interceptions"`
	RushingYards   float64 `json:"rushingYards" mapstructure:"rushing-yards"`
	RushingTDs     float64 `json:"rushingTDs" mapstructure:"rushing-tds"`
	Fumbles        float64 `json:"fumbles" mapstructure:"fumbles"`
	Receptions     float64 `json:"receptions" mapstructure:"receptions"`
	ReceivingYards float64 `json:"receivingYards" mapstructure:"receiving-yards"`
	ReceivingTDs   float64 `json:"receivingTDs" mapstructure:"receiving-tds"`
	FieldGoals     float64 `json:"fieldGoals" mapstructure:"field-goals"`
	ExtraPoints    float64 `json:"extraPoints" mapstructure:"extra-points"`
}

// DefaultScoringConfig returns the standard full-PPR weights.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		PassingYards:   0.04,
		PassingTDs:     4,
		Interceptions:  -2,
		RushingYards:   0.1,
		RushingTDs:     6,
		Fumbles:        -2,
		Receptions:     1,
		ReceivingYards: 0.1,
		ReceivingTDs:   6,
		FieldGoals:     3.5,
		ExtraPoints:    1,
	}
}

// PresetScoringConfig returns the default weights adjusted for a preset.
// An unknown preset yields an error.
func PresetScoringConfig(preset ScoringPreset) (ScoringConfig, error) {
	cfg := DefaultScoringConfig()
	switch preset {
	case PPRPreset, "":
		cfg.Receptions = 1
	case HalfPPRPreset:
		cfg.Receptions = 0.5
	case NonPPRPreset:
		cfg.Receptions = 0
	default:
		return cfg, fmt.Errorf("invalid scoring preset '%s'. must be ppr, half-ppr or non-ppr", preset)
	}
	return cfg, nil
}

// Weights returns the weights keyed by their breakdown label, useful for display.
func (c ScoringConfig) Weights() map[BreakdownKey]float64 {
	return map[BreakdownKey]float64{
		BreakdownPassingYards:   c.PassingYards,
		BreakdownPassingTDs:     c.PassingTDs,
		BreakdownInterceptions:  c.Interceptions,
		BreakdownRushingYards:   c.RushingYards,
		BreakdownRushingTDs:     c.RushingTDs,
		BreakdownFumbles:        c.Fumbles,
		BreakdownReceptions:     c.Receptions,
		BreakdownReceivingYards: c.ReceivingYards,
		BreakdownReceivingTDs:   c.ReceivingTDs,
		BreakdownFieldGoals:     c.FieldGoals,
		BreakdownExtraPoints:    c.ExtraPoints,
	}
}

// Validate ensures every weight is a finite number.
func (c ScoringConfig) Validate() error {
	for key, w := range c.Weights() {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("scoring weight '%s' must be a finite number", key)
		}
	}
	return nil
}
