package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
)

// scoringRenderModel is the display form of the active scoring weights.
type scoringRenderModel struct {
	Preset  schema.ScoringPreset `json:"preset"`
	Weights schema.ScoringConfig `json:"weights"`
	Rules   []scoringRule        `json:"rules"`
}

// scoringRule describes one weight in words.
type scoringRule struct {
	Event  schema.BreakdownKey `json:"event"`
	Points float64             `json:"points"`
	Per    string              `json:"per"`
}

// scoringUnits explains what one unit of each event is.
var scoringUnits = map[schema.BreakdownKey]string{
	schema.BreakdownPassingYards:   "yard",
	schema.BreakdownPassingTDs:     "touchdown",
	schema.BreakdownInterceptions:  "interception",
	schema.BreakdownRushingYards:   "yard",
	schema.BreakdownRushingTDs:     "touchdown",
	schema.BreakdownFumbles:        "fumble lost",
	schema.BreakdownReceptions:     "catch",
	schema.BreakdownReceivingYards: "yard",
	schema.BreakdownReceivingTDs:   "touchdown",
	schema.BreakdownFieldGoals:     "field goal made",
	schema.BreakdownExtraPoints:    "extra point made",
}

func buildScoringRenderModel(cfg *contract.Config) scoringRenderModel {
	preset := cfg.ScoringPreset
	if preset == "" {
		preset = schema.PPRPreset
	}
	weights := cfg.Scoring.Weights()
	rules := make([]scoringRule, len(schema.AllBreakdownKeys))
	for i, key := range schema.AllBreakdownKeys {
		rules[i] = scoringRule{Event: key, Points: weights[key], Per: scoringUnits[key]}
	}
	return scoringRenderModel{Preset: preset, Weights: cfg.Scoring, Rules: rules}
}

// PrintScoring writes the scoring weights to the configured output file or stdout.
func PrintScoring(cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteScoring(w, cfg)
	}, successMessage(cfg))
}

// WriteScoring outputs the active scoring weights. This is static and needs no network.
func WriteScoring(w io.Writer, cfg *contract.Config) error {
	model := buildScoringRenderModel(cfg)
	return dispatch(w, cfg, model,
		func(cw *csv.Writer) error {
			return writeCSVWithHeader(cw, []string{"event", "points", "per"}, func(cw *csv.Writer) error {
				for _, r := range model.Rules {
					if err := cw.Write([]string{string(r.Event), strconv.FormatFloat(r.Points, 'f', -1, 64), r.Per}); err != nil {
						return err
					}
				}
				return nil
			})
		},
		func(w io.Writer) error {
			return writeScoringText(w, model)
		})
}

func writeScoringText(w io.Writer, model scoringRenderModel) error {
	if _, err := fmt.Fprintf(w, "🏈 Fantasy Scoring (%s)\n", model.Preset); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Season points = sum of weight * count for each event\n"); err != nil {
		return err
	}
	rows := make([][]string, len(model.Rules))
	for i, r := range model.Rules {
		rows[i] = []string{string(r.Event), strconv.FormatFloat(r.Points, 'f', -1, 64), r.Per}
	}
	return renderTable(w, []string{"Event", "Points", "Per"}, rows)
}
