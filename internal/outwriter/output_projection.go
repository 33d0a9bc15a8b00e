package outwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"time"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
)

var errNoProjection = errors.New("report has no projection")

// PrintProjection writes a projection to the configured output file or stdout.
func PrintProjection(report schema.PlayerReport, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteProjection(w, report, cfg, duration)
	}, successMessage(cfg))
}

// WriteProjection outputs a next-season projection, dispatching based on the output format configured.
func WriteProjection(w io.Writer, report schema.PlayerReport, cfg *contract.Config, duration time.Duration) error {
	if report.Projection == nil {
		return errNoProjection
	}
	fmtFloat, _ := createFormatters(cfg.Precision)
	return dispatch(w, cfg, report,
		func(cw *csv.Writer) error {
			return writeProjectionCSV(cw, *report.Projection, fmtFloat)
		},
		func(w io.Writer) error {
			return writeProjectionTable(w, report, cfg, fmtFloat, duration)
		})
}

func writeProjectionTable(w io.Writer, report schema.PlayerReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	p := report.Projection
	if _, err := fmt.Fprintf(w, "🔮 %d Projection for %s (%s - %s)\n",
		report.Season+1, report.Player.Name, report.Player.Position, report.Player.Team); err != nil {
		return err
	}

	summary := [][]string{
		{"Projected Points", fmtFloat(p.FantasyPoints)},
		{"Tier", contract.GetColorLabel(p.FantasyPoints)},
		{"Confidence", fmt.Sprintf("%.0f%%", p.Confidence*100)},
		{"Age Factor", formatFactor(p.Factors.Age)},
		{"Trend Factor", formatFactor(p.Factors.Trend)},
		{"Situation Factor", formatFactor(p.Factors.Situation)},
		{"Experience Factor", formatFactor(p.Factors.Experience)},
	}
	if err := renderTable(w, []string{"Metric", "Value"}, summary); err != nil {
		return err
	}

	var stats [][]string
	for _, key := range slices.Sorted(maps.Keys(p.ProjectedStats)) {
		stats = append(stats, []string{key, fmtFloat(p.ProjectedStats[key])})
	}
	if len(stats) > 0 {
		if err := renderTable(w, []string{"Stat", "Projected"}, stats); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "Based on %d historical seasons\n", len(p.HistoricalStats)); err != nil {
		return err
	}
	return writeFooter(w, cfg, "Projection", duration)
}

func writeProjectionCSV(w *csv.Writer, p schema.ProjectionResult, fmtFloat func(float64) string) error {
	return writeCSVWithHeader(w, []string{"metric", "value"}, func(w *csv.Writer) error {
		rows := [][]string{
			{"projected_fantasy_points", fmtFloat(p.FantasyPoints)},
			{"confidence", strconv.FormatFloat(p.Confidence, 'f', -1, 64)},
			{"age_factor", formatFactor(p.Factors.Age)},
			{"trend_factor", formatFactor(p.Factors.Trend)},
			{"situation_factor", formatFactor(p.Factors.Situation)},
			{"experience_factor", formatFactor(p.Factors.Experience)},
		}
		for _, key := range slices.Sorted(maps.Keys(p.ProjectedStats)) {
			rows = append(rows, []string{key, fmtFloat(p.ProjectedStats[key])})
		}
		return w.WriteAll(rows)
	})
}

// formatFactor prints a multiplier with as many digits as it needs, e.g. 1.05x.
func formatFactor(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "x"
}
