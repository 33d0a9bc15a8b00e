package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
)

const (
	breakdownMinimum = 0.5
	topNSources      = 3
)

// PrintSeasons writes a season breakdown to the configured output file or stdout.
func PrintSeasons(report schema.PlayerReport, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteSeasons(w, report, cfg, duration)
	}, successMessage(cfg))
}

// WriteSeasons outputs the per-season scores, dispatching based on the output format configured.
func WriteSeasons(w io.Writer, report schema.PlayerReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	return dispatch(w, cfg, report,
		func(cw *csv.Writer) error {
			return writeSeasonsCSV(cw, report, fmtFloat)
		},
		func(w io.Writer) error {
			return writeSeasonsTable(w, report, cfg, fmtFloat, duration)
		})
}

func writeSeasonsTable(w io.Writer, report schema.PlayerReport, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	p := report.Player
	if _, err := fmt.Fprintf(w, "🏈 %s (%s - %s)\n", p.Name, p.Position, p.Team); err != nil {
		return err
	}

	var rows [][]string
	for _, s := range report.Seasons {
		rows = append(rows, []string{
			strconv.Itoa(s.Year),
			contract.TruncateName(s.Team, getMaxTableNameWidth(cfg, 60)),
			fmtFloat(s.Total),
			contract.GetColorLabel(s.Total),
			formatTopSources(s.Breakdown),
		})
	}
	if err := renderTable(w, []string{"Season", "Team", "Points", "Tier", "Top Sources"}, rows); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Season %d total: %s fantasy points (%s)\n",
		report.Season, fmtFloat(p.FantasyPoints), schema.GetPlainLabel(p.FantasyPoints)); err != nil {
		return err
	}
	return writeFooter(w, cfg, "Scoring", duration)
}

func writeSeasonsCSV(w *csv.Writer, report schema.PlayerReport, fmtFloat func(float64) string) error {
	header := []string{"season", "team", "total"}
	for _, key := range schema.AllBreakdownKeys {
		header = append(header, csvColumn(key))
	}
	return writeCSVWithHeader(w, header, func(w *csv.Writer) error {
		for _, s := range report.Seasons {
			rec := []string{strconv.Itoa(s.Year), s.Team, fmtFloat(s.Total)}
			for _, key := range schema.AllBreakdownKeys {
				rec = append(rec, fmtFloat(s.Breakdown[key]))
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// csvColumn turns "Passing Yards" into "passing_yards".
func csvColumn(key schema.BreakdownKey) string {
	return strings.ReplaceAll(strings.ToLower(string(key)), " ", "_")
}

// breakdownPart holds one scoring event's contribution to a season.
type breakdownPart struct {
	Name  string
	Value float64
}

// formatTopSources lists the events contributing most to a season's points.
func formatTopSources(breakdown map[schema.BreakdownKey]float64) string {
	var parts []breakdownPart
	for k, v := range breakdown {
		if math.Abs(v) >= breakdownMinimum {
			parts = append(parts, breakdownPart{Name: string(k), Value: v})
		}
	}
	if len(parts) == 0 {
		return "None"
	}

	// Largest absolute contribution first; name breaks ties so output is stable.
	sort.Slice(parts, func(i, j int) bool {
		ai, aj := math.Abs(parts[i].Value), math.Abs(parts[j].Value)
		if ai != aj {
			return ai > aj
		}
		return parts[i].Name < parts[j].Name
	})

	limit := min(len(parts), topNSources)
	names := make([]string, limit)
	for i := range limit {
		names[i] = parts[i].Name
	}
	return strings.Join(names, " > ")
}
