package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
)

// PrintComparison writes a comparison to the configured output file or stdout.
func PrintComparison(result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteComparison(w, result, cfg, duration)
	}, successMessage(cfg))
}

// WriteComparison outputs a head-to-head, dispatching based on the output format configured.
func WriteComparison(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	return dispatch(w, cfg, result,
		func(cw *csv.Writer) error {
			return writeComparisonCSV(cw, result, fmtFloat)
		},
		func(w io.Writer) error {
			return writeComparisonTable(w, result, cfg, fmtFloat, duration)
		})
}

func writeComparisonTable(w io.Writer, result schema.ComparisonResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "🏈 %s vs %s\n", result.First.Name, result.Second.Name); err != nil {
		return err
	}

	green := fmt.Sprint
	if cfg.UseColors {
		green = color.New(color.FgGreen, color.Bold).SprintFunc()
	}

	nameWidth := getMaxTableNameWidth(cfg, 50)
	var rows [][]string
	for _, p := range []schema.Player{result.First, result.Second} {
		name := contract.TruncateName(p.Name, nameWidth)
		if p.Name == result.Winner {
			name = green(name + " 🏆")
		}
		rows = append(rows, []string{name, string(p.Position), p.Team, fmtFloat(p.FantasyPoints), schema.GetPlainLabel(p.FantasyPoints)})
	}
	if err := renderTable(w, []string{"Player", "Pos", "Team", "Points", "Tier"}, rows); err != nil {
		return err
	}

	if result.Winner == "" {
		if _, err := fmt.Fprintf(w, "🤝 Tie: Both players have %s fantasy points\n", fmtFloat(result.First.FantasyPoints)); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintf(w, "🏆 Winner: %s (+%s points)\n", result.Winner, fmtFloat(result.Margin)); err != nil {
		return err
	}
	return writeFooter(w, cfg, "Comparison", duration)
}

func writeComparisonCSV(w *csv.Writer, result schema.ComparisonResult, fmtFloat func(float64) string) error {
	header := []string{"name", "position", "team", "fantasy_points", "winner", "margin"}
	return writeCSVWithHeader(w, header, func(w *csv.Writer) error {
		for _, p := range []schema.Player{result.First, result.Second} {
			margin := "0"
			if p.Name == result.Winner {
				margin = fmtFloat(result.Margin)
			}
			rec := []string{
				p.Name,
				string(p.Position),
				p.Team,
				fmtFloat(p.FantasyPoints),
				fmt.Sprint(p.Name == result.Winner),
				margin,
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
