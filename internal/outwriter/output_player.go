package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
)

// PrintPlayer writes a player card to the configured output file or stdout.
func PrintPlayer(player schema.Player, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WritePlayer(w, player, cfg)
	}, successMessage(cfg))
}

// WritePlayer outputs one player, dispatching based on the output format configured.
func WritePlayer(w io.Writer, player schema.Player, cfg *contract.Config) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	type jsonPlayer struct {
		Label string `json:"label"`
		schema.Player
	}
	data := jsonPlayer{Label: schema.GetPlainLabel(player.FantasyPoints), Player: player}

	return dispatch(w, cfg, data,
		func(cw *csv.Writer) error {
			return writePlayerCSV(cw, player, fmtFloat, intFmt)
		},
		func(w io.Writer) error {
			return writePlayerTable(w, player, fmtFloat, intFmt)
		})
}

func writePlayerTable(w io.Writer, p schema.Player, fmtFloat func(float64) string, intFmt string) error {
	if _, err := fmt.Fprintf(w, "🏈 %s\n", p.Name); err != nil {
		return err
	}
	rows := [][]string{
		{"Position", string(p.Position)},
		{"Team", p.Team},
		{"Jersey", "#" + p.Jersey},
		{"Age", fmt.Sprintf(intFmt, p.Age)},
		{"Height", p.Height},
		{"Weight", p.Weight},
		{"Experience", fmt.Sprintf(intFmt+" years", p.Experience)},
		{"Fantasy Points", fmtFloat(p.FantasyPoints)},
		{"Tier", contract.GetColorLabel(p.FantasyPoints)},
	}
	return renderTable(w, []string{"Field", "Value"}, rows)
}

func writePlayerCSV(w *csv.Writer, p schema.Player, fmtFloat func(float64) string, intFmt string) error {
	header := []string{"id", "name", "position", "team", "jersey", "age", "height", "weight", "experience", "fantasy_points", "label"}
	return writeCSVWithHeader(w, header, func(w *csv.Writer) error {
		return w.Write([]string{
			p.ID,
			p.Name,
			string(p.Position),
			p.Team,
			p.Jersey,
			strconv.Itoa(p.Age),
			p.Height,
			p.Weight,
			fmt.Sprintf(intFmt, p.Experience),
			fmtFloat(p.FantasyPoints),
			schema.GetPlainLabel(p.FantasyPoints),
		})
	})
}
