package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
)

// PrintLeaderboard writes leaderboard entries to the configured output file or stdout.
func PrintLeaderboard(entries []schema.LeaderboardEntry, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteLeaderboard(w, entries, cfg, duration)
	}, successMessage(cfg))
}

// WriteLeaderboard outputs ranked entries, dispatching based on the output format configured.
func WriteLeaderboard(w io.Writer, entries []schema.LeaderboardEntry, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	ranked := schema.RankEntries(entries)
	return dispatch(w, cfg, ranked,
		func(cw *csv.Writer) error {
			return writeLeaderboardCSV(cw, ranked, fmtFloat)
		},
		func(w io.Writer) error {
			return writeLeaderboardTable(w, ranked, cfg, fmtFloat, duration)
		})
}

func writeLeaderboardTable(w io.Writer, ranked []schema.RankedEntry, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	nameWidth := getMaxTableNameWidth(cfg, 45)
	var rows [][]string
	for _, e := range ranked {
		rows = append(rows, []string{
			strconv.Itoa(e.Rank),
			contract.TruncateName(e.Name, nameWidth),
			string(e.Position),
			contract.TruncateName(e.Team, nameWidth),
			fmtFloat(e.FantasyPoints),
			contract.GetColorLabel(e.FantasyPoints),
		})
	}
	if err := renderTable(w, []string{"Rank", "Player", "Pos", "Team", "Points", "Tier"}, rows); err != nil {
		return err
	}

	total := 0.0
	for _, e := range ranked {
		total += e.FantasyPoints
	}
	if _, err := fmt.Fprintf(w, "Showing top %d players (total points: %s)\n", len(ranked), fmtFloat(total)); err != nil {
		return err
	}
	return writeFooter(w, cfg, "Ranking", duration)
}

func writeLeaderboardCSV(w *csv.Writer, ranked []schema.RankedEntry, fmtFloat func(float64) string) error {
	header := []string{"rank", "id", "name", "position", "team", "fantasy_points", "label"}
	return writeCSVWithHeader(w, header, func(w *csv.Writer) error {
		for _, e := range ranked {
			rec := []string{
				strconv.Itoa(e.Rank),
				e.ID,
				e.Name,
				string(e.Position),
				e.Team,
				fmtFloat(e.FantasyPoints),
				e.Label,
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
