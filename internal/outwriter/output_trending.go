package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/schema"
)

// PrintTrending writes the most searched players to the configured output file or stdout.
func PrintTrending(records []schema.SearchRecord, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteTrending(w, records, cfg)
	}, successMessage(cfg))
}

// WriteTrending outputs search records, dispatching based on the output format configured.
func WriteTrending(w io.Writer, records []schema.SearchRecord, cfg *contract.Config) error {
	return dispatch(w, cfg, records,
		func(cw *csv.Writer) error {
			return writeTrendingCSV(cw, records)
		},
		func(w io.Writer) error {
			return writeTrendingTable(w, records, cfg)
		})
}

func writeTrendingTable(w io.Writer, records []schema.SearchRecord, cfg *contract.Config) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No searches recorded yet")
		return err
	}
	nameWidth := getMaxTableNameWidth(cfg, 55)
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(r.Name, nameWidth),
			r.Position,
			contract.TruncateName(r.Team, nameWidth),
			strconv.Itoa(r.Count),
			r.UpdatedAt.Format(contract.DateTimeFormat),
		}
	}
	if err := renderTable(w, []string{"Rank", "Player", "Pos", "Team", "Searches", "Last Searched"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Showing top %d searched players\n", len(records))
	return err
}

func writeTrendingCSV(w *csv.Writer, records []schema.SearchRecord) error {
	header := []string{"rank", "player_id", "name", "position", "team", "count", "search_term", "updated_at"}
	return writeCSVWithHeader(w, header, func(w *csv.Writer) error {
		for i, r := range records {
			rec := []string{
				strconv.Itoa(i + 1),
				r.PlayerID,
				r.Name,
				r.Position,
				r.Team,
				strconv.Itoa(r.Count),
				r.SearchTerm,
				r.UpdatedAt.Format(contract.DateTimeFormat),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
