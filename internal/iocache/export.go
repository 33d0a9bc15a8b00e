package iocache

import (
	"errors"
	"fmt"

	"github.com/huangsam/gridiron/internal/contract"
	"github.com/huangsam/gridiron/internal/parquet"
)

// ExecuteSearchExport writes every search record to a Parquet file.
func ExecuteSearchExport(store contract.SearchStore, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}
	if store == nil {
		return errors.New("search tracking is disabled, set --search-backend")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get search status: %w", err)
	}
	if status.TotalPlayers == 0 {
		return errors.New("no search data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total players searched: %d\n", status.TotalPlayers)
	fmt.Printf("Total searches: %d\n", status.TotalSearches)

	records, err := store.ListSearches()
	if err != nil {
		return fmt.Errorf("failed to retrieve searches: %w", err)
	}

	rows := parquet.ConvertSearchRecords(records)
	if err := parquet.WritePlayerSearchesParquet(rows, outputFile); err != nil {
		return fmt.Errorf("failed to write player searches: %w", err)
	}
	fmt.Printf("Exported %d player search records to: %s\n", len(rows), outputFile)

	fmt.Println("\nExport complete! The Parquet file can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
