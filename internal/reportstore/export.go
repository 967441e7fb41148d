package reportstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/repograde/repograde/internal/parquet"
)

// ExecuteReportExport performs the actual export of stored reports to
// Parquet files.
func ExecuteReportExport(ctx context.Context, outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	store := Manager.GetReportStore()

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get store status: %w", err)
	}
	if status.TotalReports == 0 {
		return errors.New("no reports found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total reports: %d\n", status.TotalReports)

	reports, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to retrieve reports: %w", err)
	}

	summaries, rows := parquet.ConvertReports(reports)

	summaryFile := outputFile + ".reports.parquet"
	if err := parquet.WriteReportSummariesParquet(summaries, summaryFile); err != nil {
		return fmt.Errorf("failed to write report summaries: %w", err)
	}
	fmt.Printf("Exported %d reports to: %s\n", len(summaries), summaryFile)

	rowsFile := outputFile + ".checkpoints.parquet"
	if err := parquet.WriteCheckpointRowsParquet(rows, rowsFile); err != nil {
		return fmt.Errorf("failed to write checkpoint rows: %w", err)
	}
	fmt.Printf("Exported %d checkpoint rows to: %s\n", len(rows), rowsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
