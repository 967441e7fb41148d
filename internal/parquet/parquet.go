// Package parquet provides data structures and functions for exporting
// stored compliance reports to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/repograde/repograde/schema"
)

// ReportSummary represents one stored compliance report.
// This struct maps to the repograde_reports database table.
type ReportSummary struct {
	// ReportID is the unique identifier of the report
	ReportID string `parquet:"report_id,snappy"`

	// RepoURL is the canonical repository URL that was checked
	RepoURL string `parquet:"repo_url,snappy"`

	// RepoName is the owner/name display form of the repository
	RepoName string `parquet:"repo_name,snappy"`

	// OverallScore is the total score out of 100
	OverallScore int32 `parquet:"overall_score,snappy"`

	// RecommendationCount is the number of recommendations in the report
	RecommendationCount int32 `parquet:"recommendation_count,snappy"`

	// CreatedAt is when the report was produced (stored as TIMESTAMP with nanosecond precision)
	CreatedAt time.Time `parquet:"created_at,snappy"`
}

// CheckpointRow represents one checkpoint outcome within a report category.
type CheckpointRow struct {
	// ReportID references the parent report
	ReportID string `parquet:"report_id,snappy"`

	// Category is the category identifier, e.g. "docs"
	Category string `parquet:"category,snappy"`

	// CategoryScore is the points earned in the category
	CategoryScore int32 `parquet:"category_score,snappy"`

	// CategoryMax is the category's point budget
	CategoryMax int32 `parquet:"category_max,snappy"`

	// Description is the human-readable checkpoint description
	Description string `parquet:"description,snappy"`

	// Passed indicates whether the checkpoint passed
	Passed bool `parquet:"passed,snappy"`

	// Recommendation is the remediation text for failing checkpoints (nullable)
	Recommendation *string `parquet:"recommendation,optional,snappy"`
}

// WriteReportSummariesParquet writes a slice of ReportSummary structs to a Parquet file.
func WriteReportSummariesParquet(data []ReportSummary, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the ReportSummary struct tags
	writer := parquet.NewGenericWriter[ReportSummary](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteCheckpointRowsParquet writes a slice of CheckpointRow structs to a Parquet file.
func WriteCheckpointRowsParquet(data []CheckpointRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// The schema is automatically derived from the CheckpointRow struct tags
	writer := parquet.NewGenericWriter[CheckpointRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertReports flattens stored reports into summary and checkpoint rows
// for Parquet export.
func ConvertReports(reports []*schema.ComplianceReport) ([]ReportSummary, []CheckpointRow) {
	summaries := make([]ReportSummary, 0, len(reports))
	var rows []CheckpointRow

	for _, report := range reports {
		summaries = append(summaries, ReportSummary{
			ReportID:            report.ID,
			RepoURL:             report.RepoURL,
			RepoName:            report.RepoName,
			OverallScore:        int32(report.OverallScore),
			RecommendationCount: int32(len(report.Recommendations)),
			CreatedAt:           report.CreatedAt,
		})

		for _, cat := range report.Categories {
			for _, cp := range cat.Checkpoints {
				row := CheckpointRow{
					ReportID:      report.ID,
					Category:      string(cat.ID),
					CategoryScore: int32(cat.Score),
					CategoryMax:   int32(cat.MaxPoints),
					Description:   cp.Description,
					Passed:        cp.Passed,
				}
				if cp.Recommendation != "" {
					rec := cp.Recommendation
					row.Recommendation = &rec
				}
				rows = append(rows, row)
			}
		}
	}

	return summaries, rows
}
