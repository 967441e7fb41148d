package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteReport outputs a freshly produced compliance report, dispatching on
// the configured output format.
func WriteReport(report *schema.ComplianceReport, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportCSV(w, report)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(w, report, cfg, duration)
		}, "Wrote table")
	}
}

// writeReportCSV emits one row per checkpoint, grouped by category.
func writeReportCSV(w io.Writer, report *schema.ComplianceReport) error {
	header := []string{"category", "description", "passed", "recommendation"}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, cat := range report.Categories {
			for _, cp := range cat.Checkpoints {
				row := []string{cat.Name, cp.Description, strconv.FormatBool(cp.Passed), cp.Recommendation}
				if err := csvWriter.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// writeReportTable generates and writes the human-readable summary.
func writeReportTable(w io.Writer, report *schema.ComplianceReport, cfg *contract.Config, duration time.Duration) error {
	grade := contract.GetPlainGrade(report.OverallScore)
	if cfg.UseColors {
		grade = contract.GetColorGrade(report.OverallScore)
	}

	fmt.Fprintf(w, "Compliance Report for %s\n", report.RepoName)
	fmt.Fprintf(w, "  Report ID: %s\n", report.ID)
	fmt.Fprintf(w, "  Overall:   %d/%d (%s)\n\n", report.OverallScore, schema.TotalPoints, grade)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", "Score", "Max", "Passed"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, cat := range report.Categories {
		passedCount := 0
		for _, cp := range cat.Checkpoints {
			if cp.Passed {
				passedCount++
			}
		}
		data = append(data, []string{
			cat.Name,
			strconv.Itoa(cat.Score),
			strconv.Itoa(cat.MaxPoints),
			fmt.Sprintf("%d/%d", passedCount, len(cat.Checkpoints)),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if len(report.Recommendations) > 0 {
		maxWidth := getMaxDescriptionWidth(cfg)
		fmt.Fprintf(w, "\nTop recommendations:\n")
		shown := 0
		for _, rec := range report.Recommendations {
			if shown >= 10 {
				fmt.Fprintf(w, "  ... and %d more (use download for the full document)\n", len(report.Recommendations)-shown)
				break
			}
			fmt.Fprintf(w, "  - [%s] %s\n", rec.Category, contract.TruncateText(rec.Text, maxWidth))
			shown++
		}
	} else {
		fmt.Fprintf(w, "\nEvery checkpoint passed.\n")
	}

	_, err := fmt.Fprintf(w, "\nChecked %d checkpoints in %v\n", countCheckpoints(report), duration.Round(time.Millisecond))
	return err
}

func countCheckpoints(report *schema.ComplianceReport) int {
	total := 0
	for _, cat := range report.Categories {
		total += len(cat.Checkpoints)
	}
	return total
}
