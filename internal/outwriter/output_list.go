package outwriter

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/schema"

	"github.com/olekukonko/tablewriter"
)

// WriteReportList outputs stored report summaries, dispatching on the
// configured output format.
func WriteReportList(reports []*schema.ComplianceReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, reports)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"id", "repo", "score", "created_at"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, r := range reports {
					record := []string{r.ID, r.RepoName, strconv.Itoa(r.OverallScore), r.CreatedAt.Format(contract.DateTimeFormat)}
					if err := csvWriter.Write(record); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportListTable(w, reports, cfg)
		}, "Wrote table")
	}
}

// writeReportListTable prints the human-readable report listing.
func writeReportListTable(w io.Writer, reports []*schema.ComplianceReport, cfg *contract.Config) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"ID", "Repository", "Score", "Grade", "Created"})

	var data [][]string
	for _, r := range reports {
		grade := contract.GetPlainGrade(r.OverallScore)
		if cfg.UseColors {
			grade = contract.GetColorGrade(r.OverallScore)
		}
		data = append(data, []string{
			r.ID,
			r.RepoName,
			strconv.Itoa(r.OverallScore),
			grade,
			r.CreatedAt.Format(contract.DateTimeFormat),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
