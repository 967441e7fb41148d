// Package render converts stored compliance reports into downloadable
// documents. Output derives solely from the stored report structure, never
// from a re-fetch, so rendering the same report twice is byte-identical.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/schema"
)

// Markdown renders a report as a Markdown document. A malformed or
// incomplete report yields a RenderError carrying the report ID; the stored
// report itself is never touched.
func Markdown(report *schema.ComplianceReport) ([]byte, error) {
	if err := validate(report); err != nil {
		return nil, &contract.RenderError{ReportID: report.ID, Err: err}
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# Repository Compliance Report\n\n")
	fmt.Fprintf(&buf, "- **Repository:** [%s](%s)\n", report.RepoName, report.RepoURL)
	fmt.Fprintf(&buf, "- **Report ID:** `%s`\n", report.ID)
	fmt.Fprintf(&buf, "- **Generated:** %s\n", report.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&buf, "- **Overall Score:** %d / %d\n\n", report.OverallScore, schema.TotalPoints)

	buf.WriteString("## Category Scores\n\n")
	buf.WriteString("| Category | Score | Max |\n")
	buf.WriteString("|----------|------:|----:|\n")
	for _, cat := range report.Categories {
		fmt.Fprintf(&buf, "| %s | %d | %d |\n", cat.Name, cat.Score, cat.MaxPoints)
	}
	buf.WriteString("\n")

	buf.WriteString("## Checkpoints\n\n")
	for _, cat := range report.Categories {
		fmt.Fprintf(&buf, "### %s (%d/%d)\n\n", cat.Name, cat.Score, cat.MaxPoints)
		for _, cp := range cat.Checkpoints {
			mark := "[ ]"
			if cp.Passed {
				mark = "[x]"
			}
			fmt.Fprintf(&buf, "- %s %s\n", mark, cp.Description)
		}
		buf.WriteString("\n")
	}

	buf.WriteString("## Recommendations\n\n")
	if len(report.Recommendations) == 0 {
		buf.WriteString("No recommendations. Every checkpoint passed.\n")
	} else {
		for _, rec := range report.Recommendations {
			fmt.Fprintf(&buf, "- **%s:** %s\n", rec.Category, rec.Text)
		}
	}

	return buf.Bytes(), nil
}

// validate checks the structural shape a stored report must have before it
// can be rendered.
func validate(report *schema.ComplianceReport) error {
	if strings.TrimSpace(report.ID) == "" {
		return fmt.Errorf("report has no ID")
	}
	if strings.TrimSpace(report.RepoURL) == "" || strings.TrimSpace(report.RepoName) == "" {
		return fmt.Errorf("report has no repository identity")
	}
	if got, want := len(report.Categories), len(schema.CategoryOrder); got != want {
		return fmt.Errorf("report has %d categories, want %d", got, want)
	}
	if got := report.TotalMaxPoints(); got != schema.TotalPoints {
		return fmt.Errorf("category maximums sum to %d, want %d", got, schema.TotalPoints)
	}
	if got := report.SumCategoryScores(); got != report.OverallScore {
		return fmt.Errorf("overall score %d does not match category sum %d", report.OverallScore, got)
	}
	for _, cat := range report.Categories {
		if cat.Score < 0 || cat.Score > cat.MaxPoints {
			return fmt.Errorf("category %s score %d outside [0,%d]", cat.ID, cat.Score, cat.MaxPoints)
		}
	}
	return nil
}
