package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/schema"
)

// wellFormedReport builds a report that passes structural validation: ten
// categories in canonical order, budgets intact, score matching the sum.
func wellFormedReport() *schema.ComplianceReport {
	categories := make([]schema.ScoredCategory, 0, len(schema.CategoryOrder))
	overall := 0
	for i, id := range schema.CategoryOrder {
		score := 0
		if i%2 == 0 {
			score = schema.CategoryBudgets[id]
		}
		overall += score
		categories = append(categories, schema.ScoredCategory{
			ID:        id,
			Name:      schema.CategoryNames[id],
			Score:     score,
			MaxPoints: schema.CategoryBudgets[id],
			Checkpoints: []schema.CheckpointOutcome{
				{Description: "first item", Passed: score > 0},
				{Description: "second item", Passed: false, Recommendation: "do the thing"},
			},
		})
	}
	return &schema.ComplianceReport{
		ID:           "11111111-2222-3333-4444-555555555555",
		RepoURL:      "https://github.com/acme/widget",
		RepoName:     "acme/widget",
		OverallScore: overall,
		Categories:   categories,
		Recommendations: []schema.Recommendation{
			{Category: "Documentation & Usability", Text: "Add a README.md at the repository root."},
		},
		CreatedAt: time.Date(2026, 2, 14, 9, 30, 0, 0, time.UTC),
	}
}

func TestMarkdownContainsAllSections(t *testing.T) {
	doc, err := Markdown(wellFormedReport())
	require.NoError(t, err)

	text := string(doc)
	assert.Contains(t, text, "# Repository Compliance Report")
	assert.Contains(t, text, "[acme/widget](https://github.com/acme/widget)")
	assert.Contains(t, text, "`11111111-2222-3333-4444-555555555555`")
	assert.Contains(t, text, "2026-02-14T09:30:00Z")
	assert.Contains(t, text, "## Category Scores")
	assert.Contains(t, text, "## Checkpoints")
	assert.Contains(t, text, "## Recommendations")
	assert.Contains(t, text, "- [x] first item")
	assert.Contains(t, text, "- [ ] second item")
	assert.Contains(t, text, "**Documentation & Usability:** Add a README.md")

	for _, id := range schema.CategoryOrder {
		assert.Contains(t, text, schema.CategoryNames[id])
	}
}

func TestMarkdownIsByteIdentical(t *testing.T) {
	report := wellFormedReport()

	first, err := Markdown(report)
	require.NoError(t, err)
	second, err := Markdown(report)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMarkdownNoRecommendations(t *testing.T) {
	report := wellFormedReport()
	report.Recommendations = nil

	doc, err := Markdown(report)
	require.NoError(t, err)
	assert.Contains(t, string(doc), "No recommendations. Every checkpoint passed.")
}

func TestMarkdownCategoryOrderIsPreserved(t *testing.T) {
	doc, err := Markdown(wellFormedReport())
	require.NoError(t, err)

	text := string(doc)
	last := -1
	for _, id := range schema.CategoryOrder {
		idx := strings.Index(text, "### "+schema.CategoryNames[id])
		require.GreaterOrEqual(t, idx, 0, "category %s missing", id)
		assert.Greater(t, idx, last, "category %s out of order", id)
		last = idx
	}
}

func TestMarkdownRejectsMalformedReports(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *schema.ComplianceReport)
		wantErr string
	}{
		{
			name:    "missing ID",
			mutate:  func(r *schema.ComplianceReport) { r.ID = "  " },
			wantErr: "no ID",
		},
		{
			name:    "missing repository identity",
			mutate:  func(r *schema.ComplianceReport) { r.RepoName = "" },
			wantErr: "repository identity",
		},
		{
			name:    "wrong category count",
			mutate:  func(r *schema.ComplianceReport) { r.Categories = r.Categories[:7] },
			wantErr: "categories",
		},
		{
			name:    "budget tampered",
			mutate:  func(r *schema.ComplianceReport) { r.Categories[0].MaxPoints += 3 },
			wantErr: "maximums sum",
		},
		{
			name:    "overall score mismatch",
			mutate:  func(r *schema.ComplianceReport) { r.OverallScore += 1 },
			wantErr: "does not match category sum",
		},
		{
			name: "category score above maximum",
			mutate: func(r *schema.ComplianceReport) {
				r.Categories[0].Score = r.Categories[0].MaxPoints + 1
				r.Categories[1].Score -= 1
			},
			wantErr: "outside",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report := wellFormedReport()
			tc.mutate(report)

			doc, err := Markdown(report)
			require.Error(t, err)
			assert.Nil(t, doc)
			assert.Contains(t, err.Error(), tc.wantErr)

			var renderErr *contract.RenderError
			require.ErrorAs(t, err, &renderErr)
			assert.Equal(t, report.ID, renderErr.ReportID)
		})
	}
}
