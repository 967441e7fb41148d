package schema

import "time"

// CheckpointResult is the outcome of evaluating one catalog checkpoint
// against a snapshot. One per checkpoint per evaluation, in catalog order.
type CheckpointResult struct {
	CheckpointID string
	Category     CategoryID
	Passed       bool
}

// CheckpointOutcome is the persisted view of one checkpoint inside a report
// category. Recommendation is empty for passing checkpoints.
type CheckpointOutcome struct {
	Description    string `json:"description"`
	Passed         bool   `json:"passed"`
	Recommendation string `json:"recommendation,omitempty"`
}

// ScoredCategory is one category's score within a report. Checkpoints always
// cover every catalog checkpoint of the category, passing or not.
type ScoredCategory struct {
	ID          CategoryID          `json:"id"`
	Name        string              `json:"name"`
	Score       int                 `json:"score"`
	MaxPoints   int                 `json:"max_points"`
	Checkpoints []CheckpointOutcome `json:"checkpoints"`
}

// Recommendation is actionable text derived from a failing checkpoint.
type Recommendation struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// ComplianceReport is the immutable, persisted result of one complete
// evaluation run. Created exactly once per completed check; never updated or
// deleted in place. Re-checking the same repository produces a new report
// with a new ID.
type ComplianceReport struct {
	ID              string           `json:"id"`
	RepoURL         string           `json:"repo_url"`
	RepoName        string           `json:"repo_name"`
	OverallScore    int              `json:"overall_score"`
	Categories      []ScoredCategory `json:"categories"`
	Recommendations []Recommendation `json:"recommendations"`
	CreatedAt       time.Time        `json:"created_at"`
}

// StoreStatus holds diagnostic information about the report store.
type StoreStatus struct {
	Backend        string
	Connected      bool
	TotalReports   int64
	LastReportID   string
	LastReportTime time.Time
	OldestTime     time.Time
}

// TotalMaxPoints sums the category budgets recorded in the report. Always
// equals TotalPoints for a well-formed report.
func (r *ComplianceReport) TotalMaxPoints() int {
	total := 0
	for _, c := range r.Categories {
		total += c.MaxPoints
	}
	return total
}

// SumCategoryScores sums the per-category scores recorded in the report.
// Always equals OverallScore for a well-formed report.
func (r *ComplianceReport) SumCategoryScores() int {
	total := 0
	for _, c := range r.Categories {
		total += c.Score
	}
	return total
}
