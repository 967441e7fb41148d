package core

import "github.com/repograde/repograde/schema"

// Aggregate folds checkpoint results into per-category scores and the
// overall score. Categories come out in catalog order, never re-sorted by
// score, so consumers see a stable shape regardless of results. Each
// category's checkpoint list covers every catalog checkpoint of that
// category, passing or not.
func Aggregate(results []schema.CheckpointResult, catalog *Catalog) ([]schema.ScoredCategory, int) {
	passed := make(map[string]bool, len(results))
	for _, r := range results {
		passed[r.CheckpointID] = r.Passed
	}

	categories := make([]schema.ScoredCategory, 0, len(schema.CategoryOrder))
	overall := 0
	for _, id := range schema.CategoryOrder {
		scored := schema.ScoredCategory{
			ID:        id,
			Name:      schema.CategoryNames[id],
			MaxPoints: catalog.MaxPoints(id),
		}
		for _, cp := range catalog.CategoryCheckpoints(id) {
			outcome := schema.CheckpointOutcome{
				Description: cp.Description,
				Passed:      passed[cp.ID],
			}
			if passed[cp.ID] {
				scored.Score += cp.Points
			} else {
				outcome.Recommendation = cp.Recommendation
			}
			scored.Checkpoints = append(scored.Checkpoints, outcome)
		}
		overall += scored.Score
		categories = append(categories, scored)
	}
	return categories, overall
}
