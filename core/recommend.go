package core

import "github.com/repograde/repograde/schema"

// CollectRecommendations derives actionable text for failing checkpoints.
// Ordering is category order first, then checkpoint order within the
// category. Passing checkpoints never produce a recommendation, and neither
// do failing checkpoints whose catalog entry carries no template. An
// all-passing evaluation yields an empty list.
func CollectRecommendations(results []schema.CheckpointResult, catalog *Catalog) []schema.Recommendation {
	passed := make(map[string]bool, len(results))
	for _, r := range results {
		passed[r.CheckpointID] = r.Passed
	}

	var recs []schema.Recommendation
	for _, id := range schema.CategoryOrder {
		for _, cp := range catalog.CategoryCheckpoints(id) {
			if passed[cp.ID] || cp.Recommendation == "" {
				continue
			}
			recs = append(recs, schema.Recommendation{
				Category: schema.CategoryNames[id],
				Text:     cp.Recommendation,
			})
		}
	}
	return recs
}
