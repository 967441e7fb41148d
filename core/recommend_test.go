package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repograde/repograde/schema"
)

func TestCollectRecommendationsAllPassing(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	results := Evaluate(&schema.Snapshot{}, catalog)
	for i := range results {
		results[i].Passed = true
	}

	assert.Empty(t, CollectRecommendations(results, catalog))
}

func TestCollectRecommendationsOrderAndTemplates(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	results := Evaluate(&schema.Snapshot{}, catalog)
	for i := range results {
		results[i].Passed = false
	}

	recs := CollectRecommendations(results, catalog)

	// Two catalog entries deliberately carry no template, so a total
	// failure yields two fewer recommendations than checkpoints.
	templated := 0
	for _, cp := range catalog.Checkpoints() {
		if cp.Recommendation != "" {
			templated++
		}
	}
	assert.Equal(t, catalog.Size()-2, templated)
	require.Len(t, recs, templated)

	// Category order first, checkpoint order within.
	var wantOrder []string
	for _, id := range schema.CategoryOrder {
		for _, cp := range catalog.CategoryCheckpoints(id) {
			if cp.Recommendation != "" {
				wantOrder = append(wantOrder, cp.Recommendation)
			}
		}
	}
	for i, rec := range recs {
		assert.Equal(t, wantOrder[i], rec.Text)
		assert.NotEmpty(t, rec.Category)
	}
}

func TestCollectRecommendationsSkipsPassing(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	results := Evaluate(&schema.Snapshot{}, catalog)
	for i := range results {
		results[i].Passed = results[i].CheckpointID != "docs.readme"
	}

	recs := CollectRecommendations(results, catalog)
	require.Len(t, recs, 1)
	assert.Equal(t, schema.CategoryNames[schema.DocsCategory], recs[0].Category)
	assert.Contains(t, recs[0].Text, "README")
}
