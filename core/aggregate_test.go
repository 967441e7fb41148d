package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repograde/repograde/schema"
)

func TestAggregateAllFailing(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	results := Evaluate(&schema.Snapshot{}, catalog)
	for i := range results {
		results[i].Passed = false
	}

	categories, overall := Aggregate(results, catalog)
	assert.Equal(t, 0, overall)
	require.Len(t, categories, len(schema.CategoryOrder))
	for i, sc := range categories {
		assert.Equal(t, schema.CategoryOrder[i], sc.ID)
		assert.Equal(t, schema.CategoryNames[sc.ID], sc.Name)
		assert.Equal(t, 0, sc.Score)
		assert.Equal(t, catalog.MaxPoints(sc.ID), sc.MaxPoints)
		assert.Len(t, sc.Checkpoints, len(catalog.CategoryCheckpoints(sc.ID)))
	}
}

func TestAggregateAllPassing(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	results := Evaluate(&schema.Snapshot{}, catalog)
	for i := range results {
		results[i].Passed = true
	}

	categories, overall := Aggregate(results, catalog)
	assert.Equal(t, schema.TotalPoints, overall)
	for _, sc := range categories {
		assert.Equal(t, sc.MaxPoints, sc.Score, "category %s", sc.ID)
		for _, cp := range sc.Checkpoints {
			assert.True(t, cp.Passed)
			assert.Empty(t, cp.Recommendation)
		}
	}
}

func TestAggregatePartialScores(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	// Pass exactly the two double-weight license checkpoints.
	results := Evaluate(&schema.Snapshot{}, catalog)
	for i := range results {
		id := results[i].CheckpointID
		results[i].Passed = id == "license.file" || id == "license.detected"
	}

	categories, overall := Aggregate(results, catalog)
	assert.Equal(t, 4, overall)
	for _, sc := range categories {
		if sc.ID == schema.LicenseCategory {
			assert.Equal(t, 4, sc.Score)
			continue
		}
		assert.Equal(t, 0, sc.Score, "category %s", sc.ID)
	}
}

func TestAggregateOverallIsCategorySum(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)

	// Alternate pass/fail to get an arbitrary mid-range distribution.
	results := Evaluate(&schema.Snapshot{}, catalog)
	for i := range results {
		results[i].Passed = i%2 == 0
	}

	categories, overall := Aggregate(results, catalog)
	sum := 0
	for _, sc := range categories {
		assert.GreaterOrEqual(t, sc.Score, 0)
		assert.LessOrEqual(t, sc.Score, sc.MaxPoints)
		sum += sc.Score
	}
	assert.Equal(t, sum, overall)
}
