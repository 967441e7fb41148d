package core

import (
	"fmt"

	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/schema"
)

// Evaluate runs every catalog predicate against the snapshot and returns one
// result per checkpoint, preserving catalog order. A predicate that panics
// (a missing signal for an unusual repository shape, an overly specific
// rule) marks only its own checkpoint as not passed; evaluation of all
// other checkpoints continues. Missing signals are normal input here, not
// exceptional.
func Evaluate(snap *schema.Snapshot, catalog *Catalog) []schema.CheckpointResult {
	results := make([]schema.CheckpointResult, 0, catalog.Size())
	for _, cp := range catalog.Checkpoints() {
		results = append(results, schema.CheckpointResult{
			CheckpointID: cp.ID,
			Category:     cp.Category,
			Passed:       runPredicate(snap, cp),
		})
	}
	return results
}

// runPredicate invokes one predicate with panic recovery. The recovered
// panic is logged as a maintenance signal for catalog authors and the
// checkpoint counts as not passed.
func runPredicate(snap *schema.Snapshot, cp Checkpoint) (passed bool) {
	defer func() {
		if r := recover(); r != nil {
			contract.LogWarn(
				fmt.Sprintf("checkpoint %s predicate failed, counting as not passed", cp.ID),
				fmt.Errorf("%v", r))
			passed = false
		}
	}()
	return cp.Predicate(snap)
}
