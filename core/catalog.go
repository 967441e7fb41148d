// Package core holds the compliance scoring engine: the checkpoint catalog,
// the evaluator, score aggregation, recommendation collection and the
// command pipelines that tie them together.
package core

import (
	"fmt"

	"github.com/repograde/repograde/schema"
)

// Predicate is a pure pass/fail function of a snapshot.
type Predicate func(*schema.Snapshot) bool

// Checkpoint is one fixed-weight pass/fail rubric item. Checkpoints are
// created once at catalog load and never mutated.
type Checkpoint struct {
	ID             string
	Category       schema.CategoryID
	Points         int
	Description    string
	Recommendation string
	Predicate      Predicate
}

// Catalog is the immutable registry of all rubric checkpoints grouped into
// categories. It is the single source of truth for what is checked and how
// much it is worth. Safe for concurrent reads; never mutated after load.
type Catalog struct {
	checkpoints []Checkpoint
	byCategory  map[schema.CategoryID][]Checkpoint
	maxPoints   map[schema.CategoryID]int
}

// LoadCatalog builds and validates the checkpoint catalog. It fails when
// two checkpoints share an ID, a checkpoint references an unknown category,
// any checkpoint has a negative weight or missing predicate, or a category's
// computed maximum does not match its declared budget. Callers are expected
// to treat a load failure as fatal: the rubric must stay auditable.
func LoadCatalog() (*Catalog, error) {
	return buildCatalog(defaultCheckpoints())
}

// buildCatalog validates the checkpoint table and derives per-category
// maximums. Split from LoadCatalog so tests can feed synthetic tables.
func buildCatalog(checkpoints []Checkpoint) (*Catalog, error) {
	cat := &Catalog{
		checkpoints: checkpoints,
		byCategory:  make(map[schema.CategoryID][]Checkpoint, len(schema.CategoryOrder)),
		maxPoints:   make(map[schema.CategoryID]int, len(schema.CategoryOrder)),
	}

	seen := make(map[string]struct{}, len(checkpoints))
	for _, cp := range checkpoints {
		if cp.ID == "" {
			return nil, fmt.Errorf("checkpoint with empty ID in category %s", cp.Category)
		}
		if _, dup := seen[cp.ID]; dup {
			return nil, fmt.Errorf("duplicate checkpoint ID %s", cp.ID)
		}
		seen[cp.ID] = struct{}{}

		if _, known := schema.CategoryBudgets[cp.Category]; !known {
			return nil, fmt.Errorf("checkpoint %s references unknown category %s", cp.ID, cp.Category)
		}
		if cp.Points < 0 {
			return nil, fmt.Errorf("checkpoint %s has negative weight %d", cp.ID, cp.Points)
		}
		if cp.Predicate == nil {
			return nil, fmt.Errorf("checkpoint %s has no predicate", cp.ID)
		}

		cat.byCategory[cp.Category] = append(cat.byCategory[cp.Category], cp)
		cat.maxPoints[cp.Category] += cp.Points
	}

	total := 0
	for _, id := range schema.CategoryOrder {
		budget := schema.CategoryBudgets[id]
		if got := cat.maxPoints[id]; got != budget {
			return nil, fmt.Errorf("category %s sums to %d points, declared budget is %d", id, got, budget)
		}
		total += budget
	}
	if total != schema.TotalPoints {
		return nil, fmt.Errorf("category budgets sum to %d, want %d", total, schema.TotalPoints)
	}

	return cat, nil
}

// Checkpoints returns all checkpoints in catalog order.
func (c *Catalog) Checkpoints() []Checkpoint {
	return c.checkpoints
}

// CategoryCheckpoints returns the checkpoints of one category, in catalog order.
func (c *Catalog) CategoryCheckpoints(id schema.CategoryID) []Checkpoint {
	return c.byCategory[id]
}

// MaxPoints returns the derived point maximum of a category.
func (c *Catalog) MaxPoints(id schema.CategoryID) int {
	return c.maxPoints[id]
}

// Size returns the number of checkpoints in the catalog.
func (c *Catalog) Size() int {
	return len(c.checkpoints)
}

// Lookup returns the checkpoint with the given ID.
func (c *Catalog) Lookup(id string) (Checkpoint, bool) {
	for _, cp := range c.checkpoints {
		if cp.ID == id {
			return cp, true
		}
	}
	return Checkpoint{}, false
}
