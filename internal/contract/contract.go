// Package contract provides interfaces, configuration and shared utilities
// for the repograde CLI's internal architecture.
package contract

import (
	"context"

	"github.com/repograde/repograde/schema"
)

// SnapshotFetcher retrieves a point-in-time view of a repository's
// externally visible state. Implementations perform outbound reads only and
// leave no process-wide state. A non-nil snapshot is always complete: a
// fetch that fails partway returns a nil snapshot and an error.
type SnapshotFetcher interface {
	Fetch(ctx context.Context, owner, name string) (*schema.Snapshot, error)
}

// ReportStore persists immutable compliance reports keyed by ID. The store
// is append-only: no update or delete operation exists. Implementations must
// support concurrent saves from multiple in-flight checks.
type ReportStore interface {
	// Save persists a report. The report ID must already be assigned by the
	// caller; saving an ID that already exists is an error.
	Save(ctx context.Context, report *schema.ComplianceReport) error

	// Get returns the report with the given ID, or ErrReportNotFound.
	Get(ctx context.Context, id string) (*schema.ComplianceReport, error)

	// List returns all stored reports, newest first. Diagnostic use only.
	List(ctx context.Context) ([]*schema.ComplianceReport, error)

	// GetStatus returns diagnostic information about the store.
	GetStatus() (schema.StoreStatus, error)

	// Close releases store resources. Idempotent.
	Close() error
}

// StoreManager hands out the report store. This allows the persistence
// layer to be mocked for testing.
type StoreManager interface {
	GetReportStore() ReportStore
}
