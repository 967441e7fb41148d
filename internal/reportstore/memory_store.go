package reportstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/schema"
)

// MemoryStore is an in-process ReportStore. Reports live only for the
// lifetime of the process. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	reports map[string]*schema.ComplianceReport
}

var _ contract.ReportStore = &MemoryStore{} // Compile-time check

// NewMemoryStore creates an empty in-memory report store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]*schema.ComplianceReport)}
}

// Save persists a report. Saving an ID that already exists is an error.
func (ms *MemoryStore) Save(_ context.Context, report *schema.ComplianceReport) error {
	if report == nil || report.ID == "" {
		return fmt.Errorf("report must have an ID before saving")
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.reports[report.ID]; ok {
		return fmt.Errorf("%w: %s", contract.ErrDuplicateReportID, report.ID)
	}
	ms.reports[report.ID] = report
	return nil
}

// Get returns the report with the given ID.
func (ms *MemoryStore) Get(_ context.Context, id string) (*schema.ComplianceReport, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	report, ok := ms.reports[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", contract.ErrReportNotFound, id)
	}
	return report, nil
}

// List returns all stored reports, newest first.
func (ms *MemoryStore) List(_ context.Context) ([]*schema.ComplianceReport, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	results := make([]*schema.ComplianceReport, 0, len(ms.reports))
	for _, report := range ms.reports {
		results = append(results, report)
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].ID > results[j].ID
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

// Close is a no-op for the in-memory store.
func (ms *MemoryStore) Close() error {
	return nil
}

// GetStatus returns status information about the memory store.
func (ms *MemoryStore) GetStatus() (schema.StoreStatus, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	status := schema.StoreStatus{
		Backend:      string(schema.MemoryBackend),
		Connected:    true,
		TotalReports: int64(len(ms.reports)),
	}
	for _, report := range ms.reports {
		if status.OldestTime.IsZero() || report.CreatedAt.Before(status.OldestTime) {
			status.OldestTime = report.CreatedAt
		}
		if report.CreatedAt.After(status.LastReportTime) {
			status.LastReportTime = report.CreatedAt
			status.LastReportID = report.ID
		}
	}
	return status, nil
}
