// Package reportstore persists compliance reports.
package reportstore

import (
	"fmt"
	"sync"
	"time"

	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/schema"
)

// StoreManagerImpl manages the process-wide report store instance.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointer during initialization
	reports      contract.ReportStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetReportStore returns the active ReportStore.
func (mgr *StoreManagerImpl) GetReportStore() contract.ReportStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.reports
}

// Global Manager instance for main logic.
var (
	Manager   = &StoreManagerImpl{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// GetDBFilePath returns the path to the SQLite DB file for report storage.
func GetDBFilePath() string {
	return contract.GetDBFilePath()
}

// InitStores initializes the global store manager with the configured backend.
func InitStores(backend schema.StorageBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		// This function body runs exactly once, even with concurrent calls.
		var store contract.ReportStore
		var err error

		switch backend {
		case schema.MemoryBackend:
			store = NewMemoryStore()
		default:
			store, err = NewSQLStore(backend, connStr)
			if err != nil {
				initErr = fmt.Errorf("failed to initialize report store: %w", err)
				return
			}
		}

		Manager.Lock()
		Manager.reports = store
		Manager.Unlock()
	})

	// After once.Do, initErr will contain any error from the initialization block.
	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() { // called from main before exit
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.reports != nil {
			_ = Manager.reports.Close()
		}
	})
}

// quoteTableName quotes a table name for the given backend.
func quoteTableName(name string, backend schema.StorageBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf("`%s`", name)
	default: // SQLite and PostgreSQL
		return fmt.Sprintf("\"%s\"", name)
	}
}

// formatTime converts a time.Time to the appropriate format for the backend.
func formatTime(t time.Time, backend schema.StorageBackend) any {
	switch backend {
	case schema.SQLiteBackend:
		return t.UTC().Format(time.RFC3339Nano)
	default:
		return t.UTC()
	}
}
