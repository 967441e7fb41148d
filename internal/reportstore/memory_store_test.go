package reportstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testReport builds a minimal report for store tests.
func testReport(id string, createdAt time.Time) *schema.ComplianceReport {
	return &schema.ComplianceReport{
		ID:           id,
		RepoURL:      "https://github.com/acme/widget",
		RepoName:     "acme/widget",
		OverallScore: 42,
		Categories: []schema.ScoredCategory{
			{ID: schema.DocsCategory, Name: "Documentation", Score: 4, MaxPoints: 10},
		},
		CreatedAt: createdAt,
	}
}

func TestMemoryStoreSaveAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	report := testReport("r-1", time.Now().UTC())
	require.NoError(t, store.Save(ctx, report))

	got, err := store.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, report.RepoName, got.RepoName)
	assert.Equal(t, report.OverallScore, got.OverallScore)
}

func TestMemoryStoreDuplicateID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testReport("r-1", time.Now().UTC())))
	err := store.Save(ctx, testReport("r-1", time.Now().UTC()))
	assert.ErrorIs(t, err, contract.ErrDuplicateReportID)
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, contract.ErrReportNotFound)
}

func TestMemoryStoreSaveRequiresID(t *testing.T) {
	store := NewMemoryStore()
	err := store.Save(context.Background(), &schema.ComplianceReport{})
	assert.Error(t, err)
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, testReport("r-old", base)))
	require.NoError(t, store.Save(ctx, testReport("r-mid", base.Add(time.Hour))))
	require.NoError(t, store.Save(ctx, testReport("r-new", base.Add(2*time.Hour))))

	reports, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 3)
	assert.Equal(t, "r-new", reports[0].ID)
	assert.Equal(t, "r-mid", reports[1].ID)
	assert.Equal(t, "r-old", reports[2].ID)
}

func TestMemoryStoreConcurrentSaves(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("r-%d", n)
			assert.NoError(t, store.Save(ctx, testReport(id, time.Now().UTC())))
		}(i)
	}
	wg.Wait()

	reports, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, reports, 20)
}

func TestMemoryStoreStatus(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, testReport("r-old", base)))
	require.NoError(t, store.Save(ctx, testReport("r-new", base.Add(time.Hour))))

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(2), status.TotalReports)
	assert.Equal(t, "r-new", status.LastReportID)
	assert.Equal(t, base, status.OldestTime)
}
