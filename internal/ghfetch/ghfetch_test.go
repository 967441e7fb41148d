package ghfetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/repograde/repograde/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestFetcher points a fetcher at a local test server.
func newTestFetcher(t *testing.T, handler http.Handler) *Fetcher {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewFetcher(&contract.Config{
		APIBaseURL:   server.URL,
		FetchWorkers: 2,
		RetryLimit:   1,
	})
}

// stubRepoMux serves a minimal but complete set of repository endpoints.
func stubRepoMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/acme/widget", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{
			"description": "A fine widget",
			"stargazers_count": 120,
			"forks_count": 7,
			"subscribers_count": 9,
			"open_issues_count": 3,
			"topics": ["go", "widgets"],
			"default_branch": "main",
			"size": 512,
			"has_issues": true,
			"has_wiki": true,
			"license": {"spdx_id": "MIT"},
			"created_at": "2020-01-02T00:00:00Z",
			"pushed_at": "2025-06-01T00:00:00Z"
		}`)
	})
	mux.HandleFunc("/repos/acme/widget/git/trees/main", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"truncated": false, "tree": [
			{"path": "README.md", "type": "blob"},
			{"path": "LICENSE", "type": "blob"},
			{"path": "internal", "type": "tree"},
			{"path": "internal/widget.go", "type": "blob"},
			{"path": ".github/workflows/ci.yml", "type": "blob"}
		]}`)
	})
	mux.HandleFunc("/repos/acme/widget/languages", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"Go": 12345}`)
	})
	mux.HandleFunc("/repos/acme/widget/commits", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"sha": "abc123", "commit": {"message": "fix widget", "author": {"name": "Dev", "date": "2025-05-30T12:00:00Z"}}}]`)
	})
	mux.HandleFunc("/repos/acme/widget/releases", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"tag_name": "v1.0.0", "name": "First", "prerelease": false, "published_at": "2025-05-01T00:00:00Z"}]`)
	})
	mux.HandleFunc("/repos/acme/widget/contributors", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `[{"login": "dev1"}, {"login": "dev2"}]`)
	})
	mux.HandleFunc("/repos/acme/widget/branches/main/protection", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/repos/acme/widget/contents/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/acme/widget/contents/README.md":
			fmt.Fprint(w, "# Widget\n\nInstall with go get.")
		case "/repos/acme/widget/contents/LICENSE":
			fmt.Fprint(w, "MIT License")
		case "/repos/acme/widget/contents/.github/workflows/ci.yml":
			fmt.Fprint(w, "on: push\njobs: {}")
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	return mux
}

func TestFetchBuildsCompleteSnapshot(t *testing.T) {
	fetcher := newTestFetcher(t, stubRepoMux())

	snap, err := fetcher.Fetch(context.Background(), "acme", "widget")
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, "https://github.com/acme/widget", snap.RepoURL)
	assert.Equal(t, 120, snap.Stars)
	assert.Equal(t, "MIT", snap.LicenseSPDX)
	assert.Equal(t, "main", snap.DefaultBranch)
	assert.False(t, snap.BranchProtection)
	assert.False(t, snap.FetchedAt.IsZero())

	assert.Len(t, snap.Files, 4) // blobs only, trees excluded
	assert.Equal(t, 12345, snap.Languages["Go"])
	require.Len(t, snap.RecentCommits, 1)
	assert.Equal(t, "abc123", snap.RecentCommits[0].SHA)
	require.Len(t, snap.Releases, 1)
	assert.Equal(t, "v1.0.0", snap.Releases[0].TagName)
	assert.Equal(t, 2, snap.Contributors)

	assert.Contains(t, snap.FileContents, "README.md")
	assert.Contains(t, snap.FileContents, "LICENSE")
	require.Len(t, snap.Workflows, 1)
	assert.Equal(t, ".github/workflows/ci.yml", snap.Workflows[0].Path)
}

func TestFetchRepoNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	fetcher := newTestFetcher(t, mux)

	snap, err := fetcher.Fetch(context.Background(), "acme", "gone")
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, contract.ErrRepoNotFound)
	assert.ErrorIs(t, err, contract.ErrUpstreamUnavailable)
}

func TestFetchRateLimited(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	})
	fetcher := newTestFetcher(t, mux)

	snap, err := fetcher.Fetch(context.Background(), "acme", "widget")
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, contract.ErrRateLimited)
	assert.ErrorIs(t, err, contract.ErrUpstreamUnavailable)
}

func TestFetchNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // refuse all connections

	fetcher := NewFetcher(&contract.Config{
		APIBaseURL: server.URL,
		RetryLimit: 1,
	})

	snap, err := fetcher.Fetch(context.Background(), "acme", "widget")
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, contract.ErrNetwork)
}

func TestFetchRetriesServerErrors(t *testing.T) {
	attempts := 0
	mux := stubRepoMux()
	wrapped := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/acme/widget" {
			attempts++
			if attempts == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}
		mux.ServeHTTP(w, r)
	})
	fetcher := newTestFetcher(t, wrapped)

	snap, err := fetcher.Fetch(context.Background(), "acme", "widget")
	require.NoError(t, err)
	assert.NotNil(t, snap)
	assert.Equal(t, 2, attempts)
}

func TestFetchSendsAuthHeader(t *testing.T) {
	var gotAuth string
	mux := stubRepoMux()
	wrapped := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/acme/widget" {
			gotAuth = r.Header.Get("Authorization")
		}
		mux.ServeHTTP(w, r)
	})
	server := httptest.NewServer(wrapped)
	t.Cleanup(server.Close)

	fetcher := NewFetcher(&contract.Config{
		APIBaseURL: server.URL,
		APIToken:   "tok123",
		RetryLimit: 1,
	})
	_, err := fetcher.Fetch(context.Background(), "acme", "widget")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestIsTargetPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"README.md", true},
		{"readme.rst", true},
		{"LICENSE", true},
		{"SECURITY.md", true},
		{"go.mod", true},
		{"Makefile", true},
		{".github/workflows/ci.yml", true},
		{".github/dependabot.yml", true},
		{"renovate.json", true},
		{"internal/widget.go", false},
		{"docs/readme.md", false},
		{"main.go", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isTargetPath(tt.path))
		})
	}
}

func TestIsWorkflowPath(t *testing.T) {
	assert.True(t, isWorkflowPath(".github/workflows/ci.yml"))
	assert.True(t, isWorkflowPath(".github/workflows/release.yaml"))
	assert.False(t, isWorkflowPath(".github/workflows/notes.txt"))
	assert.False(t, isWorkflowPath("workflows/ci.yml"))
}
