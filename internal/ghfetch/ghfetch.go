// Package ghfetch captures repository snapshots from the GitHub REST API.
package ghfetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/schema"
)

// DefaultAPIBaseURL is the public GitHub REST endpoint.
const DefaultAPIBaseURL = "https://api.github.com"

// maxTargetedFiles caps how many file bodies a single snapshot pulls down.
const maxTargetedFiles = 40

// Fetcher builds snapshots by combining several REST calls per repository.
type Fetcher struct {
	client  *http.Client
	baseURL string
	token   string
	workers int
	retries int
}

var _ contract.SnapshotFetcher = &Fetcher{} // Compile-time check

// NewFetcher creates a snapshot fetcher from the runtime configuration.
func NewFetcher(cfg *contract.Config) *Fetcher {
	baseURL := cfg.APIBaseURL
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	workers := cfg.FetchWorkers
	if workers <= 0 {
		workers = contract.DefaultFetchWorkers
	}
	retries := cfg.RetryLimit
	if retries <= 0 {
		retries = contract.DefaultRetryLimit
	}
	return &Fetcher{
		client:  &http.Client{},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   cfg.APIToken,
		workers: workers,
		retries: retries,
	}
}

// Fetch captures a complete snapshot of one repository. The repository
// metadata call runs first so a missing repository fails fast; the remaining
// calls run through a bounded worker pool. Any failure discards the whole
// snapshot, so callers never see a partially populated one.
func (f *Fetcher) Fetch(ctx context.Context, owner, name string) (*schema.Snapshot, error) {
	meta, err := f.fetchRepoMeta(ctx, owner, name)
	if err != nil {
		return nil, err
	}

	snap := meta.toSnapshot(owner, name)
	snap.FetchedAt = time.Now().UTC()

	tasks := []func() error{
		func() error {
			files, err := f.fetchTree(ctx, owner, name, snap.DefaultBranch)
			if err != nil {
				return err
			}
			snap.Files = files
			return nil
		},
		func() error {
			langs, err := f.fetchLanguages(ctx, owner, name)
			if err != nil {
				return err
			}
			snap.Languages = langs
			return nil
		},
		func() error {
			commits, err := f.fetchCommits(ctx, owner, name)
			if err != nil {
				return err
			}
			snap.RecentCommits = commits
			return nil
		},
		func() error {
			releases, err := f.fetchReleases(ctx, owner, name)
			if err != nil {
				return err
			}
			snap.Releases = releases
			return nil
		},
		func() error {
			count, err := f.fetchContributorCount(ctx, owner, name)
			if err != nil {
				return err
			}
			snap.Contributors = count
			return nil
		},
		func() error {
			protected, err := f.fetchBranchProtection(ctx, owner, name, snap.DefaultBranch)
			if err != nil {
				return err
			}
			snap.BranchProtection = protected
			return nil
		},
	}
	if err := f.runTasks(tasks); err != nil {
		return nil, err
	}

	// File bodies depend on the tree listing, so this phase runs second.
	if err := f.fetchTargetedContents(ctx, owner, name, snap); err != nil {
		return nil, err
	}

	return snap, nil
}

// runTasks executes independent fetch tasks through a bounded worker pool
// and returns the first error, if any. Each task writes a distinct snapshot
// field, so no locking is needed.
func (f *Fetcher) runTasks(tasks []func() error) error {
	taskCh := make(chan func() error, len(tasks))
	errCh := make(chan error, len(tasks))
	var wg sync.WaitGroup

	workers := min(f.workers, len(tasks))
	for range workers {
		wg.Go(func() {
			for task := range taskCh {
				if err := task(); err != nil {
					errCh <- err
				}
			}
		})
	}

	for _, task := range tasks {
		taskCh <- task
	}
	close(taskCh)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		if err != nil {
			return err
		}
	}
	return nil
}

// fetchTargetedContents pulls down the bodies of policy-relevant files plus
// all CI workflow definitions. Files that vanish between the tree listing
// and the content fetch are skipped rather than failing the snapshot.
func (f *Fetcher) fetchTargetedContents(ctx context.Context, owner, name string, snap *schema.Snapshot) error {
	var targets []string
	for _, path := range snap.Files {
		if isTargetPath(path) {
			targets = append(targets, path)
			if len(targets) >= maxTargetedFiles {
				break
			}
		}
	}

	contents := make(map[string]string, len(targets))
	var mu sync.Mutex

	tasks := make([]func() error, 0, len(targets))
	for _, path := range targets {
		tasks = append(tasks, func() error {
			body, found, err := f.fetchFileContent(ctx, owner, name, path)
			if err != nil {
				return err
			}
			if !found {
				return nil
			}
			mu.Lock()
			contents[path] = body
			mu.Unlock()
			return nil
		})
	}
	if err := f.runTasks(tasks); err != nil {
		return err
	}

	snap.FileContents = contents
	for path, body := range contents {
		if isWorkflowPath(path) {
			snap.Workflows = append(snap.Workflows, schema.WorkflowFile{Path: path, Content: body})
		}
	}
	return nil
}

// targetStems are root-level file stems worth pulling bodies for,
// compared case-insensitively with the extension stripped.
var targetStems = map[string]struct{}{
	"readme":                   {},
	"license":                  {},
	"licence":                  {},
	"copying":                  {},
	"security":                 {},
	"contributing":             {},
	"code_of_conduct":          {},
	"codeowners":               {},
	"changelog":                {},
	"citation":                 {},
	"governance":               {},
	"support":                  {},
	"makefile":                 {},
	"dockerfile":               {},
	"go.mod":                   {},
	"go.sum":                   {},
	"package.json":             {},
	"pyproject.toml":           {},
	"requirements.txt":         {},
	"cargo.toml":               {},
	"pom.xml":                  {},
	"build.gradle":             {},
	"gemfile":                  {},
	".editorconfig":            {},
	".gitignore":               {},
	".golangci.yml":            {},
	".pre-commit-config.yaml":  {},
}

// targetExactPaths are non-root paths worth pulling bodies for.
var targetExactPaths = map[string]struct{}{
	".github/codeowners":               {},
	".github/security.md":              {},
	".github/contributing.md":          {},
	".github/code_of_conduct.md":       {},
	".github/dependabot.yml":           {},
	".github/dependabot.yaml":          {},
	".github/funding.yml":              {},
	".github/pull_request_template.md": {},
	"docs/codeowners":                  {},
	"renovate.json":                    {},
	".renovaterc.json":                 {},
}

// isTargetPath reports whether a tree path should have its body fetched.
func isTargetPath(path string) bool {
	lower := strings.ToLower(path)
	if isWorkflowPath(lower) {
		return true
	}
	if _, ok := targetExactPaths[lower]; ok {
		return true
	}
	if strings.Contains(lower, "/") {
		return false
	}
	if _, ok := targetStems[lower]; ok {
		return true
	}
	if idx := strings.LastIndex(lower, "."); idx > 0 {
		if _, ok := targetStems[lower[:idx]]; ok {
			return true
		}
	}
	return false
}

// isWorkflowPath reports whether a path is a CI workflow definition.
func isWorkflowPath(path string) bool {
	lower := strings.ToLower(path)
	if !strings.HasPrefix(lower, ".github/workflows/") {
		return false
	}
	return strings.HasSuffix(lower, ".yml") || strings.HasSuffix(lower, ".yaml")
}

// repoPath builds a /repos/{owner}/{name} API path suffix.
func repoPath(owner, name string, parts ...string) string {
	path := fmt.Sprintf("/repos/%s/%s", owner, name)
	if len(parts) > 0 {
		path += "/" + strings.Join(parts, "/")
	}
	return path
}
