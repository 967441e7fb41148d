// Package schema has models, enums and shared helpers for all parts of repograde.
package schema

import "time"

// Snapshot is a normalized, point-in-time capture of a repository's
// externally visible state. It is the sole input to evaluation: owned by one
// check request, discarded after use, never persisted. Live data can change
// between fetches, so two snapshots of the same repository are not expected
// to be identical.
type Snapshot struct {
	RepoURL     string // Canonical https://github.com/<owner>/<name> URL
	Owner       string // Repository owner or organization login
	Name        string // Repository name
	Description string // Short description from repository metadata
	Homepage    string // Homepage URL, if set

	Stars      int      // Stargazer count
	Forks      int      // Fork count
	Watchers   int      // Subscriber count
	OpenIssues int      // Open issues and pull requests
	Topics     []string // Repository topics

	LicenseSPDX   string // SPDX identifier of the detected license, e.g. "MIT"
	DefaultBranch string // Name of the default branch
	SizeKB        int    // Repository size in kilobytes

	Archived         bool // Repository is archived (read-only)
	IsFork           bool // Repository is a fork
	IssuesEnabled    bool // Issue tracker is enabled
	HasWiki          bool // Wiki is enabled
	HasPages         bool // GitHub Pages is enabled
	HasDiscussions   bool // Discussions are enabled
	BranchProtection bool // Default branch has a protection rule

	CreatedAt time.Time // Repository creation time
	PushedAt  time.Time // Most recent push to any branch
	FetchedAt time.Time // When this snapshot was captured; reference point for recency checks

	Languages     map[string]int    // Language name to byte count
	Files         []string          // All paths on the default branch (recursive tree)
	FileContents  map[string]string // Bodies of the targeted files that were fetched
	Workflows     []WorkflowFile    // CI workflow definitions under .github/workflows
	RecentCommits []CommitInfo      // Most recent commits on the default branch, newest first
	Releases      []ReleaseInfo     // Most recent releases, newest first
	Contributors  int               // Distinct contributor count

	pathIndex map[string]struct{} // Lazily built lowercase path index
}

// WorkflowFile is one CI workflow definition found in the repository.
type WorkflowFile struct {
	Path    string // Path within the repository
	Content string // Raw YAML content
}

// CommitInfo is a single recent commit on the default branch.
type CommitInfo struct {
	SHA     string
	Message string
	Author  string
	Date    time.Time
}

// ReleaseInfo is a single published release.
type ReleaseInfo struct {
	TagName     string
	Name        string
	Prerelease  bool
	PublishedAt time.Time
}
