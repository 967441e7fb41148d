package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testSnapshot() *Snapshot {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return &Snapshot{
		RepoURL:   "https://github.com/acme/widget",
		Owner:     "acme",
		Name:      "widget",
		FetchedAt: now,
		PushedAt:  now.Add(-48 * time.Hour),
		Topics:    []string{"cli", "Tooling"},
		Languages: map[string]int{"Go": 9000, "Makefile": 120},
		Files: []string{
			"README.md",
			"LICENSE",
			"Makefile",
			"cmd/widget/main.go",
			"internal/engine/engine.go",
			"internal/engine/engine_test.go",
			".github/workflows/ci.yml",
			"docs/usage.md",
		},
		FileContents: map[string]string{
			"README.md": "# Widget\n\n## Installation\n\nRun `go install`.",
		},
		Workflows: []WorkflowFile{
			{Path: ".github/workflows/ci.yml", Content: "jobs:\n  test:\n    steps:\n      - run: go test ./..."},
		},
		RecentCommits: []CommitInfo{
			{SHA: "abc", Date: now.Add(-24 * time.Hour)},
			{SHA: "def", Date: now.Add(-40 * 24 * time.Hour)},
		},
	}
}

func TestHasFile(t *testing.T) {
	snap := testSnapshot()

	assert.True(t, snap.HasFile("README.md"))
	assert.True(t, snap.HasFile("readme.md"), "matching should be case-insensitive")
	assert.True(t, snap.HasFile("cmd/widget/main.go"))
	assert.False(t, snap.HasFile("CHANGELOG.md"))
}

func TestHasRootFile(t *testing.T) {
	snap := testSnapshot()

	assert.True(t, snap.HasRootFile("README"))
	assert.True(t, snap.HasRootFile("LICENSE"))
	assert.True(t, snap.HasRootFile("Makefile"))
	assert.False(t, snap.HasRootFile("SECURITY"))
	// docs/usage.md must not satisfy a root-level lookup
	assert.False(t, snap.HasRootFile("usage"))
}

func TestMatchGlob(t *testing.T) {
	snap := testSnapshot()

	assert.True(t, snap.MatchGlob("**/*_test.go"))
	assert.True(t, snap.MatchGlob(".github/workflows/*.yml"))
	assert.True(t, snap.MatchGlob("docs/**"))
	assert.False(t, snap.MatchGlob("**/*.rs"))
}

func TestHasDir(t *testing.T) {
	snap := testSnapshot()

	assert.True(t, snap.HasDir("docs"))
	assert.True(t, snap.HasDir("internal/engine"))
	assert.False(t, snap.HasDir("test"))
}

func TestFileContent(t *testing.T) {
	snap := testSnapshot()

	body, ok := snap.FileContent("readme.md")
	assert.True(t, ok)
	assert.Contains(t, body, "Installation")

	_, ok = snap.FileContent("LICENSE")
	assert.False(t, ok, "only targeted files have bodies")

	assert.True(t, snap.ReadmeContains("installation"))
	assert.False(t, snap.ReadmeContains("docker"))
}

func TestAnyWorkflowContains(t *testing.T) {
	snap := testSnapshot()

	assert.True(t, snap.AnyWorkflowContains("go test"))
	assert.False(t, snap.AnyWorkflowContains("docker build"))
}

func TestCommitsSince(t *testing.T) {
	snap := testSnapshot()

	assert.Equal(t, 1, snap.CommitsSince(7*24*time.Hour))
	assert.Equal(t, 2, snap.CommitsSince(90*24*time.Hour))
	assert.Equal(t, 0, snap.CommitsSince(time.Hour))
}

func TestDaysSincePush(t *testing.T) {
	snap := testSnapshot()
	assert.InDelta(t, 2.0, snap.DaysSincePush(), 0.01)

	empty := &Snapshot{FetchedAt: snap.FetchedAt}
	assert.Equal(t, -1.0, empty.DaysSincePush())
}

func TestPrimaryLanguage(t *testing.T) {
	snap := testSnapshot()
	assert.Equal(t, "Go", snap.PrimaryLanguage())
	assert.Equal(t, "", (&Snapshot{}).PrimaryLanguage())
}

func TestHasTopic(t *testing.T) {
	snap := testSnapshot()
	assert.True(t, snap.HasTopic("cli"))
	assert.True(t, snap.HasTopic("tooling"), "topic matching should ignore case")
	assert.False(t, snap.HasTopic("security"))
}
