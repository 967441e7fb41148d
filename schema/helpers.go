package schema

import (
	"path"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// ensureIndex builds the lowercase path index on first use. Evaluation of a
// snapshot is single-goroutine, so no locking is needed here.
func (s *Snapshot) ensureIndex() {
	if s.pathIndex != nil {
		return
	}
	s.pathIndex = make(map[string]struct{}, len(s.Files))
	for _, f := range s.Files {
		s.pathIndex[strings.ToLower(f)] = struct{}{}
	}
}

// HasFile reports whether the exact path exists in the tree. Matching is
// case-insensitive since hosting platforms preserve but do not require case.
func (s *Snapshot) HasFile(p string) bool {
	s.ensureIndex()
	_, ok := s.pathIndex[strings.ToLower(p)]
	return ok
}

// HasAnyFile reports whether any of the given paths exists in the tree.
func (s *Snapshot) HasAnyFile(paths ...string) bool {
	for _, p := range paths {
		if s.HasFile(p) {
			return true
		}
	}
	return false
}

// HasRootFile reports whether a root-level file with the given stem exists,
// with or without an extension. HasRootFile("README") matches README,
// README.md and readme.rst but not docs/README.md.
func (s *Snapshot) HasRootFile(stem string) bool {
	stem = strings.ToLower(stem)
	for _, f := range s.Files {
		lower := strings.ToLower(f)
		if strings.Contains(lower, "/") {
			continue
		}
		base := strings.TrimSuffix(lower, path.Ext(lower))
		if base == stem {
			return true
		}
	}
	return false
}

// MatchGlob reports whether any path in the tree matches the doublestar
// pattern, e.g. "**/*_test.go" or "docs/**". Patterns are matched
// case-insensitively.
func (s *Snapshot) MatchGlob(pattern string) bool {
	pattern = strings.ToLower(pattern)
	for _, f := range s.Files {
		if ok, err := doublestar.Match(pattern, strings.ToLower(f)); err == nil && ok {
			return true
		}
	}
	return false
}

// HasDir reports whether any path lives under the given directory prefix.
func (s *Snapshot) HasDir(dir string) bool {
	prefix := strings.ToLower(strings.TrimSuffix(dir, "/")) + "/"
	for _, f := range s.Files {
		if strings.HasPrefix(strings.ToLower(f), prefix) {
			return true
		}
	}
	return false
}

// FileContent returns the fetched body of a targeted file. The lookup is
// case-insensitive on the path. Only files the fetcher targeted are present.
func (s *Snapshot) FileContent(p string) (string, bool) {
	if body, ok := s.FileContents[p]; ok {
		return body, true
	}
	lower := strings.ToLower(p)
	for k, body := range s.FileContents {
		if strings.ToLower(k) == lower {
			return body, true
		}
	}
	return "", false
}

// ContentContains reports whether the fetched body of the given file
// contains the substring, case-insensitively. Returns false when the file
// body was not fetched.
func (s *Snapshot) ContentContains(p, substr string) bool {
	body, ok := s.FileContent(p)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(body), strings.ToLower(substr))
}

// ReadmeContent returns the body of the root README, if one was fetched.
func (s *Snapshot) ReadmeContent() (string, bool) {
	for k, body := range s.FileContents {
		lower := strings.ToLower(k)
		if strings.Contains(lower, "/") {
			continue
		}
		if strings.HasPrefix(lower, "readme") {
			return body, true
		}
	}
	return "", false
}

// ReadmeContains reports whether the root README contains the substring,
// case-insensitively.
func (s *Snapshot) ReadmeContains(substr string) bool {
	body, ok := s.ReadmeContent()
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(body), strings.ToLower(substr))
}

// AnyWorkflowContains reports whether any CI workflow definition contains
// the substring, case-insensitively.
func (s *Snapshot) AnyWorkflowContains(substr string) bool {
	needle := strings.ToLower(substr)
	for _, w := range s.Workflows {
		if strings.Contains(strings.ToLower(w.Content), needle) {
			return true
		}
	}
	return false
}

// CommitsSince counts recent commits within the given window, measured back
// from FetchedAt so that predicates stay deterministic for a fixed snapshot.
func (s *Snapshot) CommitsSince(window time.Duration) int {
	cutoff := s.FetchedAt.Add(-window)
	count := 0
	for _, c := range s.RecentCommits {
		if c.Date.After(cutoff) {
			count++
		}
	}
	return count
}

// DaysSincePush returns the number of days between the last push and the
// snapshot capture time.
func (s *Snapshot) DaysSincePush() float64 {
	if s.PushedAt.IsZero() {
		return -1
	}
	return s.FetchedAt.Sub(s.PushedAt).Hours() / 24
}

// PrimaryLanguage returns the language with the highest byte count, or ""
// when no language data is present.
func (s *Snapshot) PrimaryLanguage() string {
	best, bestBytes := "", -1
	for lang, bytes := range s.Languages {
		if bytes > bestBytes || (bytes == bestBytes && lang < best) {
			best, bestBytes = lang, bytes
		}
	}
	return best
}

// HasTopic reports whether the repository carries the given topic.
func (s *Snapshot) HasTopic(topic string) bool {
	for _, t := range s.Topics {
		if strings.EqualFold(t, topic) {
			return true
		}
	}
	return false
}

// FormatRepoName joins owner and name into the owner/name display form.
func FormatRepoName(owner, name string) string {
	return owner + "/" + name
}
