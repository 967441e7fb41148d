package ghfetch

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/schema"
)

// Page sizes for the list endpoints.
const (
	commitPageSize      = 30
	releasePageSize     = 10
	contributorPageSize = 100
)

// repoResponse is the subset of repository metadata the snapshot needs.
type repoResponse struct {
	Description      string    `json:"description"`
	Homepage         string    `json:"homepage"`
	StargazersCount  int       `json:"stargazers_count"`
	ForksCount       int       `json:"forks_count"`
	SubscribersCount int       `json:"subscribers_count"`
	OpenIssuesCount  int       `json:"open_issues_count"`
	Topics           []string  `json:"topics"`
	DefaultBranch    string    `json:"default_branch"`
	Size             int       `json:"size"`
	Archived         bool      `json:"archived"`
	Fork             bool      `json:"fork"`
	HasIssues        bool      `json:"has_issues"`
	HasWiki          bool      `json:"has_wiki"`
	HasPages         bool      `json:"has_pages"`
	HasDiscussions   bool      `json:"has_discussions"`
	CreatedAt        time.Time `json:"created_at"`
	PushedAt         time.Time `json:"pushed_at"`
	License          *struct {
		SPDXID string `json:"spdx_id"`
	} `json:"license"`
}

// toSnapshot seeds a snapshot from repository metadata.
func (r *repoResponse) toSnapshot(owner, name string) *schema.Snapshot {
	snap := &schema.Snapshot{
		RepoURL:        fmt.Sprintf("https://github.com/%s/%s", owner, name),
		Owner:          owner,
		Name:           name,
		Description:    r.Description,
		Homepage:       r.Homepage,
		Stars:          r.StargazersCount,
		Forks:          r.ForksCount,
		Watchers:       r.SubscribersCount,
		OpenIssues:     r.OpenIssuesCount,
		Topics:         r.Topics,
		DefaultBranch:  r.DefaultBranch,
		SizeKB:         r.Size,
		Archived:       r.Archived,
		IsFork:         r.Fork,
		IssuesEnabled:  r.HasIssues,
		HasWiki:        r.HasWiki,
		HasPages:       r.HasPages,
		HasDiscussions: r.HasDiscussions,
		CreatedAt:      r.CreatedAt,
		PushedAt:       r.PushedAt,
	}
	if r.License != nil && r.License.SPDXID != "NOASSERTION" {
		snap.LicenseSPDX = r.License.SPDXID
	}
	if snap.DefaultBranch == "" {
		snap.DefaultBranch = "main"
	}
	return snap
}

// fetchRepoMeta retrieves repository metadata. A 404 here means the
// repository does not exist or is private, which fails the whole check.
func (f *Fetcher) fetchRepoMeta(ctx context.Context, owner, name string) (*repoResponse, error) {
	var meta repoResponse
	found, err := f.getJSONAllow404(ctx, repoPath(owner, name), &meta)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s/%s", contract.ErrRepoNotFound, owner, name)
	}
	return &meta, nil
}

// treeResponse is the recursive git tree listing.
type treeResponse struct {
	Truncated bool `json:"truncated"`
	Tree      []struct {
		Path string `json:"path"`
		Type string `json:"type"`
	} `json:"tree"`
}

// fetchTree lists every blob path on the default branch. GitHub truncates
// very large trees; the snapshot carries whatever was returned.
func (f *Fetcher) fetchTree(ctx context.Context, owner, name, branch string) ([]string, error) {
	var tree treeResponse
	path := repoPath(owner, name, "git", "trees", url.PathEscape(branch)) + "?recursive=1"
	found, err := f.getJSONAllow404(ctx, path, &tree)
	if err != nil {
		return nil, err
	}
	if !found {
		// Empty repositories have no tree to list.
		return nil, nil
	}

	files := make([]string, 0, len(tree.Tree))
	for _, entry := range tree.Tree {
		if entry.Type == "blob" {
			files = append(files, entry.Path)
		}
	}
	return files, nil
}

// fetchLanguages retrieves the language byte counts.
func (f *Fetcher) fetchLanguages(ctx context.Context, owner, name string) (map[string]int, error) {
	langs := make(map[string]int)
	if err := f.getJSON(ctx, repoPath(owner, name, "languages"), &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

// commitResponse is one commit from the list endpoint.
type commitResponse struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string    `json:"name"`
			Date time.Time `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// fetchCommits retrieves the most recent commits on the default branch.
func (f *Fetcher) fetchCommits(ctx context.Context, owner, name string) ([]schema.CommitInfo, error) {
	var raw []commitResponse
	path := fmt.Sprintf("%s?per_page=%d", repoPath(owner, name, "commits"), commitPageSize)
	found, err := f.getJSONAllow404(ctx, path, &raw)
	if err != nil {
		return nil, err
	}
	if !found {
		// Empty repositories 404 on the commits endpoint.
		return nil, nil
	}

	commits := make([]schema.CommitInfo, 0, len(raw))
	for _, c := range raw {
		commits = append(commits, schema.CommitInfo{
			SHA:     c.SHA,
			Message: c.Commit.Message,
			Author:  c.Commit.Author.Name,
			Date:    c.Commit.Author.Date,
		})
	}
	return commits, nil
}

// releaseResponse is one release from the list endpoint.
type releaseResponse struct {
	TagName     string    `json:"tag_name"`
	Name        string    `json:"name"`
	Prerelease  bool      `json:"prerelease"`
	PublishedAt time.Time `json:"published_at"`
}

// fetchReleases retrieves the most recent published releases.
func (f *Fetcher) fetchReleases(ctx context.Context, owner, name string) ([]schema.ReleaseInfo, error) {
	var raw []releaseResponse
	path := fmt.Sprintf("%s?per_page=%d", repoPath(owner, name, "releases"), releasePageSize)
	if err := f.getJSON(ctx, path, &raw); err != nil {
		return nil, err
	}

	releases := make([]schema.ReleaseInfo, 0, len(raw))
	for _, r := range raw {
		releases = append(releases, schema.ReleaseInfo{
			TagName:     r.TagName,
			Name:        r.Name,
			Prerelease:  r.Prerelease,
			PublishedAt: r.PublishedAt,
		})
	}
	return releases, nil
}

// fetchContributorCount counts distinct contributors, up to one page.
func (f *Fetcher) fetchContributorCount(ctx context.Context, owner, name string) (int, error) {
	var raw []struct {
		Login string `json:"login"`
	}
	path := fmt.Sprintf("%s?per_page=%d&anon=1", repoPath(owner, name, "contributors"), contributorPageSize)
	found, err := f.getJSONAllow404(ctx, path, &raw)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}
	return len(raw), nil
}

// fetchBranchProtection reports whether the default branch has a protection
// rule. The endpoint 404s when no rule exists or the token cannot see it,
// which simply reads as unprotected.
func (f *Fetcher) fetchBranchProtection(ctx context.Context, owner, name, branch string) (bool, error) {
	var out struct {
		URL string `json:"url"`
	}
	path := repoPath(owner, name, "branches", url.PathEscape(branch), "protection")
	found, err := f.getJSONAllow404(ctx, path, &out)
	if err != nil {
		// Tokens without admin scope get a 403 here; treat as unprotected.
		if errors.Is(err, errForbidden) {
			return false, nil
		}
		return false, err
	}
	return found, nil
}

// fetchFileContent retrieves one file body from the contents endpoint.
func (f *Fetcher) fetchFileContent(ctx context.Context, owner, name, path string) (string, bool, error) {
	apiPath := repoPath(owner, name, "contents") + "/" + escapePath(path)
	return f.getRaw(ctx, apiPath)
}

// escapePath escapes each segment of a repository path for use in a URL.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
