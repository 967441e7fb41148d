package core

import (
	"strings"
	"time"

	"github.com/repograde/repograde/schema"
)

// Recency windows used by the activity checkpoints, measured back from the
// snapshot capture time.
const (
	recentWindow    = 30 * 24 * time.Hour
	steadyWindow    = 90 * 24 * time.Hour
	abandonedWindow = 365 * 24 * time.Hour
)

// defaultCheckpoints returns the full rubric: 100 weighted pass/fail items
// across the ten categories. Weights within a category always sum to the
// category's declared budget; buildCatalog aborts startup otherwise.
//
// Checkpoint order within a category is presentation order in reports and
// rendered documents, so entries are grouped by category and kept stable.
func defaultCheckpoints() []Checkpoint {
	list := make([]Checkpoint, 0, schema.TotalPoints)
	list = append(list, docsCheckpoints()...)
	list = append(list, licenseCheckpoints()...)
	list = append(list, securityCheckpoints()...)
	list = append(list, cicdCheckpoints()...)
	list = append(list, testingCheckpoints()...)
	list = append(list, dependencyCheckpoints()...)
	list = append(list, communityCheckpoints()...)
	list = append(list, hygieneCheckpoints()...)
	list = append(list, activityCheckpoints()...)
	list = append(list, discoveryCheckpoints()...)
	return list
}

// docsCheckpoints: 12 items, 10 points. The two zero-weight items are
// advisory: they never move the score but still yield recommendations.
func docsCheckpoints() []Checkpoint {
	cat := schema.DocsCategory
	return []Checkpoint{
		{
			ID: "docs.readme", Category: cat, Points: 1,
			Description:    "A README file exists at the repository root",
			Recommendation: "Add a README.md at the repository root introducing the project.",
			Predicate:      func(s *schema.Snapshot) bool { return s.HasRootFile("README") },
		},
		{
			ID: "docs.readme-substance", Category: cat, Points: 1,
			Description:    "The README has meaningful length (at least 300 characters)",
			Recommendation: "Expand the README beyond a title: what the project does, why, and how to use it.",
			Predicate: func(s *schema.Snapshot) bool {
				body, ok := s.ReadmeContent()
				return ok && len(body) >= 300
			},
		},
		{
			ID: "docs.install", Category: cat, Points: 1,
			Description:    "The README documents installation",
			Recommendation: "Add an Installation section to the README with copy-pasteable setup steps.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.ReadmeContains("install") || s.ReadmeContains("getting started")
			},
		},
		{
			ID: "docs.usage", Category: cat, Points: 1,
			Description:    "The README documents usage",
			Recommendation: "Add a Usage section to the README showing the primary workflow.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.ReadmeContains("usage") || s.ReadmeContains("how to use") || s.ReadmeContains("quick start") || s.ReadmeContains("quickstart")
			},
		},
		{
			ID: "docs.examples", Category: cat, Points: 1,
			Description:    "Examples are provided in the README or an examples directory",
			Recommendation: "Add worked examples, either inline in the README or under examples/.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.ReadmeContains("example") || s.HasDir("examples") || s.HasDir("example")
			},
		},
		{
			ID: "docs.description", Category: cat, Points: 1,
			Description:    "The repository has a short description",
			Recommendation: "Set the repository description so visitors understand the project at a glance.",
			Predicate:      func(s *schema.Snapshot) bool { return strings.TrimSpace(s.Description) != "" },
		},
		{
			ID: "docs.docs-dir", Category: cat, Points: 1,
			Description:    "Extended documentation exists (docs directory or wiki)",
			Recommendation: "Keep longer-form documentation under docs/ or enable the project wiki.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasDir("docs") || s.HasDir("doc") || s.HasWiki
			},
		},
		{
			ID: "docs.changelog", Category: cat, Points: 1,
			Description:    "A changelog or release notes file exists",
			Recommendation: "Track notable changes in a CHANGELOG.md so users can follow releases.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasRootFile("CHANGELOG") || s.HasRootFile("HISTORY") || s.HasRootFile("RELEASES")
			},
		},
		{
			ID: "docs.badges", Category: cat, Points: 1,
			Description:    "The README surfaces project status through badges",
			Recommendation: "Add status badges (build, coverage, version) to the top of the README.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.ReadmeContains("shields.io") || s.ReadmeContains("![")
			},
		},
		{
			ID: "docs.homepage", Category: cat, Points: 1,
			Description:    "A project homepage or documentation site is linked",
			Recommendation: "Link a homepage or documentation site in the repository settings.",
			Predicate: func(s *schema.Snapshot) bool {
				return strings.TrimSpace(s.Homepage) != "" || s.HasPages
			},
		},
		{
			ID: "docs.toc", Category: cat, Points: 0,
			Description:    "The README includes a table of contents (advisory)",
			Recommendation: "For longer READMEs, add a table of contents to aid navigation.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.ReadmeContains("table of contents") || s.ReadmeContains("## contents")
			},
		},
		{
			ID: "docs.faq", Category: cat, Points: 0,
			Description:    "Troubleshooting or FAQ guidance exists (advisory)",
			Recommendation: "Collect common questions into a FAQ or Troubleshooting section.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.ReadmeContains("faq") || s.ReadmeContains("troubleshooting") || s.HasRootFile("FAQ")
			},
		},
	}
}

// licenseCheckpoints: 8 items, 10 points. The two cornerstone items carry
// double weight.
func licenseCheckpoints() []Checkpoint {
	cat := schema.LicenseCategory
	osiApproved := map[string]struct{}{
		"MIT": {}, "Apache-2.0": {}, "BSD-2-Clause": {}, "BSD-3-Clause": {},
		"GPL-2.0": {}, "GPL-3.0": {}, "LGPL-2.1": {}, "LGPL-3.0": {},
		"MPL-2.0": {}, "ISC": {}, "EPL-2.0": {}, "AGPL-3.0": {}, "Unlicense": {},
	}
	return []Checkpoint{
		{
			ID: "license.file", Category: cat, Points: 2,
			Description:    "A license file exists at the repository root",
			Recommendation: "Add a LICENSE file; without one, default copyright law applies and reuse is legally unclear.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasRootFile("LICENSE") || s.HasRootFile("LICENCE") || s.HasRootFile("COPYING")
			},
		},
		{
			ID: "license.detected", Category: cat, Points: 2,
			Description:    "The hosting platform recognizes the license",
			Recommendation: "Use a standard license text so the platform can detect and display it.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.LicenseSPDX != "" && s.LicenseSPDX != "NOASSERTION"
			},
		},
		{
			ID: "license.osi", Category: cat, Points: 1,
			Description:    "The license is a common OSI-approved license",
			Recommendation: "Prefer a widely used OSI-approved license (MIT, Apache-2.0, BSD) over a custom one.",
			Predicate: func(s *schema.Snapshot) bool {
				_, ok := osiApproved[s.LicenseSPDX]
				return ok
			},
		},
		{
			ID: "license.not-custom", Category: cat, Points: 1,
			Description:    "The license is not a custom or unclassifiable text",
			Recommendation: "Replace custom license wording with an unmodified standard license text.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.LicenseSPDX != "" && s.LicenseSPDX != "NOASSERTION" && s.LicenseSPDX != "OTHER"
			},
		},
		{
			ID: "license.copyright", Category: cat, Points: 1,
			Description:    "The license file carries a copyright notice",
			Recommendation: "Fill in the copyright line of the license with the year and holder.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.ContentContains("LICENSE", "copyright") || s.ContentContains("LICENSE.md", "copyright") || s.ContentContains("COPYING", "copyright")
			},
		},
		{
			ID: "license.readme-mention", Category: cat, Points: 1,
			Description:    "The README states the project license",
			Recommendation: "Add a License section to the README naming the license.",
			Predicate:      func(s *schema.Snapshot) bool { return s.ReadmeContains("license") || s.ReadmeContains("licence") },
		},
		{
			ID: "license.badge", Category: cat, Points: 1,
			Description:    "The README shows a license badge",
			Recommendation: "Add a license badge to the README for at-a-glance legal clarity.",
			Predicate: func(s *schema.Snapshot) bool {
				body, ok := s.ReadmeContent()
				if !ok {
					return false
				}
				lower := strings.ToLower(body)
				return strings.Contains(lower, "badge/license") || strings.Contains(lower, "license-")
			},
		},
		{
			ID: "license.third-party", Category: cat, Points: 1,
			Description:    "Third-party attributions are collected in a notices file",
			Recommendation: "Collect third-party license attributions in a NOTICE or THIRD_PARTY_NOTICES file.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasRootFile("NOTICE") || s.HasRootFile("THIRD_PARTY_NOTICES") || s.HasRootFile("THIRD-PARTY-NOTICES")
			},
		},
	}
}

// securityCheckpoints: 10 items, 10 points.
func securityCheckpoints() []Checkpoint {
	cat := schema.SecurityCategory
	securityBodies := func(s *schema.Snapshot, substr string) bool {
		return s.ContentContains("SECURITY.md", substr) || s.ContentContains(".github/SECURITY.md", substr)
	}
	return []Checkpoint{
		{
			ID: "security.policy", Category: cat, Points: 1,
			Description:    "A security policy file exists",
			Recommendation: "Add a SECURITY.md describing how to report vulnerabilities.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasRootFile("SECURITY") || s.HasFile(".github/SECURITY.md") || s.HasFile("docs/SECURITY.md")
			},
		},
		{
			ID: "security.contact", Category: cat, Points: 1,
			Description:    "The security policy names a reporting channel",
			Recommendation: "State a concrete reporting channel (email or private advisory) in SECURITY.md.",
			Predicate: func(s *schema.Snapshot) bool {
				return securityBodies(s, "report") || securityBodies(s, "@") || securityBodies(s, "advisory")
			},
		},
		{
			ID: "security.disclosure", Category: cat, Points: 1,
			Description:    "The security policy covers disclosure expectations",
			Recommendation: "Document disclosure timelines and supported versions in SECURITY.md.",
			Predicate: func(s *schema.Snapshot) bool {
				return securityBodies(s, "disclosure") || securityBodies(s, "supported version")
			},
		},
		{
			ID: "security.dependabot", Category: cat, Points: 1,
			Description:    "Automated dependency alerts are configured",
			Recommendation: "Add .github/dependabot.yml (or renovate.json) to get automated vulnerability updates.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasFile(".github/dependabot.yml") || s.HasFile(".github/dependabot.yaml") || s.HasRootFile("renovate")
			},
		},
		{
			ID: "security.code-scanning", Category: cat, Points: 1,
			Description:    "Static security scanning runs in CI",
			Recommendation: "Add a CodeQL or equivalent static analysis workflow.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.AnyWorkflowContains("codeql") || s.AnyWorkflowContains("gosec") || s.AnyWorkflowContains("semgrep") || s.AnyWorkflowContains("bandit")
			},
		},
		{
			ID: "security.secret-scanning", Category: cat, Points: 1,
			Description:    "Secret scanning runs in CI",
			Recommendation: "Add a gitleaks or trufflehog step so committed credentials are caught early.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.AnyWorkflowContains("gitleaks") || s.AnyWorkflowContains("trufflehog") || s.AnyWorkflowContains("detect-secrets")
			},
		},
		{
			ID: "security.branch-protection", Category: cat, Points: 1,
			Description:    "The default branch is protected",
			Recommendation: "Enable branch protection on the default branch to require review before merge.",
			Predicate:      func(s *schema.Snapshot) bool { return s.BranchProtection },
		},
		{
			ID: "security.no-env-files", Category: cat, Points: 1,
			Description:    "No environment files are committed",
			Recommendation: "Remove committed .env files and add them to .gitignore; rotate any exposed values.",
			Predicate: func(s *schema.Snapshot) bool {
				return !s.HasFile(".env") && !s.MatchGlob("**/.env") && !s.MatchGlob("**/.env.local")
			},
		},
		{
			ID: "security.no-private-keys", Category: cat, Points: 1,
			Description:    "No private key material is committed",
			Recommendation: "Remove committed key files (.pem, .key, id_rsa) and rotate the affected keys.",
			Predicate: func(s *schema.Snapshot) bool {
				return !s.MatchGlob("**/*.pem") && !s.MatchGlob("**/*.key") && !s.MatchGlob("**/id_rsa")
			},
		},
		{
			ID: "security.pinned-actions", Category: cat, Points: 1,
			Description:    "CI actions are not pinned to moving branches",
			Recommendation: "Pin workflow actions to tags or commit SHAs instead of @master/@main.",
			Predicate: func(s *schema.Snapshot) bool {
				if len(s.Workflows) == 0 {
					return false
				}
				return !s.AnyWorkflowContains("@master") && !s.AnyWorkflowContains("@main")
			},
		},
	}
}

// cicdCheckpoints: 15 items, 15 points. This is the heaviest category.
// Every item requires actual workflow evidence, so a repository without CI
// scores zero here.
func cicdCheckpoints() []Checkpoint {
	cat := schema.CICDCategory
	return []Checkpoint{
		{
			ID: "cicd.workflows", Category: cat, Points: 1,
			Description:    "At least one CI workflow is defined",
			Recommendation: "Add a CI workflow under .github/workflows that runs on every change.",
			Predicate:      func(s *schema.Snapshot) bool { return len(s.Workflows) > 0 },
		},
		{
			ID: "cicd.test-job", Category: cat, Points: 1,
			Description:    "CI runs the test suite",
			Recommendation: "Run the project's tests in CI so regressions are caught before merge.",
			Predicate:      func(s *schema.Snapshot) bool { return s.AnyWorkflowContains("test") },
		},
		{
			ID: "cicd.build-job", Category: cat, Points: 1,
			Description:    "CI builds the project",
			Recommendation: "Add a build step to CI to verify the project compiles from a clean checkout.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.AnyWorkflowContains("build") || s.AnyWorkflowContains("compile")
			},
		},
		{
			ID: "cicd.lint-job", Category: cat, Points: 1,
			Description:    "CI runs a linter",
			Recommendation: "Add a lint step (golangci-lint, eslint, ruff) to keep style drift out of review.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.AnyWorkflowContains("lint") || s.AnyWorkflowContains("vet") || s.AnyWorkflowContains("ruff") || s.AnyWorkflowContains("clippy")
			},
		},
		{
			ID: "cicd.push-trigger", Category: cat, Points: 1,
			Description:    "CI triggers on pushes",
			Recommendation: "Trigger the CI workflow on push so the default branch stays green.",
			Predicate:      func(s *schema.Snapshot) bool { return s.AnyWorkflowContains("push") },
		},
		{
			ID: "cicd.pr-trigger", Category: cat, Points: 1,
			Description:    "CI triggers on pull requests",
			Recommendation: "Trigger the CI workflow on pull_request so changes are validated before merge.",
			Predicate:      func(s *schema.Snapshot) bool { return s.AnyWorkflowContains("pull_request") },
		},
		{
			ID: "cicd.checkout-action", Category: cat, Points: 1,
			Description:    "Workflows use the standard checkout action",
			Recommendation: "Use actions/checkout to fetch sources instead of ad hoc git commands.",
			Predicate:      func(s *schema.Snapshot) bool { return s.AnyWorkflowContains("actions/checkout") },
		},
		{
			ID: "cicd.matrix", Category: cat, Points: 1,
			Description:    "CI exercises a version or platform matrix",
			Recommendation: "Test against a matrix of language versions or operating systems.",
			Predicate:      func(s *schema.Snapshot) bool { return s.AnyWorkflowContains("matrix") },
		},
		{
			ID: "cicd.caching", Category: cat, Points: 1,
			Description:    "CI caches dependencies between runs",
			Recommendation: "Cache dependency downloads (actions/cache or setup-* cache options) to speed up CI.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.AnyWorkflowContains("actions/cache") || s.AnyWorkflowContains("cache:")
			},
		},
		{
			ID: "cicd.timeout", Category: cat, Points: 1,
			Description:    "CI jobs declare a timeout",
			Recommendation: "Set timeout-minutes on CI jobs so hung runs do not consume the queue.",
			Predicate:      func(s *schema.Snapshot) bool { return s.AnyWorkflowContains("timeout-minutes") },
		},
		{
			ID: "cicd.concurrency", Category: cat, Points: 1,
			Description:    "Stale workflow runs are cancelled by a concurrency group",
			Recommendation: "Add a concurrency group with cancel-in-progress to avoid redundant runs.",
			Predicate:      func(s *schema.Snapshot) bool { return s.AnyWorkflowContains("concurrency") },
		},
		{
			ID: "cicd.security-job", Category: cat, Points: 1,
			Description:    "CI includes a security or vulnerability scan",
			Recommendation: "Add a vulnerability scan step (govulncheck, trivy, npm audit) to CI.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.AnyWorkflowContains("govulncheck") || s.AnyWorkflowContains("trivy") || s.AnyWorkflowContains("snyk") || s.AnyWorkflowContains("audit") || s.AnyWorkflowContains("codeql")
			},
		},
		{
			ID: "cicd.coverage-upload", Category: cat, Points: 1,
			Description:    "CI publishes coverage results",
			Recommendation: "Upload coverage to codecov or coveralls so coverage trends are visible.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.AnyWorkflowContains("codecov") || s.AnyWorkflowContains("coveralls") || s.AnyWorkflowContains("coverage")
			},
		},
		{
			ID: "cicd.release-automation", Category: cat, Points: 1,
			Description:    "Releases are automated",
			Recommendation: "Automate releases with a tag-triggered workflow (goreleaser, semantic-release).",
			Predicate: func(s *schema.Snapshot) bool {
				return s.AnyWorkflowContains("goreleaser") || s.AnyWorkflowContains("semantic-release") || s.AnyWorkflowContains("release")
			},
		},
		{
			ID: "cicd.badge", Category: cat, Points: 1,
			Description:    "The README shows CI status",
			Recommendation: "Add the workflow status badge to the README so build health is visible.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.ReadmeContains("workflows") && s.ReadmeContains("badge")
			},
		},
	}
}

// testingCheckpoints: 10 items, 10 points.
func testingCheckpoints() []Checkpoint {
	cat := schema.TestingCategory
	countTestFiles := func(s *schema.Snapshot) int {
		count := 0
		for _, f := range s.Files {
			lower := strings.ToLower(f)
			if strings.HasSuffix(lower, "_test.go") ||
				strings.HasSuffix(lower, ".spec.ts") || strings.HasSuffix(lower, ".spec.js") ||
				strings.HasSuffix(lower, ".test.ts") || strings.HasSuffix(lower, ".test.js") ||
				strings.HasPrefix(strings.ToLower(pathBase(lower)), "test_") {
				count++
			}
		}
		return count
	}
	return []Checkpoint{
		{
			ID: "testing.tests-exist", Category: cat, Points: 1,
			Description:    "The repository contains test files",
			Recommendation: "Add automated tests; a project without tests cannot be changed with confidence.",
			Predicate: func(s *schema.Snapshot) bool {
				return countTestFiles(s) > 0 || s.HasDir("tests") || s.HasDir("test")
			},
		},
		{
			ID: "testing.test-volume", Category: cat, Points: 1,
			Description:    "The test suite has meaningful volume (five or more test files)",
			Recommendation: "Grow the test suite beyond a smoke test; aim for coverage of each package or module.",
			Predicate:      func(s *schema.Snapshot) bool { return countTestFiles(s) >= 5 },
		},
		{
			ID: "testing.ci-enforced", Category: cat, Points: 1,
			Description:    "Tests are enforced by CI",
			Recommendation: "Run the test suite in CI so merges cannot skip it.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.AnyWorkflowContains("go test") || s.AnyWorkflowContains("pytest") || s.AnyWorkflowContains("npm test") || s.AnyWorkflowContains("cargo test") || s.AnyWorkflowContains("make test")
			},
		},
		{
			ID: "testing.coverage-config", Category: cat, Points: 1,
			Description:    "Coverage measurement is configured",
			Recommendation: "Configure coverage collection (codecov.yml, .coveragerc, -cover in CI).",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasRootFile("codecov") || s.HasFile(".coveragerc") || s.AnyWorkflowContains("-cover") || s.AnyWorkflowContains("coverage")
			},
		},
		{
			ID: "testing.integration", Category: cat, Points: 1,
			Description:    "Integration or end-to-end tests exist",
			Recommendation: "Add integration tests that exercise real boundaries, not just units.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasDir("integration") || s.HasDir("e2e") || s.MatchGlob("**/integration*") || s.MatchGlob("**/e2e*")
			},
		},
		{
			ID: "testing.fixtures", Category: cat, Points: 1,
			Description:    "Test fixtures are organized",
			Recommendation: "Keep test inputs in testdata/ or fixtures/ directories rather than inline blobs.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasDir("testdata") || s.MatchGlob("**/testdata/**") || s.MatchGlob("**/fixtures/**")
			},
		},
		{
			ID: "testing.lint-config", Category: cat, Points: 1,
			Description:    "A linter configuration is committed",
			Recommendation: "Commit the linter configuration (.golangci.yml, eslint.config.js, ruff.toml) so checks are reproducible.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasRootFile(".golangci") || s.MatchGlob(".eslintrc*") || s.MatchGlob("eslint.config.*") || s.HasRootFile("ruff") || s.HasFile(".flake8") || s.HasRootFile("rustfmt")
			},
		},
		{
			ID: "testing.format-config", Category: cat, Points: 1,
			Description:    "An editor or formatter configuration is committed",
			Recommendation: "Commit an .editorconfig or formatter config to keep diffs free of style noise.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasFile(".editorconfig") || s.MatchGlob(".prettierrc*") || s.HasRootFile(".clang-format")
			},
		},
		{
			ID: "testing.task-entrypoint", Category: cat, Points: 1,
			Description:    "A task runner exposes a test entrypoint",
			Recommendation: "Expose a canonical test entrypoint (make test, npm test, just test).",
			Predicate: func(s *schema.Snapshot) bool {
				return s.ContentContains("Makefile", "test") || s.ContentContains("package.json", "\"test\"") || s.HasRootFile("Taskfile") || s.HasRootFile("justfile")
			},
		},
		{
			ID: "testing.pre-commit", Category: cat, Points: 1,
			Description:    "Pre-commit hooks guard local commits",
			Recommendation: "Add pre-commit hooks (.pre-commit-config.yaml, husky) to catch failures before CI.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasFile(".pre-commit-config.yaml") || s.HasDir(".husky") || s.HasFile("lefthook.yml")
			},
		},
	}
}

// dependencyCheckpoints: 10 items, 10 points.
func dependencyCheckpoints() []Checkpoint {
	cat := schema.DependenciesCategory
	manifests := []string{
		"go.mod", "package.json", "requirements.txt", "pyproject.toml",
		"Cargo.toml", "Gemfile", "pom.xml", "build.gradle", "build.gradle.kts", "composer.json",
	}
	lockfiles := []string{
		"go.sum", "package-lock.json", "yarn.lock", "pnpm-lock.yaml",
		"poetry.lock", "uv.lock", "Cargo.lock", "Gemfile.lock", "composer.lock",
	}
	hasRootManifest := func(s *schema.Snapshot) bool {
		for _, m := range manifests {
			if s.HasFile(m) {
				return true
			}
		}
		return false
	}
	hasLockfile := func(s *schema.Snapshot) bool {
		for _, l := range lockfiles {
			if s.HasFile(l) {
				return true
			}
		}
		return false
	}
	return []Checkpoint{
		{
			ID: "deps.manifest", Category: cat, Points: 1,
			Description:    "A dependency manifest is present",
			Recommendation: "Declare dependencies in a manifest (go.mod, package.json, pyproject.toml) instead of ambient installs.",
			Predicate: func(s *schema.Snapshot) bool {
				if hasRootManifest(s) {
					return true
				}
				for _, m := range manifests {
					if s.MatchGlob("**/" + m) {
						return true
					}
				}
				return false
			},
		},
		{
			ID: "deps.manifest-root", Category: cat, Points: 1,
			Description:    "The dependency manifest lives at the repository root",
			Recommendation: "Keep the primary manifest at the repository root so tooling finds it.",
			Predicate:      hasRootManifest,
		},
		{
			ID: "deps.lockfile", Category: cat, Points: 1,
			Description:    "A lockfile pins dependency versions",
			Recommendation: "Commit the lockfile (go.sum, package-lock.json, poetry.lock) for reproducible builds.",
			Predicate:      hasLockfile,
		},
		{
			ID: "deps.lock-consistency", Category: cat, Points: 1,
			Description:    "Manifest and lockfile are present together",
			Recommendation: "Keep the manifest and its lockfile in sync; one without the other breaks reproducibility.",
			Predicate:      func(s *schema.Snapshot) bool { return hasRootManifest(s) && hasLockfile(s) },
		},
		{
			ID: "deps.automated-updates", Category: cat, Points: 1,
			Description:    "Dependency updates are automated",
			Recommendation: "Configure dependabot or renovate so dependency updates arrive as reviewable PRs.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasFile(".github/dependabot.yml") || s.HasFile(".github/dependabot.yaml") || s.HasRootFile("renovate") || s.HasFile(".github/renovate.json")
			},
		},
		{
			ID: "deps.audit-ci", Category: cat, Points: 1,
			Description:    "Dependencies are audited in CI",
			Recommendation: "Audit dependencies in CI (govulncheck, npm audit, pip-audit, cargo audit).",
			Predicate: func(s *schema.Snapshot) bool {
				return s.AnyWorkflowContains("govulncheck") || s.AnyWorkflowContains("audit") || s.AnyWorkflowContains("osv-scanner")
			},
		},
		{
			ID: "deps.toolchain-version", Category: cat, Points: 1,
			Description:    "The toolchain version is declared",
			Recommendation: "Pin the toolchain version (.nvmrc, .python-version, go directive, rust-toolchain).",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasFile(".nvmrc") || s.HasFile(".python-version") || s.HasFile(".tool-versions") ||
					s.HasRootFile("rust-toolchain") || s.ContentContains("go.mod", "go 1")
			},
		},
		{
			ID: "deps.frozen-install", Category: cat, Points: 1,
			Description:    "CI installs dependencies from the lockfile",
			Recommendation: "Install with lockfile-respecting commands in CI (npm ci, --frozen-lockfile, go mod download).",
			Predicate: func(s *schema.Snapshot) bool {
				return s.AnyWorkflowContains("npm ci") || s.AnyWorkflowContains("--frozen-lockfile") ||
					s.AnyWorkflowContains("go mod download") || s.AnyWorkflowContains("pip install -r")
			},
		},
		{
			ID: "deps.no-node-modules", Category: cat, Points: 1,
			Description:    "Installed dependencies are not committed",
			Recommendation: "Remove node_modules (or equivalent installed trees) from version control.",
			Predicate:      func(s *schema.Snapshot) bool { return !s.HasDir("node_modules") && !s.MatchGlob("**/node_modules/**") },
		},
		{
			ID: "deps.sbom", Category: cat, Points: 1,
			Description:    "A software bill of materials is produced",
			Recommendation: "Generate an SBOM (syft, cyclonedx) during release so consumers can audit the supply chain.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.AnyWorkflowContains("sbom") || s.AnyWorkflowContains("syft") || s.AnyWorkflowContains("cyclonedx") || s.MatchGlob("**/sbom.*")
			},
		},
	}
}

// communityCheckpoints: 10 items, 10 points.
func communityCheckpoints() []Checkpoint {
	cat := schema.CommunityCategory
	return []Checkpoint{
		{
			ID: "community.contributing", Category: cat, Points: 1,
			Description:    "Contribution guidelines exist",
			Recommendation: "Add a CONTRIBUTING.md describing how to propose and land changes.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasRootFile("CONTRIBUTING") || s.HasFile(".github/CONTRIBUTING.md") || s.HasFile("docs/CONTRIBUTING.md")
			},
		},
		{
			ID: "community.code-of-conduct", Category: cat, Points: 1,
			Description:    "A code of conduct exists",
			Recommendation: "Adopt a code of conduct (CODE_OF_CONDUCT.md) to set expectations for participation.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasRootFile("CODE_OF_CONDUCT") || s.HasFile(".github/CODE_OF_CONDUCT.md")
			},
		},
		{
			ID: "community.codeowners", Category: cat, Points: 1,
			Description:    "Code ownership is declared",
			Recommendation: "Add a CODEOWNERS file so reviews route to the right maintainers.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasFile("CODEOWNERS") || s.HasFile(".github/CODEOWNERS") || s.HasFile("docs/CODEOWNERS")
			},
		},
		{
			ID: "community.issue-templates", Category: cat, Points: 1,
			Description:    "Issue templates guide reporters",
			Recommendation: "Add issue templates under .github/ISSUE_TEMPLATE to collect actionable reports.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasDir(".github/ISSUE_TEMPLATE") || s.HasFile(".github/issue_template.md")
			},
		},
		{
			ID: "community.pr-template", Category: cat, Points: 1,
			Description:    "A pull request template exists",
			Recommendation: "Add a pull request template so submissions arrive with context and a test plan.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasFile(".github/PULL_REQUEST_TEMPLATE.md") || s.HasFile("PULL_REQUEST_TEMPLATE.md") || s.HasFile("docs/PULL_REQUEST_TEMPLATE.md")
			},
		},
		{
			ID: "community.issues-enabled", Category: cat, Points: 1,
			Description:    "The issue tracker is enabled",
			Recommendation: "Enable the issue tracker (or link the external one from the README).",
			Predicate:      func(s *schema.Snapshot) bool { return s.IssuesEnabled },
		},
		{
			ID: "community.discussion-space", Category: cat, Points: 1,
			Description:    "A discussion space exists beyond the issue tracker",
			Recommendation: "Enable Discussions or a wiki to keep questions out of the bug tracker.",
			Predicate:      func(s *schema.Snapshot) bool { return s.HasDiscussions || s.HasWiki },
		},
		{
			ID: "community.multiple-contributors", Category: cat, Points: 1,
			Description:    "More than one person has contributed",
			Recommendation: "Grow the contributor base; a single-maintainer project is a bus-factor risk.",
			Predicate:      func(s *schema.Snapshot) bool { return s.Contributors >= 2 },
		},
		{
			ID: "community.governance", Category: cat, Points: 1,
			Description:    "Project governance or maintainership is documented",
			Recommendation: "Document maintainership in a GOVERNANCE.md or MAINTAINERS file.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasRootFile("GOVERNANCE") || s.HasRootFile("MAINTAINERS") || s.HasRootFile("OWNERS")
			},
		},
		{
			ID: "community.support", Category: cat, Points: 1,
			Description:    "Support channels are documented",
			Recommendation: "Add a SUPPORT.md or a Support section in the README pointing to help channels.",
			Predicate: func(s *schema.Snapshot) bool {
				return s.HasRootFile("SUPPORT") || s.HasFile(".github/SUPPORT.md") || s.ReadmeContains("support")
			},
		},
	}
}

// hygieneCheckpoints: 10 items, 10 points.
func hygieneCheckpoints() []Checkpoint {
	cat := schema.HygieneCategory
	return []Checkpoint{
		{
			ID: "hygiene.gitignore", Category: cat, Points: 1,
			Description:    "A .gitignore is present",
			Recommendation: "Add a .gitignore tuned to the project's toolchain.",
			Predicate:      func(s *schema.Snapshot) bool { return s.HasFile(".gitignore") },
		},
		{
			ID: "hygiene.not-archived", Category: cat, Points: 1,
			Description:    "The repository is not archived",
			Recommendation: "Archived repositories are read-only; fork or unarchive before relying on one.",
			Predicate:      func(s *schema.Snapshot) bool { return !s.Archived },
		},
		{
			ID: "hygiene.not-fork", Category: cat, Points: 1,
			Description:    "The repository is a source project, not a fork",
			Recommendation: "",
			Predicate:      func(s *schema.Snapshot) bool { return !s.IsFork },
		},
		{
			ID: "hygiene.modern-default-branch", Category: cat, Points: 1,
			Description:    "The default branch uses a modern name",
			Recommendation: "Rename the default branch to main.",
			Predicate:      func(s *schema.Snapshot) bool { return s.DefaultBranch == "main" || s.DefaultBranch == "trunk" },
		},
		{
			ID: "hygiene.reasonable-size", Category: cat, Points: 1,
			Description:    "The repository is not bloated (under 500 MB)",
			Recommendation: "Move large assets out of git (LFS, release artifacts) to keep clones fast.",
			Predicate:      func(s *schema.Snapshot) bool { return s.SizeKB < 512_000 },
		},
		{
			ID: "hygiene.no-binaries", Category: cat, Points: 1,
			Description:    "No compiled artifacts are committed",
			Recommendation: "Remove compiled artifacts (.exe, .dll, .o, .class) from version control.",
			Predicate: func(s *schema.Snapshot) bool {
				return !s.MatchGlob("**/*.exe") && !s.MatchGlob("**/*.dll") && !s.MatchGlob("**/*.o") && !s.MatchGlob("**/*.class")
			},
		},
		{
			ID: "hygiene.no-editor-droppings", Category: cat, Points: 1,
			Description:    "No editor or OS droppings are committed",
			Recommendation: "Remove .DS_Store, Thumbs.db and swap files; add them to .gitignore.",
			Predicate: func(s *schema.Snapshot) bool {
				return !s.MatchGlob("**/.DS_Store") && !s.MatchGlob("**/Thumbs.db") && !s.MatchGlob("**/*.swp")
			},
		},
		{
			ID: "hygiene.no-logs", Category: cat, Points: 1,
			Description:    "No log files are committed",
			Recommendation: "Remove committed .log files and ignore them going forward.",
			Predicate:      func(s *schema.Snapshot) bool { return !s.MatchGlob("**/*.log") },
		},
		{
			ID: "hygiene.tidy-root", Category: cat, Points: 1,
			Description:    "The repository root stays tidy (at most 25 root files)",
			Recommendation: "Move auxiliary files into subdirectories; a crowded root hides the entrypoints.",
			Predicate: func(s *schema.Snapshot) bool {
				rootFiles := 0
				for _, f := range s.Files {
					if !strings.Contains(f, "/") {
						rootFiles++
					}
				}
				return rootFiles > 0 && rootFiles <= 25
			},
		},
		{
			ID: "hygiene.source-layout", Category: cat, Points: 1,
			Description:    "Source code is organized under conventional directories",
			Recommendation: "Organize sources under conventional directories (src/, lib/, cmd/, internal/, pkg/, app/).",
			Predicate: func(s *schema.Snapshot) bool {
				for _, dir := range []string{"src", "lib", "cmd", "internal", "pkg", "app"} {
					if s.HasDir(dir) {
						return true
					}
				}
				return false
			},
		},
	}
}

// activityCheckpoints: 10 items, 10 points. All recency is measured from
// the snapshot capture time, never from the wall clock, so evaluation stays
// deterministic for a fixed snapshot.
func activityCheckpoints() []Checkpoint {
	cat := schema.ActivityCategory
	return []Checkpoint{
		{
			ID: "activity.recent-push", Category: cat, Points: 1,
			Description:    "The repository received a push in the last 90 days",
			Recommendation: "Revive development or clearly mark the project as maintenance-only.",
			Predicate: func(s *schema.Snapshot) bool {
				days := s.DaysSincePush()
				return days >= 0 && days <= 90
			},
		},
		{
			ID: "activity.commits-30d", Category: cat, Points: 1,
			Description:    "At least one commit landed in the last 30 days",
			Recommendation: "Land pending work regularly; long-lived silent gaps erode confidence.",
			Predicate:      func(s *schema.Snapshot) bool { return s.CommitsSince(recentWindow) >= 1 },
		},
		{
			ID: "activity.steady-cadence", Category: cat, Points: 1,
			Description:    "Five or more commits landed in the last 90 days",
			Recommendation: "Keep a steady commit cadence; batching months of work hides progress.",
			Predicate:      func(s *schema.Snapshot) bool { return s.CommitsSince(steadyWindow) >= 5 },
		},
		{
			ID: "activity.not-abandoned", Category: cat, Points: 1,
			Description:    "The repository saw activity within the last year",
			Recommendation: "Archive the repository if it is no longer maintained so users are not misled.",
			Predicate: func(s *schema.Snapshot) bool {
				days := s.DaysSincePush()
				return days >= 0 && days <= 365
			},
		},
		{
			ID: "activity.has-releases", Category: cat, Points: 1,
			Description:    "The project publishes releases",
			Recommendation: "Publish tagged releases so consumers can depend on stable versions.",
			Predicate:      func(s *schema.Snapshot) bool { return len(s.Releases) > 0 },
		},
		{
			ID: "activity.recent-release", Category: cat, Points: 1,
			Description:    "A release was published in the last year",
			Recommendation: "Cut a fresh release; unreleased fixes on the default branch help nobody.",
			Predicate: func(s *schema.Snapshot) bool {
				for _, r := range s.Releases {
					if !r.PublishedAt.IsZero() && s.FetchedAt.Sub(r.PublishedAt) <= abandonedWindow {
						return true
					}
				}
				return false
			},
		},
		{
			ID: "activity.issue-backlog", Category: cat, Points: 1,
			Description:    "The open issue backlog is under control (fewer than 200)",
			Recommendation: "Triage the issue backlog; close stale issues and label the rest.",
			Predicate:      func(s *schema.Snapshot) bool { return s.OpenIssues < 200 },
		},
		{
			ID: "activity.recent-authors", Category: cat, Points: 1,
			Description:    "Recent commits come from more than one author",
			Recommendation: "Share recent work across maintainers to reduce single-person risk.",
			Predicate: func(s *schema.Snapshot) bool {
				authors := make(map[string]struct{})
				for _, c := range s.RecentCommits {
					if c.Author != "" {
						authors[c.Author] = struct{}{}
					}
				}
				return len(authors) >= 2
			},
		},
		{
			ID: "activity.mature", Category: cat, Points: 1,
			Description:    "The repository is older than 30 days",
			Recommendation: "Let the project accumulate history before treating its signals as stable.",
			Predicate: func(s *schema.Snapshot) bool {
				return !s.CreatedAt.IsZero() && s.FetchedAt.Sub(s.CreatedAt) > recentWindow
			},
		},
		{
			ID: "activity.commit-messages", Category: cat, Points: 1,
			Description:    "Recent commit messages are descriptive",
			Recommendation: "Write commit subjects that describe the change; avoid bare 'fix' or 'wip'.",
			Predicate: func(s *schema.Snapshot) bool {
				if len(s.RecentCommits) == 0 {
					return false
				}
				descriptive := 0
				for _, c := range s.RecentCommits {
					subject := strings.TrimSpace(strings.SplitN(c.Message, "\n", 2)[0])
					if len(subject) >= 10 {
						descriptive++
					}
				}
				return descriptive*2 >= len(s.RecentCommits)
			},
		},
	}
}

// discoveryCheckpoints: 5 items, 5 points.
func discoveryCheckpoints() []Checkpoint {
	cat := schema.DiscoveryCategory
	return []Checkpoint{
		{
			ID: "discovery.topics", Category: cat, Points: 1,
			Description:    "The repository declares topics",
			Recommendation: "Add topics so the project shows up in platform search and browse pages.",
			Predicate:      func(s *schema.Snapshot) bool { return len(s.Topics) >= 1 },
		},
		{
			ID: "discovery.rich-topics", Category: cat, Points: 1,
			Description:    "The repository declares three or more topics",
			Recommendation: "Add more specific topics (language, domain, use case) to widen discovery.",
			Predicate:      func(s *schema.Snapshot) bool { return len(s.Topics) >= 3 },
		},
		{
			ID: "discovery.description-quality", Category: cat, Points: 1,
			Description:    "The description is substantial (at least 20 characters)",
			Recommendation: "Write a one-sentence description that states what the project does.",
			Predicate:      func(s *schema.Snapshot) bool { return len(strings.TrimSpace(s.Description)) >= 20 },
		},
		{
			ID: "discovery.homepage-link", Category: cat, Points: 1,
			Description:    "A homepage or published site is linked",
			Recommendation: "Link the project homepage or enable a published documentation site.",
			Predicate: func(s *schema.Snapshot) bool {
				return strings.TrimSpace(s.Homepage) != "" || s.HasPages
			},
		},
		{
			ID: "discovery.traction", Category: cat, Points: 1,
			Description:    "The project shows community traction (five or more stars)",
			Recommendation: "",
			Predicate:      func(s *schema.Snapshot) bool { return s.Stars >= 5 },
		},
	}
}

// pathBase returns the final path element without importing path for one call site.
func pathBase(p string) string {
	if idx := strings.LastIndex(p, "/"); idx >= 0 {
		return p[idx+1:]
	}
	return p
}
