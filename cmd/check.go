package cmd

import (
	"github.com/repograde/repograde/core"
	"github.com/repograde/repograde/internal/contract"
	"github.com/repograde/repograde/internal/ghfetch"
	"github.com/spf13/cobra"
)

// checkCmd scores one repository and persists the resulting report.
var checkCmd = &cobra.Command{
	Use:   "check <repo-url>",
	Short: "Score a repository against the compliance rubric and persist the report",
	Long: `Fetch a point-in-time snapshot of a public GitHub repository, evaluate
every catalog checkpoint against it, and persist an immutable compliance
report with a fresh report ID.

The repository URL must be in the form https://github.com/<owner>/<repo>.
Each run produces a new report; earlier reports for the same repository are
never modified.

Examples:
  # Score a repository and print the summary table
  repograde check https://github.com/golang/go

  # Machine-readable output for pipelines
  repograde check https://github.com/golang/go --output json

  # Raise the fetch deadline for very large repositories
  repograde check https://github.com/torvalds/linux --fetch-timeout 3m`,
	Args:    cobra.ExactArgs(1),
	PreRunE: checkSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		fetcher := ghfetch.NewFetcher(cfg)
		if err := core.ExecuteCheck(rootCtx, cfg, fetcher, storeManager); err != nil {
			contract.LogFatal("Check failed", err)
		}
	},
}
