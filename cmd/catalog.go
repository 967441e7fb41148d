package cmd

import (
	"github.com/repograde/repograde/core"
	"github.com/repograde/repograde/internal/contract"
	"github.com/spf13/cobra"
)

// catalogCmd prints the rubric definitions.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List every checkpoint in the compliance rubric",
	Long: `Print the full checkpoint catalog: each checkpoint's identifier, category,
point weight, and description, in evaluation order.

Useful for understanding what a score is composed of and which checkpoints
to target for improvement.

Examples:
  # Human-readable table
  repograde catalog

  # Export the rubric for documentation
  repograde catalog --output csv --output-file rubric.csv`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCatalog(cfg); err != nil {
			contract.LogFatal("Catalog listing failed", err)
		}
	},
}
