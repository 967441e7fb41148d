package cmd

import (
	"github.com/repograde/repograde/core"
	"github.com/repograde/repograde/internal/contract"
	"github.com/spf13/cobra"
)

// downloadCmd renders a stored report as a Markdown document.
var downloadCmd = &cobra.Command{
	Use:   "download <report-id>",
	Short: "Render a stored report as a Markdown document",
	Long: `Look up a previously persisted report by ID and render it as a complete
Markdown document. Rendering reads only the stored record, so downloading
the same report twice always yields byte-identical output regardless of how
the repository has changed since the check ran.

Examples:
  # Print the document to stdout
  repograde download 6f1c9a40-0b7e-4c11-9a52-2f8d3f2a9b10

  # Write it to a file instead
  repograde download 6f1c9a40-0b7e-4c11-9a52-2f8d3f2a9b10 --output-file report.md`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		if err := core.ExecuteDownload(rootCtx, cfg, storeManager, args[0]); err != nil {
			contract.LogFatal("Download failed", err)
		}
	},
}
