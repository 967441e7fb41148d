package outwriter

import (
	"os"

	"github.com/repograde/repograde/internal/contract"
	"golang.org/x/term"
)

// getMaxDescriptionWidth calculates the maximum width for checkpoint
// descriptions in table output based on terminal width.
func getMaxDescriptionWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns (status, points) plus table
	// borders, separators and padding.
	baseWidth := 25

	available := termWidth - baseWidth
	if available < 20 {
		return 20
	}
	if available > 90 {
		return 90
	}
	return available
}
