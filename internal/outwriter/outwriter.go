// Package outwriter has output and writer logic for the summary table.
package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/strengthlab/velomax/internal/contract"
)

// getMaxTableNameWidth calculates the maximum width for athlete names in
// table output based on terminal width and the fixed numeric columns.
func getMaxTableNameWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Rank + Pred Max + MSE + R2 + Sets + Label with borders/padding
	const baseWidth = 55

	available := termWidth - baseWidth
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}

// truncateName shortens an athlete name to maxWidth with an ellipsis.
func truncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}
