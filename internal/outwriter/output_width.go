package outwriter

import (
	"os"

	"github.com/huangsam/gridiron/internal/contract"
	"golang.org/x/term"
)

// getMaxTableNameWidth calculates the maximum width for player names in table output
// based on terminal width and the fixed columns around the name.
func getMaxTableNameWidth(cfg *contract.Config, fixedWidth int) int {
	termWidth := cfg.Width
	if termWidth <= 0 {
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Borders, separators and padding
	available := termWidth - fixedWidth - 20
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
