package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Initialize prepares the terminal environment for cellstate TUIs.
// It checks for environment variables that force color output
// (`CLICOLOR_FORCE`, `COLORTERM`) and sets the appropriate lipgloss
// color profile when present, so colors survive non-interactive and CI
// environments. Call it at the start of the TUI's main function.
func Initialize() {
	if os.Getenv("CLICOLOR_FORCE") == "1" || os.Getenv("COLORTERM") == "truecolor" {
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}
