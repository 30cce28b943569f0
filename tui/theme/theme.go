// Package theme defines the lipgloss styles shared by cellstate TUIs,
// including the per-state cell styles the grid renderer uses.
package theme

import "github.com/charmbracelet/lipgloss"

// Kanagawa-derived palette (dark/light adaptive).
const (
	kanagawaDarkError      = "#E82424"
	kanagawaDarkWarning    = "#FF9E3B"
	kanagawaDarkSuccess    = "#98BB6C"
	kanagawaDarkAccent     = "#7E9CD8"
	kanagawaDarkMutedText  = "#727169"
	kanagawaLightError     = "#D7263D"
	kanagawaLightWarning   = "#CC6D00"
	kanagawaLightSuccess   = "#6F894E"
	kanagawaLightAccent    = "#4D699B"
	kanagawaLightMutedText = "#6C7086"
)

// ANSI fallback palette for terminals without truecolor.
const (
	terminalError     = "1"
	terminalWarning   = "3"
	terminalSuccess   = "2"
	terminalAccent    = "4"
	terminalMutedText = "8"
)

// Theme groups the styles used across cellstate TUI components.
type Theme struct {
	// Semantic styles
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Accent  lipgloss.Style
	Muted   lipgloss.Style // De-emphasized text

	// Table styles
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style

	// Cell state styles. A cell presents exactly one of these,
	// resolved by its display status.
	CellNormal      lipgloss.Style
	CellInvalid     lipgloss.Style
	CellCorrectable lipgloss.Style
	CellCorrected   lipgloss.Style

	// Selection styles
	Highlight lipgloss.Style
}

// DefaultTheme is the theme used when no theme is configured.
var DefaultTheme = NewKanagawaTheme()

// Select returns the theme registered under name, falling back to the
// default for unknown names.
func Select(name string) *Theme {
	switch name {
	case "terminal":
		return NewTerminalTheme()
	case "", "kanagawa":
		return NewKanagawaTheme()
	default:
		return DefaultTheme
	}
}

// NewKanagawaTheme builds the adaptive truecolor theme.
func NewKanagawaTheme() *Theme {
	errColor := lipgloss.AdaptiveColor{Light: kanagawaLightError, Dark: kanagawaDarkError}
	warnColor := lipgloss.AdaptiveColor{Light: kanagawaLightWarning, Dark: kanagawaDarkWarning}
	okColor := lipgloss.AdaptiveColor{Light: kanagawaLightSuccess, Dark: kanagawaDarkSuccess}
	accentColor := lipgloss.AdaptiveColor{Light: kanagawaLightAccent, Dark: kanagawaDarkAccent}
	mutedColor := lipgloss.AdaptiveColor{Light: kanagawaLightMutedText, Dark: kanagawaDarkMutedText}

	return &Theme{
		Success: lipgloss.NewStyle().Foreground(okColor),
		Error:   lipgloss.NewStyle().Foreground(errColor),
		Warning: lipgloss.NewStyle().Foreground(warnColor),
		Accent:  lipgloss.NewStyle().Foreground(accentColor),
		Muted:   lipgloss.NewStyle().Foreground(mutedColor),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(accentColor),
		TableRow:    lipgloss.NewStyle(),

		CellNormal:      lipgloss.NewStyle(),
		CellInvalid:     lipgloss.NewStyle().Foreground(errColor),
		CellCorrectable: lipgloss.NewStyle().Foreground(warnColor).Underline(true),
		CellCorrected:   lipgloss.NewStyle().Foreground(okColor),

		Highlight: lipgloss.NewStyle().Bold(true).Foreground(accentColor).Reverse(true),
	}
}

// NewTerminalTheme builds a theme restricted to the 16 ANSI colors.
func NewTerminalTheme() *Theme {
	return &Theme{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(terminalSuccess)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(terminalError)),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(terminalWarning)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(terminalAccent)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(terminalMutedText)),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(terminalAccent)),
		TableRow:    lipgloss.NewStyle(),

		CellNormal:      lipgloss.NewStyle(),
		CellInvalid:     lipgloss.NewStyle().Foreground(lipgloss.Color(terminalError)),
		CellCorrectable: lipgloss.NewStyle().Foreground(lipgloss.Color(terminalWarning)).Underline(true),
		CellCorrected:   lipgloss.NewStyle().Foreground(lipgloss.Color(terminalSuccess)),

		Highlight: lipgloss.NewStyle().Bold(true).Reverse(true),
	}
}
