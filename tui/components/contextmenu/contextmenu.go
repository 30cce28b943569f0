// Package contextmenu builds the per-cell action list from the view
// model's read-only state. It decides which actions are enabled; it
// never mutates state itself. Accepting a correction is routed back
// through the correction adapter by whoever owns the menu.
package contextmenu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tabulab/cellstate/cell"
	"github.com/tabulab/cellstate/tui/theme"
	"github.com/tabulab/cellstate/view"
)

// ActionKind identifies what selecting an entry should do.
type ActionKind int

const (
	// ActionApplySuggestion applies the attached suggestion.
	ActionApplySuggestion ActionKind = iota
	// ActionShowDetail shows the cell's error detail.
	ActionShowDetail
)

// Action is one context-menu entry.
type Action struct {
	Kind       ActionKind
	Label      string
	Enabled    bool
	Suggestion cell.Suggestion
}

// Build assembles the action list for one cell. "Apply correction" is
// enabled iff the cell has pending suggestions; "Show detail" iff it
// carries an error detail.
func Build(reader view.Reader, row, col int) []Action {
	state := reader.StateAt(row, col)

	var actions []Action
	for _, s := range state.Suggestions {
		actions = append(actions, Action{
			Kind:       ActionApplySuggestion,
			Label:      fmt.Sprintf("Apply correction: %q → %q (%s)", s.Original, s.Proposed, s.RuleID),
			Enabled:    true,
			Suggestion: s,
		})
	}
	if len(actions) == 0 {
		actions = append(actions, Action{
			Kind:    ActionApplySuggestion,
			Label:   "Apply correction",
			Enabled: false,
		})
	}

	actions = append(actions, Action{
		Kind:    ActionShowDetail,
		Label:   "Show detail",
		Enabled: state.Detail != "",
	})

	return actions
}

// Render draws the menu with the cursor on the selected entry.
func Render(t *theme.Theme, actions []Action, selected int) string {
	var b strings.Builder
	for i, a := range actions {
		label := a.Label
		switch {
		case !a.Enabled:
			label = t.Muted.Render(label)
		case i == selected:
			label = t.Highlight.Render(label)
		}
		if i == selected {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		b.WriteString(label)
		if i < len(actions)-1 {
			b.WriteString("\n")
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent.GetForeground()).
		Padding(0, 1)
	return box.Render(b.String())
}
