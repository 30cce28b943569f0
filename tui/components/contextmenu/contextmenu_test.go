package contextmenu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabulab/cellstate/cell"
	"github.com/tabulab/cellstate/store"
	"github.com/tabulab/cellstate/tui/theme"
	"github.com/tabulab/cellstate/view"
)

func setup(t *testing.T) (*store.Store, view.Reader) {
	t.Helper()
	s := store.New()
	s.RebuildHeaderMap([]string{"Name", "Value"})
	m := view.New(s)
	t.Cleanup(m.Close)
	return s, m
}

func TestBuildActionableCell(t *testing.T) {
	s, reader := setup(t)
	s.UpdateStates(map[cell.Coordinate]cell.Partial{
		{Row: 1, Col: 0}: cell.Suggest([]cell.Suggestion{
			{Original: " a", Proposed: "a", RuleID: "trim-space"},
			{Original: " a", Proposed: "A", RuleID: "title-case"},
		}),
	})

	actions := Build(reader, 1, 0)
	require.Len(t, actions, 3, "one per suggestion plus Show detail")

	assert.True(t, actions[0].Enabled)
	assert.Equal(t, ActionApplySuggestion, actions[0].Kind)
	assert.Equal(t, "trim-space", actions[0].Suggestion.RuleID)
	assert.Contains(t, actions[0].Label, `"a"`)

	assert.Equal(t, "title-case", actions[1].Suggestion.RuleID)

	// No detail on this cell, so Show detail is disabled.
	assert.Equal(t, ActionShowDetail, actions[2].Kind)
	assert.False(t, actions[2].Enabled)
}

func TestBuildPlainCellHasNoEnabledActions(t *testing.T) {
	_, reader := setup(t)
	actions := Build(reader, 0, 0)
	for _, a := range actions {
		assert.False(t, a.Enabled, "default cell must have nothing enabled: %s", a.Label)
	}
}

func TestBuildInvalidCellEnablesDetail(t *testing.T) {
	s, reader := setup(t)
	s.UpdateStates(map[cell.Coordinate]cell.Partial{
		{Row: 0, Col: 1}: cell.Validation(cell.StateInvalid, "not a number"),
	})

	actions := Build(reader, 0, 1)
	require.Len(t, actions, 2)
	assert.False(t, actions[0].Enabled, "no suggestions, apply disabled")
	assert.True(t, actions[1].Enabled)
}

func TestRenderMarksSelection(t *testing.T) {
	_, reader := setup(t)
	out := Render(theme.DefaultTheme, Build(reader, 0, 0), 0)
	assert.Contains(t, out, ">")
	assert.Contains(t, out, "Apply correction")
	assert.Contains(t, out, "Show detail")
}
