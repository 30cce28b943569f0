package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatePriority(t *testing.T) {
	// Correctable outranks everything because it is actionable.
	assert.Greater(t, StateCorrectable.Priority(), StateInvalid.Priority())
	assert.Greater(t, StateInvalid.Priority(), StateCorrected.Priority())
	assert.Greater(t, StateCorrected.Priority(), StateNormal.Priority())
}

func TestFullStateZeroValue(t *testing.T) {
	var f FullState
	assert.True(t, f.IsZero())
	assert.False(t, f.Actionable())
	assert.Equal(t, StateNormal, f.Status)
	assert.Equal(t, StateNormal, f.DisplayStatus())
}

func TestDisplayStatusPrefersCorrectable(t *testing.T) {
	f := FullState{
		Status:      StateInvalid,
		Detail:      "bad date",
		Suggestions: []Suggestion{{Original: "1/2/20", Proposed: "2020-01-02", RuleID: "date-iso"}},
	}
	assert.Equal(t, StateCorrectable, f.DisplayStatus())

	f.Suggestions = nil
	assert.Equal(t, StateInvalid, f.DisplayStatus())
}

func TestPartialApplyPreservesUnspecifiedFields(t *testing.T) {
	cur := FullState{
		Suggestions: []Suggestion{{Original: "a", Proposed: "b", RuleID: "trim"}},
	}

	// A validation-only partial must not touch suggestions.
	next := Validation(StateInvalid, "bad value").Apply(cur)
	require.Len(t, next.Suggestions, 1)
	assert.Equal(t, StateInvalid, next.Status)
	assert.Equal(t, "bad value", next.Detail)

	// A suggestion-only partial must not touch status or detail.
	next = Suggest([]Suggestion{{Original: "x", Proposed: "y", RuleID: "r"}}).Apply(next)
	assert.Equal(t, StateInvalid, next.Status)
	assert.Equal(t, "bad value", next.Detail)
	require.Len(t, next.Suggestions, 1)
	assert.Equal(t, "y", next.Suggestions[0].Proposed)
}

func TestPartialApplyDoesNotMutateInput(t *testing.T) {
	cur := FullState{Status: StateInvalid, Detail: "old"}
	_ = Validation(StateNormal, "").Apply(cur)
	assert.Equal(t, StateInvalid, cur.Status)
	assert.Equal(t, "old", cur.Detail)
}

func TestPartialApplyCopiesSuggestions(t *testing.T) {
	suggs := []Suggestion{{Original: "a", Proposed: "b", RuleID: "r"}}
	next := Suggest(suggs).Apply(FullState{})
	suggs[0].Proposed = "mutated"
	assert.Equal(t, "b", next.Suggestions[0].Proposed)
}

func TestAcceptedClearsSuggestions(t *testing.T) {
	cur := FullState{
		Status:      StateCorrectable,
		Suggestions: []Suggestion{{Original: "a", Proposed: "b", RuleID: "r"}},
	}
	next := Accepted().Apply(cur)
	assert.Equal(t, StateCorrected, next.Status)
	assert.Empty(t, next.Detail)
	assert.Empty(t, next.Suggestions)
	assert.False(t, next.Actionable())
}

func TestFullStateEqual(t *testing.T) {
	a := FullState{Status: StateInvalid, Detail: "d", Suggestions: []Suggestion{{Original: "1", Proposed: "2", RuleID: "r"}}}
	b := FullState{Status: StateInvalid, Detail: "d", Suggestions: []Suggestion{{Original: "1", Proposed: "2", RuleID: "r"}}}
	assert.True(t, a.Equal(b))

	b.Suggestions[0].RuleID = "other"
	assert.False(t, a.Equal(b))

	// Suggestion order matters.
	c := FullState{Suggestions: []Suggestion{{RuleID: "a"}, {RuleID: "b"}}}
	d := FullState{Suggestions: []Suggestion{{RuleID: "b"}, {RuleID: "a"}}}
	assert.False(t, c.Equal(d))
}

func TestPartialIsEmpty(t *testing.T) {
	assert.True(t, Partial{}.IsEmpty())
	assert.False(t, Validation(StateNormal, "").IsEmpty())
	assert.False(t, Suggest(nil).IsEmpty())
}
