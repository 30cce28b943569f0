// Package cell defines the value types for per-cell semantic state:
// the state enum, correction suggestions, the full per-cell snapshot,
// and the partial update applied by producer adapters.
package cell

import "fmt"

// State classifies a cell's validation outcome.
type State int

const (
	// StateNormal is the default; cells without a stored state are Normal.
	StateNormal State = iota
	// StateInvalid marks a cell that failed validation with no known fix.
	StateInvalid
	// StateCorrectable marks a cell with at least one proposed correction.
	StateCorrectable
	// StateCorrected marks a cell whose correction has been accepted.
	StateCorrected
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateInvalid:
		return "invalid"
	case StateCorrectable:
		return "correctable"
	case StateCorrected:
		return "corrected"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Priority returns the display rank of the state. When a cell carries
// several aspects at once the highest-priority state wins:
// correctable > invalid > corrected > normal. Correctable outranks
// invalid because it is the actionable one.
func (s State) Priority() int {
	switch s {
	case StateCorrectable:
		return 3
	case StateInvalid:
		return 2
	case StateCorrected:
		return 1
	default:
		return 0
	}
}

// Suggestion is one proposed correction for a cell value.
type Suggestion struct {
	Original string `json:"original"`
	Proposed string `json:"proposed"`
	RuleID   string `json:"rule_id"`
}

// Coordinate identifies a cell by zero-based row and column index.
type Coordinate struct {
	Row int
	Col int
}

// String formats the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// FullState is an immutable snapshot of one cell's semantic state.
// The zero value is the default state every cell holds implicitly:
// Normal status, no detail, no suggestions.
type FullState struct {
	// Status is the validation outcome. Empty Detail when Normal.
	Status State
	// Detail is the human-readable error message for Invalid/Correctable cells.
	Detail string
	// Suggestions is the ordered list of proposed corrections.
	Suggestions []Suggestion
}

// Actionable reports whether the cell has at least one pending suggestion.
func (f FullState) Actionable() bool {
	return len(f.Suggestions) > 0
}

// DisplayStatus resolves the state shown to the user. A cell with
// pending suggestions always presents as correctable, even when its
// validation status alone would say invalid.
func (f FullState) DisplayStatus() State {
	if f.Actionable() {
		return StateCorrectable
	}
	return f.Status
}

// IsZero reports whether the snapshot equals the default state.
func (f FullState) IsZero() bool {
	return f.Status == StateNormal && f.Detail == "" && len(f.Suggestions) == 0
}

// Equal compares two snapshots field by field, including suggestion order.
func (f FullState) Equal(o FullState) bool {
	if f.Status != o.Status || f.Detail != o.Detail || len(f.Suggestions) != len(o.Suggestions) {
		return false
	}
	for i := range f.Suggestions {
		if f.Suggestions[i] != o.Suggestions[i] {
			return false
		}
	}
	return true
}

// Partial is a partial update to a FullState. Nil fields are left
// untouched by Apply, which is what lets the validation and correction
// adapters write disjoint fields of the same cell without clobbering
// each other.
type Partial struct {
	Status *State
	Detail *string
	// Suggestions replaces the stored suggestion list when
	// ReplaceSuggestions is true; otherwise it is ignored.
	Suggestions        []Suggestion
	ReplaceSuggestions bool
}

// Validation builds the partial a validation pass writes: status and
// detail only, suggestions untouched.
func Validation(status State, detail string) Partial {
	return Partial{Status: &status, Detail: &detail}
}

// Suggest builds the partial a correction pass writes: the suggestion
// list only, status and detail untouched.
func Suggest(suggestions []Suggestion) Partial {
	return Partial{Suggestions: suggestions, ReplaceSuggestions: true}
}

// Accepted builds the follow-up partial for a user-accepted correction:
// status becomes Corrected, the detail and pending suggestions are cleared.
func Accepted() Partial {
	status := StateCorrected
	detail := ""
	return Partial{Status: &status, Detail: &detail, Suggestions: nil, ReplaceSuggestions: true}
}

// Apply merges the partial over a current snapshot and returns the
// result. The input snapshot is not modified; the suggestion slice is
// copied so later mutation of the caller's slice cannot leak into
// stored state.
func (p Partial) Apply(cur FullState) FullState {
	next := cur
	if p.Status != nil {
		next.Status = *p.Status
	}
	if p.Detail != nil {
		next.Detail = *p.Detail
	}
	if p.ReplaceSuggestions {
		if len(p.Suggestions) == 0 {
			next.Suggestions = nil
		} else {
			next.Suggestions = append([]Suggestion(nil), p.Suggestions...)
		}
	}
	return next
}

// IsEmpty reports whether the partial specifies no fields at all.
func (p Partial) IsEmpty() bool {
	return p.Status == nil && p.Detail == nil && !p.ReplaceSuggestions
}
