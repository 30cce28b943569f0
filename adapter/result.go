// Package adapter translates producer result payloads into partial
// cell-state updates and submits them to the store. Each adapter owns a
// disjoint subset of the cell state fields: validation writes status
// and detail, correction writes suggestions. That disjointness is what
// makes the producers' arrival order irrelevant.
package adapter

import "github.com/tabulab/cellstate/cell"

// Producer status vocabulary for validation results.
const (
	StatusValid       = "VALID"
	StatusInvalid     = "INVALID"
	StatusCorrectable = "CORRECTABLE"
)

// CellStatus is one cell's outcome within a validation result.
type CellStatus struct {
	Status  string
	Message string
}

// ValidationResult is the payload delivered once per completed (or
// partially completed) validation pass. Columns maps a column name to
// per-row outcomes parallel to Rows; a column missing from the map was
// not covered by the pass and its cells are left untouched.
type ValidationResult struct {
	// Generation is the header-map generation the pass was computed
	// against. Results from an older generation are discarded whole
	// rather than mis-mapped onto the new column layout.
	Generation uint64
	Rows       []int
	Columns    map[string][]CellStatus
}

// SuggestionKey addresses one cell in a correction result by row index
// and column name.
type SuggestionKey struct {
	Row    int
	Column string
}

// CorrectionResult is the payload delivered once per completed
// correction-suggestion pass.
type CorrectionResult struct {
	Generation  uint64
	Suggestions map[SuggestionKey][]cell.Suggestion
}
