package producer

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/tabulab/cellstate/adapter"
	"github.com/tabulab/cellstate/dataset"
)

// Validator checks dataset values against configured column rules and
// emits the validation result payload the adapter consumes.
type Validator struct {
	rules Rules
}

// NewValidator creates a validator for a rule set.
func NewValidator(rules Rules) *Validator {
	return &Validator{rules: rules}
}

// Validate runs all configured checks over the dataset. Columns without
// a rule are omitted from the result entirely, which the adapter treats
// as "not covered by this pass". generation tags the result with the
// header-map generation it was computed against.
func (v *Validator) Validate(d *dataset.Dataset, generation uint64) adapter.ValidationResult {
	rows := make([]int, d.RowCount())
	for i := range rows {
		rows[i] = i
	}

	columns := make(map[string][]adapter.CellStatus)
	for col, name := range d.Columns() {
		rule, ok := v.rules.Columns[name]
		if !ok {
			continue
		}
		statuses := make([]adapter.CellStatus, d.RowCount())
		for row := range rows {
			statuses[row] = checkValue(d.Value(row, col), rule)
		}
		columns[name] = statuses
	}

	return adapter.ValidationResult{
		Generation: generation,
		Rows:       rows,
		Columns:    columns,
	}
}

func checkValue(value string, rule ColumnRule) adapter.CellStatus {
	trimmed := strings.TrimSpace(value)

	if trimmed == "" {
		if rule.Required {
			return adapter.CellStatus{Status: adapter.StatusInvalid, Message: "value is required"}
		}
		return adapter.CellStatus{Status: adapter.StatusValid}
	}

	if rule.MaxLength > 0 && utf8.RuneCountInString(trimmed) > rule.MaxLength {
		return adapter.CellStatus{Status: adapter.StatusInvalid, Message: "value exceeds maximum length"}
	}

	// A fixable defect beats a type check: the corrector can trim, so
	// report it as correctable before inspecting the trimmed value.
	if trimmed != value {
		return adapter.CellStatus{Status: adapter.StatusCorrectable, Message: "surrounding whitespace"}
	}

	switch rule.Type {
	case "number":
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			return adapter.CellStatus{Status: adapter.StatusInvalid, Message: "not a number"}
		}
	case "date":
		if _, err := time.Parse("2006-01-02", trimmed); err != nil {
			if isRecoverableDate(trimmed) {
				return adapter.CellStatus{Status: adapter.StatusCorrectable, Message: "non-ISO date format"}
			}
			return adapter.CellStatus{Status: adapter.StatusInvalid, Message: "not a valid date"}
		}
	}

	return adapter.CellStatus{Status: adapter.StatusValid}
}

func isRecoverableDate(value string) bool {
	for _, layout := range recoverableDateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return true
		}
	}
	return false
}
