package producer

import (
	"strings"
	"time"

	"github.com/tabulab/cellstate/adapter"
	"github.com/tabulab/cellstate/cell"
	"github.com/tabulab/cellstate/dataset"
)

// Corrector proposes fixes for the defects the validator can flag as
// correctable: surrounding whitespace and non-ISO dates.
type Corrector struct {
	rules Rules
}

// NewCorrector creates a corrector for a rule set.
func NewCorrector(rules Rules) *Corrector {
	return &Corrector{rules: rules}
}

// Suggest scans the dataset for fixable values and emits the
// correction result payload. Cells with nothing to fix are absent from
// the result.
func (c *Corrector) Suggest(d *dataset.Dataset, generation uint64) adapter.CorrectionResult {
	suggestions := make(map[adapter.SuggestionKey][]cell.Suggestion)

	for col, name := range d.Columns() {
		rule, ok := c.rules.Columns[name]
		if !ok {
			continue
		}
		for row := 0; row < d.RowCount(); row++ {
			value := d.Value(row, col)
			if suggs := suggestFixes(value, rule); len(suggs) > 0 {
				suggestions[adapter.SuggestionKey{Row: row, Column: name}] = suggs
			}
		}
	}

	return adapter.CorrectionResult{
		Generation:  generation,
		Suggestions: suggestions,
	}
}

func suggestFixes(value string, rule ColumnRule) []cell.Suggestion {
	var suggs []cell.Suggestion

	trimmed := strings.TrimSpace(value)
	if trimmed != value && trimmed != "" {
		suggs = append(suggs, cell.Suggestion{
			Original: value,
			Proposed: trimmed,
			RuleID:   "trim-space",
		})
	}

	if rule.Type == "date" && trimmed != "" {
		if _, err := time.Parse("2006-01-02", trimmed); err != nil {
			for _, layout := range recoverableDateLayouts {
				if parsed, err := time.Parse(layout, trimmed); err == nil {
					suggs = append(suggs, cell.Suggestion{
						Original: value,
						Proposed: parsed.Format("2006-01-02"),
						RuleID:   "date-iso",
					})
					break
				}
			}
		}
	}

	return suggs
}
