// Package producer holds the demo validation and correction producers
// that drive the state engine in the cellstate CLI. They are
// deliberately small: the engine only stores and propagates outcomes,
// and these exist so there are outcomes to propagate. Real applications
// plug in their own producers and only reuse the adapter payloads.
package producer

// ColumnRule configures the checks applied to one column.
type ColumnRule struct {
	// Type is "string" (default), "number", or "date" (ISO 8601).
	Type string `yaml:"type"`
	// Required rejects empty values.
	Required bool `yaml:"required"`
	// MaxLength rejects values longer than this many runes; 0 disables.
	MaxLength int `yaml:"max_length"`
}

// Rules is the "rules" section of cellstate.yml.
type Rules struct {
	Columns map[string]ColumnRule `yaml:"columns"`
}

// Date layouts the corrector can normalize to ISO.
var recoverableDateLayouts = []string{
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
	"2.1.2006",
	"02.01.2006",
}
