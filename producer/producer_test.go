package producer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabulab/cellstate/adapter"
	"github.com/tabulab/cellstate/dataset"
)

func demoRules() Rules {
	return Rules{Columns: map[string]ColumnRule{
		"Name":  {Required: true, MaxLength: 8},
		"Date":  {Type: "date"},
		"Value": {Type: "number"},
	}}
}

func TestValidatorCoversOnlyConfiguredColumns(t *testing.T) {
	d := dataset.New([]string{"Name", "Comment"}, [][]string{{"alice", "hi"}})
	res := NewValidator(demoRules()).Validate(d, 3)

	assert.Equal(t, uint64(3), res.Generation)
	assert.Equal(t, []int{0}, res.Rows)
	assert.Contains(t, res.Columns, "Name")
	assert.NotContains(t, res.Columns, "Comment", "unruled columns stay out of the result")
	assert.NotContains(t, res.Columns, "Date", "rules for absent columns produce nothing")
}

func TestValidatorChecks(t *testing.T) {
	d := dataset.New([]string{"Name", "Date", "Value"}, [][]string{
		{"alice", "2020-01-02", "10"},
		{"", "1/2/2020", "abc"},
		{"bob ", "nonsense", "2.5"},
		{"charlemagne-x", "2020-02-03", ""},
	})
	res := NewValidator(demoRules()).Validate(d, 0)

	name := res.Columns["Name"]
	require.Len(t, name, 4)
	assert.Equal(t, adapter.StatusValid, name[0].Status)
	assert.Equal(t, adapter.StatusInvalid, name[1].Status)
	assert.Equal(t, "value is required", name[1].Message)
	assert.Equal(t, adapter.StatusCorrectable, name[2].Status)
	assert.Equal(t, "surrounding whitespace", name[2].Message)
	assert.Equal(t, adapter.StatusInvalid, name[3].Status)
	assert.Equal(t, "value exceeds maximum length", name[3].Message)

	date := res.Columns["Date"]
	assert.Equal(t, adapter.StatusValid, date[0].Status)
	assert.Equal(t, adapter.StatusCorrectable, date[1].Status)
	assert.Equal(t, adapter.StatusInvalid, date[2].Status)

	value := res.Columns["Value"]
	assert.Equal(t, adapter.StatusValid, value[0].Status)
	assert.Equal(t, adapter.StatusInvalid, value[1].Status)
	assert.Equal(t, adapter.StatusValid, value[2].Status)
	assert.Equal(t, adapter.StatusValid, value[3].Status, "empty non-required value is fine")
}

func TestCorrectorSuggestions(t *testing.T) {
	d := dataset.New([]string{"Name", "Date"}, [][]string{
		{" alice ", "1/2/2020"},
		{"bob", "2020-01-02"},
	})
	res := NewCorrector(demoRules()).Suggest(d, 7)

	assert.Equal(t, uint64(7), res.Generation)

	trim := res.Suggestions[adapter.SuggestionKey{Row: 0, Column: "Name"}]
	require.Len(t, trim, 1)
	assert.Equal(t, "alice", trim[0].Proposed)
	assert.Equal(t, "trim-space", trim[0].RuleID)

	date := res.Suggestions[adapter.SuggestionKey{Row: 0, Column: "Date"}]
	require.Len(t, date, 1)
	assert.Equal(t, "2020-01-02", date[0].Proposed)
	assert.Equal(t, "date-iso", date[0].RuleID)

	// Clean cells produce no suggestions at all.
	assert.NotContains(t, res.Suggestions, adapter.SuggestionKey{Row: 1, Column: "Name"})
	assert.NotContains(t, res.Suggestions, adapter.SuggestionKey{Row: 1, Column: "Date"})
}

func TestProducersFeedAdaptersEndToEnd(t *testing.T) {
	// The full pipeline: dataset -> producers -> adapters -> store.
	d := dataset.New([]string{"Name", "Date"}, [][]string{{" alice ", "1/2/2020"}})

	s := newBoundStore(t, d)
	validation := adapter.NewValidation(s)
	correction := adapter.NewCorrection(s)

	rules := demoRules()
	validation.OnResult(NewValidator(rules).Validate(d, s.Generation()))
	correction.OnResult(NewCorrector(rules).Suggest(d, s.Generation()))

	// (0,0) " alice ": correctable whitespace with a trim suggestion.
	got := s.GetState(cellCoord(0, 0))
	assert.Equal(t, "surrounding whitespace", got.Detail)
	require.Len(t, got.Suggestions, 1)

	// (0,1) "1/2/2020": correctable date with an ISO suggestion.
	got = s.GetState(cellCoord(0, 1))
	require.Len(t, got.Suggestions, 1)
	assert.Equal(t, "2020-01-02", got.Suggestions[0].Proposed)
}
