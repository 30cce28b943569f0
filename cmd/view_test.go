package cmd

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabulab/cellstate/adapter"
	"github.com/tabulab/cellstate/cell"
	"github.com/tabulab/cellstate/dataset"
	"github.com/tabulab/cellstate/logging"
	"github.com/tabulab/cellstate/producer"
	"github.com/tabulab/cellstate/store"
	"github.com/tabulab/cellstate/tui/components/grid"
	"github.com/tabulab/cellstate/tui/theme"
	"github.com/tabulab/cellstate/view"
)

func newApp(t *testing.T, d *dataset.Dataset, rules producer.Rules) (viewApp, *store.Store) {
	t.Helper()

	s := store.New()
	s.RebuildHeaderMap(d.Columns())
	vm := view.New(s)
	t.Cleanup(vm.Close)

	app := viewApp{
		grid:       grid.New(vm, d, theme.Select("terminal")),
		store:      s,
		validation: adapter.NewValidation(s),
		correction: adapter.NewCorrection(s),
		validator:  producer.NewValidator(rules),
		corrector:  producer.NewCorrector(rules),
		data:       d,
		log:        logging.NewLogger("view-test"),
	}
	return app, s
}

func demoRules() producer.Rules {
	return producer.Rules{Columns: map[string]producer.ColumnRule{
		"Name": {Required: true},
		"Date": {Type: "date"},
	}}
}

// Drives the producer passes the way the running program does: Init
// returns the pass commands, their messages feed the adapters in
// Update, and the store ends up annotated.
func TestViewAppRunsProducerPipeline(t *testing.T) {
	d := dataset.New([]string{"Name", "Date"}, [][]string{
		{"alice", "1/2/2020"},
		{"", "2020-05-06"},
	})
	app, s := newApp(t, d, demoRules())

	drainCmd(t, app, app.Init())

	// (1,0) empty required name -> invalid.
	got := s.GetState(cell.Coordinate{Row: 1, Col: 0})
	assert.Equal(t, cell.StateInvalid, got.Status)
	assert.Equal(t, "value is required", got.Detail)

	// (0,1) non-ISO date -> correctable with an ISO suggestion.
	got = s.GetState(cell.Coordinate{Row: 0, Col: 1})
	assert.Equal(t, cell.StateCorrectable, got.Status)
	require.Len(t, got.Suggestions, 1)
	assert.Equal(t, "2020-01-02", got.Suggestions[0].Proposed)
}

func TestViewAppAcceptedFlowsThroughCorrectionAdapter(t *testing.T) {
	d := dataset.New([]string{"Date"}, [][]string{{"1/2/2020"}})
	app, s := newApp(t, d, demoRules())
	drainCmd(t, app, app.Init())

	model, _ := app.Update(grid.AcceptedMsg{Row: 0, Column: "Date"})
	app = model.(viewApp)

	got := s.GetState(cell.Coordinate{Row: 0, Col: 0})
	assert.Equal(t, cell.StateCorrected, got.Status)
	assert.Empty(t, got.Suggestions)
}

// drainCmd executes commands depth-first and feeds every produced
// message back into Update, mimicking the bubbletea runtime
// synchronously.
func drainCmd(t *testing.T, app viewApp, cmd tea.Cmd) viewApp {
	t.Helper()
	if cmd == nil {
		return app
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			app = drainCmd(t, app, c)
		}
		return app
	}

	model, next := app.Update(msg)
	app = model.(viewApp)
	return drainCmd(t, app, next)
}
