// Package cmd implements the cellstate subcommands.
package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tabulab/cellstate/adapter"
	"github.com/tabulab/cellstate/config"
	"github.com/tabulab/cellstate/dataset"
	"github.com/tabulab/cellstate/logging"
	"github.com/tabulab/cellstate/producer"
	"github.com/tabulab/cellstate/store"
	"github.com/tabulab/cellstate/tui"
	"github.com/tabulab/cellstate/tui/components/grid"
	"github.com/tabulab/cellstate/tui/theme"
	"github.com/tabulab/cellstate/view"
)

type validationResultMsg struct {
	res adapter.ValidationResult
}

type correctionResultMsg struct {
	res adapter.CorrectionResult
}

type fileChangedMsg struct{}

// viewApp wires the full pipeline behind the grid: dataset ->
// producers -> adapters -> store -> view model -> grid. Producer passes
// run as bubbletea commands (background goroutines); their results
// come back as messages and reach the adapters inside Update, which is
// how everything that touches the store stays on one goroutine.
type viewApp struct {
	grid       grid.Model
	store      *store.Store
	validation *adapter.Validation
	correction *adapter.Correction
	validator  *producer.Validator
	corrector  *producer.Corrector
	data       *dataset.Dataset
	path       string
	log        *logrus.Entry
}

func (a viewApp) Init() tea.Cmd {
	return a.runProducers()
}

func (a viewApp) runProducers() tea.Cmd {
	d := a.data
	gen := a.store.Generation()
	return tea.Batch(
		func() tea.Msg { return validationResultMsg{res: a.validator.Validate(d, gen)} },
		func() tea.Msg { return correctionResultMsg{res: a.corrector.Suggest(d, gen)} },
	)
}

func (a viewApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case validationResultMsg:
		a.validation.OnResult(msg.res)
		return a, nil

	case correctionResultMsg:
		a.correction.OnResult(msg.res)
		return a, nil

	case grid.AcceptedMsg:
		a.correction.OnAccepted(msg.Row, msg.Column)
		return a, nil

	case fileChangedMsg:
		d, err := dataset.LoadCSV(a.path)
		if err != nil {
			a.log.WithField("error", err).Warn("Dataset reload failed; keeping previous data")
			return a, nil
		}
		a.data = d
		a.store.RebuildHeaderMap(d.Columns())
		var cmd tea.Cmd
		a.grid, cmd = a.grid.Update(grid.DataReloadedMsg{Data: d})
		return a, tea.Batch(cmd, a.runProducers())
	}

	var cmd tea.Cmd
	a.grid, cmd = a.grid.Update(msg)
	return a, cmd
}

func (a viewApp) View() string {
	return a.grid.View()
}

// NewViewCmd creates the view subcommand.
func NewViewCmd() *cobra.Command {
	var watch bool
	var themeName string

	cmd := &cobra.Command{
		Use:   "view <file.csv>",
		Short: "View a CSV file with live validation and correction state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(args[0], watch, themeName)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload when the file changes on disk")
	cmd.Flags().StringVar(&themeName, "theme", "", "Color theme (kanagawa, terminal)")
	return cmd
}

func runView(path string, watch bool, themeName string) error {
	tui.Initialize()
	log := logging.NewLogger("cellstate-view")

	var rules producer.Rules
	cfg, err := config.LoadDefault()
	if err == nil {
		if err := cfg.UnmarshalExtension("rules", &rules); err != nil {
			log.WithField("error", err).Warn("Failed to parse 'rules' config; validating nothing")
		}
		if themeName == "" {
			themeName = cfg.Theme
		}
	}

	d, err := dataset.LoadCSV(path)
	if err != nil {
		return err
	}

	s := store.New()
	s.RebuildHeaderMap(d.Columns())
	vm := view.New(s)
	defer vm.Close()

	app := viewApp{
		grid:       grid.New(vm, d, theme.Select(themeName)),
		store:      s,
		validation: adapter.NewValidation(s),
		correction: adapter.NewCorrection(s),
		validator:  producer.NewValidator(rules),
		corrector:  producer.NewCorrector(rules),
		data:       d,
		path:       path,
		log:        log,
	}

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Invalidations are published synchronously on the store's
	// goroutine; Send re-enqueues them as grid messages.
	unsubscribe := vm.OnInvalidate(func(inv view.Invalidation) {
		p.Send(grid.InvalidateMsg{Invalidation: inv})
	})
	defer unsubscribe()

	if watch {
		w, err := dataset.Watch(path, func() {
			p.Send(fileChangedMsg{})
		})
		if err != nil {
			log.WithField("error", err).Warn("File watching unavailable")
		} else {
			defer w.Close()
		}
	}

	_, err = p.Run()
	return err
}
