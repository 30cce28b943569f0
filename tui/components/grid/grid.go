// Package grid renders a dataset as a scrollable table, coloring cells
// by their semantic state. It reads state exclusively through the view
// model's Reader and repaints only the rows an invalidation names;
// repainting the whole table on every change does not survive contact
// with datasets of tens of thousands of rows.
package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tabulab/cellstate/cell"
	"github.com/tabulab/cellstate/dataset"
	"github.com/tabulab/cellstate/tui/components/contextmenu"
	"github.com/tabulab/cellstate/tui/theme"
	"github.com/tabulab/cellstate/view"
)

const maxColumnWidth = 24

// InvalidateMsg delivers a display invalidation to the grid. The
// surrounding program forwards view-model invalidations as this
// message, which also marshals producer-driven changes onto the
// bubbletea goroutine.
type InvalidateMsg struct {
	Invalidation view.Invalidation
}

// DataReloadedMsg replaces the dataset after a file reload. The sender
// is responsible for having rebuilt the store's header map first.
type DataReloadedMsg struct {
	Data *dataset.Dataset
}

// AcceptedMsg reports that the user accepted a correction, so the
// program can route it through the correction adapter.
type AcceptedMsg struct {
	Row    int
	Column string
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Menu   key.Binding
	Accept key.Binding
	Close  key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Menu:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "cell menu")),
		Accept: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "apply first fix")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close menu")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model is the grid TUI component.
type Model struct {
	reader view.Reader
	data   *dataset.Dataset
	th     *theme.Theme
	keys   keyMap

	vp     viewport.Model
	widths []int
	lines  []string

	cursorRow int
	cursorCol int

	menuOpen bool
	menu     []contextmenu.Action
	menuSel  int

	width  int
	height int
	ready  bool

	// rowRepaints counts renderRow calls; exercised by tests to pin
	// down the minimal-repaint behavior.
	rowRepaints int
}

// New creates a grid over a dataset and a read-only view of its state.
func New(reader view.Reader, data *dataset.Dataset, th *theme.Theme) Model {
	if th == nil {
		th = theme.DefaultTheme
	}
	m := Model{
		reader: reader,
		data:   data,
		th:     th,
		keys:   defaultKeyMap(),
	}
	m.widths = columnWidths(data)
	m.renderAllRows()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - 3 // header + separator + status bar
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.vp.Width = m.width
			m.vp.Height = vpHeight
		}
		m.refreshViewport()
		return m, nil

	case InvalidateMsg:
		for _, run := range msg.Invalidation.Runs {
			m.renderRow(run.Row)
		}
		m.refreshViewport()
		return m, nil

	case DataReloadedMsg:
		m.data = msg.Data
		m.widths = columnWidths(m.data)
		m.clampCursor()
		m.renderAllRows()
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.menuOpen {
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.menuSel > 0 {
				m.menuSel--
			}
		case key.Matches(msg, m.keys.Down):
			if m.menuSel < len(m.menu)-1 {
				m.menuSel++
			}
		case key.Matches(msg, m.keys.Menu):
			action := m.menu[m.menuSel]
			m.menuOpen = false
			if action.Enabled && action.Kind == contextmenu.ActionApplySuggestion {
				return m, m.acceptCmd()
			}
		case key.Matches(msg, m.keys.Close), key.Matches(msg, m.keys.Quit):
			m.menuOpen = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.keys.Menu):
		m.menu = contextmenu.Build(m.reader, m.cursorRow, m.cursorCol)
		m.menuSel = 0
		m.menuOpen = true
	case key.Matches(msg, m.keys.Accept):
		if m.reader.StateAt(m.cursorRow, m.cursorCol).Actionable() {
			return m, m.acceptCmd()
		}
	}
	return m, nil
}

// acceptCmd emits the acceptance as a message instead of mutating
// anything here. The grid is a consumer: the program routes AcceptedMsg
// through the correction adapter, and the resulting invalidation comes
// back around as InvalidateMsg.
func (m Model) acceptCmd() tea.Cmd {
	row := m.cursorRow
	column := m.reader.HeaderMap().Name(m.cursorCol)
	if column == "" {
		return nil
	}
	return func() tea.Msg {
		return AcceptedMsg{Row: row, Column: column}
	}
}

func (m *Model) moveCursor(dRow, dCol int) {
	oldRow := m.cursorRow
	m.cursorRow += dRow
	m.cursorCol += dCol
	m.clampCursor()
	if oldRow != m.cursorRow {
		m.renderRow(oldRow)
	}
	m.renderRow(m.cursorRow)
	m.followCursor()
	m.refreshViewport()
}

func (m *Model) clampCursor() {
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
	if max := m.data.RowCount() - 1; m.cursorRow > max && max >= 0 {
		m.cursorRow = max
	}
	if m.cursorCol < 0 {
		m.cursorCol = 0
	}
	if max := m.data.ColumnCount() - 1; m.cursorCol > max && max >= 0 {
		m.cursorCol = max
	}
}

func (m *Model) followCursor() {
	if !m.ready {
		return
	}
	if m.cursorRow < m.vp.YOffset {
		m.vp.SetYOffset(m.cursorRow)
	} else if m.cursorRow >= m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(m.cursorRow - m.vp.Height + 1)
	}
}

func (m *Model) renderAllRows() {
	m.lines = make([]string, m.data.RowCount())
	for row := range m.lines {
		m.renderRow(row)
	}
}

func (m *Model) renderRow(row int) {
	if row < 0 || row >= len(m.lines) {
		return
	}
	m.rowRepaints++

	var b strings.Builder
	for col := 0; col < m.data.ColumnCount(); col++ {
		value := pad(m.data.Value(row, col), m.widths[col])
		style := m.cellStyle(row, col)
		if row == m.cursorRow && col == m.cursorCol {
			style = m.th.Highlight
		}
		b.WriteString(style.Render(value))
		if col < m.data.ColumnCount()-1 {
			b.WriteString(" ")
		}
	}
	m.lines[row] = b.String()
}

func (m *Model) cellStyle(row, col int) lipgloss.Style {
	switch m.reader.StateAt(row, col).DisplayStatus() {
	case cell.StateInvalid:
		return m.th.CellInvalid
	case cell.StateCorrectable:
		return m.th.CellCorrectable
	case cell.StateCorrected:
		return m.th.CellCorrected
	default:
		return m.th.CellNormal
	}
}

func (m *Model) refreshViewport() {
	if !m.ready {
		return
	}
	m.vp.SetContent(strings.Join(m.lines, "\n"))
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.headerLine())
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())

	if m.menuOpen {
		b.WriteString("\n")
		b.WriteString(contextmenu.Render(m.th, m.menu, m.menuSel))
	}
	return b.String()
}

func (m Model) headerLine() string {
	var b strings.Builder
	columns := m.data.Columns()
	for col, name := range columns {
		b.WriteString(m.th.TableHeader.Render(pad(name, m.widths[col])))
		if col < len(columns)-1 {
			b.WriteString(" ")
		}
	}
	return b.String()
}

// statusLine surfaces the cursor cell's state: the tooltip a desktop
// table would show on hover.
func (m Model) statusLine() string {
	state := m.reader.StateAt(m.cursorRow, m.cursorCol)
	pos := fmt.Sprintf("(%d,%d)", m.cursorRow, m.cursorCol)

	parts := []string{m.th.Muted.Render(pos), state.DisplayStatus().String()}
	if state.Detail != "" {
		parts = append(parts, m.th.Warning.Render(state.Detail))
	}
	if n := len(state.Suggestions); n > 0 {
		parts = append(parts, m.th.Accent.Render(fmt.Sprintf("%d fix(es), enter for menu", n)))
	}
	return strings.Join(parts, "  ")
}

// RowRepaints returns how many row renders have happened so far.
func (m Model) RowRepaints() int {
	return m.rowRepaints
}

// Cursor returns the cursor position.
func (m Model) Cursor() (row, col int) {
	return m.cursorRow, m.cursorCol
}

// MenuOpen reports whether the context menu is showing.
func (m Model) MenuOpen() bool {
	return m.menuOpen
}

func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		if width <= 1 {
			return string(runes[:width])
		}
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}

func columnWidths(d *dataset.Dataset) []int {
	widths := make([]int, d.ColumnCount())
	for col, name := range d.Columns() {
		widths[col] = utf8.RuneCountInString(name)
		for row := 0; row < d.RowCount(); row++ {
			if n := utf8.RuneCountInString(d.Value(row, col)); n > widths[col] {
				widths[col] = n
			}
		}
		if widths[col] > maxColumnWidth {
			widths[col] = maxColumnWidth
		}
		if widths[col] < 1 {
			widths[col] = 1
		}
	}
	return widths
}
