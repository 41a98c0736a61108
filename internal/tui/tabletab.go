package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vakaflow-ai/vakaflow/internal/columns"
	"github.com/vakaflow-ai/vakaflow/internal/widgets"
)

// rowLoader fetches a tab's rows. It runs inside a tea.Cmd, off the
// update loop.
type rowLoader func() ([]Row, error)

// extraKeyHandler lets a tab add actions beyond the stock table set.
// It gets the row under the cursor, or nil when the table is empty.
type extraKeyHandler func(m *Model, t *TableTab, msg tea.KeyMsg, row Row) (bool, tea.Cmd)

// TableTab is a column-configurable table over loaded rows: per-column
// sort, filter, visibility, and keyboard reordering.
type TableTab struct {
	id    string
	title string

	ctrl  *columns.Controller
	load  rowLoader
	onKey extraKeyHandler

	rows      []Row
	cursor    int
	colCursor int
	grabbed   bool

	filtering   bool
	filterInput textinput.Model
}

func NewTableTab(id, title string, ctrl *columns.Controller, load rowLoader) *TableTab {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 64
	return &TableTab{id: id, title: title, ctrl: ctrl, load: load, filterInput: input}
}

func (t *TableTab) ID() string    { return t.id }
func (t *TableTab) Title() string { return t.title }
func (t *TableTab) Scope() string { return t.id }

func (t *TableTab) Init() tea.Cmd { return t.Reload() }

// CapturingInput reports whether the filter editor is open.
func (t *TableTab) CapturingInput() bool { return t.filtering }

// Reload fetches rows in the background and delivers a rowsLoadedMsg.
func (t *TableTab) Reload() tea.Cmd {
	id, load := t.id, t.load
	return func() tea.Msg {
		rows, err := load()
		return rowsLoadedMsg{TabID: id, Rows: rows, Err: err}
	}
}

// currentColumn returns the visible column under the cursor.
func (t *TableTab) currentColumn() (columns.Config, bool) {
	visible := t.ctrl.Visible()
	if len(visible) == 0 {
		return columns.Config{}, false
	}
	if t.colCursor >= len(visible) {
		t.colCursor = len(visible) - 1
	}
	if t.colCursor < 0 {
		t.colCursor = 0
	}
	return visible[t.colCursor], true
}

// currentRow returns the row under the cursor after filtering and
// sorting, or nil when nothing matches.
func (t *TableTab) currentRow() Row {
	shown := t.shownRows()
	if t.cursor < 0 || t.cursor >= len(shown) {
		return nil
	}
	return shown[t.cursor]
}

// shownRows applies filters and sort, keeping full rows so hidden
// cells (like record IDs) stay reachable.
func (t *TableTab) shownRows() []Row {
	var kept []Row
	for _, r := range t.rows {
		if matchesFilters(r, t.ctrl.Filters()) {
			kept = append(kept, r)
		}
	}
	if key, asc, ok := t.ctrl.Sort(); ok {
		sortRows(kept, key, asc)
	}
	return kept
}

func (t *TableTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case rowsLoadedMsg:
		if msg.TabID != t.id {
			return nil
		}
		if msg.Err != nil {
			m.SetError(msg.Err)
			return nil
		}
		t.rows = msg.Rows
		t.clampCursor()
		return nil
	case tea.KeyMsg:
		return t.handleKey(m, msg)
	}
	return nil
}

func (t *TableTab) handleKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	if t.filtering {
		return t.handleFilterKey(m, msg)
	}

	keys := m.keys
	scope := t.id
	col, haveCol := t.currentColumn()

	switch {
	case keys.IsAction(msg, "row-up", scope):
		if t.cursor > 0 {
			t.cursor--
		}
	case keys.IsAction(msg, "row-down", scope):
		t.cursor++
		t.clampCursor()
	case keys.IsAction(msg, "col-left", scope):
		if t.grabbed && haveCol {
			if err := t.ctrl.MoveColumn(col.Key, -1); err != nil {
				m.SetError(err)
				return nil
			}
		}
		if t.colCursor > 0 {
			t.colCursor--
		}
	case keys.IsAction(msg, "col-right", scope):
		if t.grabbed && haveCol {
			if err := t.ctrl.MoveColumn(col.Key, 1); err != nil {
				m.SetError(err)
				return nil
			}
		}
		if t.colCursor < len(t.ctrl.Visible())-1 {
			t.colCursor++
		}
	case keys.IsAction(msg, "toggle-sort", scope):
		if !haveCol {
			return nil
		}
		if !col.Sortable {
			return nil
		}
		if err := t.ctrl.ToggleSort(col.Key); err != nil {
			m.SetError(err)
			return nil
		}
		_, asc, _ := t.ctrl.Sort()
		dir := "descending"
		if asc {
			dir = "ascending"
		}
		m.SetStatus(fmt.Sprintf("Sorted by %s, %s", col.Label, dir))
	case keys.IsAction(msg, "edit-filter", scope):
		if !haveCol || !col.Filterable {
			return nil
		}
		t.filtering = true
		t.filterInput.SetValue(t.ctrl.Filter(col.Key))
		t.filterInput.CursorEnd()
		return t.filterInput.Focus()
	case keys.IsAction(msg, "toggle-column", scope):
		if !haveCol {
			return nil
		}
		if err := t.ctrl.ToggleVisibility(col.Key); err != nil {
			m.SetError(err)
			return nil
		}
		m.SetStatus(fmt.Sprintf("Hid column %s (r restores)", col.Label))
	case keys.IsAction(msg, "grab-column", scope):
		if !haveCol {
			return nil
		}
		t.grabbed = !t.grabbed
		if t.grabbed {
			m.SetStatus(fmt.Sprintf("Moving column %s (g to drop)", col.Label))
		} else {
			m.SetStatus("Column dropped")
		}
	case keys.IsAction(msg, "reset-columns", scope):
		t.ctrl.Reset()
		t.grabbed = false
		t.colCursor = 0
		m.SetStatus("Columns reset")
	default:
		if t.onKey != nil {
			if handled, cmd := t.onKey(m, t, msg, t.currentRow()); handled {
				return cmd
			}
		}
	}
	return nil
}

func (t *TableTab) handleFilterKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	col, haveCol := t.currentColumn()
	switch msg.String() {
	case "enter":
		t.filtering = false
		t.filterInput.Blur()
		if haveCol {
			// The text is stored as typed, empty included.
			if err := t.ctrl.SetFilter(col.Key, t.filterInput.Value()); err != nil {
				m.SetError(err)
				return nil
			}
			t.clampCursor()
			m.SetStatus(fmt.Sprintf("Filter on %s: %q", col.Label, t.filterInput.Value()))
		}
		return nil
	case "esc":
		t.filtering = false
		t.filterInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	t.filterInput, cmd = t.filterInput.Update(msg)
	return cmd
}

func (t *TableTab) clampCursor() {
	n := len(t.shownRows())
	if t.cursor >= n {
		t.cursor = n - 1
	}
	if t.cursor < 0 {
		t.cursor = 0
	}
}

func (t *TableTab) View(width, height int) string {
	col, _ := t.currentColumn()
	grabbedKey := ""
	if t.grabbed {
		grabbedKey = col.Key
	}
	filterKey, filterView := "", ""
	if t.filtering {
		filterKey = col.Key
		filterView = t.filterInput.View()
	}
	sortKey, sortAsc, _ := t.ctrl.Sort()
	table := widgets.Table{
		Columns:    t.ctrl.Visible(),
		SortKey:    sortKey,
		SortAsc:    sortAsc,
		Filters:    t.ctrl.Filters(),
		Grabbed:    grabbedKey,
		FilterKey:  filterKey,
		FilterView: filterView,
		Rows:       visibleRows(t.rows, t.ctrl),
		Cursor:     t.cursor,
	}
	return widgets.Pane{Title: t.title, Body: table, Focused: true}.Render(width, height)
}
