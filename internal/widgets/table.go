package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vakaflow-ai/vakaflow/internal/columns"
)

// Sort indicator glyphs. Unsortable columns render none.
const (
	glyphNeutral = "↕"
	glyphAsc     = "▲"
	glyphDesc    = "▼"
	glyphHandle  = "≡"
)

var (
	headerCellStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	grabbedCellStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	glyphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	filterTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	cursorRowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("237"))
	rowStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("249"))
	ruleStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// Table renders a header row plus data rows for the visible columns of
// a table, in display order. It is a pure renderer: the cells must
// already be filtered, sorted, and aligned with Columns by the owning
// screen.
type Table struct {
	Columns []columns.Config
	// Sort state for the header glyphs.
	SortKey string
	SortAsc bool
	// Filters holds the stored filter text per column key.
	Filters map[string]string
	// Grabbed is the key of the column currently being moved, if any.
	Grabbed string
	// FilterKey/FilterView expand a filter input under one column.
	FilterKey  string
	FilterView string
	Rows       [][]string
	Cursor     int
}

const columnGap = 2

// cellWidths divides width between the columns: fixed widths are taken
// as declared, the rest share the remaining space evenly with the
// leftmost columns absorbing the remainder.
func cellWidths(cols []columns.Config, width int) []int {
	out := make([]int, len(cols))
	if len(cols) == 0 {
		return out
	}
	usable := width - columnGap*(len(cols)-1)
	flexible := 0
	for i, c := range cols {
		if c.Width > 0 {
			out[i] = c.Width
			usable -= c.Width
		} else {
			flexible++
		}
	}
	if flexible == 0 {
		return out
	}
	if usable < flexible {
		usable = flexible
	}
	share := usable / flexible
	rem := usable % flexible
	for i := range out {
		if out[i] != 0 {
			continue
		}
		out[i] = share
		if rem > 0 {
			out[i]++
			rem--
		}
	}
	return out
}

func (t Table) headerCell(c columns.Config, width int) string {
	style := headerCellStyle
	label := c.Label
	if c.Key == t.Grabbed {
		style = grabbedCellStyle
		label = glyphHandle + " " + label
	}
	glyph := ""
	if c.Sortable {
		switch {
		case c.Key != t.SortKey:
			glyph = glyphNeutral
		case t.SortAsc:
			glyph = glyphAsc
		default:
			glyph = glyphDesc
		}
	}
	cell := style.Render(label)
	if glyph != "" {
		cell += " " + glyphStyle.Render(glyph)
	}
	return padRight(cell, width)
}

func (t Table) filterCell(c columns.Config, width int) string {
	if c.Key == t.FilterKey {
		return padRight(t.FilterView, width)
	}
	if !c.Filterable {
		return padRight("", width)
	}
	text := t.Filters[c.Key]
	if text == "" {
		return padRight("", width)
	}
	return padRight(filterTextStyle.Render("⌕ "+text), width)
}

func (t Table) hasFilterRow() bool {
	if t.FilterKey != "" {
		return true
	}
	for _, text := range t.Filters {
		if text != "" {
			return true
		}
	}
	return false
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 || len(t.Columns) == 0 {
		return ""
	}
	widths := cellWidths(t.Columns, width)
	gap := strings.Repeat(" ", columnGap)

	var lines []string

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = t.headerCell(c, widths[i])
	}
	lines = append(lines, strings.Join(header, gap))

	if t.hasFilterRow() {
		cells := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			cells[i] = t.filterCell(c, widths[i])
		}
		lines = append(lines, strings.Join(cells, gap))
	}
	lines = append(lines, ruleStyle.Render(strings.Repeat("─", width)))

	// Scroll the row window so the cursor row is always drawn.
	capacity := height - len(lines)
	start := 0
	if capacity > 0 && t.Cursor >= capacity {
		start = t.Cursor - capacity + 1
	}
	if over := len(t.Rows) - capacity; over >= 0 && start > over {
		start = over
	}
	if start < 0 {
		start = 0
	}
	for r := start; r < len(t.Rows); r++ {
		row := t.Rows[r]
		if len(lines) >= height {
			break
		}
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = padRight(cell, widths[i])
		}
		line := strings.Join(cells, gap)
		if r == t.Cursor {
			line = cursorRowStyle.Render(line)
		} else {
			line = rowStyle.Render(line)
		}
		lines = append(lines, line)
	}
	if len(t.Rows) == 0 && len(lines) < height {
		lines = append(lines, glyphStyle.Render("no rows match"))
	}
	return strings.Join(lines, "\n")
}
