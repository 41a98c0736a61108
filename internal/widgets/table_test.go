package widgets

import (
	"strings"
	"testing"

	"github.com/vakaflow-ai/vakaflow/internal/columns"
)

func testColumns() []columns.Config {
	name := columns.NewConfig("name", "Name")
	status := columns.NewConfig("status", "Status")
	id := columns.Config{Key: "id", Label: "ID", Width: 8}
	return []columns.Config{name, status, id}
}

func TestCellWidthsHonourFixedColumns(t *testing.T) {
	widths := cellWidths(testColumns(), 40)
	if widths[2] != 8 {
		t.Fatalf("fixed width = %d, want 8", widths[2])
	}
	// 40 - 2*2 gap - 8 fixed = 28 split over two flexible columns.
	if widths[0]+widths[1] != 28 {
		t.Fatalf("flexible widths = %v, want sum 28", widths[:2])
	}
}

func TestTableHeaderShowsSortGlyphs(t *testing.T) {
	tbl := Table{
		Columns: testColumns(),
		SortKey: "name",
		SortAsc: true,
		Rows:    [][]string{{"copilot", "approved", "a-1"}},
	}
	out := tbl.Render(60, 10)
	header := strings.Split(out, "\n")[0]
	if !strings.Contains(header, "Name "+glyphAsc) {
		t.Errorf("header = %q, want ascending glyph on Name", header)
	}
	if !strings.Contains(header, "Status "+glyphNeutral) {
		t.Errorf("header = %q, want neutral glyph on Status", header)
	}

	tbl.SortAsc = false
	header = strings.Split(tbl.Render(60, 10), "\n")[0]
	if !strings.Contains(header, "Name "+glyphDesc) {
		t.Errorf("header = %q, want descending glyph", header)
	}
}

func TestTableUnsortableColumnHasNoGlyph(t *testing.T) {
	cfg := columns.NewConfig("name", "Name")
	cfg.Sortable = false
	tbl := Table{Columns: []columns.Config{cfg}}
	header := strings.Split(tbl.Render(30, 5), "\n")[0]
	if strings.ContainsAny(header, glyphNeutral+glyphAsc+glyphDesc) {
		t.Errorf("header = %q, want no sort glyph", header)
	}
}

func TestTableGrabbedColumnShowsHandle(t *testing.T) {
	tbl := Table{Columns: testColumns(), Grabbed: "status"}
	header := strings.Split(tbl.Render(60, 5), "\n")[0]
	if !strings.Contains(header, glyphHandle+" Status") {
		t.Errorf("header = %q, want grab handle on Status", header)
	}
	if strings.Contains(header, glyphHandle+" Name") {
		t.Errorf("header = %q, handle should only mark the grabbed column", header)
	}
}

func TestTableFilterRowAppearsWhenFiltering(t *testing.T) {
	tbl := Table{
		Columns: testColumns(),
		Filters: map[string]string{"name": "cop"},
	}
	out := tbl.Render(60, 10)
	if !strings.Contains(out, "⌕ cop") {
		t.Errorf("output = %q, want filter text row", out)
	}

	tbl.Filters = nil
	tbl.FilterKey = "status"
	tbl.FilterView = "> appr"
	out = tbl.Render(60, 10)
	if !strings.Contains(out, "> appr") {
		t.Errorf("output = %q, want expanded filter input", out)
	}
}

func TestTableNoFilterRowWhenIdle(t *testing.T) {
	tbl := Table{Columns: testColumns(), Rows: [][]string{{"a", "b", "c"}}}
	lines := strings.Split(tbl.Render(60, 10), "\n")
	// header, rule, row — no filter line.
	if len(lines) != 3 {
		t.Fatalf("line count = %d (%q), want 3", len(lines), lines)
	}
}

func TestTableRendersRowsUpToHeight(t *testing.T) {
	tbl := Table{
		Columns: testColumns(),
		Rows: [][]string{
			{"one", "x", "1"},
			{"two", "x", "2"},
			{"three", "x", "3"},
		},
	}
	out := tbl.Render(60, 4)
	if strings.Contains(out, "three") {
		t.Errorf("output = %q, row past available height rendered", out)
	}
	if !strings.Contains(out, "two") {
		t.Errorf("output = %q, want second row", out)
	}
}

func TestTableScrollsCursorIntoView(t *testing.T) {
	rows := [][]string{
		{"one", "x", "1"},
		{"two", "x", "2"},
		{"three", "x", "3"},
		{"four", "x", "4"},
		{"five", "x", "5"},
	}
	tbl := Table{Columns: testColumns(), Rows: rows, Cursor: 4}
	// Header + rule leave two data lines; the window must slide so
	// the cursor row is one of them.
	out := tbl.Render(60, 4)
	if !strings.Contains(out, "five") {
		t.Fatalf("output = %q, cursor row scrolled out of view", out)
	}
	if !strings.Contains(out, "four") {
		t.Fatalf("output = %q, want row above the cursor visible", out)
	}
	if strings.Contains(out, "one") {
		t.Fatalf("output = %q, top rows should have scrolled away", out)
	}

	// With the cursor back on top the window does not scroll.
	tbl.Cursor = 0
	out = tbl.Render(60, 4)
	if !strings.Contains(out, "one") || strings.Contains(out, "five") {
		t.Fatalf("output = %q, want unscrolled window", out)
	}
}
