package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vakaflow-ai/vakaflow/internal/columns"
)

func newTestTab(t *testing.T) (*TableTab, *Model) {
	t.Helper()
	ctrl, err := columns.NewController([]columns.Config{
		columns.NewConfig("name", "Name"),
		columns.NewConfig("status", "Status"),
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	tab := NewTableTab("agents", "Agents", ctrl, func() ([]Row, error) {
		return []Row{
			{"name": "beta", "status": "draft"},
			{"name": "alpha", "status": "approved"},
		}, nil
	})
	m := NewModel([]Tab{tab}, NewKeyRegistry(DefaultBindings()), nil)
	tab.Update(&m, rowsLoadedMsg{TabID: "agents", Rows: []Row{
		{"name": "beta", "status": "draft"},
		{"name": "alpha", "status": "approved"},
	}})
	return tab, &m
}

func TestTableTabIgnoresOtherTabsRows(t *testing.T) {
	tab, m := newTestTab(t)
	tab.Update(m, rowsLoadedMsg{TabID: "vendors", Rows: []Row{{"name": "x"}}})
	if len(tab.rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tab.rows))
	}
}

func TestTableTabLoadErrorSetsStatus(t *testing.T) {
	tab, m := newTestTab(t)
	tab.Update(m, rowsLoadedMsg{TabID: "agents", Err: errors.New("boom")})
	if !m.statusErr || m.status != "boom" {
		t.Fatalf("status = %q/%v, want boom error", m.status, m.statusErr)
	}
}

func TestTableTabSortKey(t *testing.T) {
	tab, m := newTestTab(t)
	tab.Update(m, keyPress('s'))
	key, asc, ok := tab.ctrl.Sort()
	if !ok || key != "name" || !asc {
		t.Fatalf("sort = %v/%v/%v, want name asc", key, asc, ok)
	}
	shown := tab.shownRows()
	if shown[0]["name"] != "alpha" {
		t.Errorf("first row = %v, want alpha", shown[0]["name"])
	}
	// Second press flips to descending.
	tab.Update(m, keyPress('s'))
	if _, asc, _ := tab.ctrl.Sort(); asc {
		t.Error("second press should sort descending")
	}
}

func TestTableTabFilterFlow(t *testing.T) {
	tab, m := newTestTab(t)
	tab.Update(m, keyPress('/'))
	if !tab.filtering {
		t.Fatal("/ did not open the filter input")
	}
	// While editing, table keys go to the input instead.
	tab.Update(m, keyPress('a'))
	tab.Update(m, keyPress('l'))
	tab.Update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if tab.filtering {
		t.Fatal("enter did not close the filter input")
	}
	if got := tab.ctrl.Filter("name"); got != "al" {
		t.Fatalf("filter = %q, want al", got)
	}
	shown := tab.shownRows()
	if len(shown) != 1 || shown[0]["name"] != "alpha" {
		t.Fatalf("shown = %v, want just alpha", shown)
	}
}

func TestFilterInputCapturesGlobalKeys(t *testing.T) {
	tab, m := newTestTab(t)
	tab.Update(m, keyPress('/'))

	// "q" routed through the app model must land in the input, not
	// quit the program.
	next, cmd := m.Update(keyPress('q'))
	*m = next.(Model)
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("q quit the app while the filter input was open")
		}
	}
	tab.Update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := tab.ctrl.Filter("name"); got != "q" {
		t.Fatalf("filter = %q, want q", got)
	}
}

func TestTableTabFilterEscCancels(t *testing.T) {
	tab, m := newTestTab(t)
	tab.Update(m, keyPress('/'))
	tab.Update(m, keyPress('z'))
	tab.Update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if tab.filtering {
		t.Fatal("esc did not close the filter input")
	}
	if got := tab.ctrl.Filter("name"); got != "" {
		t.Fatalf("filter = %q after cancel, want empty", got)
	}
}

func TestTableTabGrabAndMoveColumn(t *testing.T) {
	tab, m := newTestTab(t)
	tab.Update(m, keyPress('g'))
	if !tab.grabbed {
		t.Fatal("g did not grab the column")
	}
	tab.Update(m, tea.KeyMsg{Type: tea.KeyRight})
	order := tab.ctrl.Order()
	if order[0] != "status" || order[1] != "name" {
		t.Fatalf("order = %v, want status before name", order)
	}
	// Cursor follows the moved column.
	col, _ := tab.currentColumn()
	if col.Key != "name" {
		t.Errorf("cursor on %s, want name", col.Key)
	}
	tab.Update(m, keyPress('g'))
	if tab.grabbed {
		t.Fatal("second g did not drop the column")
	}
}

func TestTableTabHideAndReset(t *testing.T) {
	tab, m := newTestTab(t)
	tab.Update(m, keyPress('v'))
	if !tab.ctrl.IsHidden("name") {
		t.Fatal("v did not hide the column under the cursor")
	}
	tab.Update(m, keyPress('r'))
	if tab.ctrl.IsHidden("name") {
		t.Fatal("reset did not restore visibility")
	}
}

func TestTableTabViewRendersRows(t *testing.T) {
	tab, _ := newTestTab(t)
	view := tab.View(60, 12)
	if !strings.Contains(view, "alpha") || !strings.Contains(view, "beta") {
		t.Fatalf("view missing rows:\n%s", view)
	}
	if !strings.Contains(view, "Agents") {
		t.Fatalf("view missing pane title:\n%s", view)
	}
}
