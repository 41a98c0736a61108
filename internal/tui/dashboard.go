package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vakaflow-ai/vakaflow/internal/database/repository"
	"github.com/vakaflow-ai/vakaflow/internal/layout"
	"github.com/vakaflow-ai/vakaflow/internal/widgets"
)

// Dashboard widget IDs double as layout entry IDs; the stored layout
// is keyed by them, so renaming one resets its saved position.
const (
	widgetAgentStatus = "agents-by-status"
	widgetVendorMix   = "vendors-by-category"
	widgetApprovals   = "pending-approvals"
	widgetQuickHelp   = "quick-help"
)

func dashboardWidgetIDs() []string {
	return []string{widgetAgentStatus, widgetVendorMix, widgetApprovals, widgetQuickHelp}
}

// DashboardTab shows summary widgets on a rearrangeable grid. Arrange
// mode moves and resizes the selected widget; every change is pushed
// through the layout engine, which persists it.
type DashboardTab struct {
	engine *layout.Engine
	grid   widgets.Grid

	agents    *repository.AgentRepo
	vendors   *repository.VendorRepo
	approvals *repository.ApprovalRepo
	tenantID  string

	arranging bool
	selected  int
	stats     statsLoadedMsg
	loaded    bool
}

func NewDashboardTab(engine *layout.Engine, rowHeight int, agents *repository.AgentRepo, vendors *repository.VendorRepo, approvals *repository.ApprovalRepo, tenantID string) *DashboardTab {
	if rowHeight <= 0 {
		rowHeight = widgets.DefaultRowHeight
	}
	return &DashboardTab{
		engine:    engine,
		grid:      widgets.Grid{RowHeight: rowHeight},
		agents:    agents,
		vendors:   vendors,
		approvals: approvals,
		tenantID:  tenantID,
	}
}

func (d *DashboardTab) ID() string    { return "dashboard" }
func (d *DashboardTab) Title() string { return "Dashboard" }

func (d *DashboardTab) Scope() string {
	if d.arranging {
		return "dashboard-arrange"
	}
	return "dashboard"
}

func (d *DashboardTab) Init() tea.Cmd {
	d.engine.Initialize(dashboardWidgetIDs(), nil)
	return d.loadStats()
}

func (d *DashboardTab) loadStats() tea.Cmd {
	agents, vendors, approvals, tenant := d.agents, d.vendors, d.approvals, d.tenantID
	return func() tea.Msg {
		ctx := context.Background()
		var msg statsLoadedMsg
		byStatus, err := agents.CountByStatus(ctx, tenant)
		if err != nil {
			msg.Err = err
			return msg
		}
		for _, c := range byStatus {
			msg.AgentsByStatus = append(msg.AgentsByStatus, statLine{Label: c.Value, Count: c.Count})
		}
		byCategory, err := vendors.CountByCategory(ctx, tenant)
		if err != nil {
			msg.Err = err
			return msg
		}
		for _, c := range byCategory {
			msg.VendorsByCategory = append(msg.VendorsByCategory, statLine{Label: c.Value, Count: c.Count})
		}
		msg.PendingApprovals, err = approvals.CountPending(ctx, tenant)
		if err != nil {
			msg.Err = err
		}
		return msg
	}
}

func (d *DashboardTab) Update(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
			return nil
		}
		d.stats = msg
		d.loaded = true
		return nil
	case tea.KeyMsg:
		return d.handleKey(m, msg)
	}
	return nil
}

func (d *DashboardTab) handleKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	keys := m.keys
	if !d.arranging {
		if keys.IsAction(msg, "arrange", "dashboard") {
			d.arranging = true
			d.selected = 0
			m.SetStatus("Arrange: arrows move, shift-HJKL resize, tab selects")
		}
		return nil
	}

	scope := "dashboard-arrange"
	ids := dashboardWidgetIDs()
	switch {
	case keys.IsAction(msg, "arrange-done", scope):
		d.arranging = false
		m.SetStatus("Layout saved")
	case keys.IsAction(msg, "next-widget", scope):
		d.selected = (d.selected + 1) % len(ids)
	case keys.IsAction(msg, "prev-widget", scope):
		d.selected = (d.selected + len(ids) - 1) % len(ids)
	case keys.IsAction(msg, "move-widget", scope):
		dx, dy := arrowDelta(msg.String())
		if dx != 0 || dy != 0 {
			d.engine.ApplyChange(layout.Move(d.engine.Entries(), ids[d.selected], dx, dy))
		}
	case keys.IsAction(msg, "resize-widget", scope):
		// Key matching folds case, so plain hjkl land here too and
		// must not compact or persist anything.
		dw, dh := resizeDelta(msg.String())
		if dw != 0 || dh != 0 {
			d.engine.ApplyChange(layout.Resize(d.engine.Entries(), ids[d.selected], dw, dh))
		}
	case keys.IsAction(msg, "reset-layout", scope):
		d.engine.ApplyChange(layout.DefaultEntries(ids))
		m.SetStatus("Layout reset")
	}
	return nil
}

func arrowDelta(key string) (dx, dy int) {
	switch key {
	case "left":
		return -1, 0
	case "right":
		return 1, 0
	case "up":
		return 0, -1
	case "down":
		return 0, 1
	}
	return 0, 0
}

func resizeDelta(key string) (dw, dh int) {
	switch key {
	case "H":
		return -1, 0
	case "L":
		return 1, 0
	case "K":
		return 0, -1
	case "J":
		return 0, 1
	}
	return 0, 0
}

func (d *DashboardTab) View(width, height int) string {
	ids := dashboardWidgetIDs()
	content := make(map[string]widgets.Widget, len(ids))
	for i, id := range ids {
		content[id] = widgets.Pane{
			Title:     d.widgetTitle(id),
			Body:      widgets.Text{Body: d.widgetBody(id)},
			Focused:   d.arranging && i == d.selected,
			Arranging: d.arranging && i == d.selected,
		}
	}
	view := d.grid.Render(d.engine.Entries(), content, layout.Measure(width, 0))
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	return strings.Join(lines, "\n")
}

func (d *DashboardTab) widgetTitle(id string) string {
	switch id {
	case widgetAgentStatus:
		return "Agents by status"
	case widgetVendorMix:
		return "Vendors by category"
	case widgetApprovals:
		return "Pending approvals"
	case widgetQuickHelp:
		return "Quick help"
	}
	return id
}

func (d *DashboardTab) widgetBody(id string) string {
	if !d.loaded && id != widgetQuickHelp {
		return "loading…"
	}
	switch id {
	case widgetAgentStatus:
		return statListBody(d.stats.AgentsByStatus, "no agents yet")
	case widgetVendorMix:
		return statListBody(d.stats.VendorsByCategory, "no vendors yet")
	case widgetApprovals:
		if d.stats.PendingApprovals == 0 {
			return "all caught up"
		}
		return fmt.Sprintf("%d awaiting decision", d.stats.PendingApprovals)
	case widgetQuickHelp:
		return "a arrange layout\n2-4 open tables\nq quit"
	}
	return ""
}

func statListBody(lines []statLine, empty string) string {
	if len(lines) == 0 {
		return empty
	}
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = fmt.Sprintf("%-14s %d", l.Label, l.Count)
	}
	return strings.Join(out, "\n")
}
