package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vakaflow-ai/vakaflow/internal/columns"
	"github.com/vakaflow-ai/vakaflow/internal/database/repository"
)

func approvalColumns() []columns.Config {
	title := columns.NewConfig("title", "Title")
	kind := columns.NewConfig("kind", "Subject")
	kind.Width = 8
	stage := columns.NewConfig("stage", "Stage")
	stage.Width = 16
	by := columns.NewConfig("by", "Requested by")
	decided := columns.NewConfig("decided", "Decided")
	decided.Filterable = false
	decided.Width = 12
	return []columns.Config{title, kind, stage, by, decided}
}

// NewApprovalsTab lists approval requests, with approve/reject keys on
// the row under the cursor.
func NewApprovalsTab(approvals *repository.ApprovalRepo, tenantID, dateFormat string) (*TableTab, error) {
	ctrl, err := columns.NewController(approvalColumns())
	if err != nil {
		return nil, err
	}
	load := func() ([]Row, error) {
		list, err := approvals.List(context.Background(), tenantID)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, len(list))
		for i, a := range list {
			decided := ""
			if a.DecidedAt != nil {
				decided = a.DecidedAt.Format(dateFormat)
			}
			rows[i] = Row{
				"id":      a.ID,
				"title":   a.Title,
				"kind":    a.SubjectKind,
				"stage":   a.Stage,
				"by":      a.RequestedBy,
				"decided": decided,
			}
		}
		return rows, nil
	}
	tab := NewTableTab("approvals", "Approvals", ctrl, load)
	tab.onKey = func(m *Model, t *TableTab, msg tea.KeyMsg, row Row) (bool, tea.Cmd) {
		var stage string
		switch {
		case m.keys.IsAction(msg, "approve", t.Scope()):
			stage = "approved"
		case m.keys.IsAction(msg, "reject", t.Scope()):
			stage = "rejected"
		default:
			return false, nil
		}
		if row == nil {
			return true, nil
		}
		id := row["id"]
		return true, tea.Sequence(
			func() tea.Msg {
				if err := approvals.Decide(context.Background(), tenantID, id, stage); err != nil {
					return StatusMsg{Text: err.Error(), IsErr: true}
				}
				return StatusMsg{Text: "Marked " + stage}
			},
			t.Reload(),
		)
	}
	return tab, nil
}
