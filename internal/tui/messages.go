package tui

import tea "github.com/charmbracelet/bubbletea"

// StatusMsg replaces the status bar text.
type StatusMsg struct {
	Text  string
	IsErr bool
}

// rowsLoadedMsg delivers a table tab's freshly loaded rows.
type rowsLoadedMsg struct {
	TabID string
	Rows  []Row
	Err   error
}

// statsLoadedMsg delivers the dashboard widget numbers.
type statsLoadedMsg struct {
	AgentsByStatus    []statLine
	VendorsByCategory []statLine
	PendingApprovals  int
	Err               error
}

type statLine struct {
	Label string
	Count int
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
