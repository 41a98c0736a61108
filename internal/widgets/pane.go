package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane draws a bordered box with the title embedded in the top edge.
// Focused panes get an accent border; Arranging marks the pane the
// user is currently moving or resizing on the dashboard grid.
type Pane struct {
	Title     string
	Body      Widget
	Focused   bool
	Arranging bool
}

func (p Pane) Render(width, height int) string {
	if width < 4 || height < 3 {
		return ""
	}

	border := lipgloss.Color("60")
	if p.Focused {
		border = lipgloss.Color("75")
	}
	if p.Arranging {
		border = lipgloss.Color("214")
	}
	edge := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(p.Focused)

	inner := width - 2
	marker := ""
	if p.Arranging {
		marker = "✥ "
	}
	title := " " + marker + p.Title + " "
	if ansi.StringWidth(title) > inner-2 {
		title = " " + ansi.Truncate(marker+p.Title, maxInt(1, inner-4), "…") + " "
	}
	fill := inner - ansi.StringWidth(title) - 1
	if fill < 0 {
		fill = 0
	}

	var b strings.Builder
	b.WriteString(edge.Render("╭─") + titleStyle.Render(title) + edge.Render(strings.Repeat("─", fill)+"╮"))
	b.WriteString("\n")

	bodyLines := []string{}
	if p.Body != nil {
		bodyLines = splitLines(p.Body.Render(inner-2, height-2))
	}
	side := edge.Render("│")
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(bodyLines) {
			line = bodyLines[i]
		}
		b.WriteString(side + " " + padRight(line, inner-2) + " " + side)
		b.WriteString("\n")
	}
	b.WriteString(edge.Render("╰" + strings.Repeat("─", inner) + "╯"))
	return b.String()
}
