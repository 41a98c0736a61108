package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestPaneEmbedsTitleAndBody(t *testing.T) {
	p := Pane{Title: "Agents", Body: Text{Body: "12 active"}}
	out := p.Render(30, 5)
	if !strings.Contains(out, "Agents") {
		t.Errorf("output missing title: %q", out)
	}
	if !strings.Contains(out, "12 active") {
		t.Errorf("output missing body: %q", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 30 {
			t.Errorf("line %d width = %d, want 30", i, w)
		}
	}
}

func TestPaneArrangingMarker(t *testing.T) {
	p := Pane{Title: "Vendors", Arranging: true}
	if out := p.Render(30, 4); !strings.Contains(out, "✥") {
		t.Errorf("output = %q, want arranging marker", out)
	}
}

func TestPaneTooSmall(t *testing.T) {
	if out := (Pane{Title: "x"}).Render(3, 2); out != "" {
		t.Errorf("Render tiny = %q, want empty", out)
	}
}

func TestTextTruncates(t *testing.T) {
	out := Text{Body: "abcdefghij\nsecond\nthird"}.Render(5, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if ansi.StringWidth(lines[0]) > 5 {
		t.Errorf("line %q wider than 5", lines[0])
	}
}
