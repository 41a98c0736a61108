package widgets

import (
	"sort"
	"strings"

	"github.com/vakaflow-ai/vakaflow/internal/layout"
)

// Grid composites layout entries into a text block. It converts the
// 12-column cell coordinates to character columns over the given
// width, renders each widget's pane at its cell rect, and assembles
// the result line by line. Entries are vertically compacted before
// placement, so no two panes share a character cell.
type Grid struct {
	// RowHeight is the number of terminal lines per grid row unit.
	RowHeight int
}

// DefaultRowHeight keeps a default-synthesized widget (h=4) tall
// enough for a bordered pane plus a few body lines.
const DefaultRowHeight = 2

// colEdges distributes width across the grid columns the way stack
// widgets split theirs: equal shares with the remainder spread over
// the leftmost columns. Edge i is the character offset where cell
// column i begins; edge GridCols is the total width.
func colEdges(width int) []int {
	edges := make([]int, layout.GridCols+1)
	base := width / layout.GridCols
	rem := width % layout.GridCols
	for i := 0; i < layout.GridCols; i++ {
		edges[i+1] = edges[i] + base
		if i < rem {
			edges[i+1]++
		}
	}
	return edges
}

// Render draws the entries using the panes in content, keyed by entry
// ID. Entries whose ID has no pane render as an empty slot.
func (g Grid) Render(entries []layout.Entry, content map[string]Widget, width int) string {
	if width < layout.GridCols || len(entries) == 0 {
		return ""
	}
	rowH := g.RowHeight
	if rowH < 1 {
		rowH = DefaultRowHeight
	}

	placed := layout.Compact(entries)
	// Scan order within a line is left to right; compaction guarantees
	// entries covering the same line have disjoint column ranges.
	sort.SliceStable(placed, func(i, j int) bool { return placed[i].X < placed[j].X })
	edges := colEdges(width)

	totalRows := 0
	for _, e := range placed {
		if bottom := (e.Y + e.H) * rowH; bottom > totalRows {
			totalRows = bottom
		}
	}

	// Pre-render each widget once at its character size.
	rendered := make(map[string][]string, len(placed))
	for _, e := range placed {
		x2 := minInt(e.X+e.W, layout.GridCols)
		w := edges[x2] - edges[e.X]
		h := e.H * rowH
		if widget, ok := content[e.ID]; ok {
			rendered[e.ID] = splitLines(widget.Render(w, h))
		}
	}

	var b strings.Builder
	for row := 0; row < totalRows; row++ {
		cursor := 0
		for _, e := range placed {
			top := e.Y * rowH
			if row < top || row >= top+e.H*rowH {
				continue
			}
			x := edges[e.X]
			if x > cursor {
				b.WriteString(strings.Repeat(" ", x-cursor))
				cursor = x
			}
			w := edges[minInt(e.X+e.W, layout.GridCols)] - edges[e.X]
			line := ""
			if lines := rendered[e.ID]; row-top < len(lines) {
				line = lines[row-top]
			}
			b.WriteString(padRight(line, w))
			cursor += w
		}
		if row < totalRows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
