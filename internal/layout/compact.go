package layout

import "sort"

// Collides reports whether two entries occupy overlapping grid cells.
func Collides(a, b Entry) bool {
	if a.ID == b.ID {
		return false
	}
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}

func collidesAny(placed []Entry, e Entry) bool {
	for _, p := range placed {
		if Collides(p, e) {
			return true
		}
	}
	return false
}

// Compact vertically compacts entries: every widget is pulled up until
// it would overlap another, scanning top-to-bottom, left-to-right.
// Overlapping entries are shifted down, never discarded. The result
// preserves the caller's slice order.
func Compact(entries []Entry) []Entry {
	return compactAround(entries, "")
}

// normalize forces an entry inside the grid: width in [1, GridCols],
// X so the right edge stays on the grid, Y and H at least 0 and 1.
// Stored layouts are reused on a count match alone, so out-of-range
// geometry from a hand-edited or foreign blob can reach this package
// and must be contained here rather than crash the renderer.
func normalize(e Entry) Entry {
	e.W = clamp(e.W, 1, GridCols)
	e.X = clamp(e.X, 0, GridCols-e.W)
	e.Y = maxInt(e.Y, 0)
	e.H = maxInt(e.H, 1)
	return e
}

// compactAround compacts like Compact but places the pinned entry
// first at its exact position, so gestures that move a widget are not
// undone by the compaction pass that follows them. Pass "" for no pin.
func compactAround(entries []Entry, pinned string) []Entry {
	sorted := Clone(entries)
	for i := range sorted {
		sorted[i] = normalize(sorted[i])
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ID == pinned {
			return true
		}
		if sorted[j].ID == pinned {
			return false
		}
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	placed := make([]Entry, 0, len(sorted))
	for _, e := range sorted {
		if e.ID != pinned {
			for e.Y > 0 {
				up := e
				up.Y--
				if collidesAny(placed, up) {
					break
				}
				e = up
			}
		}
		for collidesAny(placed, e) {
			e.Y++
		}
		placed = append(placed, e)
	}

	byID := make(map[string]Entry, len(placed))
	for _, e := range placed {
		byID[e.ID] = e
	}
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = byID[e.ID]
	}
	return out
}

// Move shifts the identified widget by (dx, dy) grid cells, keeping it
// inside the grid horizontally, then recompacts around it. Unknown IDs
// return the entries unchanged.
func Move(entries []Entry, id string, dx, dy int) []Entry {
	out := Clone(entries)
	i := indexOf(out, id)
	if i < 0 {
		return out
	}
	out[i].X = clamp(out[i].X+dx, 0, GridCols-out[i].W)
	out[i].Y = maxInt(0, out[i].Y+dy)
	return compactAround(out, id)
}

// Resize grows or shrinks the identified widget by (dw, dh) grid
// cells, honouring its minimum size and the grid's right edge, then
// recompacts around it.
func Resize(entries []Entry, id string, dw, dh int) []Entry {
	out := Clone(entries)
	i := indexOf(out, id)
	if i < 0 {
		return out
	}
	minW := out[i].MinW
	if minW < 1 {
		minW = 1
	}
	minH := out[i].MinH
	if minH < 1 {
		minH = 1
	}
	out[i].W = clamp(out[i].W+dw, minW, GridCols-out[i].X)
	out[i].H = maxInt(out[i].H+dh, minH)
	return compactAround(out, id)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
