// Package layout assigns, persists, and restores the grid arrangement
// of dashboard widgets. Positions are expressed in abstract grid cells
// on a 12-column grid; converting cells to terminal columns is the
// renderer's job.
package layout

// GridCols is the conceptual width of the dashboard grid.
const GridCols = 12

// Default cell geometry used when synthesizing a fresh layout.
const (
	defaultHeight = 4
	defaultMinW   = 3
	defaultMinH   = 3
)

// Entry records the position and size of one widget on the grid.
// The JSON field names match the persisted layout blob format.
type Entry struct {
	ID   string `json:"i"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	W    int    `json:"w"`
	H    int    `json:"h"`
	MinW int    `json:"minW,omitempty"`
	MinH int    `json:"minH,omitempty"`
}

// DefaultEntries synthesizes a two-column arrangement for the given
// widget IDs: widgets alternate between the left and right half of the
// grid, every third widget takes a half-row instead of a quarter, and
// each pair of widgets starts a new band two cells down.
func DefaultEntries(ids []string) []Entry {
	out := make([]Entry, len(ids))
	for i, id := range ids {
		w := 3
		if i%3 == 0 {
			w = 6
		}
		out[i] = Entry{
			ID:   id,
			X:    (i % 2) * 6,
			Y:    (i / 2) * 2,
			W:    w,
			H:    defaultHeight,
			MinW: defaultMinW,
			MinH: defaultMinH,
		}
	}
	return out
}

// Clone returns a deep copy of entries.
func Clone(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

func indexOf(entries []Entry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i
		}
	}
	return -1
}
