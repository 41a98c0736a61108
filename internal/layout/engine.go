package layout

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Engine owns the layout entries for one dashboard. It resolves the
// initial arrangement from an explicit layout, durable storage, or
// default synthesis, and persists every interactive change back to the
// store. All failures are contained: the engine degrades to a
// synthesized layout rather than returning an error.
type Engine struct {
	store    Store
	key      string
	logger   *zap.Logger
	entries  []Entry
	onChange func([]Entry)
}

// NewEngine creates an engine persisting to store under storageKey.
// Both store and storageKey may be zero; the engine then keeps its
// layout in memory only.
func NewEngine(store Store, storageKey string, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{store: store, key: storageKey, logger: logger}
}

// OnChange registers a callback invoked with the full entry set on
// every interactive change.
func (e *Engine) OnChange(fn func([]Entry)) {
	e.onChange = fn
}

// Initialize resolves the layout for the given widget IDs. Resolution
// order, first match wins:
//
//  1. explicit, used verbatim and without validation against ids;
//  2. the stored layout, when it parses and its entry count equals
//     len(ids) — count is deliberately the only check performed, so a
//     stored layout whose widget keys drifted while the count stayed
//     the same is reused as-is;
//  3. DefaultEntries(ids).
//
// A stored blob that fails to parse is logged and discarded; a count
// mismatch is discarded silently.
func (e *Engine) Initialize(ids []string, explicit []Entry) []Entry {
	if explicit != nil {
		e.entries = Clone(explicit)
		return Clone(e.entries)
	}
	if e.key != "" && e.store != nil {
		if raw, ok := e.store.Get(e.key); ok {
			var stored []Entry
			if err := json.Unmarshal([]byte(raw), &stored); err != nil {
				e.logger.Warn("discarding unparseable stored layout",
					zap.String("key", e.key), zap.Error(err))
			} else if len(stored) == len(ids) {
				e.entries = stored
				return Clone(e.entries)
			}
		}
	}
	e.entries = DefaultEntries(ids)
	return Clone(e.entries)
}

// Entries returns a copy of the current layout.
func (e *Engine) Entries() []Entry {
	return Clone(e.entries)
}

// ApplyChange replaces the full layout with entries, notifies the
// change callback, and persists the new layout when a storage key is
// configured. There is no partial-update path; interactive gestures
// always hand back the complete entry set.
func (e *Engine) ApplyChange(entries []Entry) {
	e.entries = Clone(entries)
	if e.onChange != nil {
		e.onChange(Clone(e.entries))
	}
	if e.key == "" || e.store == nil {
		return
	}
	raw, err := json.Marshal(e.entries)
	if err != nil {
		e.logger.Warn("marshal layout", zap.String("key", e.key), zap.Error(err))
		return
	}
	if err := e.store.Set(e.key, string(raw)); err != nil {
		e.logger.Warn("persist layout", zap.String("key", e.key), zap.Error(err))
	}
}

// Width conversion constants for Measure. The grid subtracts a fixed
// padding allowance from a known container width; with no container it
// falls back to the viewport width minus a margin for surrounding
// chrome.
const (
	containerPadding = 4
	fallbackMargin   = 20
)

// Measure returns the character width available to the grid.
// containerWidth <= 0 means the container could not be resolved.
func Measure(containerWidth, viewportWidth int) int {
	w := viewportWidth - fallbackMargin
	if containerWidth > 0 {
		w = containerWidth - containerPadding
	}
	if w < GridCols {
		w = GridCols
	}
	return w
}
