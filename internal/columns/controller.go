package columns

import (
	"fmt"
	"slices"
)

// Controller holds the interaction state for one table instance.
// State starts as "no sort, no filters, all visible, declaration
// order" and is mutated only through the operation methods.
type Controller struct {
	configs []Config
	index   map[string]int

	sortKey string
	sortAsc bool
	filters map[string]string
	hidden  map[string]bool
	order   []string
}

// NewController creates a controller over configs. Column keys must be
// unique within one table.
func NewController(configs []Config) (*Controller, error) {
	index := make(map[string]int, len(configs))
	order := make([]string, len(configs))
	for i, c := range configs {
		if c.Key == "" {
			return nil, fmt.Errorf("column %d has empty key", i)
		}
		if _, dup := index[c.Key]; dup {
			return nil, fmt.Errorf("duplicate column key %q", c.Key)
		}
		index[c.Key] = i
		order[i] = c.Key
	}
	return &Controller{
		configs: slices.Clone(configs),
		index:   index,
		filters: make(map[string]string),
		hidden:  make(map[string]bool),
		order:   order,
	}, nil
}

// Lookup returns the config for key.
func (c *Controller) Lookup(key string) (Config, bool) {
	i, ok := c.index[key]
	if !ok {
		return Config{}, false
	}
	return c.configs[i], true
}

// ToggleSort selects key as the sort column. A first selection sorts
// ascending; re-selecting the current column flips the direction. The
// cycle has two states: once a column is sorted, clicking it never
// returns it to unsorted. Selecting a different column evicts the
// previous sort. Unsortable columns are a no-op.
func (c *Controller) ToggleSort(key string) error {
	cfg, ok := c.Lookup(key)
	if !ok {
		return unknownColumn(key)
	}
	if !cfg.Sortable {
		return nil
	}
	if c.sortKey == key {
		c.sortAsc = !c.sortAsc
		return nil
	}
	c.sortKey = key
	c.sortAsc = true
	return nil
}

// Sort returns the current sort column and direction; ok is false when
// no column has been sorted yet.
func (c *Controller) Sort() (key string, asc bool, ok bool) {
	return c.sortKey, c.sortAsc, c.sortKey != ""
}

// SetFilter stores text verbatim as the filter for key. The consuming
// screen treats empty text as "no filter"; the controller does not
// clear the entry specially.
func (c *Controller) SetFilter(key, text string) error {
	if _, ok := c.index[key]; !ok {
		return unknownColumn(key)
	}
	c.filters[key] = text
	return nil
}

// Filter returns the filter text for key ("" when none is set).
func (c *Controller) Filter(key string) string {
	return c.filters[key]
}

// Filters returns a copy of the filter map.
func (c *Controller) Filters() map[string]string {
	out := make(map[string]string, len(c.filters))
	for k, v := range c.filters {
		out[k] = v
	}
	return out
}

// ToggleVisibility flips whether key's column renders. Hiding a column
// affects neither its filter nor its place in the order sequence.
func (c *Controller) ToggleVisibility(key string) error {
	if _, ok := c.index[key]; !ok {
		return unknownColumn(key)
	}
	c.hidden[key] = !c.hidden[key]
	return nil
}

// IsHidden reports whether key's column is currently hidden.
func (c *Controller) IsHidden(key string) bool {
	return c.hidden[key]
}

// Reorder replaces the display order with newOrder. The caller's
// drag-and-drop handling is responsible for supplying a permutation of
// the column keys; completeness is not validated here.
func (c *Controller) Reorder(newOrder []string) {
	c.order = slices.Clone(newOrder)
}

// Order returns a copy of the current display order.
func (c *Controller) Order() []string {
	return slices.Clone(c.order)
}

// MoveColumn shifts key one place left (delta -1) or right (delta +1)
// in the display order, a keyboard-friendly convenience over Reorder.
func (c *Controller) MoveColumn(key string, delta int) error {
	if _, ok := c.index[key]; !ok {
		return unknownColumn(key)
	}
	i := slices.Index(c.order, key)
	if i < 0 {
		return nil
	}
	j := i + delta
	if j < 0 || j >= len(c.order) {
		return nil
	}
	c.order[i], c.order[j] = c.order[j], c.order[i]
	return nil
}

// Reset restores declaration order and full visibility. Sort and
// filter state are out of scope and stay untouched.
func (c *Controller) Reset() {
	c.order = make([]string, len(c.configs))
	for i, cfg := range c.configs {
		c.order[i] = cfg.Key
	}
	c.hidden = make(map[string]bool)
}

// Visible returns the configs of the visible columns in display order.
// Order entries naming unknown keys are skipped.
func (c *Controller) Visible() []Config {
	out := make([]Config, 0, len(c.order))
	for _, key := range c.order {
		i, ok := c.index[key]
		if !ok || c.hidden[key] {
			continue
		}
		out = append(out, c.configs[i])
	}
	return out
}
