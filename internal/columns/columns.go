// Package columns owns the per-column interaction state of a table
// header: sort column and direction, filter text, visibility, and
// display order. The owning screen supplies rows and applies the
// filtering and sorting; a Controller is a state layer, not a query
// engine.
package columns

import (
	"errors"
	"fmt"
)

// ErrUnknownColumn is returned when an operation references a key not
// present in the controller's column set.
var ErrUnknownColumn = errors.New("unknown column")

// Config describes one column of a table.
type Config struct {
	Key        string
	Label      string
	Sortable   bool
	Filterable bool
	// Width fixes the column's character width; 0 lets the renderer
	// divide the remaining space.
	Width int
}

// NewConfig returns a sortable, filterable column with no fixed width.
func NewConfig(key, label string) Config {
	return Config{Key: key, Label: label, Sortable: true, Filterable: true}
}

func unknownColumn(key string) error {
	return fmt.Errorf("%w: %q", ErrUnknownColumn, key)
}
