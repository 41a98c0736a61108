package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Binding ties one or more key presses to a named action within a set
// of scopes. An empty scope list means the binding is global.
type Binding struct {
	Keys   []string
	Action string
	Help   string
	Scopes []string
}

// KeyRegistry resolves key presses to actions per scope, and feeds the
// footer its shortcut hints.
type KeyRegistry struct {
	bindings []Binding
}

func NewKeyRegistry(bindings []Binding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(b Binding) {
	r.bindings = append(r.bindings, b)
}

// ForScope returns the bindings visible in scope, in registration
// order.
func (r *KeyRegistry) ForScope(scope string) []Binding {
	out := make([]Binding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// IsAction reports whether msg triggers action in the given scope.
func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := strings.ToLower(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if strings.ToLower(k) == pressed {
				return true
			}
		}
	}
	return false
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

// tableScopes lists every scope backed by a column-driven table.
var tableScopes = []string{"agents", "vendors", "approvals"}

// DefaultBindings returns the stock key map. Tab-switch bindings for
// tabs beyond the stock four are registered by the caller.
func DefaultBindings() []Binding {
	return []Binding{
		{Keys: []string{"q"}, Action: "quit", Help: "quit"},
		{Keys: []string{"1"}, Action: "switch-tab-1", Help: "dashboard"},
		{Keys: []string{"2"}, Action: "switch-tab-2", Help: "agents"},
		{Keys: []string{"3"}, Action: "switch-tab-3", Help: "vendors"},
		{Keys: []string{"4"}, Action: "switch-tab-4", Help: "approvals"},

		{Keys: []string{"up", "k"}, Action: "row-up", Help: "up", Scopes: tableScopes},
		{Keys: []string{"down", "j"}, Action: "row-down", Help: "down", Scopes: tableScopes},
		{Keys: []string{"left", "h"}, Action: "col-left", Help: "column", Scopes: tableScopes},
		{Keys: []string{"right", "l"}, Action: "col-right", Help: "column", Scopes: tableScopes},
		{Keys: []string{"s"}, Action: "toggle-sort", Help: "sort", Scopes: tableScopes},
		{Keys: []string{"/"}, Action: "edit-filter", Help: "filter", Scopes: tableScopes},
		{Keys: []string{"v"}, Action: "toggle-column", Help: "hide/show", Scopes: tableScopes},
		{Keys: []string{"g"}, Action: "grab-column", Help: "grab/drop", Scopes: tableScopes},
		{Keys: []string{"r"}, Action: "reset-columns", Help: "reset", Scopes: tableScopes},

		{Keys: []string{"y"}, Action: "approve", Help: "approve", Scopes: []string{"approvals"}},
		{Keys: []string{"n"}, Action: "reject", Help: "reject", Scopes: []string{"approvals"}},

		{Keys: []string{"a"}, Action: "arrange", Help: "arrange", Scopes: []string{"dashboard"}},
		{Keys: []string{"tab"}, Action: "next-widget", Help: "next widget", Scopes: []string{"dashboard-arrange"}},
		{Keys: []string{"shift+tab"}, Action: "prev-widget", Help: "prev widget", Scopes: []string{"dashboard-arrange"}},
		{Keys: []string{"up", "down", "left", "right"}, Action: "move-widget", Help: "move", Scopes: []string{"dashboard-arrange"}},
		{Keys: []string{"H", "J", "K", "L"}, Action: "resize-widget", Help: "resize", Scopes: []string{"dashboard-arrange"}},
		{Keys: []string{"r"}, Action: "reset-layout", Help: "reset layout", Scopes: []string{"dashboard-arrange"}},
		{Keys: []string{"a", "esc"}, Action: "arrange-done", Help: "done", Scopes: []string{"dashboard-arrange"}},
	}
}
