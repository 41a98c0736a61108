// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, the dashboard
//   grid compositor, the table header/body renderer)
//
// Not allowed here:
// - key handling, app state transitions, persistence, or tab policy
package widgets
