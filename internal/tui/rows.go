package tui

import (
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/vakaflow-ai/vakaflow/internal/columns"
)

// Row holds one record's cell text keyed by column key.
type Row map[string]string

// visibleRows runs the table pipeline: drop rows failing any active
// filter, sort by the controller's sort state, then project the cells
// of the visible columns in display order.
func visibleRows(rows []Row, ctrl *columns.Controller) [][]string {
	var kept []Row
	filters := ctrl.Filters()
	for _, r := range rows {
		if matchesFilters(r, filters) {
			kept = append(kept, r)
		}
	}
	if key, asc, ok := ctrl.Sort(); ok {
		sortRows(kept, key, asc)
	}
	visible := ctrl.Visible()
	out := make([][]string, len(kept))
	for i, r := range kept {
		cells := make([]string, len(visible))
		for j, c := range visible {
			cells[j] = r[c.Key]
		}
		out[i] = cells
	}
	return out
}

// matchesFilters requires every non-empty filter to match its cell.
// Filters on hidden columns still apply.
func matchesFilters(r Row, filters map[string]string) bool {
	for key, query := range filters {
		if strings.TrimSpace(query) == "" {
			continue
		}
		if !cellMatches(r[key], query) {
			return false
		}
	}
	return true
}

// cellMatches accepts a case-insensitive substring hit, or a close
// edit-distance match so minor typos still find their row.
func cellMatches(cell, query string) bool {
	c := strings.ToUpper(strings.TrimSpace(cell))
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	if strings.Contains(c, q) {
		return true
	}
	if len(q) < 3 {
		return false
	}
	for _, word := range strings.Fields(c) {
		dist := levenshtein.ComputeDistance(word, q)
		maxlen := float64(len(word))
		if len(q) > len(word) {
			maxlen = float64(len(q))
		}
		if maxlen > 0 && float64(dist)/maxlen < 0.4 {
			return true
		}
	}
	return false
}

// sortRows orders rows by one column, numerically when both cells
// parse as numbers, otherwise case-insensitively by text. Ties keep
// their relative order.
func sortRows(rows []Row, key string, asc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i][key], rows[j][key]
		if !asc {
			a, b = b, a
		}
		an, aErr := strconv.ParseFloat(strings.TrimSpace(a), 64)
		bn, bErr := strconv.ParseFloat(strings.TrimSpace(b), 64)
		if aErr == nil && bErr == nil {
			return an < bn
		}
		return strings.ToLower(a) < strings.ToLower(b)
	})
}
