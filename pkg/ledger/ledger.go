// Package ledger owns the raw hour entries: a sparse mapping of day key to
// activity id to logged hours. Zero never gets stored; clearing a cell to
// zero removes it, and a day with no cells left is removed with it.
package ledger

import (
	"sort"
	"strconv"
)

type Ledger map[string]map[string]float64

// ParseHours coerces user input to a non-negative hour count. Anything
// unparseable or negative becomes 0, never an error.
func ParseHours(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// LogHours records hours for the activity on the given day. Negative input
// clamps to 0, and a 0 value prunes the cell.
func (l Ledger) LogHours(day, activityID string, hours float64) {
	if hours < 0 {
		hours = 0
	}
	cells := l[day]
	if hours == 0 {
		if cells == nil {
			return
		}
		delete(cells, activityID)
		if len(cells) == 0 {
			delete(l, day)
		}
		return
	}
	if cells == nil {
		cells = make(map[string]float64)
		l[day] = cells
	}
	cells[activityID] = hours
}

// Day returns the cells logged on the given day. Callers always get a
// usable map, never nil; absent days read as empty.
func (l Ledger) Day(day string) map[string]float64 {
	if cells, ok := l[day]; ok {
		return cells
	}
	return map[string]float64{}
}

// Dates returns every populated day key, most recent first.
func (l Ledger) Dates() []string {
	keys := make([]string, 0, len(l))
	for day, cells := range l {
		if len(cells) > 0 {
			keys = append(keys, day)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	return keys
}
