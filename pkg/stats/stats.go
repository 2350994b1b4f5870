// Package stats derives productivity figures from the raw ledger. It is a
// pure computation: the same ledger, budget, range, and activity set always
// produce the same summary, whatever shape the range takes.
package stats

import (
	"math"

	"tableflip.dev/lactivity/pkg/activity"
	"tableflip.dev/lactivity/pkg/ledger"
	"tableflip.dev/lactivity/pkg/survival"
)

// DayStat is one day of the range.
type DayStat struct {
	Date   string  `json:"date"`
	Logged float64 `json:"logged"`
	Loss   float64 `json:"loss"`
}

// Slice is one category of the distribution view. Zero-valued categories
// never appear; they would render as degenerate chart slices.
type Slice struct {
	Name  string  `json:"name"`
	Color string  `json:"color"`
	Hours float64 `json:"hours"`
}

// Summary aggregates a date range.
type Summary struct {
	Days           []DayStat `json:"days"`
	TotalLogged    float64   `json:"totalLogged"`
	TotalLoss      float64   `json:"totalLoss"`
	TotalAvailable float64   `json:"totalAvailable"`
	Efficiency     int       `json:"efficiency"`
	Distribution   []Slice   `json:"distribution"`
}

// Compute walks the range and totals logged hours, loss, and the
// per-activity distribution. Only activities in the visible set count;
// orphaned history from deleted activities is ignored. Loss is floored at
// zero per day, and efficiency is 0 whenever no hours were available.
func Compute(l ledger.Ledger, budget survival.Budget, days []string, acts activity.Catalog) Summary {
	available := budget.Available()

	s := Summary{
		Days:           make([]DayStat, 0, len(days)),
		TotalAvailable: available * float64(len(days)),
	}

	perActivity := make(map[string]float64, len(acts))
	for _, day := range days {
		cells := l.Day(day)
		logged := 0.0
		for _, a := range acts {
			hours := cells[a.ID]
			logged += hours
			perActivity[a.ID] += hours
		}
		loss := available - logged
		if loss < 0 {
			loss = 0
		}
		s.Days = append(s.Days, DayStat{Date: day, Logged: logged, Loss: loss})
		s.TotalLogged += logged
		s.TotalLoss += loss
	}

	if s.TotalAvailable > 0 {
		s.Efficiency = int(math.Round(100 * s.TotalLogged / s.TotalAvailable))
	}

	for _, a := range acts {
		if hours := perActivity[a.ID]; hours > 0 {
			s.Distribution = append(s.Distribution, Slice{Name: a.Name, Color: a.Color, Hours: hours})
		}
	}
	if s.TotalLoss > 0 {
		s.Distribution = append(s.Distribution, Slice{Name: "Loss", Color: activity.LossColor, Hours: s.TotalLoss})
	}

	return s
}
