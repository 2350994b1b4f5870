package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/lactivity/pkg/dates"
)

// RangeOptions
type RangeOptions struct {
	Day   bool
	Week  bool
	Month bool
}

func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().BoolVarP(&o.Day, "day", "d", false,
		"Stats for a single day.")
	cmd.Flags().BoolVarP(&o.Week, "week", "w", false,
		"Stats for the Monday-start week (the default).")
	cmd.Flags().BoolVarP(&o.Month, "month", "m", false,
		"Stats for the calendar month.")
}

// Keys expands the selected range shape around on. Week is the default.
func (o *RangeOptions) Keys(on time.Time) []string {
	switch {
	case o.Day:
		return dates.Day(on)
	case o.Month:
		return dates.Month(on)
	default:
		return dates.Week(on)
	}
}
