// Package printers renders tracker state for the terminal.
package printers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/lactivity/pkg/activity"
	"tableflip.dev/lactivity/pkg/badge"
	"tableflip.dev/lactivity/pkg/dates"
	"tableflip.dev/lactivity/pkg/ledger"
	"tableflip.dev/lactivity/pkg/policy"
	"tableflip.dev/lactivity/pkg/stats"
	"tableflip.dev/lactivity/pkg/tokens"
)

type PrettyPrint struct{}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func hours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// WeekGrid prints one row per day and one column per activity. Future days
// render faint, and days older than yesterday carry a lock mark since they
// need a token to edit.
func (pp *PrettyPrint) WeekGrid(days []string, acts activity.Catalog, entries ledger.Ledger, today string) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	accent := color.New(color.FgHiYellow)

	tbl := uitable.New()
	tbl.Separator = "  "

	header := []interface{}{bold.Sprint("Date")}
	for _, a := range acts {
		header = append(header, bold.Sprint(a.Name))
	}
	header = append(header, bold.Sprint("Σ"))
	tbl.AddRow(header...)

	for _, day := range days {
		label := day
		if on, err := dates.Parse(day); err == nil {
			label = on.Format("Mon 02")
		}
		switch policy.Classify(today, day) {
		case policy.Future:
			label = faint.Sprint(label)
		case policy.DistantPast:
			label = faint.Sprintf("%s ⊘", label)
		default:
			if day == today {
				label = accent.Sprint(label)
			}
		}

		cells := entries.Day(day)
		row := []interface{}{label}
		total := 0.0
		for _, a := range acts {
			if v, ok := cells[a.ID]; ok {
				row = append(row, hours(v))
				total += v
			} else {
				row = append(row, faint.Sprint("·"))
			}
		}
		if total > 0 {
			row = append(row, bold.Sprint(hours(total)))
		} else {
			row = append(row, faint.Sprint("·"))
		}
		tbl.AddRow(row...)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Summary prints range totals with the efficiency figure colored by the
// usual thresholds: 70 and up is healthy, 40 and up is middling.
func (pp *PrettyPrint) Summary(s stats.Summary) {
	eff := color.New(color.FgRed, color.Bold)
	switch {
	case s.Efficiency >= 70:
		eff = color.New(color.FgGreen, color.Bold)
	case s.Efficiency >= 40:
		eff = color.New(color.FgYellow, color.Bold)
	}

	faint := color.New(color.Faint)
	_, _ = fmt.Fprintf(color.Output, "%s logged of %s available, %s lost  ",
		hours(s.TotalLogged), hours(s.TotalAvailable), hours(s.TotalLoss))
	_, _ = eff.Fprintf(color.Output, "%d%%", s.Efficiency)
	_, _ = faint.Fprintln(color.Output, " efficiency")
}

const barWidth = 30

// Distribution prints the per-category share of the range as bars. The
// zero-valued categories were already excluded upstream.
func (pp *PrettyPrint) Distribution(s stats.Summary) {
	if len(s.Distribution) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(color.Output, " nothing logged")
		return
	}

	max := 0.0
	for _, slice := range s.Distribution {
		if slice.Hours > max {
			max = slice.Hours
		}
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	loss := color.New(color.FgRed)
	plain := color.New()
	for _, slice := range s.Distribution {
		c := plain
		if slice.Name == "Loss" {
			c = loss
		}
		n := int(float64(barWidth) * slice.Hours / max)
		if n == 0 {
			n = 1
		}
		tbl.AddRow(slice.Name, hours(slice.Hours), c.Sprint(strings.Repeat("█", n)))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// DaySeries prints the per-day logged/loss breakdown of the range.
func (pp *PrettyPrint) DaySeries(s stats.Summary) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	loss := color.New(color.FgRed)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Logged"), bold.Sprint("Loss"))
	for _, d := range s.Days {
		logged := faint.Sprint("·")
		if d.Logged > 0 {
			logged = hours(d.Logged)
		}
		lost := faint.Sprint("·")
		if d.Loss > 0 {
			lost = loss.Sprint(hours(d.Loss))
		}
		tbl.AddRow(d.Date, logged, lost)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Tokens prints the remaining daily quota as filled and hollow pips.
func (pp *PrettyPrint) Tokens(count int) {
	full := color.New(color.FgHiYellow)
	empty := color.New(color.Faint)

	for i := 0; i < tokens.Max; i++ {
		if i < count {
			_, _ = full.Fprint(color.Output, "● ")
		} else {
			_, _ = empty.Fprint(color.Output, "○ ")
		}
	}
	f := color.New(color.Faint)
	switch count {
	case 1:
		_, _ = f.Fprintln(color.Output, " 1 edit token left today")
	default:
		_, _ = f.Fprintf(color.Output, " %d edit tokens left today\n", count)
	}
}

// Badges prints the whole catalog, marking what is unlocked and when.
func (pp *PrettyPrint) Badges(unlocked []badge.Achievement) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint, color.Italic)
	got := color.New(color.FgHiGreen)

	when := make(map[string]string, len(unlocked))
	for _, a := range unlocked {
		when[a.ID] = a.UnlockedAt.Local().Format("2006-01-02")
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(" "), bold.Sprint("Badge"), bold.Sprint("For"), bold.Sprint("Unlocked"))
	for _, b := range badge.All() {
		info := b.Info()
		if at, ok := when[info.ID]; ok {
			tbl.AddRow(got.Sprint(info.Symbol), info.Name, info.Meaning, at)
		} else {
			tbl.AddRow(faint.Sprint(info.Symbol), faint.Sprint(info.Name), faint.Sprint(info.Meaning), faint.Sprint("locked"))
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Toast announces a freshly unlocked badge.
func (pp *PrettyPrint) Toast(b badge.Badge) {
	info := b.Info()
	c := color.New(color.FgHiGreen, color.Bold)
	_, _ = c.Fprintf(color.Output, "%s %s unlocked: %s\n", info.Symbol, info.Name, info.Meaning)
}
