package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/lactivity/pkg/dates"
)

const width = len("11 12 13 14 15 16 17") // an example week

// StreakCalendar prints the month containing on, highlighting the days
// with at least one logged entry. populated holds day keys.
func (pp *PrettyPrint) StreakCalendar(on time.Time, populated []string) {
	days := dates.DaysIn(on)

	logged := make([]bool, days)
	prefix := on.Local().Format("2006-01-")
	for _, key := range populated {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if t, err := dates.Parse(key); err == nil {
			logged[t.Day()-1] = true
		}
	}

	pp.printMonth(on, logged)
}

func (pp *PrettyPrint) printMonth(then time.Time, logged []bool) {
	d := startDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := dates.DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(logged) && logged[i] {
			_, _ = l2.Printf("%2d ", i+1)
		} else {
			_, _ = l1.Printf("%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func startDay(then time.Time) time.Weekday {
	return time.Date(then.Local().Year(), then.Local().Month(), 1, 1, 0, 0, 0, time.Local).Weekday()
}
