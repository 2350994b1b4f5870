// Package badges provides the achievement tray runner.
package badges

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/lactivity/pkg/app"
	"tableflip.dev/lactivity/pkg/printers"
)

type Badges struct {
	Service *app.Service
	On      time.Time
}

// Do prints the badge tray, the current streak, and the month calendar
// with logged days highlighted.
func (n *Badges) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get badges, no service")
	}

	unlocked, streak, err := n.Service.Badges(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Achievements")
	pp.Badges(unlocked)

	f := color.New(color.Faint)
	switch streak {
	case 0:
		_, _ = f.Fprintln(color.Output, "no streak yet")
	case 1:
		_, _ = f.Fprintln(color.Output, "1 day streak")
	default:
		_, _ = f.Fprintf(color.Output, "%d day streak\n", streak)
	}
	fmt.Println("")

	entries, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}
	pp.StreakCalendar(n.On, entries.Dates())

	return nil
}
