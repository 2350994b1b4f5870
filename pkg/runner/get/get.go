// Package get provides the runner that shows the tracker grid.
package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/lactivity/pkg/app"
	"tableflip.dev/lactivity/pkg/dates"
	"tableflip.dev/lactivity/pkg/printers"
)

type Get struct {
	Service *app.Service
	On      time.Time
}

// Do prints the Monday-start week grid around On, the week summary, and
// the remaining token quota.
func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	fmt.Println("")

	week := dates.Week(n.On)

	acts, err := n.Service.Activities(ctx)
	if err != nil {
		return err
	}
	entries, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(fmt.Sprintf("Week of %s", week[0]))

	if len(acts) == 0 {
		pp.NewLine()
		fmt.Println("no activities yet, add one with: lactivity activity add <name>")
		return nil
	}

	pp.WeekGrid(week, acts, entries, n.Service.Today())

	s, err := n.Service.Stats(ctx, week)
	if err != nil {
		return err
	}
	pp.Summary(s)

	count, err := n.Service.TokensRemaining(ctx)
	if err != nil {
		return err
	}
	pp.Tokens(count)

	return nil
}
