// Package stats provides the runner behind the stats command.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/lactivity/pkg/app"
	"tableflip.dev/lactivity/pkg/printers"
)

type Stats struct {
	Service *app.Service
	// Days holds the range to aggregate; the caller decides the shape.
	Days []string
	// Series also prints the per-day breakdown.
	Series bool
	JSON   bool
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not compute stats, no service")
	}
	if len(n.Days) == 0 {
		return errors.New("can not compute stats, empty range")
	}

	s, err := n.Service.Stats(ctx, n.Days)
	if err != nil {
		return err
	}

	if n.JSON {
		b, err := json.Marshal(s)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	if len(n.Days) == 1 {
		pp.Title(n.Days[0])
	} else {
		pp.Title(fmt.Sprintf("%s to %s", n.Days[0], n.Days[len(n.Days)-1]))
	}
	pp.Summary(s)
	pp.NewLine()
	pp.Distribution(s)

	if n.Series {
		pp.NewLine()
		pp.DaySeries(s)
	}

	return nil
}
