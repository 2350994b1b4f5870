// Package log provides the runner that records hours for one cell.
package log

import (
	"context"
	"errors"

	"tableflip.dev/lactivity/pkg/app"
	"tableflip.dev/lactivity/pkg/badge"
	"tableflip.dev/lactivity/pkg/ledger"
	"tableflip.dev/lactivity/pkg/printers"
)

type Log struct {
	Service  *app.Service
	Activity string
	Hours    string
	On       string
	// Unlock spends a token when the day is locked; without it a locked
	// day is reported, not written.
	Unlock bool
}

func (n *Log) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not log, no service")
	}

	day := n.On
	if day == "" {
		day = n.Service.Today()
	}

	fresh, err := n.Service.LogHours(ctx, day, n.Activity, ledger.ParseHours(n.Hours), n.Unlock)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if len(fresh) > 0 {
		if b, ok := badge.ByID(fresh[0].ID); ok {
			pp.NewLine()
			pp.Toast(b)
		}
	}

	s, err := n.Service.Stats(ctx, []string{day})
	if err != nil {
		return err
	}
	pp.NewLine()
	pp.Title(day)
	pp.Summary(s)

	return nil
}
