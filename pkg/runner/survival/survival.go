// Package survival provides the runners for the survival budget.
package survival

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/lactivity/pkg/app"
	"tableflip.dev/lactivity/pkg/printers"
	survivalpkg "tableflip.dev/lactivity/pkg/survival"
)

type Show struct {
	Service *app.Service
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	b, err := n.Service.Survival(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Survival budget")

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("sleep", fmt.Sprintf("%gh", b.Sleep))
	tbl.AddRow("mobile", fmt.Sprintf("%gh", b.Mobile))
	tbl.AddRow("pass", fmt.Sprintf("%gh", b.Pass))
	tbl.AddRow(bold.Sprint("available"), bold.Sprintf("%gh / day", b.Available()))
	_, _ = fmt.Fprintln(color.Output, tbl)

	return nil
}

// Set applies the categories given on the command line. Values go through
// the usual coercion: junk and negatives clamp to zero.
type Set struct {
	Service *app.Service
	// Category values as typed by the user; empty means leave alone.
	Sleep  string
	Mobile string
	Pass   string
}

func (n *Set) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set, no service")
	}
	b, err := n.Service.Survival(ctx)
	if err != nil {
		return err
	}

	if n.Sleep != "" {
		_ = b.Set("sleep", survivalpkg.ParseHours(n.Sleep))
	}
	if n.Mobile != "" {
		_ = b.Set("mobile", survivalpkg.ParseHours(n.Mobile))
	}
	if n.Pass != "" {
		_ = b.Set("pass", survivalpkg.ParseHours(n.Pass))
	}

	if err := n.Service.SetSurvival(ctx, b); err != nil {
		return err
	}

	show := Show{Service: n.Service}
	return show.Do(ctx)
}

// Form walks the three categories interactively.
type Form struct {
	Service *app.Service
}

func (n *Form) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not configure, no service")
	}
	b, err := n.Service.Survival(ctx)
	if err != nil {
		return err
	}

	sleep := fmt.Sprintf("%g", b.Sleep)
	mobile := fmt.Sprintf("%g", b.Mobile)
	pass := fmt.Sprintf("%g", b.Pass)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Sleep").
				Description("Hours of sleep per day.").
				Value(&sleep),
			huh.NewInput().
				Title("Mobile").
				Description("Phone and device hours per day.").
				Value(&mobile),
			huh.NewInput().
				Title("Pass").
				Description("Idle or leisure hours per day.").
				Value(&pass),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		return err
	}

	set := Set{Service: n.Service, Sleep: sleep, Mobile: mobile, Pass: pass}
	return set.Do(ctx)
}
