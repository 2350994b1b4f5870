// Package act provides the activity catalog runners.
package act

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/lactivity/pkg/app"
	"tableflip.dev/lactivity/pkg/printers"
)

type Add struct {
	Service *app.Service
	Name    string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	a, err := n.Service.AddActivity(ctx, n.Name)
	if err != nil {
		return err
	}
	fmt.Printf("added %s\n", a.Name)
	return nil
}

type Remove struct {
	Service *app.Service
	Name    string
}

// Do hides the activity. Logged history stays in the ledger, so the
// column can be brought back by re-creating nothing; it is simply no
// longer displayed or counted.
func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	a, err := n.Service.RemoveActivity(ctx, n.Name)
	if err != nil {
		return err
	}
	fmt.Printf("removed %s (its history is kept)\n", a.Name)
	return nil
}

type List struct {
	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	acts, err := n.Service.Activities(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Activities")

	if len(acts) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return nil
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Color"), bold.Sprint("Since"))
	for _, a := range acts {
		tbl.AddRow(a.Name, faint.Sprint(a.Color), a.CreatedAt.Local().Format("2006-01-02"))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	return nil
}
