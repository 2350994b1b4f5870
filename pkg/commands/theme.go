package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/lactivity/pkg/theme"
)

func addTheme(topLevel *cobra.Command) {
	ids := make([]string, 0, len(theme.All()))
	for _, t := range theme.All() {
		ids = append(ids, t.Info().ID)
	}

	cmd := &cobra.Command{
		Use:       "theme [name]",
		Short:     "Show or set the dashboard theme",
		ValidArgs: ids,
		Example: `
lactivity theme
lactivity theme magma
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			ctx := context.Background()

			if len(args) == 1 {
				t, err := theme.Parse(args[0])
				if err != nil {
					return err
				}
				if err := svc.SetTheme(ctx, t); err != nil {
					return err
				}
			}

			current, err := svc.Theme(ctx)
			if err != nil {
				return err
			}

			faint := color.New(color.Faint)
			bold := color.New(color.Bold)
			for _, t := range theme.All() {
				info := t.Info()
				line := fmt.Sprintf("%-8s  %s", info.ID, info.Label)
				if t == current {
					_, _ = bold.Fprintf(color.Output, "* %s\n", line)
					continue
				}
				_, _ = faint.Fprintf(color.Output, "  %s\n", line)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
