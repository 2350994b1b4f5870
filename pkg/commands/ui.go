package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/lactivity/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	var columns int

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive dashboard",
		Example: `
lactivity ui
lactivity ui --columns=160
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			ctx := context.Background()
			if columns > 0 {
				if err := svc.SetColumnSize(ctx, columns); err != nil {
					return err
				}
			}
			return ui.Run(ctx, svc)
		},
	}

	cmd.Flags().IntVar(&columns, "columns", 0, "Persist a grid column width in pixels, clamped to 80..300.")
	topLevel.AddCommand(cmd)
}
