package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/lactivity/pkg/commands/options"
	"tableflip.dev/lactivity/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the week grid",
		Example: `
lactivity get
lactivity get --on="2024-6-3"
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			on := time.Now()
			if t, err := oo.GetOn(); err != nil {
				return err
			} else if t != nil {
				on = *t
			}

			s := get.Get{Service: svc, On: on}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
