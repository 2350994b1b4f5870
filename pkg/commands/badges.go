package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/lactivity/pkg/commands/options"
	"tableflip.dev/lactivity/pkg/runner/badges"
)

func addBadges(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "badges",
		Short: "Show achievements, streak, and the streak calendar",
		Example: `
lactivity badges
lactivity badges --on="2024-5-1"
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

			s := badges.Badges{Service: svc, On: on}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	topLevel.AddCommand(cmd)
}
