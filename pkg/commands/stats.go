package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/lactivity/pkg/commands/options"
	"tableflip.dev/lactivity/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	ro := &options.RangeOptions{}
	out := &options.OutputOptions{}
	series := false

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show efficiency, loss, and distribution for a range",
		Example: `
lactivity stats
lactivity stats --day --on="6/8"
lactivity stats --month --series
lactivity stats --json
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

			s := stats.Stats{
				Service: svc,
				Days:    ro.Keys(on),
				Series:  series,
				JSON:    out.JSON,
			}
			return out.HandleError(s.Do(context.Background()))
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddRangeArgs(cmd, ro)
	options.AddOutputArg(cmd, out)
	cmd.Flags().BoolVar(&series, "series", false, "Also print the per-day breakdown.")
	topLevel.AddCommand(cmd)
}
