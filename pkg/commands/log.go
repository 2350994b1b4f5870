package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/lactivity/pkg/commands/options"
	"tableflip.dev/lactivity/pkg/dates"
	"tableflip.dev/lactivity/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	lo := &options.LogOptions{}

	var activityArg, hoursArg string

	cmd := &cobra.Command{
		Use:   "log <activity> <hours>",
		Short: "Record hours for an activity",
		Example: `
lactivity log guitar 2.5
lactivity log guitar 0 --on="6/8"
lactivity log reading 1 --on="2024-6-1" --unlock
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 2 {
				return errors.New("requires an activity and an hour count")
			}
			activityArg = args[0]
			hoursArg = args[1]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			on := ""
			if t, err := oo.GetOn(); err != nil {
				return err
			} else if t != nil {
				on = dates.Key(*t)
			}

			s := log.Log{
				Service:  svc,
				Activity: activityArg,
				Hours:    hoursArg,
				On:       on,
				Unlock:   lo.Unlock,
			}
			return s.Do(context.Background())
		},
	}

	options.AddOnArgs(cmd, oo)
	options.AddLogArgs(cmd, lo)
	topLevel.AddCommand(cmd)
}
