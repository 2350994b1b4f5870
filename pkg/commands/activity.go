package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/lactivity/pkg/runner/act"
)

func addActivity(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"act"},
		Short:   "Manage the activity catalog",
		Example: `
lactivity activity add guitar
lactivity activity list
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addActivityAdd(cmd)
	addActivityRemove(cmd)
	addActivityList(cmd)

	topLevel.AddCommand(cmd)
}

func addActivityAdd(topLevel *cobra.Command) {
	var name string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an activity",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := act.Add{Service: svc, Name: name}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addActivityRemove(topLevel *cobra.Command) {
	var name string

	cmd := &cobra.Command{
		Use:     "rm <name>",
		Aliases: []string{"remove"},
		Short:   "Hide an activity, keeping its history",
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires a name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := act.Remove{Service: svc, Name: name}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addActivityList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List activities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := act.List{Service: svc}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
