package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/lactivity/pkg/runner/survival"
)

func addSurvival(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "survival",
		Short: "Show the survival budget",
		Example: `
lactivity survival
lactivity survival set --sleep=7.5
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := survival.Show{Service: svc}
			return s.Do(context.Background())
		},
	}

	addSurvivalSet(cmd)
	topLevel.AddCommand(cmd)
}

func addSurvivalSet(topLevel *cobra.Command) {
	var sleep, mobile, pass string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set survival categories; no flags opens the form",
		Example: `
lactivity survival set --sleep=8 --mobile=1.5
lactivity survival set
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}

			if sleep == "" && mobile == "" && pass == "" {
				f := survival.Form{Service: svc}
				return f.Do(context.Background())
			}

			s := survival.Set{Service: svc, Sleep: sleep, Mobile: mobile, Pass: pass}
			return s.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&sleep, "sleep", "", "Hours of sleep per day.")
	cmd.Flags().StringVar(&mobile, "mobile", "", "Phone and device hours per day.")
	cmd.Flags().StringVar(&pass, "pass", "", "Idle or leisure hours per day.")

	topLevel.AddCommand(cmd)
}
