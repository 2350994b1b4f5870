package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/lactivity/pkg/runner/tokens"
)

func addTokens(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Show today's remaining edit tokens",
		Example: `
lactivity tokens
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, err := loadService()
			if err != nil {
				return err
			}
			s := tokens.Tokens{Service: svc}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
