package commands

import (
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/lactivity/pkg/app"
	"tableflip.dev/lactivity/pkg/store"
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "lactivity",
		Short: base.Wrap80("Personal time tracking with a survival budget, edit tokens, and streaks."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addLog(topLevel)
	addGet(topLevel)
	addStats(topLevel)
	addActivity(topLevel)
	addSurvival(topLevel)
	addTokens(topLevel)
	addBadges(topLevel)
	addTheme(topLevel)
	addVersion(topLevel)
}

// loadService wires the diskv store into a fresh service. Every command
// is its own session, so unlocks do not outlive the invocation.
func loadService() (*app.Service, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return app.New(p), nil
}
