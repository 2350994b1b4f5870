package options

import (
	"github.com/spf13/cobra"
)

// LogOptions
type LogOptions struct {
	Unlock bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.Flags().BoolVarP(&o.Unlock, "unlock", "u", false,
		"Spend an edit token when the day is locked.")
}
