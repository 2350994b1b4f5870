package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2024-6-10" or --on="6/10".`)
}

// GetOn resolves the flag to a date, nil when unset. Short form dates
// resolve within the current year, looking backward: saying 6/10 in
// December means last June, not next.
func (o *OnOptions) GetOn() (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return nil, err
		}
		t = t.AddDate(time.Now().Year(), 0, 0)
		if t.After(time.Now().AddDate(0, 0, 1)) {
			t = t.AddDate(-1, 0, 0)
		}
	}
	return &t, nil
}
