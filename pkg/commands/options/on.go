package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/timeutil"
)

// OnOptions holds the date the view opens on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Open the view on a date, example: --on="2020-2-28", --on="2/28" or --on="+1m".`)
}

// GetOn returns the parsed date, or the zero Date when unset.
func (o *OnOptions) GetOn(today calendar.Date) (calendar.Date, error) {
	if o.OnString == "" {
		return calendar.Date{}, nil
	}
	return timeutil.ParseDate(o.OnString, today)
}
