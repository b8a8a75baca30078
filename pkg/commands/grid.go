package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/grid"
	"tableflip.dev/datepick/pkg/timeutil"
)

func addGrid(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	oo := &options.OutputOptions{}
	long := false
	var selects []string

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "print the visible months",
		Example: `
datepick grid
datepick grid --on 2024-02-15 --months 3
datepick grid --mode multiple --select 2/3,2/4 --long
`,
		ValidArgs: []string{},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return oo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			picker, _, err := buildPicker(po)
			if err != nil {
				return oo.HandleError(err)
			}
			dates, err := timeutil.ParseDates(selects, picker.Today())
			if err != nil {
				return oo.HandleError(err)
			}
			for _, d := range dates {
				// Each --select acts as a ctrl-click so multiple mode accumulates.
				picker.HandleKey(calendar.Down(calendar.KeyControl), picker.Cursor())
				picker.Click(d)
				picker.HandleKey(calendar.Up(calendar.KeyControl), picker.Cursor())
			}
			g := grid.Grid{
				Picker: picker,
				Long:   long,
				Output: oo.Output,
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVarP(&long, "long", "l", false, "List each day of the first month instead of the grid.")
	cmd.Flags().StringSliceVar(&selects, "select", nil, "Dates to select before printing.")
	registerProfileCompletion(cmd)

	topLevel.AddCommand(cmd)
}
