package commands

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the interactive date picker",
		Example: `
datepick ui
datepick ui --mode range --months 2
datepick ui --profile work -o json
`,
		ValidArgs: []string{},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return oo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, p, err := env()
			if err != nil {
				return err
			}
			log := slog.New(slog.DiscardHandler)
			if lo.Debug {
				f, err := tea.LogToFile("datepick-debug.log", "datepick")
				if err != nil {
					return err
				}
				defer f.Close()
				log = lo.Logger(f)
			}
			picker, err := po.Build(cfg, p, calendar.Today(), log)
			if err != nil {
				return err
			}
			i := ui.UI{
				Picker:      picker,
				Persistence: p,
				Profile:     po.Profile,
				Output:      oo.Output,
				Log:         log,
			}
			return i.Do(context.Background())
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddOutputArg(cmd, oo)
	registerProfileCompletion(cmd)

	topLevel.AddCommand(cmd)
}
