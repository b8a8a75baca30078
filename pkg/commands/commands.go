package commands

import (
	"os"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/store"
)

var (
	lo = &options.LogOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "datepick",
		Short: base.Wrap80("Pick dates, date sets and date ranges on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
	options.AddLogArgs(cmd, lo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGrid(topLevel)
	addKeys(topLevel)
	addReplay(topLevel)
	addProfile(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// env loads the config file and the profile store.
func env() (store.Config, store.Persistence, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, p, nil
}

func buildPicker(po *options.PickerOptions) (*calendar.Picker, store.Persistence, error) {
	cfg, p, err := env()
	if err != nil {
		return nil, nil, err
	}
	picker, err := po.Build(cfg, p, calendar.Today(), lo.Logger(os.Stderr))
	if err != nil {
		return nil, nil, err
	}
	return picker, p, nil
}
