package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/profile"
	"tableflip.dev/datepick/pkg/store"
)

func addProfile(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "profile",
		Aliases: []string{"profiles"},
		Short:   "manage saved picker profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addProfileSet(cmd)
	addProfileGet(cmd)
	addProfileList(cmd)
	addProfileDelete(cmd)

	topLevel.AddCommand(cmd)
}

func requireName(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("requires exactly one profile name")
	}
	return nil
}

func addProfileSet(topLevel *cobra.Command) {
	ps := &options.ProfileSettings{}

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "save a profile",
		Example: `
datepick profile set work --months 2 --week-start monday
datepick profile set q1 --mode range --min 2024-01-01 --max 2024-03-31
`,
		Args: requireName,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := env()
			if err != nil {
				return err
			}
			prof := &store.Profile{Name: args[0]}
			if err := ps.Overlay(prof, calendar.Today()); err != nil {
				return err
			}
			s := profile.Set{Persistence: p, Profile: prof}
			return s.Do(context.Background())
		},
	}

	options.AddProfileSettingsArgs(cmd, ps)
	topLevel.AddCommand(cmd)
}

func addProfileGet(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:               "get <name>",
		Short:             "print a profile",
		Args:              requireName,
		ValidArgsFunction: completeProfileArg,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return oo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := env()
			if err != nil {
				return err
			}
			g := profile.Get{Persistence: p, Name: args[0], Output: oo.Output}
			return oo.HandleError(g.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addProfileList(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list saved profiles",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return oo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := env()
			if err != nil {
				return err
			}
			l := profile.List{Persistence: p, Output: oo.Output}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}

func addProfileDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:               "delete <name>",
		Aliases:           []string{"rm"},
		Short:             "delete a profile",
		Args:              requireName,
		ValidArgsFunction: completeProfileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, p, err := env()
			if err != nil {
				return err
			}
			d := profile.Delete{Persistence: p, Name: args[0]}
			return d.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
