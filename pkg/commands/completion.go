package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(datepick completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(datepick completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func profileCompletions(toComplete string) []string {
	_, p, err := env()
	if err != nil {
		return nil
	}
	var names []string
	for _, prof := range p.List(context.Background()) {
		if strings.HasPrefix(prof.Name, toComplete) {
			names = append(names, prof.Name)
		}
	}
	return names
}

func completeProfileArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return profileCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func registerProfileCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("profile", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return profileCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}
