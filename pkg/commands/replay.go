package commands

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/commands/options"
	"tableflip.dev/datepick/pkg/runner/replay"
)

func addReplay(topLevel *cobra.Command) {
	oo := &options.OutputOptions{}
	changes := false

	cmd := &cobra.Command{
		Use:   "replay <script.yaml|->",
		Short: "run a scripted sequence of clicks and keys",
		Long: `Replay feeds a YAML script of input events to a fresh picker and prints
the final state. Each step sets one of: key, down, up, click, hover, leave,
navigate (with optional select), page, years, mode, months or blur.

anchor: "2024-02-15"
profile:
  months: 2
  mode: range
steps:
  - click: "2024-02-05"
  - hover: "2024-02-20"
  - click: "2024-03-03"
  - down: Control
  - key: ArrowRight
  - up: Control
`,
		Example: `
datepick replay session.yaml
datepick replay - --changes -o json < session.yaml
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a script path, or - for stdin")
			}
			return oo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			r := replay.Replay{
				Output:  oo.Output,
				Changes: changes,
				Log:     lo.Logger(os.Stderr),
			}
			if args[0] == "-" {
				r.Script = os.Stdin
			} else {
				r.Path = args[0]
			}
			return oo.HandleError(r.Do(context.Background()))
		},
	}

	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVar(&changes, "changes", false, "Include every change notification and focus request.")

	topLevel.AddCommand(cmd)
}
