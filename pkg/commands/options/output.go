package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// OutputOptions selects structured output.
type OutputOptions struct {
	Output string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().StringVarP(&po.Output, "output", "o", "",
		"Output format. One of 'json' or 'yaml'; empty prints text.")
}

// Validate checks the requested format.
func (o *OutputOptions) Validate() error {
	switch o.Output {
	case "", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q, expected json or yaml", o.Output)
}

// HandleError prints err as a structured document when structured output was
// requested and swallows it; otherwise err is returned unchanged.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil || o.Output == "" {
		return err
	}
	out := map[string]string{
		"error": err.Error(),
	}
	var (
		b    []byte
		merr error
	)
	if o.Output == "yaml" {
		b, merr = yaml.Marshal(out)
	} else {
		b, merr = json.Marshal(out)
	}
	if merr != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
