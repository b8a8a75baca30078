package options

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// LogOptions controls debug tracing.
type LogOptions struct {
	Debug bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().BoolVar(&o.Debug, "debug", false,
		"Trace picker state changes.")
}

// Logger returns a text logger writing to w at debug level, or a discarding
// logger when debugging is off.
func (o *LogOptions) Logger(w io.Writer) *slog.Logger {
	if !o.Debug || w == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
