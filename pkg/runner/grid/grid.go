// Package grid prints the visible months without an interactive session.
package grid

import (
	"context"
	"errors"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/printers"
)

// Grid prints the picker's current view.
type Grid struct {
	Picker *calendar.Picker
	Long   bool
	Output string

	Printer *printers.PrettyPrint
}

// Do writes the view and the selection.
func (g *Grid) Do(_ context.Context) error {
	if g.Picker == nil {
		return errors.New("grid: no picker")
	}
	pp := g.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if g.Output != "" {
		return pp.Structured(printers.StateOf(g.Picker), g.Output)
	}

	pp.NewLine()
	if g.Long {
		pp.Days(g.Picker)
		pp.NewLine()
	} else {
		pp.Grid(g.Picker)
	}
	pp.Selection(g.Picker)
	return nil
}
