// Package keys prints the interactive key bindings.
package keys

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepick/pkg/tui/picker"
)

var sections = []string{"Movement", "Paging", "Selection", "Program"}

// Keys prints the key map as a table per section.
type Keys struct {
	Out io.Writer
}

// Do renders the bindings to stdout.
func (k *Keys) Do(ctx context.Context) error {
	w := k.Out
	if w == nil {
		w = color.Output
	}
	_, _ = fmt.Fprintln(w, "")
	for i, group := range picker.DefaultKeyMap().FullHelp() {
		title := fmt.Sprintf("Group %d", i+1)
		if i < len(sections) {
			title = sections[i]
		}
		k.Table(ctx, w, title, group)
		_, _ = fmt.Fprintln(w, "")
	}
	_, _ = fmt.Fprintln(w, "Mouse: click selects (ctrl toggles, shift extends), hover previews a range, wheel pages.")
	return nil
}

// Table renders one section of bindings.
func (k *Keys) Table(_ context.Context, w io.Writer, title string, bindings []key.Binding) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint(title), bold.Sprint("Action"))
	for _, b := range bindings {
		h := b.Help()
		tbl.AddRow(h.Key, h.Desc)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(w, tbl)
}
