// Package ui runs the interactive picker in the terminal.
package ui

import (
	"context"
	"errors"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/store"
	"tableflip.dev/datepick/pkg/tui/picker"
)

// UI opens the picker full screen and prints the selection on exit.
type UI struct {
	Picker *calendar.Picker

	// When both are set the profile is re-applied whenever it changes on disk.
	Persistence store.Persistence
	Profile     string

	Output string
	Log    *slog.Logger
}

// Do runs the program until the user quits.
func (u *UI) Do(ctx context.Context) error {
	if u.Picker == nil {
		return errors.New("ui: no picker")
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("ui: stdout is not a terminal, use grid or replay instead")
	}
	if u.Log == nil {
		u.Log = slog.New(slog.DiscardHandler)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := picker.New(u.Picker)
	prog := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	if u.Persistence != nil && u.Profile != "" {
		go u.watch(ctx, prog)
	}

	if _, err := prog.Run(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if u.Output != "" {
		return pp.Structured(printers.StateOf(u.Picker), u.Output)
	}
	pp.Selection(u.Picker)
	return nil
}

func (u *UI) watch(ctx context.Context, prog *tea.Program) {
	events, err := u.Persistence.Watch(ctx)
	if err != nil {
		u.Log.Warn("profile watch unavailable", "profile", u.Profile, "err", err)
		return
	}
	for ev := range events {
		if ev.Type == store.EventProfileChanged && ev.Name != u.Profile {
			continue
		}
		prof, err := u.Persistence.Get(u.Profile)
		if err != nil {
			u.Log.Debug("profile reload skipped", "profile", u.Profile, "err", err)
			continue
		}
		u.Log.Debug("profile changed", "profile", u.Profile, "event", ev.Type)
		prog.Send(picker.ApplyMsg{Name: u.Profile, Apply: prof.Apply})
	}
}
