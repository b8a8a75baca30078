// Package profile manages saved picker profiles from the command line.
package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/store"
)

// Set stores a profile, replacing any with the same name.
type Set struct {
	Persistence store.Persistence
	Profile     *store.Profile
	Out         io.Writer
}

func (s *Set) Do(_ context.Context) error {
	if s.Persistence == nil {
		return errors.New("can not set profile, no persistence")
	}
	if err := s.Persistence.Put(s.Profile); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out(s.Out), "saved profile %q\n", s.Profile.Name)
	return nil
}

// Get prints one profile.
type Get struct {
	Persistence store.Persistence
	Name        string
	Output      string
	Out         io.Writer
}

func (g *Get) Do(_ context.Context) error {
	if g.Persistence == nil {
		return errors.New("can not get profile, no persistence")
	}
	prof, err := g.Persistence.Get(g.Name)
	if err != nil {
		return err
	}
	if g.Output != "" {
		pp := printers.PrettyPrint{Out: out(g.Out)}
		return pp.Structured(prof, g.Output)
	}
	printTable(out(g.Out), prof)
	return nil
}

// List prints every stored profile.
type List struct {
	Persistence store.Persistence
	Output      string
	Out         io.Writer
}

func (l *List) Do(ctx context.Context) error {
	if l.Persistence == nil {
		return errors.New("can not list profiles, no persistence")
	}
	all := l.Persistence.List(ctx)
	if l.Output != "" {
		pp := printers.PrettyPrint{Out: out(l.Out)}
		return pp.Structured(all, l.Output)
	}
	if len(all) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(out(l.Out), " no profiles")
		return nil
	}
	printTable(out(l.Out), all...)
	return nil
}

// Delete removes a profile.
type Delete struct {
	Persistence store.Persistence
	Name        string
	Out         io.Writer
}

func (d *Delete) Do(_ context.Context) error {
	if d.Persistence == nil {
		return errors.New("can not delete profile, no persistence")
	}
	if err := d.Persistence.Delete(d.Name); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out(d.Out), "deleted profile %q\n", d.Name)
	return nil
}

func out(w io.Writer) io.Writer {
	if w == nil {
		return color.Output
	}
	return w
}

func printTable(w io.Writer, profiles ...*store.Profile) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Months"), bold.Sprint("Mode"), bold.Sprint("Week"),
		bold.Sprint("Bounds"), bold.Sprint("Disabled"), bold.Sprint("Updated"))
	for _, p := range profiles {
		tbl.AddRow(p.Name, orDash(p.Months), orDefault(p.Mode), orDefault(p.WeekStart),
			bounds(p), len(p.Disabled), p.Updated.Local().Format(time.RFC822))
	}
	_, _ = fmt.Fprintln(w, tbl)
}

func orDash(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprint(n)
}

func orDefault(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func bounds(p *store.Profile) string {
	if p.Min.IsZero() && p.Max.IsZero() {
		return "-"
	}
	lo, hi := p.Min.String(), p.Max.String()
	if lo == "" {
		lo = "…"
	}
	if hi == "" {
		hi = "…"
	}
	return lo + " .. " + hi
}
