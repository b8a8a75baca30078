// Package printers writes picker state as plain, colored text.
package printers

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/datepick/pkg/calendar"
)

// PrettyPrint writes human-friendly output. A nil Out writes to stdout.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return os.Stdout
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Selection prints the mode and the current selection, one date per line.
func (pp *PrettyPrint) Selection(p *calendar.Picker) {
	w := pp.out()
	label := color.New(color.Faint)
	value := color.New(color.Bold)

	_, _ = label.Fprint(w, "mode: ")
	_, _ = value.Fprintln(w, p.Mode())

	dates := Selected(p)
	if len(dates) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, " none\n")
		return
	}
	switch p.Mode() {
	case calendar.ModeRange:
		_, _ = label.Fprint(w, "start: ")
		_, _ = value.Fprintln(w, p.RangeStart())
		_, _ = label.Fprint(w, "end:   ")
		if end := p.RangeEnd(); end.IsZero() {
			_, _ = color.New(color.Faint, color.Italic).Fprintln(w, "open")
		} else {
			_, _ = value.Fprintln(w, end)
		}
	default:
		for _, d := range dates {
			_, _ = value.Fprintf(w, "%s %s\n", d, d.Weekday().String()[:3])
		}
	}
}

// Selected returns the selected dates of p regardless of mode. A range is
// reported as its endpoints.
func Selected(p *calendar.Picker) []calendar.Date {
	switch p.Mode() {
	case calendar.ModeMultiple:
		return p.SelectedDates()
	case calendar.ModeRange:
		var out []calendar.Date
		if s := p.RangeStart(); !s.IsZero() {
			out = append(out, s)
		}
		if e := p.RangeEnd(); !e.IsZero() {
			out = append(out, e)
		}
		return out
	}
	if d := p.SelectedDate(); !d.IsZero() {
		return []calendar.Date{d}
	}
	return nil
}

// DateList joins dates as YYYY-MM-DD separated by spaces.
func DateList(dates []calendar.Date) string {
	parts := make([]string, 0, len(dates))
	for _, d := range dates {
		parts = append(parts, d.String())
	}
	return strings.Join(parts, " ")
}
