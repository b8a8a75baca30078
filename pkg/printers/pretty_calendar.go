package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/datepick/pkg/calendar"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Grid prints every visible month of p, one block after another, marking
// the cursor, selection, range, today and disabled days.
func (pp *PrettyPrint) Grid(p *calendar.Picker) {
	dates := p.DatesInView()
	for m := 0; m < p.ViewCount(); m++ {
		lo := m * calendar.CellsPerMonth
		if lo+calendar.CellsPerMonth > len(dates) {
			return
		}
		pp.printMonth(p, m, dates[lo:lo+calendar.CellsPerMonth])
	}
}

func (pp *PrettyPrint) printMonth(p *calendar.Picker, m int, dates []calendar.Date) {
	w := pp.out()
	month := p.Month(m)

	tf := color.New(color.FgWhite, color.Italic)
	title := fmt.Sprintf("%s %d", month.Month, month.Year)
	mid := (width - len(title)) / 2
	_, _ = tf.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", mid), title, strings.Repeat(" ", width-mid-len(title)))

	hf := color.New(color.Faint)
	names := make([]string, 0, 7)
	for _, wd := range calendar.WeekdayOrder(p.WeekStart()) {
		names = append(names, wd.String()[:2])
	}
	_, _ = hf.Fprintln(w, strings.Join(names, " "))

	for row := 0; row < 6; row++ {
		for col := 0; col < 7; col++ {
			i := row*7 + col
			if col > 0 {
				_, _ = fmt.Fprint(w, " ")
			}
			_, _ = dayColor(p, m*calendar.CellsPerMonth+i, dates[i]).Fprintf(w, "%2d", dates[i].Day)
		}
		_, _ = fmt.Fprint(w, "\n")
	}
	_, _ = fmt.Fprint(w, "\n")
}

func dayColor(p *calendar.Picker, index int, d calendar.Date) *color.Color {
	var attrs []color.Attribute
	switch {
	case !p.InMonth(index):
		attrs = append(attrs, color.Faint, color.FgWhite)
	case p.IsDisabled(d):
		attrs = append(attrs, color.Faint, color.CrossedOut)
	case p.IsSelected(d):
		attrs = append(attrs, color.Bold, color.FgBlack, color.BgHiBlue)
	case p.IsInRange(d):
		attrs = append(attrs, color.FgHiWhite, color.BgBlue)
	default:
		attrs = append(attrs, color.FgHiWhite)
	}
	if p.IsToday(d) {
		attrs = append(attrs, color.Underline)
	}
	if p.IsFocused(d) && p.InMonth(index) {
		attrs = append(attrs, color.ReverseVideo)
	}
	return color.New(attrs...)
}

// Days prints one line per day of the first visible month, in the manner
// of a long month listing.
func (pp *PrettyPrint) Days(p *calendar.Picker) {
	w := pp.out()
	plain := color.New()
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	under := color.New(color.Underline)

	first := p.ViewDate()
	for i := 0; i < first.DaysInMonth(); i++ {
		d := first.AddDays(i)
		printer := plain
		switch {
		case p.IsToday(d):
			printer = bold
		case p.IsDisabled(d):
			printer = faint
		case d.Weekday() == p.WeekStart():
			printer = under
		}
		_, _ = printer.Fprintf(w, "%2d %s", d.Day, d.Weekday().String()[0:1])

		var marks []string
		if p.IsSelected(d) {
			marks = append(marks, "selected")
		}
		if p.IsInRange(d) {
			marks = append(marks, "in range")
		}
		if p.IsDisabled(d) {
			marks = append(marks, "disabled")
		}
		if p.IsToday(d) {
			marks = append(marks, "today")
		}
		if len(marks) > 0 {
			_, _ = faint.Fprintf(w, "  %s", strings.Join(marks, ", "))
		}
		_, _ = fmt.Fprint(w, "\n")
	}
}
