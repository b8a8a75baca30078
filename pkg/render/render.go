// Package render draws a picker's visible months as terminal text.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/datepick/pkg/calendar"
)

const (
	// CellWidth is the width of one day cell.
	CellWidth = 2
	// BlockWidth is the width of one month block: seven cells and six spaces.
	BlockWidth = 7*CellWidth + 6
	// BlockHeight is the title line, the weekday header and six week rows.
	BlockHeight = 8

	horizontalGap = 3
	verticalGap   = 1
	headerLines   = 2
)

// Styles controls how each part of the grid is drawn.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Day      lipgloss.Style
	Overflow lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Endpoint lipgloss.Style
	Focused  lipgloss.Style
	Disabled lipgloss.Style

	// In-range cells get a background blended from RangeFrom to RangeTo.
	RangeFrom colorful.Color
	RangeTo   colorful.Color
}

// DefaultStyles returns the styling used by the CLI.
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Width(BlockWidth).Align(lipgloss.Center),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
		Day:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		Overflow:  lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Today:     lipgloss.NewStyle().Underline(true),
		Selected:  lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		Endpoint:  lipgloss.NewStyle().Bold(true),
		Focused:   lipgloss.NewStyle().Reverse(true),
		Disabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
		RangeFrom: mustHex("#3c3c8c"),
		RangeTo:   mustHex("#5f87af"),
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Layout records where the month blocks landed so screen positions can be
// mapped back to grid indices.
type Layout struct {
	Orientation calendar.Orientation
	Months      int
}

// Width is the total rendered width.
func (l Layout) Width() int {
	if l.Orientation == calendar.Vertical || l.Months < 1 {
		return BlockWidth
	}
	return l.Months*BlockWidth + (l.Months-1)*horizontalGap
}

// Height is the total rendered height.
func (l Layout) Height() int {
	if l.Orientation == calendar.Horizontal || l.Months < 1 {
		return BlockHeight
	}
	return l.Months*BlockHeight + (l.Months-1)*verticalGap
}

// CellAt maps a zero-based column and line of the rendered output to an
// index into Picker.DatesInView. Titles, headers and gaps report false.
func (l Layout) CellAt(x, y int) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	block, bx, by := 0, x, y
	if l.Orientation == calendar.Vertical {
		block, by = y/(BlockHeight+verticalGap), y%(BlockHeight+verticalGap)
	} else {
		block, bx = x/(BlockWidth+horizontalGap), x%(BlockWidth+horizontalGap)
	}
	if block >= l.Months || bx >= BlockWidth || by >= BlockHeight {
		return 0, false
	}
	row := by - headerLines
	if row < 0 || bx%(CellWidth+1) == CellWidth {
		return 0, false
	}
	col := bx / (CellWidth + 1)
	return block*calendar.CellsPerMonth + row*7 + col, true
}

// Render draws every visible month of p.
func Render(p *calendar.Picker, s Styles) (string, Layout) {
	layout := Layout{Orientation: p.Orientation(), Months: p.ViewCount()}
	dates := p.DatesInView()

	blocks := make([]string, 0, layout.Months)
	for m := 0; m < layout.Months; m++ {
		lo := m * calendar.CellsPerMonth
		hi := lo + calendar.CellsPerMonth
		if hi > len(dates) {
			break
		}
		blocks = append(blocks, renderMonth(p, s, p.Month(m), lo, dates[lo:hi]))
	}

	if layout.Orientation == calendar.Vertical {
		return strings.Join(blocks, strings.Repeat("\n", verticalGap+1)), layout
	}
	gap := strings.Repeat(" ", horizontalGap)
	parts := make([]string, 0, 2*len(blocks))
	for i, b := range blocks {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, b)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...), layout
}

func renderMonth(p *calendar.Picker, s Styles, month calendar.Date, offset int, dates []calendar.Date) string {
	lines := make([]string, 0, BlockHeight)
	lines = append(lines, s.Title.Render(fmt.Sprintf("%s %d", month.Month, month.Year)))
	lines = append(lines, s.Header.Render(weekdayHeader(p.WeekStart())))

	for row := 0; row < 6; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			i := row*7 + col
			cells = append(cells, renderDay(p, s, offset+i, dates[i]))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}

func weekdayHeader(start time.Weekday) string {
	names := make([]string, 0, 7)
	for _, wd := range calendar.WeekdayOrder(start) {
		names = append(names, wd.String()[:CellWidth])
	}
	return strings.Join(names, " ")
}

func renderDay(p *calendar.Picker, s Styles, index int, d calendar.Date) string {
	text := fmt.Sprintf("%2d", d.Day)

	// Highest priority first; Inherit only fills properties still unset.
	style := lipgloss.NewStyle()
	if p.IsFocused(d) && p.InMonth(index) {
		style = style.Inherit(s.Focused)
	}
	if p.IsRangeEndpoint(d) {
		style = style.Inherit(s.Endpoint)
	}
	if p.IsSelected(d) {
		style = style.Inherit(s.Selected)
	}
	if p.IsInRange(d) {
		style = style.Inherit(lipgloss.NewStyle().Background(lipgloss.Color(rangeTint(p, s, d).Hex())))
	}
	if p.IsToday(d) {
		style = style.Inherit(s.Today)
	}
	if p.IsDisabled(d) {
		style = style.Inherit(s.Disabled)
	}
	if p.InMonth(index) {
		style = style.Inherit(s.Day)
	} else {
		style = style.Inherit(s.Overflow)
	}
	return style.Render(text)
}

// rangeTint blends the range colors by how far d sits between the range
// start and its end (or the hovered date while the range is open).
func rangeTint(p *calendar.Picker, s Styles, d calendar.Date) colorful.Color {
	start, end := p.RangeStart(), p.RangeEnd()
	if end.IsZero() {
		end = p.HoverDate()
	}
	if end.Before(start) {
		start, end = end, start
	}
	span := daysBetween(start, end)
	if span <= 0 {
		return s.RangeFrom
	}
	return s.RangeFrom.BlendLab(s.RangeTo, float64(daysBetween(start, d))/float64(span))
}

func daysBetween(a, b calendar.Date) int {
	return int(b.Time().Sub(a.Time()).Hours() / 24)
}
