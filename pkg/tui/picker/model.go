// Package picker is the interactive terminal front end for a calendar.Picker.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/render"
	"tableflip.dev/datepick/pkg/tui/theme"
)

// gridTop is the number of lines drawn above the month blocks.
const gridTop = 1

// ApplyMsg reconfigures the picker from outside the program, such as when a
// watched profile changes on disk.
type ApplyMsg struct {
	Name  string
	Apply func(*calendar.Picker) error
}

// Model wraps a picker for Bubble Tea. Terminals do not report key releases,
// so each key press is fed to the picker as a down/up pair with any modifier
// held around it.
type Model struct {
	picker *calendar.Picker
	keys   KeyMap
	help   help.Model
	theme  theme.Theme

	hovered calendar.Date
	status  string
	width   int

	quitting    bool
	unsubscribe func()
}

// New creates a model driving p.
func New(p *calendar.Picker) *Model {
	m := &Model{
		picker: p,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		theme:  theme.Default(),
	}
	m.unsubscribe = p.Subscribe(func(c calendar.Change) {
		m.status = describe(c)
	})
	return m
}

// Picker returns the driven picker.
func (m *Model) Picker() *calendar.Picker { return m.picker }

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case tea.BlurMsg:
		m.picker.Blur()
		m.hover(calendar.Date{})
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case ApplyMsg:
		if err := msg.Apply(m.picker); err != nil {
			m.status = fmt.Sprintf("profile %s: %v", msg.Name, err)
			break
		}
		m.hovered = calendar.Date{}
		m.status = fmt.Sprintf("profile %s reloaded", msg.Name)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.PrevPage):
		m.press(calendar.KeyArrowLeft, calendar.KeyControl)
	case key.Matches(msg, m.keys.NextPage):
		m.press(calendar.KeyArrowRight, calendar.KeyControl)
	case key.Matches(msg, m.keys.Up):
		m.press(calendar.KeyArrowUp)
	case key.Matches(msg, m.keys.Down):
		m.press(calendar.KeyArrowDown)
	case key.Matches(msg, m.keys.Left):
		m.press(calendar.KeyArrowLeft)
	case key.Matches(msg, m.keys.Right):
		m.press(calendar.KeyArrowRight)
	case key.Matches(msg, m.keys.PrevYear):
		m.picker.DecrementYear(1)
	case key.Matches(msg, m.keys.NextYear):
		m.picker.IncrementYear(1)
	case key.Matches(msg, m.keys.Select):
		m.press(calendar.KeyEnter)
	case key.Matches(msg, m.keys.Toggle):
		m.press(calendar.KeyEnter, calendar.KeyControl)
	case key.Matches(msg, m.keys.Extend):
		m.press(calendar.KeyEnter, calendar.KeyShift)
	case key.Matches(msg, m.keys.Today):
		m.picker.NavigateTo(m.picker.Today(), false)
	case key.Matches(msg, m.keys.Mode):
		m.picker.SetSelectionMode(nextMode(m.picker.Mode()))
		m.hovered = calendar.Date{}
	}
	return nil
}

// press delivers k to the focused cell with mods held for its duration.
func (m *Model) press(k calendar.Key, mods ...calendar.Key) {
	for _, mod := range mods {
		m.picker.HandleKey(calendar.Down(mod), m.picker.Cursor())
	}
	m.picker.HandleKey(calendar.Down(k), m.picker.Cursor())
	m.picker.HandleKey(calendar.Up(k), m.picker.Cursor())
	for i := len(mods) - 1; i >= 0; i-- {
		m.picker.HandleKey(calendar.Up(mods[i]), m.picker.Cursor())
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	d, onCell := m.dateAt(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		m.hover(d)
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.picker.DecrementMonth()
		case tea.MouseButtonWheelDown:
			m.picker.IncrementMonth()
		case tea.MouseButtonLeft:
			if !onCell {
				return
			}
			var mods []calendar.Key
			if msg.Ctrl {
				mods = append(mods, calendar.KeyControl)
			}
			if msg.Shift {
				mods = append(mods, calendar.KeyShift)
			}
			for _, mod := range mods {
				m.picker.HandleKey(calendar.Down(mod), m.picker.Cursor())
			}
			m.picker.Click(d)
			for i := len(mods) - 1; i >= 0; i-- {
				m.picker.HandleKey(calendar.Up(mods[i]), m.picker.Cursor())
			}
		}
	}
}

// hover moves the pointer preview to d; the zero date means the pointer left
// the grid.
func (m *Model) hover(d calendar.Date) {
	if d == m.hovered {
		return
	}
	if !m.hovered.IsZero() {
		m.picker.PointerLeave(m.hovered)
	}
	m.hovered = d
	if !d.IsZero() {
		m.picker.PointerEnter(d)
	}
}

func (m *Model) dateAt(x, y int) (calendar.Date, bool) {
	layout := render.Layout{Orientation: m.picker.Orientation(), Months: m.picker.ViewCount()}
	i, ok := layout.CellAt(x, y-gridTop)
	if !ok {
		return calendar.Date{}, false
	}
	dates := m.picker.DatesInView()
	if i >= len(dates) {
		return calendar.Date{}, false
	}
	return dates[i], true
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	grid, _ := render.Render(m.picker, m.theme.Grid)

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(grid)
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) header() string {
	h := m.theme.Header
	prev, next := h.Arrow.Render("‹"), h.Arrow.Render("›")
	if !m.picker.DecrementMonthEnabled() {
		prev = h.ArrowDisabled.Render("‹")
	}
	if !m.picker.IncrementMonthEnabled() {
		next = h.ArrowDisabled.Render("›")
	}
	text := h.Mode.Render(m.picker.Mode().String()+":") + " " + Summary(m.picker)
	if m.status != "" {
		text += h.Status.Render("  (" + m.status + ")")
	}
	return prev + " " + next + " " + text
}

// Summary describes the current selection in one line.
func Summary(p *calendar.Picker) string {
	switch p.Mode() {
	case calendar.ModeMultiple:
		dates := p.SelectedDates()
		switch len(dates) {
		case 0:
			return "nothing selected"
		case 1:
			return dates[0].String()
		}
		return fmt.Sprintf("%d dates, %s … %s", len(dates), dates[0], dates[len(dates)-1])
	case calendar.ModeRange:
		start, end := p.RangeStart(), p.RangeEnd()
		if start.IsZero() {
			return "nothing selected"
		}
		if end.IsZero() {
			return start.String() + " → …"
		}
		return start.String() + " → " + end.String()
	}
	if d := p.SelectedDate(); !d.IsZero() {
		return d.String()
	}
	return "nothing selected"
}

func describe(c calendar.Change) string {
	if c.Field == calendar.FieldDates {
		return fmt.Sprintf("%s: %d", c.Field, len(c.Dates))
	}
	if c.Date.IsZero() {
		return fmt.Sprintf("%s cleared", c.Field)
	}
	return fmt.Sprintf("%s: %s", c.Field, c.Date)
}

func nextMode(current calendar.Mode) calendar.Mode {
	modes := calendar.Modes()
	for i, mode := range modes {
		if mode == current {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}
