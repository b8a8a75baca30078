package calendar

import (
	"fmt"
	"log/slog"
	"time"
)

// Change describes one changed value. Date carries the new value for
// single-date fields; Dates carries the new set for FieldDates.
type Change struct {
	Field Field
	Date  Date
	Dates []Date
}

// Focuser receives requests to move input focus to a grid cell. Requests are
// fire-and-forget.
type Focuser interface {
	FocusCell(index int, d Date)
}

// FocusFunc adapts a function to Focuser.
type FocusFunc func(index int, d Date)

// FocusCell implements Focuser.
func (f FocusFunc) FocusCell(index int, d Date) { f(index, d) }

// Picker is one date-picker widget instance. It is not safe for concurrent
// use; all input is expected on a single goroutine.
type Picker struct {
	orientation Orientation
	min, max    Date
	disabled    map[Date]struct{}

	window    *Window
	selection Selection
	keyboard  *Keyboard

	observers map[int]func(Change)
	nextObs   int
	focuser   Focuser
	log       *slog.Logger
	today     func() Date
}

// New returns a picker with its grid computed for the configured anchor.
func New(opts ...Option) (*Picker, error) {
	c := config{months: 1, today: Today}
	for _, opt := range opts {
		opt(&c)
	}
	if c.months < 1 {
		return nil, fmt.Errorf("new picker: %w (got %d)", ErrInvalidViewCount, c.months)
	}
	if !c.min.IsZero() && !c.max.IsZero() && c.min.After(c.max) {
		return nil, fmt.Errorf("new picker: %w (%s > %s)", ErrInvalidBounds, c.min, c.max)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.anchor.IsZero() {
		c.anchor = c.today()
	}

	p := &Picker{
		orientation: c.orientation,
		min:         c.min,
		max:         c.max,
		disabled:    make(map[Date]struct{}, len(c.disabled)),
		window:      NewWindow(c.months, c.weekStart),
		selection:   NewSelection(c.mode),
		keyboard:    NewKeyboard(),
		observers:   make(map[int]func(Change)),
		focuser:     c.focuser,
		log:         c.logger,
		today:       c.today,
	}
	for _, d := range c.disabled {
		p.disabled[d] = struct{}{}
	}
	p.window.NavigateTo(c.anchor)
	p.log.Debug("picker initialised", "anchor", c.anchor, "months", c.months, "mode", c.mode)
	return p, nil
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (p *Picker) Subscribe(fn func(Change)) func() {
	id := p.nextObs
	p.nextObs++
	p.observers[id] = fn
	return func() { delete(p.observers, id) }
}

// SetFocuser replaces the receiver of focus requests.
func (p *Picker) SetFocuser(f Focuser) { p.focuser = f }

// --- configuration

// SetViewAnchor recomputes the grid around d and moves the cursor there.
func (p *Picker) SetViewAnchor(d Date) bool {
	if d.IsZero() {
		return false
	}
	first, cursor := p.window.First(), p.window.Cursor()
	if first == d.FirstOfMonth() && cursor == d {
		return false
	}
	p.window.Reset(d)
	p.notifyView(first, cursor)
	return true
}

// SetViewCount changes the number of displayed months. Values below one are
// rejected and the current value is kept.
func (p *Picker) SetViewCount(n int) (bool, error) {
	if n < 1 {
		return false, fmt.Errorf("set view count: %w (got %d)", ErrInvalidViewCount, n)
	}
	if n == p.window.Months() {
		return false, nil
	}
	cursor := p.window.Cursor()
	p.window.SetMonths(n)
	p.log.Debug("view count changed", "months", n)
	p.notifyView(p.window.First(), cursor)
	return true, nil
}

// SetOrientation changes the layout hint.
func (p *Picker) SetOrientation(o Orientation) bool {
	if o == p.orientation {
		return false
	}
	p.orientation = o
	return true
}

// SetWeekStart changes the first weekday of each grid row.
func (p *Picker) SetWeekStart(wd time.Weekday) bool {
	if wd == p.window.WeekStart() {
		return false
	}
	p.window.SetWeekStart(wd)
	return true
}

// SetSelectionMode switches mode and clears every piece of selection data,
// including the hover preview. It reports whether anything changed.
func (p *Picker) SetSelectionMode(m Mode) bool {
	var cleared []Field
	switch s := p.selection.(type) {
	case *SingleSelection:
		if !s.Date.IsZero() {
			cleared = append(cleared, FieldDate)
		}
	case *MultipleSelection:
		if s.Len() > 0 {
			cleared = append(cleared, FieldDates)
		}
	case *RangeSelection:
		if !s.Start.IsZero() {
			cleared = append(cleared, FieldRangeStart)
		}
		if !s.End.IsZero() {
			cleared = append(cleared, FieldRangeEnd)
		}
	}
	changed := m != p.selection.Mode() || len(cleared) > 0
	p.selection = NewSelection(m)
	p.log.Debug("selection mode set", "mode", m, "cleared", len(cleared))
	p.notify(cleared...)
	return changed
}

// SetMinDate sets the earliest selectable date; a zero Date removes the bound.
func (p *Picker) SetMinDate(d Date) (bool, error) {
	if !d.IsZero() && !p.max.IsZero() && d.After(p.max) {
		return false, fmt.Errorf("set min date: %w (%s > %s)", ErrInvalidBounds, d, p.max)
	}
	if d == p.min {
		return false, nil
	}
	p.min = d
	return true, nil
}

// SetMaxDate sets the latest selectable date; a zero Date removes the bound.
func (p *Picker) SetMaxDate(d Date) (bool, error) {
	if !d.IsZero() && !p.min.IsZero() && d.Before(p.min) {
		return false, fmt.Errorf("set max date: %w (%s < %s)", ErrInvalidBounds, d, p.min)
	}
	if d == p.max {
		return false, nil
	}
	p.max = d
	return true, nil
}

// SetDisabledDates replaces the set of dates that cannot be selected.
func (p *Picker) SetDisabledDates(dates []Date) bool {
	next := make(map[Date]struct{}, len(dates))
	for _, d := range dates {
		next[d] = struct{}{}
	}
	if len(next) == len(p.disabled) {
		same := true
		for d := range next {
			if _, ok := p.disabled[d]; !ok {
				same = false
				break
			}
		}
		if same {
			return false
		}
	}
	p.disabled = next
	return true
}

// --- navigation

// NavigateTo moves the cursor to d, sliding or recomputing the grid as
// needed, and applies a plain selection at d when sel is set.
func (p *Picker) NavigateTo(d Date, sel bool) {
	p.navigate(d)
	if sel {
		p.applySelection(d, Modifiers{})
	}
}

// DecrementMonthEnabled reports whether paging backward is allowed: there is
// no min date, or it falls in the month just before the first displayed one.
func (p *Picker) DecrementMonthEnabled() bool {
	if p.min.IsZero() {
		return true
	}
	start := p.window.First()
	return p.min.Before(start) && !p.min.Before(start.AddMonths(-1))
}

// IncrementMonthEnabled reports whether paging forward is allowed: there is
// no max date, or it lies after the first day past the last displayed month.
func (p *Picker) IncrementMonthEnabled() bool {
	return p.max.IsZero() || p.max.After(p.window.End())
}

// DecrementMonth pages backward by the number of displayed months.
func (p *Picker) DecrementMonth() bool {
	if !p.DecrementMonthEnabled() {
		return false
	}
	p.page(-1)
	return true
}

// IncrementMonth pages forward by the number of displayed months.
func (p *Picker) IncrementMonth() bool {
	if !p.IncrementMonthEnabled() {
		return false
	}
	p.page(1)
	return true
}

// DecrementYear moves the view back by years.
func (p *Picker) DecrementYear(years int) {
	p.stepYears(-years)
}

// IncrementYear moves the view forward by years.
func (p *Picker) IncrementYear(years int) {
	p.stepYears(years)
}

func (p *Picker) page(dir int) {
	first, cursor := p.window.First(), p.window.Cursor()
	p.window.Page(dir)
	if c := p.clamp(p.window.Cursor()); c != p.window.Cursor() {
		p.window.NavigateTo(c)
	}
	p.log.Debug("paged", "direction", dir, "first", p.window.First())
	p.notifyView(first, cursor)
}

func (p *Picker) stepYears(years int) {
	if years == 0 {
		return
	}
	first, cursor := p.window.First(), p.window.Cursor()
	p.window.StepYears(years)
	if c := p.clamp(p.window.Cursor()); c != p.window.Cursor() {
		p.window.NavigateTo(c)
	}
	p.log.Debug("stepped years", "years", years, "first", p.window.First())
	p.notifyView(first, cursor)
}

func (p *Picker) navigate(d Date) {
	first, cursor := p.window.First(), p.window.Cursor()
	if p.window.NavigateTo(d) {
		p.log.Debug("grid recomputed", "target", d, "first", p.window.First())
	}
	p.notifyView(first, cursor)
}

func (p *Picker) clamp(d Date) Date {
	if !p.min.IsZero() && d.Before(p.min) {
		return p.min
	}
	if !p.max.IsZero() && d.After(p.max) {
		return p.max
	}
	return d
}

// --- selection and input

// ApplySelection runs the selection transition for the current mode at d,
// using the held modifier keys. Disabled dates are ignored. With a single
// displayed month the cursor follows the selection. It reports whether the
// selection changed.
func (p *Picker) ApplySelection(d Date) bool {
	return p.applySelection(d, p.keyboard.Modifiers())
}

// Click is a pointer activation of the cell showing d.
func (p *Picker) Click(d Date) bool {
	p.log.Debug("click", "date", d)
	return p.ApplySelection(d)
}

func (p *Picker) applySelection(d Date, mods Modifiers) bool {
	if p.IsDisabled(d) {
		p.log.Debug("selection ignored, date disabled", "date", d)
		return false
	}
	between := func(a, b Date) []Date {
		var out []Date
		for _, v := range p.window.Between(a, b) {
			if !p.IsDisabled(v) {
				out = append(out, v)
			}
		}
		return out
	}
	changed := p.selection.apply(d, mods, between)
	if p.window.Months() == 1 {
		p.navigate(d)
	}
	if len(changed) > 0 {
		p.log.Debug("selection changed", "mode", p.selection.Mode(), "date", d, "fields", len(changed))
	}
	p.notify(changed...)
	p.requestFocus()
	return len(changed) > 0
}

// PointerEnter records d as the hover preview in range mode.
func (p *Picker) PointerEnter(d Date) bool {
	if r, ok := p.selection.(*RangeSelection); ok {
		return r.hover(d)
	}
	return false
}

// PointerLeave clears the hover preview when it is d.
func (p *Picker) PointerLeave(d Date) bool {
	if r, ok := p.selection.(*RangeSelection); ok && r.Hover == d {
		return r.hover(Date{})
	}
	return false
}

// HandleKey processes a raw key event delivered to the cell showing d. It
// reports whether the event was accepted (auto-repeat of non-arrow keys is
// dropped).
func (p *Picker) HandleKey(ev KeyEvent, d Date) bool {
	action, ok := p.keyboard.Handle(ev)
	if !ok {
		return false
	}
	switch action.Kind {
	case ActionMove:
		p.navigate(p.clamp(d.AddDays(action.Days)))
		p.requestFocus()
	case ActionPageBackward:
		p.DecrementMonth()
		p.requestFocus()
	case ActionPageForward:
		p.IncrementMonth()
		p.requestFocus()
	case ActionSelect:
		p.ApplySelection(d)
	}
	return true
}

// Blur releases every held key. Keyup events are lost when focus leaves the
// widget, which would otherwise leave modifiers stuck.
func (p *Picker) Blur() {
	if held := p.keyboard.Held(); len(held) > 0 {
		p.log.Debug("releasing held keys on blur", "keys", held)
	}
	p.keyboard.Reset()
}

// HeldKeys returns the keys currently held.
func (p *Picker) HeldKeys() []Key {
	return p.keyboard.Held()
}

func (p *Picker) requestFocus() {
	if p.focuser == nil {
		return
	}
	cursor := p.window.Cursor()
	idx, ok := p.window.IndexOf(cursor)
	if !ok {
		p.log.Debug("focus request outside grid", "date", cursor)
		return
	}
	p.focuser.FocusCell(idx, cursor)
}

func (p *Picker) notifyView(first, cursor Date) {
	var fields []Field
	if first != p.window.First() {
		fields = append(fields, FieldViewDate)
	}
	if cursor != p.window.Cursor() {
		fields = append(fields, FieldCursor)
	}
	p.notify(fields...)
}

func (p *Picker) notify(fields ...Field) {
	if len(p.observers) == 0 {
		return
	}
	for _, f := range fields {
		c := Change{Field: f}
		switch f {
		case FieldDate:
			c.Date = p.SelectedDate()
		case FieldDates:
			c.Dates = p.SelectedDates()
		case FieldRangeStart:
			c.Date = p.RangeStart()
		case FieldRangeEnd:
			c.Date = p.RangeEnd()
		case FieldViewDate:
			c.Date = p.window.First()
		case FieldCursor:
			c.Date = p.window.Cursor()
		}
		for _, fn := range p.observers {
			fn(c)
		}
	}
}

// --- queries

// DatesInView returns the ordered grid. The slice must not be modified.
func (p *Picker) DatesInView() []Date { return p.window.Dates() }

// Cursor returns the focused date.
func (p *Picker) Cursor() Date { return p.window.Cursor() }

// ViewDate returns the first day of the first displayed month.
func (p *Picker) ViewDate() Date { return p.window.First() }

// Month returns the first day of the i-th displayed month.
func (p *Picker) Month(i int) Date { return p.window.MonthAt(i) }

// ViewCount returns the number of displayed months.
func (p *Picker) ViewCount() int { return p.window.Months() }

// WeekStart returns the first weekday of each grid row.
func (p *Picker) WeekStart() time.Weekday { return p.window.WeekStart() }

// Orientation returns the layout hint.
func (p *Picker) Orientation() Orientation { return p.orientation }

// Mode returns the selection mode.
func (p *Picker) Mode() Mode { return p.selection.Mode() }

// Selection returns the mode-specific selection payload.
func (p *Picker) Selection() Selection { return p.selection }

// MinDate returns the lower bound, zero when unset.
func (p *Picker) MinDate() Date { return p.min }

// MaxDate returns the upper bound, zero when unset.
func (p *Picker) MaxDate() Date { return p.max }

// SelectedDate returns the single-mode selection.
func (p *Picker) SelectedDate() Date {
	if s, ok := p.selection.(*SingleSelection); ok {
		return s.Date
	}
	return Date{}
}

// SelectedDates returns every selected date in ascending order: the single
// date, the multiple set or the range endpoints.
func (p *Picker) SelectedDates() []Date {
	switch s := p.selection.(type) {
	case *SingleSelection:
		if !s.Date.IsZero() {
			return []Date{s.Date}
		}
	case *MultipleSelection:
		return s.Dates()
	case *RangeSelection:
		var out []Date
		if !s.Start.IsZero() {
			out = append(out, s.Start)
		}
		if !s.End.IsZero() {
			out = append(out, s.End)
		}
		return out
	}
	return nil
}

// RangeStart returns the range start, zero outside range mode.
func (p *Picker) RangeStart() Date {
	if s, ok := p.selection.(*RangeSelection); ok {
		return s.Start
	}
	return Date{}
}

// RangeEnd returns the range end, zero outside range mode.
func (p *Picker) RangeEnd() Date {
	if s, ok := p.selection.(*RangeSelection); ok {
		return s.End
	}
	return Date{}
}

// HoverDate returns the range preview date, zero outside range mode.
func (p *Picker) HoverDate() Date {
	if s, ok := p.selection.(*RangeSelection); ok {
		return s.Hover
	}
	return Date{}
}

// IsSelected reports whether d is selected (range endpoints included).
func (p *Picker) IsSelected(d Date) bool { return p.selection.Contains(d) }

// IsInRange reports whether d lies strictly inside the range or its hover
// preview.
func (p *Picker) IsInRange(d Date) bool {
	if s, ok := p.selection.(*RangeSelection); ok {
		return s.Inside(d)
	}
	return false
}

// IsRangeEndpoint reports whether d is the range start or its end.
func (p *Picker) IsRangeEndpoint(d Date) bool {
	s, ok := p.selection.(*RangeSelection)
	if !ok || d.IsZero() {
		return false
	}
	return s.Start == d || s.End == d
}

// IsDisabled reports whether d is in the disabled set or outside the bounds.
func (p *Picker) IsDisabled(d Date) bool {
	if _, ok := p.disabled[d]; ok {
		return true
	}
	if !p.min.IsZero() && d.Before(p.min) {
		return true
	}
	return !p.max.IsZero() && d.After(p.max)
}

// DisabledDates returns the disabled set in ascending order.
func (p *Picker) DisabledDates() []Date {
	return sortedDates(p.disabled)
}

// IsFocused reports whether d is the cursor date.
func (p *Picker) IsFocused(d Date) bool { return p.window.Cursor() == d }

// IsToday reports whether d is the current date.
func (p *Picker) IsToday(d Date) bool { return p.today() == d }

// Today returns the current date as seen by the picker.
func (p *Picker) Today() Date { return p.today() }

// InMonth reports whether the cell at index belongs to its block's month
// rather than being an overflow date.
func (p *Picker) InMonth(index int) bool {
	dates := p.window.Dates()
	if index < 0 || index >= len(dates) {
		return false
	}
	return dates[index].SameMonth(p.window.MonthAt(index / CellsPerMonth))
}
