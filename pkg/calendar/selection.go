package calendar

import (
	"fmt"
	"sort"
	"strings"
)

// Mode is the selection mode of a picker.
type Mode int

const (
	ModeSingle Mode = iota
	ModeMultiple
	ModeRange
)

var modeNames = map[Mode]string{
	ModeSingle:   "single",
	ModeMultiple: "multiple",
	ModeRange:    "range",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return m, nil
		}
	}
	return ModeSingle, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Modes lists every selection mode.
func Modes() []Mode {
	return []Mode{ModeSingle, ModeMultiple, ModeRange}
}

// Field names a piece of selection or view state that can change.
type Field int

const (
	FieldDate Field = iota
	FieldDates
	FieldRangeStart
	FieldRangeEnd
	FieldViewDate
	FieldCursor
)

var fieldNames = []string{"date", "dates", "range-start", "range-end", "view-date", "cursor"}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// Modifiers are the modifier keys held when a selection is applied.
type Modifiers struct {
	Ctrl  bool
	Shift bool
}

// Selection is the mode-specific selection payload. The concrete types are
// *SingleSelection, *MultipleSelection and *RangeSelection.
type Selection interface {
	Mode() Mode
	// Contains reports whether d is a selected date (range endpoints count;
	// dates strictly inside a range do not).
	Contains(d Date) bool
	// apply runs the mode's transition for d and returns the fields that
	// changed. between yields the in-view dates between two dates.
	apply(d Date, mods Modifiers, between func(a, b Date) []Date) []Field
}

// NewSelection returns an empty selection for mode.
func NewSelection(mode Mode) Selection {
	switch mode {
	case ModeMultiple:
		return &MultipleSelection{dates: make(map[Date]struct{})}
	case ModeRange:
		return &RangeSelection{}
	default:
		return &SingleSelection{}
	}
}

// SingleSelection holds at most one date.
type SingleSelection struct {
	Date Date
}

// Mode implements Selection.
func (s *SingleSelection) Mode() Mode { return ModeSingle }

// Contains implements Selection.
func (s *SingleSelection) Contains(d Date) bool {
	return !s.Date.IsZero() && s.Date == d
}

func (s *SingleSelection) apply(d Date, _ Modifiers, _ func(a, b Date) []Date) []Field {
	if s.Date == d {
		return nil
	}
	s.Date = d
	return []Field{FieldDate}
}

// MultipleSelection holds a set of dates plus the anchor used by
// shift-extend.
type MultipleSelection struct {
	dates map[Date]struct{}
	// added lists dates picked by plain or ctrl clicks, oldest first. Every
	// entry is in dates; the last one is the anchor.
	added []Date
}

// Mode implements Selection.
func (s *MultipleSelection) Mode() Mode { return ModeMultiple }

// Contains implements Selection.
func (s *MultipleSelection) Contains(d Date) bool {
	_, ok := s.dates[d]
	return ok
}

// Len returns the number of selected dates.
func (s *MultipleSelection) Len() int { return len(s.dates) }

// Anchor returns the most recently added date still selected, zero when
// there is none.
func (s *MultipleSelection) Anchor() Date {
	if len(s.added) == 0 {
		return Date{}
	}
	return s.added[len(s.added)-1]
}

// pick selects d and makes it the anchor.
func (s *MultipleSelection) pick(d Date) {
	s.dates[d] = struct{}{}
	s.forget(d)
	s.added = append(s.added, d)
}

// forget drops d from the anchor history.
func (s *MultipleSelection) forget(d Date) {
	for i, v := range s.added {
		if v == d {
			s.added = append(s.added[:i], s.added[i+1:]...)
			return
		}
	}
}

// Dates returns the selected dates in ascending order.
func (s *MultipleSelection) Dates() []Date {
	return sortedDates(s.dates)
}

func sortedDates(set map[Date]struct{}) []Date {
	out := make([]Date, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func (s *MultipleSelection) apply(d Date, mods Modifiers, between func(a, b Date) []Date) []Field {
	if s.dates == nil {
		s.dates = make(map[Date]struct{})
	}
	anchor := s.Anchor()
	switch {
	case mods.Ctrl:
		if _, ok := s.dates[d]; ok {
			delete(s.dates, d)
			s.forget(d)
		} else {
			s.pick(d)
		}
		return []Field{FieldDates}
	case mods.Shift && !anchor.IsZero():
		changed := false
		for _, v := range between(anchor, d) {
			if _, ok := s.dates[v]; !ok {
				s.dates[v] = struct{}{}
				changed = true
			}
		}
		if !changed {
			return nil
		}
		return []Field{FieldDates}
	case mods.Shift:
		// Nothing to extend from yet.
		_, ok := s.dates[d]
		s.pick(d)
		if ok {
			return nil
		}
		return []Field{FieldDates}
	default:
		if _, ok := s.dates[d]; ok && len(s.dates) == 1 {
			s.added = []Date{d}
			return nil
		}
		s.dates = map[Date]struct{}{d: {}}
		s.added = []Date{d}
		return []Field{FieldDates}
	}
}

// RangeSelection is a contiguous range with an optional hover preview.
type RangeSelection struct {
	Start Date
	End   Date
	Hover Date
}

// Mode implements Selection.
func (s *RangeSelection) Mode() Mode { return ModeRange }

// Contains implements Selection.
func (s *RangeSelection) Contains(d Date) bool {
	return (!s.Start.IsZero() && s.Start == d) || (!s.End.IsZero() && s.End == d)
}

// Inside reports whether d lies strictly between the endpoints, or, while
// only the start is set, strictly between the start and the hovered date.
func (s *RangeSelection) Inside(d Date) bool {
	if s.Start.IsZero() {
		return false
	}
	end := s.End
	if end.IsZero() {
		end = s.Hover
	}
	if end.IsZero() {
		return false
	}
	return d.After(s.Start) && d.Before(end)
}

func (s *RangeSelection) apply(d Date, _ Modifiers, _ func(a, b Date) []Date) []Field {
	switch {
	case s.Start.IsZero():
		s.Start = d
		return []Field{FieldRangeStart}
	case !s.End.IsZero():
		if d.After(s.Start) && d.Before(s.End) {
			s.Start = d
			return []Field{FieldRangeStart}
		}
		var fields []Field
		if s.Start != d {
			fields = append(fields, FieldRangeStart)
		}
		fields = append(fields, FieldRangeEnd)
		s.Start = d
		s.End = Date{}
		return fields
	case d.Before(s.Start):
		s.Start = d
		return []Field{FieldRangeStart}
	case d.After(s.Start):
		s.End = d
		return []Field{FieldRangeEnd}
	}
	return nil
}

// hover updates the preview date and reports whether it changed.
func (s *RangeSelection) hover(d Date) bool {
	if s.Hover == d {
		return false
	}
	s.Hover = d
	return true
}
