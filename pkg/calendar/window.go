package calendar

import "time"

// Window is the computed set of dates in view plus the cursor. It decides
// whether a navigation target needs a new grid or only a cursor move.
type Window struct {
	first     Date // first day of the earliest displayed month
	months    int
	weekStart time.Weekday

	dates  []Date
	cursor Date
}

// NewWindow returns an empty window for the given number of months. No grid
// is computed until the first navigation.
func NewWindow(months int, weekStart time.Weekday) *Window {
	if months < 1 {
		months = 1
	}
	return &Window{months: months, weekStart: weekStart}
}

// Dates returns the dates in view. The slice must not be modified.
func (w *Window) Dates() []Date { return w.dates }

// Cursor returns the focused date.
func (w *Window) Cursor() Date { return w.cursor }

// First returns the first day of the earliest displayed month.
func (w *Window) First() Date { return w.first }

// Months returns the number of displayed months.
func (w *Window) Months() int { return w.months }

// WeekStart returns the first weekday of each grid row.
func (w *Window) WeekStart() time.Weekday { return w.weekStart }

// End returns the first day of the month after the last displayed month.
func (w *Window) End() Date {
	return w.first.AddMonths(w.months)
}

// MonthAt returns the first day of the i-th displayed month.
func (w *Window) MonthAt(i int) Date {
	return w.first.AddMonths(i)
}

// Computed reports whether a grid exists.
func (w *Window) Computed() bool {
	return len(w.dates) > 0
}

// NavigateTo moves the cursor to target, sliding or recomputing the grid as
// needed. It reports whether the grid was recomputed.
func (w *Window) NavigateTo(target Date) bool {
	regrid := false
	if !w.Computed() {
		w.regrid(target.FirstOfMonth())
		regrid = true
	} else {
		start, end := w.first, w.End()
		lo, hi := w.dates[0], w.dates[len(w.dates)-1]
		switch {
		case !target.Before(start) && target.Before(end):
			// Cursor move only.
		case target.Before(start) && !target.Before(lo):
			w.regrid(start.AddMonths(-w.months))
			regrid = true
		case !target.Before(end) && !target.After(hi):
			w.regrid(start.AddMonths(w.months))
			regrid = true
		default:
			w.regrid(target.FirstOfMonth())
			regrid = true
		}
	}
	w.cursor = target
	return regrid
}

// Reset recomputes the grid anchored at anchor's month and puts the cursor on
// anchor.
func (w *Window) Reset(anchor Date) {
	w.regrid(anchor)
	w.cursor = anchor
}

// Page moves the displayed months by pages*months and shifts the cursor by
// the same number of months. It does nothing before the first NavigateTo.
func (w *Window) Page(pages int) {
	if !w.Computed() {
		return
	}
	delta := pages * w.months
	w.regrid(w.first.AddMonths(delta))
	w.cursor = w.cursor.AddMonths(delta)
}

// StepYears moves the anchor and cursor by whole years and always recomputes
// the grid. Like Page, it needs a computed grid.
func (w *Window) StepYears(years int) {
	if !w.Computed() {
		return
	}
	w.regrid(w.first.AddYears(years))
	w.cursor = w.cursor.AddYears(years)
}

// SetMonths changes the number of displayed months, keeping the first
// displayed month and the cursor when it stays in view.
func (w *Window) SetMonths(months int) {
	if months < 1 || months == w.months {
		return
	}
	w.months = months
	if !w.Computed() {
		return
	}
	w.regrid(w.first)
	if w.cursor.Before(w.first) || !w.cursor.Before(w.End()) {
		w.cursor = w.first
	}
}

// SetWeekStart changes the week ordering and recomputes an existing grid.
func (w *Window) SetWeekStart(weekStart time.Weekday) {
	if weekStart == w.weekStart {
		return
	}
	w.weekStart = weekStart
	if w.Computed() {
		w.regrid(w.first)
	}
}

// Contains reports whether d is one of the dates in view.
func (w *Window) Contains(d Date) bool {
	_, ok := w.IndexOf(d)
	return ok
}

// IndexOf returns the cell index showing d. Overflow cells can repeat a date
// across adjacent month blocks; the block for d's own month wins.
func (w *Window) IndexOf(d Date) (int, bool) {
	if !w.Computed() || d.Before(w.dates[0]) || d.After(w.dates[len(w.dates)-1]) {
		return -1, false
	}
	if block := MonthsBetween(w.first, d); block >= 0 && block < w.months {
		base := block * CellsPerMonth
		for i := base; i < base+CellsPerMonth; i++ {
			if w.dates[i] == d {
				return i, true
			}
		}
	}
	for i, v := range w.dates {
		if v == d {
			return i, true
		}
	}
	return -1, false
}

// Between returns the dates in view from a to b inclusive, in grid order and
// without duplicates. The endpoints may be given in either order.
func (w *Window) Between(a, b Date) []Date {
	if b.Before(a) {
		a, b = b, a
	}
	seen := make(map[Date]struct{})
	var out []Date
	for _, d := range w.dates {
		if d.Before(a) || d.After(b) {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

func (w *Window) regrid(first Date) {
	w.first = first.FirstOfMonth()
	w.dates = Grid(w.first, w.months, w.weekStart)
}
