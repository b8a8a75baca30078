package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestPickerEndToEnd(t *testing.T) {
	p := newTestPicker(t)

	dates := p.DatesInView()
	if len(dates) != CellsPerMonth {
		t.Fatalf("expected %d dates, got %d", CellsPerMonth, len(dates))
	}
	if dates[0] != NewDate(2024, time.January, 28) {
		t.Fatalf("expected grid to start 2024-01-28, got %s", dates[0])
	}
	if dates[len(dates)-1] != NewDate(2024, time.March, 9) {
		t.Fatalf("expected grid to end 2024-03-09, got %s", dates[len(dates)-1])
	}

	p.HandleKey(Down(KeyControl), p.Cursor())
	p.HandleKey(Down(KeyArrowRight), p.Cursor())
	p.HandleKey(Up(KeyArrowRight), p.Cursor())
	p.HandleKey(Up(KeyControl), p.Cursor())

	if p.ViewDate() != NewDate(2024, time.March, 1) {
		t.Fatalf("expected grid anchored in March, got %s", p.ViewDate())
	}
	if p.Cursor() != NewDate(2024, time.March, 15) {
		t.Fatalf("expected cursor 2024-03-15, got %s", p.Cursor())
	}
}

func TestPickerDefaultsToToday(t *testing.T) {
	today := NewDate(2026, time.October, 19)
	p, err := New(WithToday(func() Date { return today }))
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}
	if p.Cursor() != today || p.ViewDate() != today.FirstOfMonth() {
		t.Fatalf("expected view on %s, got cursor %s view %s", today, p.Cursor(), p.ViewDate())
	}
	if !p.IsToday(today) {
		t.Fatalf("expected IsToday(%s)", today)
	}
}

func TestArrowKeysMoveCursorAcrossMonths(t *testing.T) {
	p := newTestPicker(t, WithAnchor(feb(1)))

	p.HandleKey(Down(KeyArrowLeft), p.Cursor())
	if p.Cursor() != NewDate(2024, time.January, 31) {
		t.Fatalf("expected Jan 31, got %s", p.Cursor())
	}
	if p.ViewDate() != NewDate(2024, time.January, 1) {
		t.Fatalf("expected regrid to January, got %s", p.ViewDate())
	}

	p.HandleKey(Down(KeyArrowDown), p.Cursor())
	if p.Cursor() != feb(7) || p.ViewDate() != feb(1) {
		t.Fatalf("expected Feb 7 in February view, got %s in %s", p.Cursor(), p.ViewDate())
	}

	p.HandleKey(Down(KeyArrowUp), p.Cursor())
	p.HandleKey(KeyEvent{Key: KeyArrowRight, Type: KeyDown, Repeat: true}, p.Cursor())
	if p.Cursor() != NewDate(2024, time.February, 1) {
		t.Fatalf("expected Feb 1, got %s", p.Cursor())
	}

	for _, d := range p.DatesInView() {
		if d == p.Cursor() {
			return
		}
	}
	t.Fatalf("cursor %s not in grid", p.Cursor())
}

func TestEnterSelectsAndRepeatIsIgnored(t *testing.T) {
	p := newTestPicker(t)
	var changes int
	p.Subscribe(func(c Change) {
		if c.Field == FieldDate {
			changes++
		}
	})

	if p.HandleKey(KeyEvent{Key: KeyEnter, Type: KeyDown, Repeat: true}, feb(15)) {
		t.Fatalf("expected repeated Enter to be filtered")
	}
	if !p.SelectedDate().IsZero() {
		t.Fatalf("repeated Enter selected %s", p.SelectedDate())
	}
	p.HandleKey(Down(KeyEnter), feb(15))
	if p.SelectedDate() != feb(15) || changes != 1 {
		t.Fatalf("expected %s selected once, got %s (%d changes)", feb(15), p.SelectedDate(), changes)
	}
}

func TestSingleSelectionIdempotent(t *testing.T) {
	p := newTestPicker(t)
	var changes []Change
	p.Subscribe(func(c Change) {
		if c.Field == FieldDate {
			changes = append(changes, c)
		}
	})

	if !p.ApplySelection(feb(20)) {
		t.Fatalf("expected first selection to change state")
	}
	if p.ApplySelection(feb(20)) {
		t.Fatalf("expected second selection to be a no-op")
	}
	if len(changes) != 1 || changes[0].Date != feb(20) {
		t.Fatalf("expected one change to %s, got %+v", feb(20), changes)
	}
}

func TestCursorFollowsSelectionOnlyForSingleMonth(t *testing.T) {
	p := newTestPicker(t)
	p.Click(feb(3))
	if p.Cursor() != feb(3) {
		t.Fatalf("expected cursor to follow selection, got %s", p.Cursor())
	}

	multi := newTestPicker(t, WithViewCount(2))
	multi.Click(NewDate(2024, time.March, 20))
	if multi.Cursor() != feb(15) {
		t.Fatalf("expected cursor to stay on %s, got %s", feb(15), multi.Cursor())
	}
	if multi.ViewDate() != feb(1) {
		t.Fatalf("expected no repaging, got %s", multi.ViewDate())
	}
}

func TestNotificationsOnlyOnChange(t *testing.T) {
	p := newTestPicker(t, WithMode(ModeRange))
	got := map[Field]int{}
	unsubscribe := p.Subscribe(func(c Change) { got[c.Field]++ })

	p.Click(feb(5))
	p.Click(feb(5))
	p.Click(feb(9))
	p.HandleKey(Down(KeyArrowRight), p.Cursor())

	if got[FieldRangeStart] != 1 || got[FieldRangeEnd] != 1 {
		t.Fatalf("unexpected range notifications: %v", got)
	}
	if got[FieldCursor] != 3 {
		t.Fatalf("expected 3 cursor notifications, got %v", got)
	}
	if got[FieldViewDate] != 0 {
		t.Fatalf("expected no view notifications, got %v", got)
	}

	unsubscribe()
	p.Click(feb(1))
	if got[FieldRangeStart] != 1 {
		t.Fatalf("notification delivered after unsubscribe: %v", got)
	}
}

func TestSetViewCountRejectsInvalid(t *testing.T) {
	p := newTestPicker(t, WithViewCount(2))
	changed, err := p.SetViewCount(0)
	if !errors.Is(err, ErrInvalidViewCount) {
		t.Fatalf("expected ErrInvalidViewCount, got %v", err)
	}
	if changed || p.ViewCount() != 2 || len(p.DatesInView()) != 2*CellsPerMonth {
		t.Fatalf("expected prior view count kept, got %d", p.ViewCount())
	}

	if changed, err := p.SetViewCount(3); err != nil || !changed {
		t.Fatalf("expected change to 3, got %v %v", changed, err)
	}
	if len(p.DatesInView()) != 3*CellsPerMonth {
		t.Fatalf("expected %d dates, got %d", 3*CellsPerMonth, len(p.DatesInView()))
	}

	if _, err := New(WithViewCount(0)); !errors.Is(err, ErrInvalidViewCount) {
		t.Fatalf("expected constructor to reject view count 0, got %v", err)
	}
}

func TestBoundsValidation(t *testing.T) {
	p := newTestPicker(t, WithBounds(feb(5), feb(20)))
	if _, err := p.SetMinDate(feb(21)); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds, got %v", err)
	}
	if p.MinDate() != feb(5) {
		t.Fatalf("expected min kept, got %s", p.MinDate())
	}
	if _, err := p.SetMaxDate(feb(1)); !errors.Is(err, ErrInvalidBounds) {
		t.Fatalf("expected ErrInvalidBounds, got %v", err)
	}
	if changed, err := p.SetMaxDate(Date{}); err != nil || !changed {
		t.Fatalf("expected max cleared, got %v %v", changed, err)
	}
}

func TestIncrementMonthStopsAtMaxDate(t *testing.T) {
	max := NewDate(2024, time.July, 15)
	p := newTestPicker(t, WithAnchor(NewDate(2024, time.January, 10)), WithViewCount(2), WithBounds(Date{}, max))

	steps := 0
	for p.IncrementMonthEnabled() {
		if !p.IncrementMonth() {
			t.Fatalf("IncrementMonth refused while enabled")
		}
		if p.ViewDate().After(max.FirstOfMonth()) {
			t.Fatalf("first displayed month %s past max %s", p.ViewDate(), max)
		}
		steps++
		if steps > 100 {
			t.Fatalf("paging never stopped")
		}
	}
	if p.ViewDate() != NewDate(2024, time.July, 1) {
		t.Fatalf("expected to stop on July, got %s", p.ViewDate())
	}
	if p.IncrementMonth() {
		t.Fatalf("expected IncrementMonth to refuse once disabled")
	}
	if p.Cursor().After(max) {
		t.Fatalf("cursor %s past max %s", p.Cursor(), max)
	}
}

func TestDecrementMonthStopsAtMinDate(t *testing.T) {
	min := NewDate(2024, time.May, 20)
	p := newTestPicker(t, WithAnchor(NewDate(2024, time.June, 10)), WithViewCount(2), WithBounds(min, Date{}))

	if !p.DecrementMonth() {
		t.Fatalf("expected paging back toward %s to be allowed", min)
	}
	if p.ViewDate() != NewDate(2024, time.April, 1) {
		t.Fatalf("expected to land on April, got %s", p.ViewDate())
	}
	if p.Cursor().Before(min) {
		t.Fatalf("cursor %s before min %s", p.Cursor(), min)
	}
	if p.DecrementMonthEnabled() || p.DecrementMonth() {
		t.Fatalf("expected paging to stop once min is displayed")
	}
}

func TestPagingBoundaries(t *testing.T) {
	june := NewDate(2024, time.June, 1)
	tests := []struct {
		name     string
		min, max Date
		back     bool
		forward  bool
	}{
		{name: "unbounded", back: true, forward: true},
		{name: "min first of previous month", min: NewDate(2024, time.May, 1), back: true, forward: true},
		{name: "min end of previous month", min: NewDate(2024, time.May, 31), back: true, forward: true},
		{name: "min two months back", min: NewDate(2024, time.April, 30), back: false, forward: true},
		{name: "min far back", min: NewDate(2023, time.January, 1), back: false, forward: true},
		{name: "min inside view", min: june, back: false, forward: true},
		{name: "max equals end", max: NewDate(2024, time.July, 1), back: true, forward: false},
		{name: "max day after end", max: NewDate(2024, time.July, 2), back: true, forward: true},
		{name: "max inside view", max: NewDate(2024, time.June, 20), back: true, forward: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := newTestPicker(t, WithAnchor(june.AddDays(9)), WithBounds(tc.min, tc.max))
			if p.ViewDate() != june {
				t.Fatalf("expected June view, got %s", p.ViewDate())
			}
			if got := p.DecrementMonthEnabled(); got != tc.back {
				t.Fatalf("DecrementMonthEnabled: expected %v, got %v", tc.back, got)
			}
			if got := p.IncrementMonthEnabled(); got != tc.forward {
				t.Fatalf("IncrementMonthEnabled: expected %v, got %v", tc.forward, got)
			}
		})
	}
}

func TestCursorClampedToBounds(t *testing.T) {
	p := newTestPicker(t, WithAnchor(feb(12)), WithBounds(feb(10), feb(20)))
	p.HandleKey(Down(KeyArrowUp), p.Cursor())
	if p.Cursor() != feb(10) {
		t.Fatalf("expected cursor clamped to %s, got %s", feb(10), p.Cursor())
	}
}

func TestBlurReleasesStuckModifiers(t *testing.T) {
	p := newTestPicker(t)
	p.HandleKey(Down(KeyControl), p.Cursor())
	p.Blur()
	if len(p.HeldKeys()) != 0 {
		t.Fatalf("expected no held keys, got %v", p.HeldKeys())
	}
	p.HandleKey(Down(KeyArrowRight), p.Cursor())
	if p.Cursor() != feb(16) || p.ViewDate() != feb(1) {
		t.Fatalf("expected plain move to %s, got %s in %s", feb(16), p.Cursor(), p.ViewDate())
	}
}

func TestFocusRequests(t *testing.T) {
	type req struct {
		index int
		date  Date
	}
	var reqs []req
	p := newTestPicker(t, WithFocuser(FocusFunc(func(i int, d Date) {
		reqs = append(reqs, req{i, d})
	})))

	p.HandleKey(Down(KeyArrowRight), p.Cursor())
	if len(reqs) != 1 {
		t.Fatalf("expected one focus request, got %d", len(reqs))
	}
	// Feb 2024 has four leading January cells.
	if reqs[0].index != 4+15 || reqs[0].date != feb(16) {
		t.Fatalf("unexpected focus request %+v", reqs[0])
	}
	if p.DatesInView()[reqs[0].index] != reqs[0].date {
		t.Fatalf("focus index does not hold the cursor date")
	}

	p.HandleKey(Up(KeyArrowRight), p.Cursor())
	if len(reqs) != 1 {
		t.Fatalf("keyup should not request focus")
	}
}

func TestYearStepping(t *testing.T) {
	p := newTestPicker(t)
	var views int
	p.Subscribe(func(c Change) {
		if c.Field == FieldViewDate {
			views++
		}
	})
	p.IncrementYear(2)
	if p.ViewDate() != NewDate(2026, time.February, 1) || p.Cursor() != NewDate(2026, time.February, 15) {
		t.Fatalf("unexpected year step: view %s cursor %s", p.ViewDate(), p.Cursor())
	}
	p.DecrementYear(1)
	if p.ViewDate() != NewDate(2025, time.February, 1) {
		t.Fatalf("unexpected year step back: %s", p.ViewDate())
	}
	if views != 2 {
		t.Fatalf("expected 2 view notifications, got %d", views)
	}
}

func TestNavigateToWithSelect(t *testing.T) {
	p := newTestPicker(t, WithMode(ModeMultiple))
	p.Click(feb(2))
	p.NavigateTo(NewDate(2024, time.May, 4), true)
	got := p.SelectedDates()
	if len(got) != 1 || got[0] != NewDate(2024, time.May, 4) {
		t.Fatalf("expected only May 4 selected, got %v", got)
	}
	if p.ViewDate() != NewDate(2024, time.May, 1) {
		t.Fatalf("expected May view, got %s", p.ViewDate())
	}
}

func TestInMonth(t *testing.T) {
	p := newTestPicker(t)
	if p.InMonth(0) {
		t.Fatalf("expected leading January cell to be overflow")
	}
	if !p.InMonth(4) {
		t.Fatalf("expected Feb 1 to be in month")
	}
}

func TestIsRangeEndpoint(t *testing.T) {
	p := newTestPicker(t, WithMode(ModeRange))
	p.Click(feb(5))
	p.Click(feb(9))

	for _, d := range []Date{feb(5), feb(9)} {
		if !p.IsRangeEndpoint(d) {
			t.Fatalf("expected %s to be an endpoint", d)
		}
	}
	if p.IsRangeEndpoint(feb(7)) {
		t.Fatalf("expected %s to be inside, not an endpoint", feb(7))
	}
	if !p.IsInRange(feb(7)) {
		t.Fatalf("expected %s in range", feb(7))
	}

	p.SetSelectionMode(ModeSingle)
	p.Click(feb(5))
	if p.IsRangeEndpoint(feb(5)) {
		t.Fatalf("expected no endpoints outside range mode")
	}
}
