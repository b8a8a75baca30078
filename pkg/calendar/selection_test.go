package calendar

import (
	"testing"
	"time"
)

func feb(day int) Date { return NewDate(2024, time.February, day) }

func newTestPicker(t *testing.T, opts ...Option) *Picker {
	t.Helper()
	base := []Option{
		WithAnchor(feb(15)),
		WithToday(func() Date { return feb(15) }),
	}
	p, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("new picker: %v", err)
	}
	return p
}

func TestRangeAnchorAdjust(t *testing.T) {
	a, b := feb(5), feb(20)

	t.Run("complete forward", func(t *testing.T) {
		p := newTestPicker(t, WithMode(ModeRange))
		p.Click(a)
		p.Click(b)
		if p.RangeStart() != a || p.RangeEnd() != b {
			t.Fatalf("expected [%s, %s], got [%s, %s]", a, b, p.RangeStart(), p.RangeEnd())
		}
	})

	t.Run("reanchor inside", func(t *testing.T) {
		p := newTestPicker(t, WithMode(ModeRange))
		p.Click(a)
		p.Click(b)
		p.Click(feb(10))
		if p.RangeStart() != feb(10) || p.RangeEnd() != b {
			t.Fatalf("expected [%s, %s], got [%s, %s]", feb(10), b, p.RangeStart(), p.RangeEnd())
		}
	})

	t.Run("restart outside", func(t *testing.T) {
		for _, c := range []Date{feb(2), feb(25), a, b} {
			p := newTestPicker(t, WithMode(ModeRange))
			p.Click(a)
			p.Click(b)
			p.Click(c)
			if p.RangeStart() != c || !p.RangeEnd().IsZero() {
				t.Fatalf("click %s: expected restart at %s, got [%s, %s]", c, c, p.RangeStart(), p.RangeEnd())
			}
		}
	})

	t.Run("extend backward", func(t *testing.T) {
		p := newTestPicker(t, WithMode(ModeRange))
		p.Click(b)
		p.Click(a)
		if p.RangeStart() != a || !p.RangeEnd().IsZero() {
			t.Fatalf("expected start moved to %s with no end, got [%s, %s]", a, p.RangeStart(), p.RangeEnd())
		}
	})

	t.Run("same date no-op", func(t *testing.T) {
		p := newTestPicker(t, WithMode(ModeRange))
		p.Click(a)
		if p.Click(a) {
			t.Fatalf("expected clicking the start again to be a no-op")
		}
	})
}

func TestRangeStartNeverAfterEnd(t *testing.T) {
	p := newTestPicker(t, WithMode(ModeRange))
	clicks := []int{14, 3, 27, 9, 9, 1, 29, 12, 20, 2, 16}
	for _, day := range clicks {
		p.Click(feb(day))
		s, e := p.RangeStart(), p.RangeEnd()
		if !s.IsZero() && !e.IsZero() && s.After(e) {
			t.Fatalf("after click %d: start %s after end %s", day, s, e)
		}
	}
}

func TestRangeHoverPreview(t *testing.T) {
	p := newTestPicker(t, WithMode(ModeRange))
	p.Click(feb(5))
	p.PointerEnter(feb(9))
	if !p.IsInRange(feb(7)) {
		t.Fatalf("expected %s in the hover preview", feb(7))
	}
	if p.IsInRange(feb(9)) || p.IsInRange(feb(5)) {
		t.Fatalf("endpoints are not strictly inside the range")
	}
	p.PointerLeave(feb(9))
	if p.IsInRange(feb(7)) {
		t.Fatalf("expected preview cleared after pointer leave")
	}
}

func TestMultipleCtrlToggle(t *testing.T) {
	p := newTestPicker(t, WithMode(ModeMultiple))
	a := feb(12)
	p.Click(a)
	p.HandleKey(Down(KeyControl), p.Cursor())
	p.Click(a)
	p.HandleKey(Up(KeyControl), p.Cursor())
	if got := p.SelectedDates(); len(got) != 0 {
		t.Fatalf("expected empty selection, got %v", got)
	}
}

func TestMultipleShiftExtendBothDirections(t *testing.T) {
	tests := []struct {
		name  string
		first Date
		then  Date
	}{
		{"forward", feb(10), feb(14)},
		{"backward", feb(14), feb(10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPicker(t, WithMode(ModeMultiple))
			p.Click(tt.first)
			p.HandleKey(Down(KeyShift), p.Cursor())
			p.Click(tt.then)
			p.HandleKey(Up(KeyShift), p.Cursor())

			got := p.SelectedDates()
			if len(got) != 5 {
				t.Fatalf("expected 5 dates, got %v", got)
			}
			for i, d := range got {
				if d != feb(10+i) {
					t.Fatalf("expected %s at %d, got %s", feb(10+i), i, d)
				}
			}
		})
	}
}

func TestMultipleShiftExtendFallsBackToEarlierAnchor(t *testing.T) {
	p := newTestPicker(t, WithMode(ModeMultiple))
	p.Click(feb(5))
	p.HandleKey(Down(KeyControl), p.Cursor())
	p.Click(feb(10))
	p.Click(feb(10))
	p.HandleKey(Up(KeyControl), p.Cursor())

	ms := p.Selection().(*MultipleSelection)
	if ms.Anchor() != feb(5) {
		t.Fatalf("expected anchor back on %s after removing %s, got %s", feb(5), feb(10), ms.Anchor())
	}

	p.HandleKey(Down(KeyShift), p.Cursor())
	p.Click(feb(8))
	p.HandleKey(Up(KeyShift), p.Cursor())

	got := p.SelectedDates()
	if len(got) != 4 {
		t.Fatalf("expected %s through %s, got %v", feb(5), feb(8), got)
	}
	for i, d := range got {
		if d != feb(5+i) {
			t.Fatalf("expected %s at %d, got %s", feb(5+i), i, d)
		}
	}
}

func TestMultipleAnchorHistory(t *testing.T) {
	p := newTestPicker(t, WithMode(ModeMultiple))
	ms := p.Selection().(*MultipleSelection)

	p.HandleKey(Down(KeyControl), p.Cursor())
	for _, d := range []Date{feb(3), feb(7), feb(11)} {
		p.Click(d)
	}
	// Removing a date from the middle leaves the anchor alone.
	p.Click(feb(7))
	if ms.Anchor() != feb(11) {
		t.Fatalf("expected anchor %s, got %s", feb(11), ms.Anchor())
	}
	p.Click(feb(11))
	if ms.Anchor() != feb(3) {
		t.Fatalf("expected anchor %s, got %s", feb(3), ms.Anchor())
	}
	p.Click(feb(3))
	p.HandleKey(Up(KeyControl), p.Cursor())
	if !ms.Anchor().IsZero() {
		t.Fatalf("expected no anchor on an empty selection, got %s", ms.Anchor())
	}
}

func TestMultipleShiftExtendUsesVisibleGrid(t *testing.T) {
	p := newTestPicker(t, WithMode(ModeMultiple), WithViewCount(2))
	p.Click(feb(27))
	p.HandleKey(Down(KeyShift), p.Cursor())
	p.Click(NewDate(2024, time.March, 3))
	got := p.SelectedDates()
	// Feb 27, 28, 29, Mar 1, 2, 3 with no duplicates from overflow cells.
	if len(got) != 6 {
		t.Fatalf("expected 6 dates, got %v", got)
	}
}

func TestMultiplePlainClickReplaces(t *testing.T) {
	p := newTestPicker(t, WithMode(ModeMultiple))
	p.HandleKey(Down(KeyControl), p.Cursor())
	p.Click(feb(3))
	p.Click(feb(4))
	p.HandleKey(Up(KeyControl), p.Cursor())
	p.Click(feb(9))
	got := p.SelectedDates()
	if len(got) != 1 || got[0] != feb(9) {
		t.Fatalf("expected only %s, got %v", feb(9), got)
	}
}

func TestModeSwitchClearsSelection(t *testing.T) {
	for _, from := range Modes() {
		for _, to := range Modes() {
			p := newTestPicker(t, WithMode(from))
			p.Click(feb(4))
			p.Click(feb(8))
			p.PointerEnter(feb(11))

			p.SetSelectionMode(to)
			if p.Mode() != to {
				t.Fatalf("%s->%s: mode not set", from, to)
			}
			if !p.SelectedDate().IsZero() || len(p.SelectedDates()) != 0 ||
				!p.RangeStart().IsZero() || !p.RangeEnd().IsZero() || !p.HoverDate().IsZero() {
				t.Fatalf("%s->%s: stale selection: date=%s dates=%v start=%s end=%s hover=%s",
					from, to, p.SelectedDate(), p.SelectedDates(), p.RangeStart(), p.RangeEnd(), p.HoverDate())
			}
			for d := 1; d <= 29; d++ {
				if p.IsSelected(feb(d)) || p.IsInRange(feb(d)) {
					t.Fatalf("%s->%s: %s still marked", from, to, feb(d))
				}
			}
		}
	}
}

func TestDisabledDatesCannotBeSelected(t *testing.T) {
	p := newTestPicker(t,
		WithMode(ModeMultiple),
		WithDisabledDates(feb(12)),
		WithBounds(feb(3), feb(25)),
	)
	if p.Click(feb(12)) || p.Click(feb(2)) || p.Click(feb(26)) {
		t.Fatalf("expected disabled and out-of-bounds clicks to be ignored")
	}
	p.Click(feb(10))
	p.HandleKey(Down(KeyShift), p.Cursor())
	p.Click(feb(14))
	for _, d := range p.SelectedDates() {
		if d == feb(12) {
			t.Fatalf("shift-extend selected disabled date %s", d)
		}
	}
	if len(p.SelectedDates()) != 4 {
		t.Fatalf("expected 4 dates, got %v", p.SelectedDates())
	}
}
