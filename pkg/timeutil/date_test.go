package timeutil

import (
	"testing"
	"time"

	"tableflip.dev/datepick/pkg/calendar"
)

var today = calendar.NewDate(2024, time.February, 15)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want calendar.Date
	}{
		{"", today},
		{"today", today},
		{"tomorrow", calendar.NewDate(2024, time.February, 16)},
		{"yesterday", calendar.NewDate(2024, time.February, 14)},
		{"2024-03-09", calendar.NewDate(2024, time.March, 9)},
		{"2024-3-9", calendar.NewDate(2024, time.March, 9)},
		{"12/25", calendar.NewDate(2024, time.December, 25)},
		{"2/29", calendar.NewDate(2024, time.February, 29)},
		{"+3d", calendar.NewDate(2024, time.February, 18)},
		{"-1w", calendar.NewDate(2024, time.February, 8)},
		{"2m", calendar.NewDate(2024, time.April, 15)},
		{"+1y", calendar.NewDate(2025, time.February, 15)},
		{"-10 days", calendar.NewDate(2024, time.February, 5)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in, today)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("%q: expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, in := range []string{"noop", "+3q", "2024-02-30"} {
		if _, err := ParseDate(in, today); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
	if _, err := ParseDate("2/29", calendar.NewDate(2023, time.March, 1)); err == nil {
		t.Fatalf("expected error for Feb 29 in 2023")
	}
}

func TestParseDatesSkipsBlanks(t *testing.T) {
	got, err := ParseDates([]string{"2024-02-01", " ", "+1d"}, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 dates, got %v", got)
	}
}

func TestParseWeekday(t *testing.T) {
	tests := map[string]time.Weekday{
		"sunday": time.Sunday,
		"Mon":    time.Monday,
		"tu":     time.Tuesday,
		"thurs":  time.Thursday,
		"SA":     time.Saturday,
	}
	for in, want := range tests {
		got, err := ParseWeekday(in)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("%q: expected %s, got %s", in, want, got)
		}
	}
	for _, in := range []string{"t", "s", "xyz"} {
		if _, err := ParseWeekday(in); err == nil {
			t.Errorf("expected error for %q", in)
		}
	}
}
