// Package timeutil parses the human-friendly date arguments accepted on the
// command line.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/datepick/pkg/calendar"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

var (
	offsetPattern = regexp.MustCompile(`^([+-]?)(\d+)\s*([a-z]+)$`)
	unitMap       = map[string]string{
		"d":      "d",
		"day":    "d",
		"days":   "d",
		"w":      "w",
		"wk":     "w",
		"wks":    "w",
		"week":   "w",
		"weeks":  "w",
		"m":      "m",
		"mo":     "m",
		"month":  "m",
		"months": "m",
		"y":      "y",
		"yr":     "y",
		"year":   "y",
		"years":  "y",
	}
)

// ParseDate parses a date argument relative to today. Accepted forms are
// "2006-01-02" (or without zero padding), "1/2" in the current year,
// "today", "tomorrow", "yesterday", and signed offsets such as "+3d", "-1w",
// "2m" or "+1y". An empty string is today.
func ParseDate(input string, today calendar.Date) (calendar.Date, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	switch s {
	case "", "today", "t":
		return today, nil
	case "tomorrow":
		return today.AddDays(1), nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	if t, err := time.Parse(layoutISO, s); err == nil {
		return calendar.DateOf(t), nil
	}
	if t, err := time.Parse(layoutISOShort, s); err == nil {
		d := calendar.DateOf(t)
		first := calendar.Date{Year: today.Year, Month: d.Month, Day: 1}
		if d.Day > first.DaysInMonth() {
			return calendar.Date{}, fmt.Errorf("invalid date %q in %d", input, today.Year)
		}
		return calendar.Date{Year: today.Year, Month: d.Month, Day: d.Day}, nil
	}

	matches := offsetPattern.FindStringSubmatch(s)
	if len(matches) != 4 {
		return calendar.Date{}, fmt.Errorf("invalid date %q", input)
	}
	n, err := strconv.Atoi(matches[2])
	if err != nil {
		return calendar.Date{}, fmt.Errorf("invalid offset %q: %w", matches[2], err)
	}
	if matches[1] == "-" {
		n = -n
	}
	unit, ok := unitMap[matches[3]]
	if !ok {
		return calendar.Date{}, fmt.Errorf("unsupported offset unit %q", matches[3])
	}
	switch unit {
	case "w":
		return today.AddDays(7 * n), nil
	case "m":
		return today.AddMonths(n), nil
	case "y":
		return today.AddYears(n), nil
	}
	return today.AddDays(n), nil
}

// ParseDates parses a list of date arguments, stopping at the first error.
func ParseDates(inputs []string, today calendar.Date) ([]calendar.Date, error) {
	out := make([]calendar.Date, 0, len(inputs))
	for _, in := range inputs {
		if strings.TrimSpace(in) == "" {
			continue
		}
		d, err := ParseDate(in, today)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseWeekday accepts a weekday name or an unambiguous prefix of at least
// two letters ("su", "mon", "thurs").
func ParseWeekday(input string) (time.Weekday, error) {
	s := strings.ToLower(strings.TrimSpace(input))
	if wd, ok := weekdays[s]; ok {
		return wd, nil
	}
	if len(s) >= 2 {
		found := -1
		for name, wd := range weekdays {
			if strings.HasPrefix(name, s) {
				if found >= 0 {
					return time.Sunday, fmt.Errorf("ambiguous weekday %q", input)
				}
				found = int(wd)
			}
		}
		if found >= 0 {
			return time.Weekday(found), nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", input)
}
