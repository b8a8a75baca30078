package calendar

import "time"

// CellsPerMonth is the fixed cell count of one month block: six full weeks.
const CellsPerMonth = 42

// MonthGrid returns the 42 dates shown for year/month with weeks starting on
// Sunday.
func MonthGrid(year int, month time.Month) []Date {
	return MonthGridFrom(year, month, time.Sunday)
}

// MonthGridFrom returns the 42 dates shown for year/month with weeks starting
// on weekStart. Cells before the first of the month hold the tail of the
// previous month; cells after the last day hold the start of the next one.
func MonthGridFrom(year int, month time.Month, weekStart time.Weekday) []Date {
	first := NewDate(year, month, 1)
	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7

	dates := make([]Date, 0, CellsPerMonth)
	start := first.AddDays(-lead)
	for i := 0; i < CellsPerMonth; i++ {
		dates = append(dates, start.AddDays(i))
	}
	return dates
}

// Grid concatenates the month grids for anchor's month and the months-1
// months following it.
func Grid(anchor Date, months int, weekStart time.Weekday) []Date {
	if months < 1 {
		months = 1
	}
	first := anchor.FirstOfMonth()
	dates := make([]Date, 0, CellsPerMonth*months)
	for i := 0; i < months; i++ {
		m := first.AddMonths(i)
		dates = append(dates, MonthGridFrom(m.Year, m.Month, weekStart)...)
	}
	return dates
}

// WeekdayOrder lists the seven weekdays starting at weekStart.
func WeekdayOrder(weekStart time.Weekday) []time.Weekday {
	days := make([]time.Weekday, 7)
	for i := range days {
		days[i] = (weekStart + time.Weekday(i)) % 7
	}
	return days
}
