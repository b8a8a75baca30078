package calendar

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Orientation controls how multiple month blocks are laid out by a renderer.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation converts "horizontal" or "vertical" into an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "h":
		return Horizontal, nil
	case "vertical", "v":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}

// Option configures a Picker at construction.
type Option func(*config)

type config struct {
	anchor      Date
	months      int
	mode        Mode
	orientation Orientation
	weekStart   time.Weekday
	min, max    Date
	disabled    []Date
	logger      *slog.Logger
	focuser     Focuser
	today       func() Date
}

// WithAnchor sets the initial view anchor date. Defaults to today.
func WithAnchor(d Date) Option {
	return func(c *config) { c.anchor = d }
}

// WithViewCount sets the number of months shown at once.
func WithViewCount(n int) Option {
	return func(c *config) { c.months = n }
}

// WithMode sets the selection mode.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithOrientation sets the block layout hint.
func WithOrientation(o Orientation) Option {
	return func(c *config) { c.orientation = o }
}

// WithWeekStart sets the first weekday of each grid row. Defaults to Sunday.
func WithWeekStart(wd time.Weekday) Option {
	return func(c *config) { c.weekStart = wd }
}

// WithBounds sets the inclusive min and max selectable dates. A zero Date
// leaves that side open.
func WithBounds(min, max Date) Option {
	return func(c *config) {
		c.min = min
		c.max = max
	}
}

// WithDisabledDates marks dates that cannot be selected.
func WithDisabledDates(dates ...Date) Option {
	return func(c *config) { c.disabled = append(c.disabled, dates...) }
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithFocuser sets the receiver of focus requests.
func WithFocuser(f Focuser) Option {
	return func(c *config) { c.focuser = f }
}

// WithToday overrides the clock used for the default anchor and IsToday.
func WithToday(fn func() Date) Option {
	return func(c *config) { c.today = fn }
}
