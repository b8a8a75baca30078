package store

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/timeutil"
)

// Profile is a named picker configuration. It holds configuration only;
// selections are never stored.
type Profile struct {
	Name        string          `json:"name"`
	Months      int             `json:"months,omitempty"`
	Mode        string          `json:"mode,omitempty"`
	Orientation string          `json:"orientation,omitempty"`
	WeekStart   string          `json:"weekStart,omitempty"`
	Min         calendar.Date   `json:"min,omitempty"`
	Max         calendar.Date   `json:"max,omitempty"`
	Disabled    []calendar.Date `json:"disabled,omitempty"`
	Updated     time.Time       `json:"updated"`
}

// FromDefaults builds an unnamed profile from config defaults.
func FromDefaults(d Defaults) *Profile {
	return &Profile{
		Months:      d.Months,
		Mode:        d.Mode,
		Orientation: d.Orientation,
		WeekStart:   d.WeekStart,
	}
}

// Validate checks that every field can be turned into picker options.
func (p *Profile) Validate() error {
	_, err := p.Options()
	return err
}

// Options converts the profile into calendar options.
func (p *Profile) Options() ([]calendar.Option, error) {
	if p == nil {
		return nil, errors.New("store: nil profile")
	}
	var opts []calendar.Option

	if p.Months != 0 {
		if p.Months < 1 {
			return nil, fmt.Errorf("profile %q: %w (got %d)", p.Name, calendar.ErrInvalidViewCount, p.Months)
		}
		opts = append(opts, calendar.WithViewCount(p.Months))
	}
	if strings.TrimSpace(p.Mode) != "" {
		m, err := calendar.ParseMode(p.Mode)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		opts = append(opts, calendar.WithMode(m))
	}
	if strings.TrimSpace(p.Orientation) != "" {
		o, err := calendar.ParseOrientation(p.Orientation)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		opts = append(opts, calendar.WithOrientation(o))
	}
	if strings.TrimSpace(p.WeekStart) != "" {
		wd, err := timeutil.ParseWeekday(p.WeekStart)
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
		opts = append(opts, calendar.WithWeekStart(wd))
	}
	if !p.Min.IsZero() && !p.Max.IsZero() && p.Min.After(p.Max) {
		return nil, fmt.Errorf("profile %q: %w (%s > %s)", p.Name, calendar.ErrInvalidBounds, p.Min, p.Max)
	}
	if !p.Min.IsZero() || !p.Max.IsZero() {
		opts = append(opts, calendar.WithBounds(p.Min, p.Max))
	}
	if len(p.Disabled) > 0 {
		opts = append(opts, calendar.WithDisabledDates(p.Disabled...))
	}
	return opts, nil
}

// Apply updates a live picker to the profile's settings. The selection is
// kept unless the mode changes.
func (p *Profile) Apply(pk *calendar.Picker) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Months > 0 {
		if _, err := pk.SetViewCount(p.Months); err != nil {
			return err
		}
	}
	if strings.TrimSpace(p.Mode) != "" {
		m, _ := calendar.ParseMode(p.Mode)
		if m != pk.Mode() {
			pk.SetSelectionMode(m)
		}
	}
	if strings.TrimSpace(p.Orientation) != "" {
		o, _ := calendar.ParseOrientation(p.Orientation)
		pk.SetOrientation(o)
	}
	if strings.TrimSpace(p.WeekStart) != "" {
		wd, _ := timeutil.ParseWeekday(p.WeekStart)
		pk.SetWeekStart(wd)
	}
	// Open both sides first so the new pair never conflicts with the old one.
	if _, err := pk.SetMinDate(calendar.Date{}); err != nil {
		return err
	}
	if _, err := pk.SetMaxDate(calendar.Date{}); err != nil {
		return err
	}
	if _, err := pk.SetMinDate(p.Min); err != nil {
		return err
	}
	if _, err := pk.SetMaxDate(p.Max); err != nil {
		return err
	}
	pk.SetDisabledDates(p.Disabled)
	return nil
}
