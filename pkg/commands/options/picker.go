package options

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/store"
	"tableflip.dev/datepick/pkg/timeutil"
)

// PickerOptions are the flags shared by commands that build a picker.
type PickerOptions struct {
	OnOptions
	ProfileSettings

	Profile string
}

// ProfileSettings are the flags that map onto a stored profile.
type ProfileSettings struct {
	Months      int
	Mode        string
	Orientation string
	WeekStart   string
	Min         string
	Max         string
	Disabled    []string
}

func AddPickerArgs(cmd *cobra.Command, o *PickerOptions) {
	AddOnArgs(cmd, &o.OnOptions)
	AddProfileSettingsArgs(cmd, &o.ProfileSettings)
	cmd.Flags().StringVarP(&o.Profile, "profile", "p", "",
		"Start from a saved profile; other flags override it.")
}

func AddProfileSettingsArgs(cmd *cobra.Command, o *ProfileSettings) {
	cmd.Flags().IntVarP(&o.Months, "months", "n", 0,
		"Number of months shown at once.")
	cmd.Flags().StringVarP(&o.Mode, "mode", "m", "",
		"Selection mode. One of 'single', 'multiple' or 'range'.")
	cmd.Flags().StringVar(&o.Orientation, "orientation", "",
		"Month layout. One of 'horizontal' or 'vertical'.")
	cmd.Flags().StringVar(&o.WeekStart, "week-start", "",
		`First day of each week row, example: --week-start=monday.`)
	cmd.Flags().StringVar(&o.Min, "min", "",
		"Earliest selectable date.")
	cmd.Flags().StringVar(&o.Max, "max", "",
		"Latest selectable date.")
	cmd.Flags().StringSliceVar(&o.Disabled, "disable", nil,
		"Dates that can not be selected, repeatable or comma separated.")
}

// Overlay writes every set flag onto prof.
func (o *ProfileSettings) Overlay(prof *store.Profile, today calendar.Date) error {
	if o.Months != 0 {
		prof.Months = o.Months
	}
	if o.Mode != "" {
		prof.Mode = o.Mode
	}
	if o.Orientation != "" {
		prof.Orientation = o.Orientation
	}
	if o.WeekStart != "" {
		prof.WeekStart = o.WeekStart
	}
	if o.Min != "" {
		d, err := timeutil.ParseDate(o.Min, today)
		if err != nil {
			return fmt.Errorf("--min: %w", err)
		}
		prof.Min = d
	}
	if o.Max != "" {
		d, err := timeutil.ParseDate(o.Max, today)
		if err != nil {
			return fmt.Errorf("--max: %w", err)
		}
		prof.Max = d
	}
	if len(o.Disabled) > 0 {
		dates, err := timeutil.ParseDates(o.Disabled, today)
		if err != nil {
			return fmt.Errorf("--disable: %w", err)
		}
		prof.Disabled = dates
	}
	return nil
}

// Resolve merges config defaults, the named profile and the flags, in that
// order of increasing precedence.
func (o *PickerOptions) Resolve(cfg store.Config, p store.Persistence, today calendar.Date) (*store.Profile, error) {
	prof := store.FromDefaults(cfg.Defaults())
	if o.Profile != "" {
		if p == nil {
			return nil, fmt.Errorf("profile %q: no persistence", o.Profile)
		}
		saved, err := p.Get(o.Profile)
		if err != nil {
			return nil, err
		}
		saved.Name = o.Profile
		base := *prof
		prof = saved
		if prof.Months == 0 {
			prof.Months = base.Months
		}
		if prof.Mode == "" {
			prof.Mode = base.Mode
		}
		if prof.Orientation == "" {
			prof.Orientation = base.Orientation
		}
		if prof.WeekStart == "" {
			prof.WeekStart = base.WeekStart
		}
	}
	if err := o.Overlay(prof, today); err != nil {
		return nil, err
	}
	return prof, nil
}

// Build resolves the options and constructs the picker.
func (o *PickerOptions) Build(cfg store.Config, p store.Persistence, today calendar.Date, log *slog.Logger) (*calendar.Picker, error) {
	prof, err := o.Resolve(cfg, p, today)
	if err != nil {
		return nil, err
	}
	opts, err := prof.Options()
	if err != nil {
		return nil, err
	}
	on, err := o.GetOn(today)
	if err != nil {
		return nil, fmt.Errorf("--on: %w", err)
	}
	opts = append(opts,
		calendar.WithAnchor(on),
		calendar.WithToday(func() calendar.Date { return today }),
		calendar.WithLogger(log),
	)
	return calendar.New(opts...)
}
