// Package replay drives a picker from a YAML script of input events and
// reports the resulting state. It is the headless counterpart of the ui
// command.
package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"sigs.k8s.io/yaml"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/printers"
	"tableflip.dev/datepick/pkg/store"
)

// Script is the file format read by Replay.
type Script struct {
	Anchor  calendar.Date `json:"anchor"`
	Today   calendar.Date `json:"today"`
	Profile store.Profile `json:"profile"`
	Steps   []Step        `json:"steps"`
}

// Step is one input. Exactly one action field should be set; Select and
// Repeat qualify Navigate and Down.
type Step struct {
	Key      calendar.Key  `json:"key,omitempty"`
	Down     calendar.Key  `json:"down,omitempty"`
	Up       calendar.Key  `json:"up,omitempty"`
	Repeat   bool          `json:"repeat,omitempty"`
	Click    calendar.Date `json:"click,omitempty"`
	Hover    calendar.Date `json:"hover,omitempty"`
	Leave    calendar.Date `json:"leave,omitempty"`
	Navigate calendar.Date `json:"navigate,omitempty"`
	Select   bool          `json:"select,omitempty"`
	Page     int           `json:"page,omitempty"`
	Years    int           `json:"years,omitempty"`
	Mode     string        `json:"mode,omitempty"`
	Months   int           `json:"months,omitempty"`
	Blur     bool          `json:"blur,omitempty"`
}

// Record is one change notification or focus request seen during replay.
type Record struct {
	Step  int             `json:"step"`
	Field string          `json:"field"`
	Date  calendar.Date   `json:"date,omitempty"`
	Dates []calendar.Date `json:"dates,omitempty"`
	Index *int            `json:"index,omitempty"`
}

// Result is what Replay prints.
type Result struct {
	State   printers.State `json:"state"`
	Changes []Record       `json:"changes,omitempty"`
}

// Replay runs a script.
type Replay struct {
	Path   string
	Script io.Reader

	Output  string
	Changes bool
	Out     io.Writer
	Log     *slog.Logger
}

// Load parses a script.
func Load(r io.Reader) (*Script, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s := &Script{}
	if err := yaml.UnmarshalStrict(b, s); err != nil {
		return nil, fmt.Errorf("replay: parse script: %w", err)
	}
	return s, nil
}

// Do loads the script, runs it and prints the result.
func (r *Replay) Do(ctx context.Context) error {
	in := r.Script
	if in == nil {
		if r.Path == "" {
			return errors.New("replay: no script")
		}
		f, err := os.Open(r.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	script, err := Load(in)
	if err != nil {
		return err
	}
	res, err := Run(ctx, script, r.Log)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: r.Out}
	if !r.Changes {
		res.Changes = nil
	}
	if r.Output != "" {
		return pp.Structured(res, r.Output)
	}
	return pp.Structured(res, "yaml")
}

// Run executes script against a fresh picker.
func Run(ctx context.Context, script *Script, log *slog.Logger) (*Result, error) {
	opts, err := script.Profile.Options()
	if err != nil {
		return nil, err
	}
	if !script.Anchor.IsZero() {
		opts = append(opts, calendar.WithAnchor(script.Anchor))
	}
	if today := script.Today; !today.IsZero() {
		opts = append(opts, calendar.WithToday(func() calendar.Date { return today }))
	}
	if log != nil {
		opts = append(opts, calendar.WithLogger(log))
	}

	res := &Result{}
	step := 0
	opts = append(opts, calendar.WithFocuser(calendar.FocusFunc(func(index int, d calendar.Date) {
		i := index
		res.Changes = append(res.Changes, Record{Step: step, Field: "focus", Date: d, Index: &i})
	})))

	p, err := calendar.New(opts...)
	if err != nil {
		return nil, err
	}
	unsubscribe := p.Subscribe(func(c calendar.Change) {
		res.Changes = append(res.Changes, Record{Step: step, Field: c.Field.String(), Date: c.Date, Dates: c.Dates})
	})
	defer unsubscribe()

	for i, s := range script.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		step = i + 1
		if err := apply(p, s); err != nil {
			return nil, fmt.Errorf("replay: step %d: %w", step, err)
		}
	}
	res.State = printers.StateOf(p)
	return res, nil
}

func apply(p *calendar.Picker, s Step) error {
	switch {
	case s.Key != "":
		p.HandleKey(calendar.Down(s.Key), p.Cursor())
		p.HandleKey(calendar.Up(s.Key), p.Cursor())
	case s.Down != "":
		p.HandleKey(calendar.KeyEvent{Key: s.Down, Type: calendar.KeyDown, Repeat: s.Repeat}, p.Cursor())
	case s.Up != "":
		p.HandleKey(calendar.Up(s.Up), p.Cursor())
	case !s.Click.IsZero():
		p.Click(s.Click)
	case !s.Hover.IsZero():
		p.PointerEnter(s.Hover)
	case !s.Leave.IsZero():
		p.PointerLeave(s.Leave)
	case !s.Navigate.IsZero():
		p.NavigateTo(s.Navigate, s.Select)
	case s.Page < 0:
		for n := 0; n < -s.Page; n++ {
			p.DecrementMonth()
		}
	case s.Page > 0:
		for n := 0; n < s.Page; n++ {
			p.IncrementMonth()
		}
	case s.Years < 0:
		p.DecrementYear(-s.Years)
	case s.Years > 0:
		p.IncrementYear(s.Years)
	case s.Mode != "":
		m, err := calendar.ParseMode(s.Mode)
		if err != nil {
			return err
		}
		p.SetSelectionMode(m)
	case s.Months != 0:
		_, err := p.SetViewCount(s.Months)
		return err
	case s.Blur:
		p.Blur()
	default:
		return errors.New("empty step")
	}
	return nil
}
