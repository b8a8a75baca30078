package printers

import (
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"

	"tableflip.dev/datepick/pkg/calendar"
)

// State is the serializable snapshot of a picker.
type State struct {
	Mode       string          `json:"mode"`
	Months     int             `json:"months"`
	ViewDate   calendar.Date   `json:"viewDate"`
	Cursor     calendar.Date   `json:"cursor"`
	Date       calendar.Date   `json:"date,omitempty"`
	Dates      []calendar.Date `json:"dates,omitempty"`
	RangeStart calendar.Date   `json:"rangeStart,omitempty"`
	RangeEnd   calendar.Date   `json:"rangeEnd,omitempty"`
	Held       []calendar.Key  `json:"held,omitempty"`
}

// StateOf captures p.
func StateOf(p *calendar.Picker) State {
	s := State{
		Mode:     p.Mode().String(),
		Months:   p.ViewCount(),
		ViewDate: p.ViewDate(),
		Cursor:   p.Cursor(),
		Held:     p.HeldKeys(),
	}
	switch p.Mode() {
	case calendar.ModeSingle:
		s.Date = p.SelectedDate()
	case calendar.ModeMultiple:
		s.Dates = p.SelectedDates()
	case calendar.ModeRange:
		s.RangeStart = p.RangeStart()
		s.RangeEnd = p.RangeEnd()
	}
	return s
}

// Structured writes v as "json" or "yaml".
func (pp *PrettyPrint) Structured(v interface{}, format string) error {
	var (
		b   []byte
		err error
	)
	switch format {
	case "json":
		b, err = json.MarshalIndent(v, "", "  ")
		if err == nil {
			b = append(b, '\n')
		}
	case "yaml":
		b, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("unknown output format %q, expected json or yaml", format)
	}
	if err != nil {
		return err
	}
	_, err = pp.out().Write(b)
	return err
}
