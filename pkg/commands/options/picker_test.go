package options

import (
	"testing"
	"time"

	"tableflip.dev/datepick/pkg/calendar"
	"tableflip.dev/datepick/pkg/store"
)

type testConfig struct {
	path string
	defs store.Defaults
}

func (t testConfig) BasePath() string         { return t.path }
func (t testConfig) Defaults() store.Defaults { return t.defs }

var today = calendar.NewDate(2024, time.February, 15)

func TestResolvePrecedence(t *testing.T) {
	cfg := testConfig{
		path: t.TempDir(),
		defs: store.Defaults{Months: 1, Mode: "single", Orientation: "horizontal", WeekStart: "sunday"},
	}
	p, err := store.Load(cfg)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.Put(&store.Profile{Name: "team", Months: 3, Mode: "range"}); err != nil {
		t.Fatalf("put: %v", err)
	}

	o := &PickerOptions{Profile: "team"}
	o.Mode = "multiple"
	o.Min = "2024-02-01"
	o.Disabled = []string{"2/14", "+1d"}

	prof, err := o.Resolve(cfg, p, today)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if prof.Months != 3 {
		t.Fatalf("expected months from profile, got %d", prof.Months)
	}
	if prof.Mode != "multiple" {
		t.Fatalf("expected mode from flag, got %q", prof.Mode)
	}
	if prof.WeekStart != "sunday" {
		t.Fatalf("expected week start from config, got %q", prof.WeekStart)
	}
	if prof.Min != calendar.NewDate(2024, time.February, 1) {
		t.Fatalf("unexpected min %s", prof.Min)
	}
	if len(prof.Disabled) != 2 || prof.Disabled[1] != calendar.NewDate(2024, time.February, 16) {
		t.Fatalf("unexpected disabled %v", prof.Disabled)
	}
}

func TestBuild(t *testing.T) {
	cfg := testConfig{path: t.TempDir(), defs: store.Defaults{Months: 1}}
	o := &PickerOptions{}
	o.OnString = "+1m"
	o.WeekStart = "mon"

	picker, err := o.Build(cfg, nil, today, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if picker.ViewDate() != calendar.NewDate(2024, time.March, 1) {
		t.Fatalf("expected March view, got %s", picker.ViewDate())
	}
	if picker.WeekStart() != time.Monday {
		t.Fatalf("expected Monday week start, got %s", picker.WeekStart())
	}
	if !picker.IsToday(today) {
		t.Fatalf("expected today to be %s", today)
	}
}

func TestBuildErrors(t *testing.T) {
	cfg := testConfig{path: t.TempDir()}
	bad := []*PickerOptions{
		{Profile: "missing"},
		{ProfileSettings: ProfileSettings{Months: -2}},
		{ProfileSettings: ProfileSettings{Min: "2024-03-01", Max: "2024-02-01"}},
		{ProfileSettings: ProfileSettings{Min: "someday"}},
		{OnOptions: OnOptions{OnString: "never"}},
	}
	for i, o := range bad {
		if _, err := o.Build(cfg, nil, today, nil); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestOutputValidate(t *testing.T) {
	for _, ok := range []string{"", "json", "yaml"} {
		if err := (&OutputOptions{Output: ok}).Validate(); err != nil {
			t.Fatalf("%q: unexpected error %v", ok, err)
		}
	}
	if err := (&OutputOptions{Output: "xml"}).Validate(); err == nil {
		t.Fatalf("expected error for xml")
	}
}
