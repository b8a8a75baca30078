package options

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestHandleError(t *testing.T) {
	orig := color.Output
	t.Cleanup(func() { color.Output = orig })

	boom := errors.New("boom")
	tests := []struct {
		output  string
		want    string
		swallow bool
	}{
		{output: "", swallow: false},
		{output: "json", want: `{"error":"boom"}`, swallow: true},
		{output: "yaml", want: "error: boom", swallow: true},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		color.Output = &buf
		o := &OutputOptions{Output: tc.output}

		err := o.HandleError(boom)
		if tc.swallow && err != nil {
			t.Fatalf("%q: expected error to be printed, got %v", tc.output, err)
		}
		if !tc.swallow && !errors.Is(err, boom) {
			t.Fatalf("%q: expected error returned, got %v", tc.output, err)
		}
		if got := strings.TrimSpace(buf.String()); got != tc.want {
			t.Fatalf("%q: expected %q, got %q", tc.output, tc.want, got)
		}
	}

	if err := (&OutputOptions{Output: "json"}).HandleError(nil); err != nil {
		t.Fatalf("expected nil for nil error, got %v", err)
	}
}
