package logger

import (
	"bytes"
	"testing"
)

func TestPrinter(t *testing.T) {
	t.Run("no color", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		p := NewPrinter(stdout, stderr, true)
		p.Successf("upgraded to %s", "v1.0.0")
		p.Failuref("failed: %d", 1)
		if got, want := stdout.String(), "✔ upgraded to v1.0.0\n"; got != want {
			t.Errorf("Successf: got %q, want %q", got, want)
		}
		if got, want := stderr.String(), "✖ failed: 1\n"; got != want {
			t.Errorf("Failuref: got %q, want %q", got, want)
		}
	})
	t.Run("color", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		p := NewPrinter(stdout, stderr, false)
		p.Successf("ok")
		p.Failuref("ng")
		if got, want := stdout.String(), "\033[32m✔\033[0m ok\n"; got != want {
			t.Errorf("Successf: got %q, want %q", got, want)
		}
		if got, want := stderr.String(), "\033[31m✖\033[0m ng\n"; got != want {
			t.Errorf("Failuref: got %q, want %q", got, want)
		}
	})
}
