package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/dimfu/keyperiod/period"
)

// testFlags mirrors the settings flags registered by main.
func testFlags(t *testing.T, args ...string) *flag.FlagSet {
	t.Helper()
	fs := flag.NewFlagSet("keyperiod", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Uint64("timer", DEFAULT_TIMER, "")
	fs.String("key", "A4", "")
	fs.Int("width", DEFAULT_WIDTH, "")
	fs.String("preset", "", "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return fs
}

func TestResolveSettingsDefaults(t *testing.T) {
	s, err := resolveSettings(testFlags(t))
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	want := Settings{Timer: DEFAULT_TIMER, Key: 69, Width: DEFAULT_WIDTH}
	if s != want {
		t.Errorf("settings = %+v, want %+v", s, want)
	}
}

func TestResolveSettingsFlags(t *testing.T) {
	s, err := resolveSettings(testFlags(t, "-timer", "2000000", "-key", "C#3", "-width", "32"))
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	want := Settings{Timer: 2_000_000, Key: 49, Width: 32}
	if s != want {
		t.Errorf("settings = %+v, want %+v", s, want)
	}
}

func TestResolveSettingsInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero timer", []string{"-timer", "0"}},
		{"timer above ceiling", []string{"-timer", "2494174"}},
		{"bad key", []string{"-key", "H2"}},
		{"key out of range", []string{"-key", "128"}},
		{"bad width", []string{"-width", "8"}},
		{"missing preset", []string{"-preset", "nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withHome(t)
			if _, err := resolveSettings(testFlags(t, tt.args...)); err == nil {
				t.Errorf("resolveSettings(%v) succeeded, want error", tt.args)
			}
		})
	}
}

func TestResolveSettingsPreset(t *testing.T) {
	withHome(t)
	if err := CreatePreset(Preset{Name: "avr", Timer: 2_000_000, Key: 60, Width: 32}); err != nil {
		t.Fatal(err)
	}

	s, err := resolveSettings(testFlags(t, "-preset", "avr"))
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if want := (Settings{Timer: 2_000_000, Key: 60, Width: 32}); s != want {
		t.Errorf("settings = %+v, want %+v", s, want)
	}

	s, err = resolveSettings(testFlags(t, "-preset", "avr", "-key", "A4", "-width", "16"))
	if err != nil {
		t.Fatalf("resolveSettings with overrides: %v", err)
	}
	if want := (Settings{Timer: 2_000_000, Key: 69, Width: 16}); s != want {
		t.Errorf("settings = %+v, want %+v", s, want)
	}
}

func TestPrintKey(t *testing.T) {
	var buf bytes.Buffer
	p, err := printKey(&buf, Settings{Timer: 1_000_000, Key: 69, Width: 16})
	if err != nil {
		t.Fatalf("printKey: %v", err)
	}
	if p != 2273 {
		t.Errorf("period = %d, want 2273", p)
	}
	if out := buf.String(); !strings.Contains(out, "A4 (key 69): period 2273 ticks at 1000000 Hz") {
		t.Errorf("output = %q", out)
	}

	buf.Reset()
	_, err = printKey(&buf, Settings{Timer: 1_000_000, Key: 0, Width: 16})
	if !errors.Is(err, period.ErrOverflow) {
		t.Errorf("printKey key 0: %v, want ErrOverflow", err)
	}
	if buf.Len() != 0 {
		t.Errorf("printed %q on error", buf.String())
	}
}
