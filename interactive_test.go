package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dimfu/keyperiod/period"
)

func TestKeyboardStatePress(t *testing.T) {
	ks := keyboardState{octave: DEFAULT_OCTAVE}

	tests := []struct {
		r    rune
		key  uint16
		ok   bool
		oct  int
		name string
	}{
		{'a', 60, true, 4, "C4"},
		{'h', 69, true, 4, "A4"},
		{'w', 61, true, 4, "C#4"},
		{'q', 0, false, 4, ""},
		{'x', 0, false, 5, ""},
		{'a', 72, true, 5, "C5"},
		{'l', 86, true, 5, "D6"},
		{'z', 0, false, 4, ""},
		{'z', 0, false, 3, ""},
		{'j', 59, true, 3, "B3"},
	}

	for i, tt := range tests {
		key, ok := ks.press(tt.r)
		if ok != tt.ok || key != tt.key || ks.octave != tt.oct {
			t.Fatalf("step %d press(%q) = %d, %v at octave %d; want %d, %v at octave %d",
				i, tt.r, key, ok, ks.octave, tt.key, tt.ok, tt.oct)
		}
		if ok && NoteName(key) != tt.name {
			t.Errorf("step %d: note %s, want %s", i, NoteName(key), tt.name)
		}
	}
}

func TestKeyboardStateLimits(t *testing.T) {
	ks := keyboardState{octave: DEFAULT_OCTAVE}
	for i := 0; i < 20; i++ {
		ks.press('x')
	}
	if ks.octave != MAX_OCTAVE {
		t.Fatalf("octave = %d, want %d", ks.octave, MAX_OCTAVE)
	}
	// G9 is the last MIDI key
	if key, ok := ks.press('g'); !ok || key != period.MaxKey {
		t.Errorf("press(g) at top octave = %d, %v; want 127", key, ok)
	}
	if _, ok := ks.press('h'); ok {
		t.Error("A9 is beyond the MIDI range")
	}

	for i := 0; i < 20; i++ {
		ks.press('z')
	}
	if ks.octave != MIN_OCTAVE {
		t.Fatalf("octave = %d, want %d", ks.octave, MIN_OCTAVE)
	}
	if key, ok := ks.press('a'); !ok || key != 0 {
		t.Errorf("press(a) at bottom octave = %d, %v; want 0", key, ok)
	}
}

func TestStatusLine(t *testing.T) {
	s := Settings{Timer: 1_000_000, Key: 69, Width: 16}

	var buf bytes.Buffer
	statusLine(&buf, s, 4, 69, 2273, nil)
	out := buf.String()
	for _, want := range []string{"timer 1000000 Hz", "16-bit", "octave 4", "A4 (key 69): period 2273"} {
		if !strings.Contains(out, want) {
			t.Errorf("status missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	statusLine(&buf, s, -1, 0, 0, period.ErrOverflow)
	if out := buf.String(); !strings.Contains(out, "C-1 (key 0): period: overflow") {
		t.Errorf("status = %q", out)
	}
}
