package main

import (
	"fmt"
	"io"
	"os"

	"github.com/eiannone/keyboard"
	"github.com/gosuri/uilive"
	"github.com/pkg/errors"

	"github.com/dimfu/keyperiod/period"
)

// keyboardState maps computer keys onto MIDI keys.
type keyboardState struct {
	octave int
}

// press returns the MIDI key for r, or false if r is not a note key or the
// note falls outside the MIDI range. 'z' and 'x' shift the octave.
func (ks *keyboardState) press(r rune) (uint16, bool) {
	switch r {
	case 'z':
		if ks.octave > MIN_OCTAVE {
			ks.octave--
		}
		return 0, false
	case 'x':
		if ks.octave < MAX_OCTAVE {
			ks.octave++
		}
		return 0, false
	}

	semi, ok := KEY_LAYOUT[r]
	if !ok {
		return 0, false
	}
	key := (ks.octave+1)*12 + semi
	if key < 0 || key > period.MaxKey {
		return 0, false
	}
	return uint16(key), true
}

func statusLine(w io.Writer, s Settings, octave int, key uint16, p uint32, err error) {
	fmt.Fprintf(w, "timer %d Hz, %d-bit, octave %d [a-l play, z/x octave, space stop, esc quit]\n",
		s.Timer, s.Width, octave)
	if err != nil {
		fmt.Fprintf(w, "%s (key %d): %v\n", NoteName(key), key, err)
		return
	}
	fmt.Fprintf(w, "%s (key %d): period %d, %.3f Hz\n", NoteName(key), key, p, float64(s.Timer)/float64(p))
}

func runInteractive(s Settings) error {
	if !IsTerminal(os.Stdin) || !IsTerminal(os.Stdout) {
		return errors.New("interactive mode needs a terminal")
	}

	player, err := NewAudioPlayer(DEFAULT_SAMPLE_RATE, s.Timer)
	if err != nil {
		return err
	}
	defer player.Close()

	if err := keyboard.Open(); err != nil {
		return errors.Wrap(err, "open keyboard")
	}
	defer keyboard.Close()

	ClearTerminal()
	writer := uilive.New()
	writer.Start()
	defer writer.Stop()

	ks := keyboardState{octave: DEFAULT_OCTAVE}
	key := s.Key
	p, perr := PeriodFor(s.Timer, key, s.Width)
	statusLine(writer, s, ks.octave, key, p, perr)

	for {
		char, k, err := keyboard.GetKey()
		if err != nil {
			return errors.Wrap(err, "read key")
		}

		switch k {
		case keyboard.KeyEsc, keyboard.KeyCtrlC:
			return nil
		case keyboard.KeySpace:
			player.Stop()
			continue
		}

		next, ok := ks.press(char)
		if ok {
			key = next
			p, perr = PeriodFor(s.Timer, key, s.Width)
			if perr == nil {
				player.PlayPeriod(p)
			}
		}
		statusLine(writer, s, ks.octave, key, p, perr)
	}
}
