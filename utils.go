package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"

	"github.com/dimfu/keyperiod/period"
)

func ValidTimer(input uint64) bool {
	return input >= MIN_TIMER && input <= MAX_TIMER
}

func ValidWidth(input int) bool {
	for _, w := range OUTPUT_WIDTHS {
		if w == input {
			return true
		}
	}
	return false
}

// ParseKey accepts a MIDI key number ("69") or a note name ("A4", "C#3",
// "Bb2", "C-1"). Octaves follow the MIDI convention where key 60 is C4.
func ParseKey(input string) (uint16, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, errors.New("empty key")
	}

	n, err := strconv.ParseUint(input, 10, 16)
	switch {
	case err == nil:
		if n > period.MaxKey {
			return 0, errors.Wrapf(period.ErrKeyOutOfRange, "key %d", n)
		}
		return uint16(n), nil
	case errors.Is(err, strconv.ErrRange):
		return 0, errors.Wrapf(period.ErrKeyOutOfRange, "key %s", input)
	}

	semi, ok := NOTE_LETTERS[strings.ToUpper(input[:1])[0]]
	if !ok {
		return 0, errors.Errorf("invalid note name %q", input)
	}
	rest := input[1:]
	switch {
	case strings.HasPrefix(rest, "#"):
		semi++
		rest = rest[1:]
	case strings.HasPrefix(rest, "b"):
		semi--
		rest = rest[1:]
	}

	octave, err := strconv.Atoi(rest)
	if err != nil {
		return 0, errors.Errorf("invalid octave in note name %q", input)
	}

	key := (octave+1)*12 + semi
	if key < 0 || key > period.MaxKey {
		return 0, errors.Wrapf(period.ErrKeyOutOfRange, "note %s", input)
	}
	return uint16(key), nil
}

// NoteName returns the sharp spelling of key, e.g. 69 -> "A4".
func NoteName(key uint16) string {
	return fmt.Sprintf("%s%d", NOTE_NAMES[key%12], int(key/12)-1)
}

// KeyFrequency is the equal-tempered frequency of key in Hz. It is only
// used for display.
func KeyFrequency(key uint16) float64 {
	return period.HzA4 * math.Pow(2, (float64(key)-period.KeyA4)/12)
}

// PeriodFor dispatches to the period function matching the timer width.
func PeriodFor(timer uint32, key uint16, width int) (uint32, error) {
	if width == 32 {
		return period.ForKey32(timer, key)
	}
	p, err := period.ForKey(timer, key)
	return uint32(p), err
}

func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runCmd(name string, arg ...string) {
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	err := cmd.Run()
	if err != nil {
		log.Fatal(err.Error())
	}
}

func ClearTerminal() {
	switch runtime.GOOS {
	case "windows":
		runCmd("cmd", "/c", "cls")
	default:
		runCmd("clear")
	}
}

func UserHomeDir() string {
	if runtime.GOOS == "windows" {
		home := os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
		if home == "" {
			home = os.Getenv("USERPROFILE")
		}
		return home + "\\"
	}
	return os.Getenv("HOME") + "/"
}
