package main

import (
	"time"

	"github.com/dimfu/keyperiod/period"
)

const (
	DEFAULT_TIMER = 1_000_000
	MIN_TIMER     = 1
	MAX_TIMER     = period.MaxTimerFrequency

	DEFAULT_WIDTH       = 16
	DEFAULT_SAMPLE_RATE = 44100
	DEFAULT_OCTAVE      = 4
	MIN_OCTAVE          = -1
	MAX_OCTAVE          = 9

	// base-2 exponent, a quarter of full scale
	VOLUME      = -2
	NOTE_LENGTH = 400 * time.Millisecond
)

var OUTPUT_WIDTHS = []int{16, 32}

var NOTE_NAMES = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// semitone of each natural note letter
var NOTE_LETTERS = map[byte]int{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 11,
}

// two rows of a computer keyboard laid out like a piano, from C
var KEY_LAYOUT = map[rune]int{
	'a': 0,
	'w': 1,
	's': 2,
	'e': 3,
	'd': 4,
	'f': 5,
	't': 6,
	'g': 7,
	'y': 8,
	'h': 9,
	'u': 10,
	'j': 11,
	'k': 12,
	'o': 13,
	'l': 14,
}
