// Package period converts MIDI key numbers into hardware timer reload periods
// using 32-bit integer arithmetic only.
//
// A timer ticking at f Hz that reloads every p ticks produces one waveform
// cycle per reload, so the note at key k needs p = f / freq(k). With
// freq(k) = 440 * 2^((k-69)/12) and k = 12*octave + semitone this is
//
//	p = f * E[9] / (440 * 2^(octave-5) * E[semitone])
//
// where E is the fractional-octave table, E[i] = round(2^(i/12) * Scale).
// Using E[9] as the reference keeps key 69 exact and cancels Scale. The
// octave factor is a shift, applied to the denominator for octaves at or
// above 5 and to the quotient below that, so no intermediate exceeds 32 bits
// as long as f stays at or below MaxTimerFrequency.
//
// The package has no dependencies beyond the standard library and never
// touches floating point, so it builds for small targets as is.
package period

//go:generate go run ../cmd/genexpfrac -scale 1024 -o exp_frac.go

import (
	"errors"
	"math"
)

const (
	// MaxKey is the highest MIDI key number.
	MaxKey = 127

	// KeyA4 is the MIDI key of the 440 Hz reference pitch.
	KeyA4 = 69

	// HzA4 is the reference pitch in Hz.
	HzA4 = 440

	// MaxTimerFrequency is the highest timer frequency in Hz for which the
	// internal product timerFrequency * E[9] fits in 32 bits.
	MaxTimerFrequency = math.MaxUint32 / expFracA

	semitones = 12
	octaveA4  = KeyA4 / semitones
)

var (
	// ErrKeyOutOfRange is returned for keys above MaxKey.
	ErrKeyOutOfRange = errors.New("period: key out of range")

	// ErrOverflow is returned when the timer frequency exceeds
	// MaxTimerFrequency or the period does not fit the output width.
	ErrOverflow = errors.New("period: overflow")

	// ErrUnderflow is returned when the period rounds to zero ticks, i.e.
	// the timer runs too slowly for the note.
	ErrUnderflow = errors.New("period: underflow")
)

// ExpFrac returns the fractional-octave entry for semitone. Values above 11
// wrap to the same semitone of another octave.
func ExpFrac(semitone uint8) uint32 {
	return expFrac[semitone%semitones]
}

// Table returns a copy of the fractional-octave table.
func Table() [12]uint32 {
	return expFrac
}

// ForKey returns the 16-bit timer period for key given a timer ticking at
// timerFrequency Hz. On error the period is 0 and must not be used.
func ForKey(timerFrequency uint32, key uint16) (uint16, error) {
	p, err := ticks(timerFrequency, key, math.MaxUint16)
	return uint16(p), err
}

// ForKey32 is ForKey for 32-bit timers.
func ForKey32(timerFrequency uint32, key uint16) (uint32, error) {
	return ticks(timerFrequency, key, math.MaxUint32)
}

// ticks computes round(timerFrequency / freq(key)), failing if the result
// exceeds limit or rounds to zero.
func ticks(timerFrequency uint32, key uint16, limit uint32) (uint32, error) {
	if key > MaxKey {
		return 0, ErrKeyOutOfRange
	}
	if timerFrequency > MaxTimerFrequency {
		return 0, ErrOverflow
	}

	octave := uint32(key / semitones)
	num := timerFrequency * expFracA
	den := HzA4 * expFrac[key%semitones]

	var shift uint32
	if octave >= octaveA4 {
		den <<= octave - octaveA4
	} else {
		shift = octaveA4 - octave
	}

	q, r := num/den, num%den
	if q > limit>>shift {
		return 0, ErrOverflow
	}

	// r < den <= 440*1933, so r<<5 still fits.
	r <<= shift
	q = q<<shift + r/den
	r %= den

	// Round half up: (2*num + den) / (2*den) without forming 2*num.
	if r >= den-r {
		if q == limit {
			return 0, ErrOverflow
		}
		q++
	}
	if q == 0 {
		return 0, ErrUnderflow
	}
	return q, nil
}
