package main

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

// SquareWave renders what a timer output pin would produce: a counter running
// at Timer Hz that wraps every Period ticks, high for the first half of the
// cycle (the longer half when Period is odd). Each output sample advances the counter by Timer/SampleRate ticks,
// carried exactly in integer arithmetic.
type SquareWave struct {
	Timer      uint32
	Period     uint32
	SampleRate beep.SampleRate

	acc  uint64 // timer ticks * sample rate not yet consumed
	tick uint32 // position inside the current cycle
}

func NewSquareWave(timer, period uint32, sr beep.SampleRate) *SquareWave {
	return &SquareWave{
		Timer:      timer,
		Period:     period,
		SampleRate: sr,
	}
}

func (w *SquareWave) Stream(samples [][2]float64) (n int, ok bool) {
	if w.Period == 0 || w.SampleRate <= 0 {
		return 0, false
	}

	// a one-tick cycle never leaves the reload, so the pin stays put
	if w.Period < 2 {
		for i := range samples {
			samples[i] = [2]float64{}
		}
		return len(samples), true
	}

	rate := uint64(w.SampleRate)
	for i := range samples {
		v := -1.0
		if uint64(w.tick)*2 < uint64(w.Period) {
			v = 1.0
		}
		samples[i][0] = v
		samples[i][1] = v

		w.acc += uint64(w.Timer)
		w.tick = uint32((uint64(w.tick) + w.acc/rate) % uint64(w.Period))
		w.acc %= rate
	}
	return len(samples), true
}

func (w *SquareWave) Err() error {
	return nil
}

type AudioPlayer struct {
	sampleRate beep.SampleRate
	ctrl       *beep.Ctrl
	timer      uint32
}

func NewAudioPlayer(sampleRate int, timer uint32) (*AudioPlayer, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/30)); err != nil {
		return nil, errors.Wrap(err, "error while initializing speaker")
	}

	return &AudioPlayer{
		sampleRate: sr,
		timer:      timer,
	}, nil
}

func (ap *AudioPlayer) voice(period uint32) beep.Streamer {
	return &effects.Volume{
		Streamer: NewSquareWave(ap.timer, period, ap.sampleRate),
		Base:     2,
		Volume:   VOLUME,
		Silent:   false,
	}
}

// PlayPeriod starts a note with the given timer period, replacing whatever
// is playing.
func (ap *AudioPlayer) PlayPeriod(period uint32) {
	ap.Stop()

	ctrl := &beep.Ctrl{Streamer: beep.Take(ap.sampleRate.N(NOTE_LENGTH), ap.voice(period))}
	speaker.Lock()
	ap.ctrl = ctrl
	speaker.Unlock()
	speaker.Play(ctrl)
}

// PlayFor plays a note for d and blocks until it has finished or stop fires.
func (ap *AudioPlayer) PlayFor(period uint32, d time.Duration, stop <-chan struct{}) {
	done := make(chan struct{})
	speaker.Play(beep.Seq(
		beep.Take(ap.sampleRate.N(d), ap.voice(period)),
		beep.Callback(func() {
			close(done)
		}),
	))

	select {
	case <-done:
	case <-stop:
		speaker.Clear()
	}
}

func (ap *AudioPlayer) Stop() {
	speaker.Lock()
	if ap.ctrl != nil {
		ap.ctrl.Streamer = nil
		ap.ctrl = nil
	}
	speaker.Unlock()
}

func (ap *AudioPlayer) Close() {
	speaker.Clear()
	speaker.Close()
}
