package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// Step is one timer reload in a schedule. A zero Period with Off set means
// the channel falls silent.
type Step struct {
	At      time.Duration
	Track   int
	Channel uint8
	Key     uint8
	Period  uint32
	Off     bool
	Err     error
}

// ReadSchedule converts every note start and end in a Standard MIDI File
// into timer periods for a timer running at timer Hz.
func ReadSchedule(r io.Reader, timer uint32, width int) ([]Step, error) {
	var steps []Step

	rd := smf.ReadTracksFrom(r).Do(func(ev smf.TrackEvent) {
		var ch, key, vel uint8
		msg := midi.Message(ev.Message)
		at := time.Duration(ev.AbsMicroSeconds) * time.Microsecond

		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			p, err := PeriodFor(timer, uint16(key), width)
			steps = append(steps, Step{
				At:      at,
				Track:   ev.TrackNo,
				Channel: ch,
				Key:     key,
				Period:  p,
				Err:     err,
			})
		case msg.GetNoteEnd(&ch, &key):
			steps = append(steps, Step{
				At:      at,
				Track:   ev.TrackNo,
				Channel: ch,
				Key:     key,
				Off:     true,
			})
		}
	})
	if err := rd.Error(); err != nil {
		return nil, errors.Wrap(err, "read midi file")
	}
	return steps, nil
}

func ReadScheduleFile(path string, timer uint32, width int) ([]Step, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open midi file")
	}
	defer f.Close()

	return ReadSchedule(f, timer, width)
}

func PrintSchedule(w io.Writer, steps []Step) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "time\ttrack\tch\tnote\tperiod\n")
	for _, s := range steps {
		name := NoteName(uint16(s.Key))
		switch {
		case s.Off:
			fmt.Fprintf(tw, "%v\t%d\t%d\t%s\toff\n", s.At, s.Track, s.Channel, name)
		case s.Err != nil:
			fmt.Fprintf(tw, "%v\t%d\t%d\t%s\t%v\n", s.At, s.Track, s.Channel, name, s.Err)
		default:
			fmt.Fprintf(tw, "%v\t%d\t%d\t%s\t%d\n", s.At, s.Track, s.Channel, name, s.Period)
		}
	}
	return errors.Wrap(tw.Flush(), "write schedule")
}
