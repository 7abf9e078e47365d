package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

type Settings struct {
	Timer uint32
	Key   uint16
	Width int
}

var (
	// flags
	timer       = flag.Uint64("timer", DEFAULT_TIMER, "timer tick frequency in Hz")
	keyFlag     = flag.String("key", "A4", "MIDI key number or note name such as A4, C#3 or Bb2")
	width       = flag.Int("width", DEFAULT_WIDTH, "timer reload register width in bits, 16 or 32")
	all         = flag.Bool("all", false, "print the period of every MIDI key")
	emit        = flag.String("emit", "", "emit the period table as firmware source: c or go")
	play        = flag.Duration("play", 0, "play the key's square wave for this long")
	interactive = flag.Bool("interactive", false, "play keys from the computer keyboard")
	midiFile    = flag.String("midi", "", "convert a Standard MIDI File into a period schedule")
	presetName  = flag.String("preset", "", "load timer, key and width from a saved preset")
	saveName    = flag.String("save", "", "save the current timer, key and width as a preset")
	deleteName  = flag.String("delete", "", "delete a saved preset")
)

// resolveSettings starts from the preset, if any, and lets explicitly set
// flags override it.
func resolveSettings(fs *flag.FlagSet) (Settings, error) {
	s := Settings{Width: DEFAULT_WIDTH}
	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	if name := fs.Lookup("preset").Value.String(); name != "" {
		p, err := LoadPreset(name)
		if err != nil {
			return s, err
		}
		s = Settings{Timer: p.Timer, Key: p.Key, Width: p.Width}
	}

	if s.Timer == 0 || set["timer"] {
		t := fs.Lookup("timer").Value.(flag.Getter).Get().(uint64)
		if !ValidTimer(t) {
			return s, errors.Errorf("timer %d Hz is not valid, make sure it is between %v and %v", t, MIN_TIMER, MAX_TIMER)
		}
		s.Timer = uint32(t)
	}

	if fs.Lookup("preset").Value.String() == "" || set["key"] {
		k, err := ParseKey(fs.Lookup("key").Value.String())
		if err != nil {
			return s, err
		}
		s.Key = k
	}

	if set["width"] {
		s.Width = fs.Lookup("width").Value.(flag.Getter).Get().(int)
	}
	if !ValidWidth(s.Width) {
		return s, errors.Errorf("width %d is not valid, use one of %v", s.Width, OUTPUT_WIDTHS)
	}
	return s, nil
}

func printKey(w io.Writer, s Settings) (uint32, error) {
	p, err := PeriodFor(s.Timer, s.Key, s.Width)
	if err != nil {
		return 0, errors.Wrapf(err, "%s (key %d) at %d Hz, %d-bit", NoteName(s.Key), s.Key, s.Timer, s.Width)
	}

	r := Row{Key: s.Key, Period: p}
	fmt.Fprintf(w, "%s (key %d): period %d ticks at %d Hz, %.3f Hz (%+.2f cents)\n",
		NoteName(s.Key), s.Key, p, s.Timer, r.Hz(s.Timer), r.Cents(s.Timer))
	return p, nil
}

func main() {
	flag.Parse()

	if *deleteName != "" {
		if err := DeletePreset(*deleteName); err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf("deleted preset %s\n", *deleteName)
		return
	}

	settings, err := resolveSettings(flag.CommandLine)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *saveName != "" {
		err := CreatePreset(Preset{
			Name:  *saveName,
			Timer: settings.Timer,
			Key:   settings.Key,
			Width: settings.Width,
		})
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf("saved preset %s\n", *saveName)
	}

	switch {
	case *midiFile != "":
		steps, err := ReadScheduleFile(*midiFile, settings.Timer, settings.Width)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if err := PrintSchedule(os.Stdout, steps); err != nil {
			log.Fatalf("%v", err)
		}
	case *emit != "":
		if err := EmitTable(os.Stdout, *emit, settings.Timer, settings.Width); err != nil {
			log.Fatalf("%v", err)
		}
	case *all:
		if err := PrintTable(os.Stdout, settings.Timer, settings.Width); err != nil {
			log.Fatalf("%v", err)
		}
	case *interactive:
		if err := runInteractive(settings); err != nil {
			log.Fatalf("%v", err)
		}
	default:
		p, err := printKey(os.Stdout, settings)
		if err != nil {
			log.Fatalf("%v", err)
		}
		if *play > 0 {
			playKey(settings, p, *play)
		}
	}
}

func playKey(s Settings, p uint32, d time.Duration) {
	player, err := NewAudioPlayer(DEFAULT_SAMPLE_RATE, s.Timer)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer player.Close()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	stop := make(chan struct{})
	go func() {
		<-sig
		close(stop)
	}()

	player.PlayFor(p, d, stop)
}
