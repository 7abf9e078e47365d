package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"text/template"

	"github.com/pkg/errors"

	"github.com/dimfu/keyperiod/period"
)

type Row struct {
	Key    uint16
	Name   string
	Period uint32
	Err    error
}

// Hz is the frequency the timer actually produces.
func (r Row) Hz(timer uint32) float64 {
	if r.Err != nil || r.Period == 0 {
		return 0
	}
	return float64(timer) / float64(r.Period)
}

// Cents is the pitch error of the produced frequency.
func (r Row) Cents(timer uint32) float64 {
	hz := r.Hz(timer)
	if hz == 0 {
		return 0
	}
	return 1200 * math.Log2(hz/KeyFrequency(r.Key))
}

// Periods computes a row for every MIDI key. Keys whose period does not fit
// width keep their error and a zero period.
func Periods(timer uint32, width int) []Row {
	rows := make([]Row, 0, period.MaxKey+1)
	for key := uint16(0); key <= period.MaxKey; key++ {
		p, err := PeriodFor(timer, key, width)
		rows = append(rows, Row{
			Key:    key,
			Name:   NoteName(key),
			Period: p,
			Err:    err,
		})
	}
	return rows
}

func PrintTable(w io.Writer, timer uint32, width int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "key\tnote\tideal Hz\tperiod\tactual Hz\tcents\t\n")
	for _, r := range Periods(timer, width) {
		if r.Err != nil {
			fmt.Fprintf(tw, "%d\t%s\t%.3f\t-\t-\t%v\t\n", r.Key, r.Name, KeyFrequency(r.Key), r.Err)
			continue
		}
		fmt.Fprintf(tw, "%d\t%s\t%.3f\t%d\t%.3f\t%+.2f\t\n",
			r.Key, r.Name, KeyFrequency(r.Key), r.Period, r.Hz(timer), r.Cents(timer))
	}
	return errors.Wrap(tw.Flush(), "write table")
}

var emitTemplates = map[string]*template.Template{
	"go": template.Must(template.New("go").Parse(`// Timer periods for MIDI keys 0-127 at {{.Timer}} Hz; 0 marks keys with no valid period.
var midiPeriods = [128]uint{{.Width}}{
{{- range .Rows}}
	{{.Period}}, // {{.Key}} {{.Name}}
{{- end}}
}
`)),
	"c": template.Must(template.New("c").Parse(`/* Timer periods for MIDI keys 0-127 at {{.Timer}} Hz; 0 marks keys with no valid period. */
#include <stdint.h>

static const uint{{.Width}}_t midi_periods[128] = {
{{- range .Rows}}
	{{.Period}}, /* {{.Key}} {{.Name}} */
{{- end}}
};
`)),
}

func EmitFormats() []string {
	return []string{"c", "go"}
}

// EmitTable writes the period table as firmware source in the given format.
func EmitTable(w io.Writer, format string, timer uint32, width int) error {
	tmpl, ok := emitTemplates[strings.ToLower(format)]
	if !ok {
		return errors.Errorf("unknown emit format %q, want one of %v", format, EmitFormats())
	}

	err := tmpl.Execute(w, struct {
		Timer uint32
		Width int
		Rows  []Row
	}{
		Timer: timer,
		Width: width,
		Rows:  Periods(timer, width),
	})
	return errors.Wrapf(err, "emit %s table", format)
}
