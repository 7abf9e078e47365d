// Command genexpfrac writes the fractional-octave table used by package period.
//
// It runs at build time through go generate and is the only place where the
// table is computed with floating point.
package main

import (
	"bytes"
	"flag"
	"go/format"
	"io"
	"log"
	"math"
	"os"
	"text/template"

	"github.com/pkg/errors"
)

const (
	semitones = 12
	minScale  = 16
	// 440 * 2*scale << 5 must stay below 2^32.
	maxScale = 1 << 17
)

var (
	scale   = flag.Uint("scale", 1024, "fixed-point scale of the table entries")
	output  = flag.String("o", "exp_frac.go", "output file, - for stdout")
	pkgName = flag.String("pkg", "period", "package name of the generated file")
)

var tmpl = template.Must(template.New("expfrac").Parse(`// Code generated by genexpfrac -scale {{.Scale}}; DO NOT EDIT.

package {{.Package}}

// Scale is the fixed-point scale shared by every fractional-octave entry.
const Scale = {{.Scale}}

// expFracA is expFrac[9], the entry for the A above the octave root.
const expFracA = {{index .Entries 9}}

// expFrac[i] is round(2^(i/12) * Scale).
var expFrac = [12]uint32{
{{- range $i, $e := .Entries}}
	{{$e}}, // {{$i}}
{{- end}}
}
`))

type tableFile struct {
	Package string
	Scale   uint32
	Entries [semitones]uint32
}

func main() {
	flag.Parse()

	if *scale < minScale || *scale > maxScale {
		log.Fatalf("scale %d outside %d..%d", *scale, minScale, maxScale)
	}

	table, err := buildTable(uint32(*scale))
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := writeTable(*output, *pkgName, uint32(*scale), table); err != nil {
		log.Fatalf("%v", err)
	}
}

// writeTable renders the table in memory and only then replaces path, so a
// failed render leaves the existing file alone. A path of - means stdout.
func writeTable(path, pkg string, scale uint32, table [semitones]uint32) error {
	var buf bytes.Buffer
	if err := render(&buf, pkg, scale, table); err != nil {
		return err
	}

	if path == "-" {
		_, err := os.Stdout.Write(buf.Bytes())
		return errors.Wrap(err, "write table")
	}
	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0644), "write %s", path)
}

// buildTable computes round(2^(i/12) * scale) for every semitone and checks
// the result before anything is written.
func buildTable(scale uint32) ([semitones]uint32, error) {
	var table [semitones]uint32
	for i := range table {
		table[i] = uint32(math.Round(math.Pow(2, float64(i)/semitones) * float64(scale)))
	}
	return table, checkTable(scale, table)
}

// checkTable enforces entry[0] == scale, strictly increasing entries and
// entries below 2*scale.
func checkTable(scale uint32, table [semitones]uint32) error {
	if table[0] != scale {
		return errors.Errorf("entry 0 is %d, want scale %d", table[0], scale)
	}
	for i := 1; i < semitones; i++ {
		if table[i] <= table[i-1] {
			return errors.Errorf("scale %d too coarse: entry %d (%d) not above entry %d (%d)",
				scale, i, table[i], i-1, table[i-1])
		}
		if table[i] >= 2*scale {
			return errors.Errorf("entry %d (%d) reaches the next octave", i, table[i])
		}
	}
	return nil
}

func render(w io.Writer, pkg string, scale uint32, table [semitones]uint32) error {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, tableFile{
		Package: pkg,
		Scale:   scale,
		Entries: table,
	})
	if err != nil {
		return errors.Wrap(err, "execute template")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return errors.Wrap(err, "format generated source")
	}

	_, err = w.Write(src)
	return errors.Wrap(err, "write table")
}
