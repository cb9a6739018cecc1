package record

import (
	"io"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-snid/dsp/core"
)

// ASCIIMeta is the metadata a plain ASCII template does not carry itself.
type ASCIIMeta struct {
	SN         string
	TypeStr    string
	TypeInt    int
	SubTypeInt int
	DM15       float64
	// Redshift moves the wavelengths to the rest frame: w/(1+Redshift).
	Redshift float64
}

// LoadASCII parses a whitespace-separated template table. The first line
// holds the phase type followed by one epoch per flux column; every further
// line holds a wavelength followed by one flux per epoch.
func LoadASCII(r io.Reader, meta ASCIIMeta, opts ...Option) (*Record, error) {
	if meta.Redshift <= -1 {
		return nil, core.Formatf("redshift must be greater than -1: %g", meta.Redshift)
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < 2 {
		return nil, core.Formatf("ascii template needs a phase line and data, got %d lines", len(lines))
	}

	first := strings.Fields(lines[0])
	if len(first) < 2 {
		return nil, core.Formatf("phase line must list a phase type and epochs")
	}
	phaseType, err := strconv.ParseFloat(first[0], 64)
	if err != nil {
		return nil, core.Formatf("phase type: %v", err)
	}
	epochs, err := parseFloats(first[1:], 0)
	if err != nil {
		return nil, err
	}

	var wave []float64
	columns := make([][]float64, len(epochs))
	for i := 1; i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) == 0 {
			continue
		}
		row, err := parseFloats(fields, i)
		if err != nil {
			return nil, err
		}
		if len(row) != len(epochs)+1 {
			return nil, core.Formatf("data line %d has %d fields, want %d", i+1, len(row), len(epochs)+1)
		}
		wave = append(wave, row[0]/(1+meta.Redshift))
		for c := range columns {
			columns[c] = append(columns[c], row[c+1])
		}
	}
	if len(wave) == 0 {
		return nil, core.Formatf("ascii template has no data lines")
	}

	h := Header{
		WvlStart:   wave[0],
		WvlEnd:     wave[len(wave)-1],
		SN:         meta.SN,
		DM15:       meta.DM15,
		TypeStr:    meta.TypeStr,
		TypeInt:    meta.TypeInt,
		SubTypeInt: meta.SubTypeInt,
	}
	opts = append([]Option{WithHeader(h), WithPhaseType(PhaseType(int(phaseType)))}, opts...)
	rec, err := New(wave, opts...)
	if err != nil {
		return nil, err
	}
	for c, epoch := range epochs {
		if _, err := rec.AddPhase(epoch, columns[c]); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
