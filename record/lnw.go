package record

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-snid/dsp/continuum"
	"github.com/cwbudde/algo-snid/dsp/core"
)

const headerFields = 10

// LoadLNW parses a SNID .lnw template.
//
// The first line holds the header, the last Nbins lines the wavelength and
// flux table, and the line before the table the phase type and epochs. Any
// lines between the header and the phase line form the continuum block.
func LoadLNW(r io.Reader, opts ...Option) (*Record, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < 3 {
		return nil, core.Formatf("lnw needs a header, a phase line and data, got %d lines", len(lines))
	}

	h, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	phaseIdx := len(lines) - h.Nbins - 1
	if h.Nbins < 1 || phaseIdx < 1 {
		return nil, core.Formatf("header lists %d bins but the file has %d lines", h.Nbins, len(lines))
	}

	phaseFields := strings.Fields(lines[phaseIdx])
	if len(phaseFields) < 2 {
		return nil, core.Formatf("phase line %d must list a phase type and epochs", phaseIdx+1)
	}
	phaseType, err := strconv.Atoi(phaseFields[0])
	if err != nil {
		return nil, core.Formatf("phase type on line %d: %v", phaseIdx+1, err)
	}
	epochs, err := parseFloats(phaseFields[1:], phaseIdx)
	if err != nil {
		return nil, err
	}
	if len(epochs) != h.Nspec {
		return nil, core.Formatf("header lists %d spectra but the phase line has %d epochs", h.Nspec, len(epochs))
	}

	var model *continuum.Model
	if phaseIdx > 1 {
		rows := make([][]float64, 0, phaseIdx-1)
		for i := 1; i < phaseIdx; i++ {
			row, err := parseFloats(strings.Fields(lines[i]), i)
			if err != nil {
				return nil, err
			}
			rows = append(rows, row)
		}
		m, err := continuum.Decode(rows[0], rows[1:])
		if err != nil {
			return nil, err
		}
		if m.NumPhases() != len(epochs) {
			return nil, core.Formatf("continuum block covers %d phases, file has %d", m.NumPhases(), len(epochs))
		}
		model = &m
	}

	wave := make([]float64, h.Nbins)
	columns := make([][]float64, len(epochs))
	for c := range columns {
		columns[c] = make([]float64, h.Nbins)
	}
	for i := 0; i < h.Nbins; i++ {
		lineNo := phaseIdx + 1 + i
		row, err := parseFloats(strings.Fields(lines[lineNo]), lineNo)
		if err != nil {
			return nil, err
		}
		if len(row) != len(epochs)+1 {
			return nil, core.Formatf("data line %d has %d fields, want %d", lineNo+1, len(row), len(epochs)+1)
		}
		wave[i] = row[0]
		for c := range columns {
			columns[c][i] = row[c+1]
		}
	}

	opts = append([]Option{WithHeader(h), WithPhaseType(PhaseType(phaseType))}, opts...)
	rec, err := New(wave, opts...)
	if err != nil {
		return nil, err
	}
	for c, epoch := range epochs {
		if _, err := rec.AddPhase(epoch, columns[c]); err != nil {
			return nil, err
		}
	}
	rec.continuum = model
	return rec, nil
}

// LoadLNWFile opens and parses a .lnw template.
func LoadLNWFile(path string, opts ...Option) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rec, err := LoadLNW(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

func parseHeader(line string) (Header, error) {
	f := strings.Fields(line)
	if len(f) != headerFields {
		return Header{}, core.Formatf("header must have %d fields: %d", headerFields, len(f))
	}

	var h Header
	var errs [8]error
	h.Nspec, errs[0] = strconv.Atoi(f[0])
	h.Nbins, errs[1] = strconv.Atoi(f[1])
	h.WvlStart, errs[2] = strconv.ParseFloat(f[2], 64)
	h.WvlEnd, errs[3] = strconv.ParseFloat(f[3], 64)
	h.SplineKnots, errs[4] = strconv.Atoi(f[4])
	h.SN = f[5]
	h.DM15, errs[5] = strconv.ParseFloat(f[6], 64)
	h.TypeStr = f[7]
	h.TypeInt, errs[6] = strconv.Atoi(f[8])
	h.SubTypeInt, errs[7] = strconv.Atoi(f[9])
	for _, err := range errs {
		if err != nil {
			return Header{}, core.Formatf("header: %v", err)
		}
	}
	return h, nil
}

func parseFloats(fields []string, lineIdx int) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, core.Formatf("line %d field %d: %v", lineIdx+1, i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// WriteLNW writes the record in the fixed-column .lnw layout. Missing
// samples (NaN) are written as 0.000.
func (r *Record) WriteLNW(w io.Writer) error {
	r.syncHeader()
	h := r.Header
	for _, tok := range []struct{ name, value string }{{"SN", h.SN}, {"TypeStr", h.TypeStr}} {
		if tok.value == "" || strings.ContainsAny(tok.value, " \t\n") {
			return core.Formatf("header %s must be a single non-empty token: %q", tok.name, tok.value)
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "   %d %d   %.2f  %.2f     %d     %s      %s  %s     %d  %d\n",
		h.Nspec, h.Nbins, h.WvlStart, h.WvlEnd, h.SplineKnots,
		h.SN, formatPyFloat(h.DM15), h.TypeStr, h.TypeInt, h.SubTypeInt)

	if r.continuum != nil {
		writeContinuum(bw, *r.continuum)
	}

	fmt.Fprintf(bw, "%8d", int(r.PhaseType))
	for _, p := range r.phases {
		if p.epoch < 100 {
			fmt.Fprintf(bw, "   %.3f", p.epoch)
		} else {
			fmt.Fprintf(bw, "  %.3f", p.epoch)
		}
	}
	bw.WriteByte('\n')

	for i, wl := range r.wave {
		fmt.Fprintf(bw, " %.2f", wl)
		for _, p := range r.phases {
			v := p.flux[i]
			if math.IsNaN(v) {
				v = 0
			}
			if v >= 0 {
				fmt.Fprintf(bw, "    %.3f", v)
			} else {
				fmt.Fprintf(bw, "   %.3f", v)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func writeContinuum(bw *bufio.Writer, m continuum.Model) {
	header := m.HeaderRow()
	fmt.Fprintf(bw, "     %d", int(header[0]))
	for p := 0; p < m.NumPhases(); p++ {
		count, mean := m.Header.Counts[p], m.Header.MeanLogFlux[p]
		if count >= 10 {
			fmt.Fprintf(bw, " %d", count)
		} else {
			fmt.Fprintf(bw, "  %d", count)
		}
		fmt.Fprintf(bw, "       %.5f", mean)
	}
	bw.WriteByte('\n')

	for _, row := range m.KnotRows() {
		fmt.Fprintf(bw, "      %d", int(row[0]))
		for j := 1; j < len(row); j++ {
			s := formatKnot(row[j])
			if j%2 == 0 && isPositive(s) {
				bw.WriteString("   " + s)
			} else {
				bw.WriteString("  " + s)
			}
		}
		bw.WriteByte('\n')
	}
}

func formatKnot(v float64) string {
	if math.IsNaN(v) {
		return "nan"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// isPositive reports whether a rendered value is positive after rounding.
func isPositive(s string) bool {
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v > 0
}

// WriteLNWFile writes the record to a new file at path. An existing file is
// never overwritten.
func (r *Record) WriteLNWFile(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if err := r.WriteLNW(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
