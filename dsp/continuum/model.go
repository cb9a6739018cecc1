package continuum

import (
	"math"

	"github.com/cwbudde/algo-snid/dsp/core"
)

// Header summarizes the continuum block of a template: the largest knot
// count and, per phase, its knot count and mean log10 flux.
type Header struct {
	MaxKnots    int
	Counts      []int
	MeanLogFlux []float64
}

// KnotTable holds one row per knot index and one column per phase. Entries
// past a phase's knot count are NaN.
type KnotTable [][]Knot

// Model is the continuum of every phase of a template.
type Model struct {
	Header Header
	Table  KnotTable
}

// NewModel packs per-phase fits into a Model.
func NewModel(fits []Fit) Model {
	m := Model{
		Header: Header{
			Counts:      make([]int, len(fits)),
			MeanLogFlux: make([]float64, len(fits)),
		},
	}
	for p, f := range fits {
		m.Header.Counts[p] = len(f.Knots)
		m.Header.MeanLogFlux[p] = f.MeanLogFlux
		if len(f.Knots) > m.Header.MaxKnots {
			m.Header.MaxKnots = len(f.Knots)
		}
	}

	m.Table = make(KnotTable, m.Header.MaxKnots)
	for r := range m.Table {
		row := make([]Knot, len(fits))
		for p, f := range fits {
			if r < len(f.Knots) {
				row[p] = f.Knots[r]
			} else {
				row[p] = Knot{X: math.NaN(), Y: math.NaN()}
			}
		}
		m.Table[r] = row
	}
	return m
}

// NumPhases returns the number of phase columns.
func (m Model) NumPhases() int {
	return len(m.Header.Counts)
}

// Phase returns the fit of phase column i.
func (m Model) Phase(i int) (Fit, error) {
	if i < 0 || i >= m.NumPhases() {
		return Fit{}, core.Rangef("phase column %d outside [0,%d)", i, m.NumPhases())
	}
	count := m.Header.Counts[i]
	knots := make([]Knot, count)
	for r := 0; r < count; r++ {
		knots[r] = m.Table[r][i]
	}
	return Fit{Knots: knots, MeanLogFlux: m.Header.MeanLogFlux[i]}, nil
}

// Without returns a copy of the model with phase column i dropped. The knot
// table shrinks when the dropped phase was the only one at the maximum count.
func (m Model) Without(i int) (Model, error) {
	if i < 0 || i >= m.NumPhases() {
		return Model{}, core.Rangef("phase column %d outside [0,%d)", i, m.NumPhases())
	}
	fits := make([]Fit, 0, m.NumPhases()-1)
	for p := 0; p < m.NumPhases(); p++ {
		if p == i {
			continue
		}
		f, _ := m.Phase(p)
		fits = append(fits, f)
	}
	return NewModel(fits), nil
}

// HeaderRow encodes the header as [max, n1, m1, n2, m2, ...].
func (m Model) HeaderRow() []float64 {
	row := make([]float64, 1, 1+2*m.NumPhases())
	row[0] = float64(m.Header.MaxKnots)
	for p, c := range m.Header.Counts {
		row = append(row, float64(c), m.Header.MeanLogFlux[p])
	}
	return row
}

// KnotRows encodes the table as rows of [row, x1, y1, x2, y2, ...] with
// 1-based row numbers.
func (m Model) KnotRows() [][]float64 {
	rows := make([][]float64, len(m.Table))
	for r, knots := range m.Table {
		row := make([]float64, 1, 1+2*len(knots))
		row[0] = float64(r + 1)
		for _, k := range knots {
			row = append(row, k.X, k.Y)
		}
		rows[r] = row
	}
	return rows
}

// Decode parses the numeric header and knot rows written by HeaderRow and
// KnotRows.
func Decode(header []float64, rows [][]float64) (Model, error) {
	if len(header) == 0 || len(header)%2 == 0 {
		return Model{}, core.Formatf("continuum header must have 1+2*phases fields: %d", len(header))
	}
	maxKnots, ok := asCount(header[0])
	if !ok {
		return Model{}, core.Formatf("continuum max knot count must be a non-negative integer: %g", header[0])
	}

	nphase := (len(header) - 1) / 2
	m := Model{
		Header: Header{
			MaxKnots:    maxKnots,
			Counts:      make([]int, nphase),
			MeanLogFlux: make([]float64, nphase),
		},
		Table: make(KnotTable, len(rows)),
	}
	for p := 0; p < nphase; p++ {
		count, ok := asCount(header[1+2*p])
		if !ok {
			return Model{}, core.Formatf("knot count of phase %d must be a non-negative integer: %g", p+1, header[1+2*p])
		}
		if count > len(rows) {
			return Model{}, core.Formatf("phase %d lists %d knots but the table has %d rows", p+1, count, len(rows))
		}
		m.Header.Counts[p] = count
		m.Header.MeanLogFlux[p] = header[2+2*p]
	}

	for r, row := range rows {
		if len(row) != len(header) {
			return Model{}, core.Formatf("knot row %d has %d fields, want %d", r+1, len(row), len(header))
		}
		knots := make([]Knot, nphase)
		for p := range knots {
			knots[p] = Knot{X: row[1+2*p], Y: row[2+2*p]}
		}
		m.Table[r] = knots
	}
	return m, nil
}

func asCount(v float64) (int, bool) {
	if v < 0 || v != math.Trunc(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return int(v), true
}
