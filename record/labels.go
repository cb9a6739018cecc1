package record

import (
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-snid/dsp/core"
)

// maxLabelVersions bounds the version suffixes tried for a colliding label.
const maxLabelVersions = 1000

// PhaseLabel returns the canonical label of a phase epoch, e.g. "Ph5.0" or
// "Ph-12.3".
func PhaseLabel(epoch float64) string {
	return "Ph" + formatPyFloat(epoch)
}

// uniqueLabel returns base if it is free, otherwise base+"v1", base+"v2", ...
func uniqueLabel(base string, taken func(string) bool) (string, error) {
	if !taken(base) {
		return base, nil
	}
	for v := 1; v <= maxLabelVersions; v++ {
		label := base + "v" + strconv.Itoa(v)
		if !taken(label) {
			return label, nil
		}
	}
	return "", core.Dimensionf("phase label %s still collides after %d versions", base, maxLabelVersions)
}

// formatPyFloat renders v the way template files print floats: the
// shortest round-tripping decimal, always with a fractional part, switching
// to exponent notation below 1e-4 and from 1e16 on.
func formatPyFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}

	abs := math.Abs(v)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
