package core

import (
	"errors"
	"fmt"
)

// Error kinds shared by every package of the module.
// Use errors.Is to check: errors.Is(err, core.ErrFit)
var (
	// ErrFormat reports a malformed header, continuum block or data row.
	ErrFormat = errors.New("snid: format error")
	// ErrDimension reports mismatched lengths or an unresolvable label collision.
	ErrDimension = errors.New("snid: dimension error")
	// ErrRange reports a wavelength window or knot index range that cannot be served.
	ErrRange = errors.New("snid: range error")
	// ErrFit reports a power-law or spline fit that failed or was ill-posed.
	ErrFit = errors.New("snid: fit error")
	// ErrState reports an operation requested before its prerequisites ran.
	ErrState = errors.New("snid: state error")
)

// Formatf returns an error wrapping [ErrFormat].
func Formatf(format string, args ...any) error {
	return wrapf(ErrFormat, format, args...)
}

// Dimensionf returns an error wrapping [ErrDimension].
func Dimensionf(format string, args ...any) error {
	return wrapf(ErrDimension, format, args...)
}

// Rangef returns an error wrapping [ErrRange].
func Rangef(format string, args ...any) error {
	return wrapf(ErrRange, format, args...)
}

// Fitf returns an error wrapping [ErrFit].
func Fitf(format string, args ...any) error {
	return wrapf(ErrFit, format, args...)
}

// Statef returns an error wrapping [ErrState].
func Statef(format string, args ...any) error {
	return wrapf(ErrState, format, args...)
}

func wrapf(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}

// CheckSameLength returns a dimension error when the wavelength and flux
// slices differ in length.
func CheckSameLength(wave, flux []float64) error {
	if len(wave) != len(flux) {
		return Dimensionf("wavelength/flux length mismatch: %d != %d", len(wave), len(flux))
	}
	return nil
}

// CheckIncreasing returns a dimension error unless x is strictly increasing.
func CheckIncreasing(x []float64) error {
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			return Dimensionf("wavelengths must be strictly increasing at index %d", i)
		}
	}
	return nil
}
