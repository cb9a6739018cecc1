// Package window provides end tapers for flattened spectra.
package window
