// Package record holds a multi-phase supernova template: header metadata,
// one wavelength axis shared by an insertion-ordered set of flux columns,
// and the continuum model produced by continuum removal.
//
// Records are read from and written to the SNID .lnw text layout
// ([LoadLNW], [Record.WriteLNW]) or built from plain ASCII tables
// ([LoadASCII]). A Record is not safe for concurrent mutation.
package record
