package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-snid/record"
	"github.com/spf13/cobra"
)

// asciiFlags holds the metadata an ASCII input cannot carry itself.
type asciiFlags struct {
	meta record.ASCIIMeta
}

func (a *asciiFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&a.meta.SN, "sn", "", "supernova name for ASCII input (default: file name)")
	f.StringVar(&a.meta.TypeStr, "type", "Unknown", "type string for ASCII input")
	f.IntVar(&a.meta.TypeInt, "type-int", 0, "SNID type code for ASCII input")
	f.IntVar(&a.meta.SubTypeInt, "subtype-int", 0, "SNID subtype code for ASCII input")
	f.Float64Var(&a.meta.DM15, "dm15", -9.99, "decline rate for ASCII input")
	f.Float64Var(&a.meta.Redshift, "redshift", 0, "redshift of ASCII input wavelengths")
}

// loadRecord reads an .lnw template, or an ASCII table for any other
// extension.
func loadRecord(path string, ascii *asciiFlags, opts ...record.Option) (*record.Record, error) {
	if strings.EqualFold(filepath.Ext(path), ".lnw") {
		rec, err := record.LoadLNWFile(path, opts...)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "cannot load "+path, err)
		}
		return rec, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "cannot load "+path, err)
	}
	defer f.Close()

	meta := record.ASCIIMeta{}
	if ascii != nil {
		meta = ascii.meta
	}
	if meta.SN == "" {
		meta.SN = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	rec, err := record.LoadASCII(f, meta, opts...)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "cannot load "+path, err)
	}
	return rec, nil
}

func writeRecord(rec *record.Record, path string) error {
	if err := rec.WriteLNWFile(path); err != nil {
		return WrapExitError(ExitCommandError, "cannot write "+path, err)
	}
	return nil
}
