package cli

import (
	"fmt"

	"github.com/cwbudde/algo-snid/record"
	"github.com/spf13/cobra"
)

// NewFlattenCommand creates the flatten command.
func NewFlattenCommand(rootOpts *RootOptions) *cobra.Command {
	ascii := &asciiFlags{}

	cmd := &cobra.Command{
		Use:   "flatten <input> <output.lnw>",
		Short: "Remove the continuum of every phase",
		Long: `Fit a spline continuum to every phase, divide it out, and write the
flattened template on the canonical 1024-bin log axis together with its
continuum knots. Either every phase is flattened or nothing is written.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFlatten(rootOpts, ascii, args[0], args[1], cmd)
		},
	}
	ascii.register(cmd)
	return cmd
}

func runFlatten(opts *RootOptions, ascii *asciiFlags, in, out string, cmd *cobra.Command) error {
	rec, err := loadRecord(in, ascii, record.WithLogger(opts.Logger))
	if err != nil {
		return err
	}
	if _, ok := rec.Continuum(); ok {
		return NewExitError(ExitCommandError, in+" is already flattened")
	}

	if err := rec.RemoveContinuum(opts.Config.ContinuumOptions()...); err != nil {
		return WrapExitError(ExitFailure, "continuum removal failed", err)
	}
	if err := writeRecord(rec, out); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "flattened %d phase(s) of %s into %s\n", len(rec.Phases()), rec.Header.SN, out)
	return nil
}
