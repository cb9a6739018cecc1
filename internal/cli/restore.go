package cli

import (
	"bufio"
	"fmt"

	"github.com/cwbudde/algo-snid/record"
	"github.com/spf13/cobra"
)

type restoreFlags struct {
	start int
	end   int
}

// NewRestoreCommand creates the restore command.
func NewRestoreCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &restoreFlags{}

	cmd := &cobra.Command{
		Use:   "restore <input.lnw>",
		Short: "Print continuum-restored flux of a flattened template",
		Long: `Multiply the continuum back into every phase of a flattened template and
print a table of wavelength and restored flux density per phase. Flux
outside the selected knot bracket is zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("start") {
				rootOpts.Config.Restore.StartKnot = flags.start
			}
			if cmd.Flags().Changed("end") {
				rootOpts.Config.Restore.EndKnot = flags.end
			}
			return runRestore(rootOpts, args[0], cmd)
		},
	}
	cmd.Flags().IntVar(&flags.start, "start", 0, "first knot of the restored bracket")
	cmd.Flags().IntVar(&flags.end, "end", -1, "last knot of the restored bracket, negative counts from the end")
	return cmd
}

func runRestore(opts *RootOptions, in string, cmd *cobra.Command) error {
	rec, err := loadRecord(in, nil, record.WithLogger(opts.Logger))
	if err != nil {
		return err
	}
	if _, ok := rec.Continuum(); !ok {
		return NewExitError(ExitCommandError, in+" has no continuum model")
	}

	restored, restoreErr := rec.RestoreContinuum(opts.Config.Restore.StartKnot, opts.Config.Restore.EndKnot)
	if len(restored) > 0 {
		w := bufio.NewWriter(cmd.OutOrStdout())
		fmt.Fprint(w, "# wavelength")
		for _, r := range restored {
			fmt.Fprintf(w, " %s", r.Label)
		}
		fmt.Fprintln(w)
		for i, wl := range rec.Wavelengths() {
			fmt.Fprintf(w, "%.2f", wl)
			for _, r := range restored {
				fmt.Fprintf(w, " %.6e", r.Flux[i])
			}
			fmt.Fprintln(w)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	if restoreErr != nil {
		return WrapExitError(ExitFailure, "continuum restoration failed", restoreErr)
	}
	return nil
}
