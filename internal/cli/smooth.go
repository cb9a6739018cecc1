package cli

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-snid/record"
	"github.com/spf13/cobra"
)

type smoothFlags struct {
	phases   []string
	velocity float64
}

// NewSmoothCommand creates the smooth command.
func NewSmoothCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &smoothFlags{}
	ascii := &asciiFlags{}

	cmd := &cobra.Command{
		Use:   "smooth <input> <output.lnw>",
		Short: "Fourier-smooth phases and report separation velocities",
		Long: `Remove noise narrower than the velocity cut from the selected phases (all
phases by default), print the separation velocity of each, and write the
smoothed template.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("velocity") {
				rootOpts.Config.Smooth.VelocityCut = flags.velocity
			}
			return runSmooth(rootOpts, flags, ascii, args[0], args[1], cmd)
		},
	}
	cmd.Flags().StringSliceVarP(&flags.phases, "phase", "p", nil, "phase labels to smooth (default: all)")
	cmd.Flags().Float64Var(&flags.velocity, "velocity", 1000, "minimum feature width in km/s")
	ascii.register(cmd)
	return cmd
}

func runSmooth(opts *RootOptions, flags *smoothFlags, ascii *asciiFlags, in, out string, cmd *cobra.Command) error {
	if opts.Config.Smooth.VelocityCut <= 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("velocity cut must be > 0: %g", opts.Config.Smooth.VelocityCut))
	}

	rec, err := loadRecord(in, ascii, record.WithLogger(opts.Logger))
	if err != nil {
		return err
	}

	labels := flags.phases
	if len(labels) == 0 {
		labels = rec.Phases()
	}

	var errs []error
	for _, label := range labels {
		res, err := rec.SmoothSpectrum(label, opts.Config.Smooth.VelocityCut, opts.Config.SmoothOptions()...)
		if err != nil {
			if errors.Is(err, record.ErrUnknownPhase) {
				return WrapExitError(ExitCommandError, "cannot smooth", err)
			}
			errs = append(errs, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s separation velocity %.1f km/s\n", label, res.SeparationVelocity)
	}
	if len(errs) > 0 {
		return WrapExitError(ExitFailure, "smoothing failed", errors.Join(errs...))
	}
	return writeRecord(rec, out)
}
