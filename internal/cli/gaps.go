package cli

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-snid/dsp/gap"
	"github.com/cwbudde/algo-snid/record"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type gapsFlags struct {
	minW    float64
	maxW    float64
	maxSize float64
	output  string
}

// NewGapsCommand creates the gaps command.
func NewGapsCommand(rootOpts *RootOptions) *cobra.Command {
	flags := &gapsFlags{}
	ascii := &asciiFlags{}

	cmd := &cobra.Command{
		Use:   "gaps <input>",
		Short: "List missing-data gaps and optionally interpolate them",
		Long: `Treat zero flux as missing and list the gaps of every phase.

With --min and --max, also report whether a gap of at least --max-size Å
reaches into the window and the finite bracket around it. With --output,
the gaps inside that bracket are linearly interpolated and the result is
written as a new template.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			window := cmd.Flags().Changed("min") || cmd.Flags().Changed("max")
			if flags.output != "" && !window {
				return NewExitError(ExitCommandError, "--output needs --min and --max")
			}
			if window && flags.minW >= flags.maxW {
				return NewExitError(ExitCommandError, fmt.Sprintf("--min must be below --max: %g >= %g", flags.minW, flags.maxW))
			}
			return runGaps(rootOpts, flags, ascii, window, args[0], cmd)
		},
	}
	cmd.Flags().Float64Var(&flags.minW, "min", 0, "window start in Å")
	cmd.Flags().Float64Var(&flags.maxW, "max", 0, "window end in Å")
	cmd.Flags().Float64Var(&flags.maxSize, "max-size", 100, "gap size in Å that counts as large")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write the interpolated template to this .lnw path")
	ascii.register(cmd)
	return cmd
}

func runGaps(opts *RootOptions, flags *gapsFlags, ascii *asciiFlags, window bool, in string, cmd *cobra.Command) error {
	rec, err := loadRecord(in, ascii, record.WithLogger(opts.Logger))
	if err != nil {
		return err
	}
	rec.MarkMissing()

	out := cmd.OutOrStdout()
	for _, label := range rec.Phases() {
		gaps, err := rec.FindGaps(label)
		if err != nil {
			return WrapExitError(ExitFailure, "gap search failed", err)
		}
		printGaps(out, label, gaps)

		if !window {
			continue
		}
		large := gap.LargeInRange(gaps, flags.minW, flags.maxW, flags.maxSize)
		lo, hi, err := rec.InterpRange(label, flags.minW, flags.maxW)
		if err != nil {
			return WrapExitError(ExitFailure, label, err)
		}
		fmt.Fprintf(out, "%s window %.2f-%.2f large=%t bracket %.2f-%.2f\n", label, flags.minW, flags.maxW, large, lo, hi)

		if flags.output == "" {
			continue
		}
		if err := rec.InterpolateGap(label, lo, hi); err != nil {
			return WrapExitError(ExitFailure, label, err)
		}
		opts.Logger.Debug("Gaps interpolated",
			zap.String("phase", label),
			zap.Float64("from", lo),
			zap.Float64("to", hi),
		)
	}

	if flags.output == "" {
		return nil
	}
	rec.FillMissing()
	return writeRecord(rec, flags.output)
}

func printGaps(w io.Writer, label string, gaps []gap.Gap) {
	if len(gaps) == 0 {
		fmt.Fprintf(w, "%s no gaps\n", label)
		return
	}
	for _, g := range gaps {
		fmt.Fprintf(w, "%s gap %.2f-%.2f (%.2f Å)\n", label, g.Start, g.End, g.Size())
	}
}
