// Package cli implements the snidtool command tree.
package cli

import (
	"fmt"

	"github.com/cwbudde/algo-snid/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RootOptions holds global flags and the state built from them before a
// subcommand runs.
type RootOptions struct {
	Verbose    bool
	ConfigPath string

	// Logger is used as is when set; otherwise a production logger is built.
	Logger *zap.Logger
	Config config.Config
}

// NewRootCommand creates the root command of snidtool.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	injected := opts.Logger != nil

	cmd := &cobra.Command{
		Use:   "snidtool",
		Short: "Process SNID supernova spectral templates",
		Long: `snidtool reads SNID .lnw templates or plain ASCII spectra and applies the
template preparation steps: continuum removal and restoration, Fourier
smoothing, and missing-data gap inspection and interpolation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Config = config.Default()
			if opts.ConfigPath != "" {
				cfg, err := config.Load(opts.ConfigPath)
				if err != nil {
					return WrapExitError(ExitCommandError, "invalid configuration", err)
				}
				opts.Config = cfg
			}

			if injected {
				return nil
			}
			zcfg := zap.NewProductionConfig()
			if opts.Verbose {
				zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := zcfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.Logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log per-phase outcomes at debug level")
	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")

	cmd.AddCommand(NewFlattenCommand(opts))
	cmd.AddCommand(NewRestoreCommand(opts))
	cmd.AddCommand(NewSmoothCommand(opts))
	cmd.AddCommand(NewGapsCommand(opts))

	return cmd
}
