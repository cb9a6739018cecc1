// Package config loads the snidtool YAML configuration and maps it to the
// processing options of the smoothing and continuum packages.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/algo-snid/dsp/continuum"
	"github.com/cwbudde/algo-snid/dsp/smooth"
	"gopkg.in/yaml.v3"
)

// Config is the root of the configuration file.
type Config struct {
	Smooth    SmoothConfig    `yaml:"smooth"`
	Continuum ContinuumConfig `yaml:"continuum"`
	Restore   RestoreConfig   `yaml:"restore"`
}

// SmoothConfig configures Fourier smoothing.
type SmoothConfig struct {
	// VelocityCut is the minimum feature width in km/s.
	VelocityCut      float64 `yaml:"velocity_cut"`
	UncertaintyWidth float64 `yaml:"uncertainty_width"`
	MaxFitIterations int     `yaml:"max_fit_iterations"`
	NoiseVelocity    float64 `yaml:"noise_velocity"`
}

// ContinuumConfig configures continuum removal.
type ContinuumConfig struct {
	KnotOffset     int     `yaml:"knot_offset"`
	ApodizePercent float64 `yaml:"apodize_percent"`
}

// RestoreConfig selects the knot bracket used for restoration.
type RestoreConfig struct {
	StartKnot int `yaml:"start_knot"`
	EndKnot   int `yaml:"end_knot"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	sm := smooth.DefaultConfig()
	cn := continuum.DefaultConfig()
	return Config{
		Smooth: SmoothConfig{
			VelocityCut:      1000,
			UncertaintyWidth: sm.UncertaintyWidth,
			MaxFitIterations: sm.MaxFitIterations,
			NoiseVelocity:    sm.NoiseVelocity,
		},
		Continuum: ContinuumConfig{
			KnotOffset:     cn.KnotOffset,
			ApodizePercent: cn.ApodizePercent,
		},
		Restore: RestoreConfig{
			StartKnot: 0,
			EndKnot:   -1,
		},
	}
}

// Load reads and validates the file at path. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML data over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Smooth.VelocityCut <= 0 {
		errs = append(errs, fmt.Errorf("smooth.velocity_cut must be > 0: %g", c.Smooth.VelocityCut))
	}
	if c.Smooth.UncertaintyWidth <= 0 {
		errs = append(errs, fmt.Errorf("smooth.uncertainty_width must be > 0: %g", c.Smooth.UncertaintyWidth))
	}
	if c.Smooth.MaxFitIterations <= 0 {
		errs = append(errs, fmt.Errorf("smooth.max_fit_iterations must be > 0: %d", c.Smooth.MaxFitIterations))
	}
	if c.Smooth.NoiseVelocity <= c.Smooth.VelocityCut {
		errs = append(errs, fmt.Errorf("smooth.noise_velocity must exceed velocity_cut: %g", c.Smooth.NoiseVelocity))
	}
	if c.Continuum.ApodizePercent < 0 || c.Continuum.ApodizePercent > 50 {
		errs = append(errs, fmt.Errorf("continuum.apodize_percent must be in [0, 50]: %g", c.Continuum.ApodizePercent))
	}
	return errors.Join(errs...)
}

// SmoothOptions returns the smoothing options of c.
func (c Config) SmoothOptions() []smooth.Option {
	return []smooth.Option{
		smooth.WithUncertaintyWidth(c.Smooth.UncertaintyWidth),
		smooth.WithMaxFitIterations(c.Smooth.MaxFitIterations),
		smooth.WithNoiseVelocity(c.Smooth.NoiseVelocity),
	}
}

// ContinuumOptions returns the continuum removal options of c.
func (c Config) ContinuumOptions() []continuum.Option {
	return []continuum.Option{
		continuum.WithKnotOffset(c.Continuum.KnotOffset),
		continuum.WithApodize(c.Continuum.ApodizePercent),
	}
}
