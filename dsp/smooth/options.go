package smooth

// Config holds smoothing settings.
type Config struct {
	// Uncertainty enables the rolling residual standard deviation.
	Uncertainty bool
	// UncertaintyWidth is the rolling window width in Ångström.
	UncertaintyWidth float64
	// MaxFitIterations bounds the nonlinear power-law refinement.
	MaxFitIterations int
	// NoiseVelocity is the velocity in km/s above which Fourier bins are
	// considered too broad to be supernova features.
	NoiseVelocity float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the standard smoothing settings.
func DefaultConfig() Config {
	return Config{
		Uncertainty:      false,
		UncertaintyWidth: 100,
		MaxFitIterations: 2000,
		NoiseVelocity:    100000,
	}
}

// WithUncertainty toggles computation of the uncertainty array.
func WithUncertainty(enabled bool) Option {
	return func(cfg *Config) {
		cfg.Uncertainty = enabled
	}
}

// WithUncertaintyWidth sets the rolling window width in Ångström.
func WithUncertaintyWidth(width float64) Option {
	return func(cfg *Config) {
		if width > 0 {
			cfg.UncertaintyWidth = width
		}
	}
}

// WithMaxFitIterations sets the iteration limit of the power-law fit.
func WithMaxFitIterations(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxFitIterations = n
		}
	}
}

// WithNoiseVelocity sets the upper velocity bound of the signal band.
func WithNoiseVelocity(v float64) Option {
	return func(cfg *Config) {
		if v > 0 {
			cfg.NoiseVelocity = v
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
