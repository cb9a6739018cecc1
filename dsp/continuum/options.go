package continuum

// Config holds continuum removal settings.
type Config struct {
	// KnotOffset shifts knot bin boundaries; values <= 0 leave them aligned
	// with pixel 0.
	KnotOffset int
	// ApodizePercent tapers the ends of the flattened spectrum over this
	// percentage of the axis length. Zero disables the taper.
	ApodizePercent float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the settings used for template preparation.
func DefaultConfig() Config {
	return Config{
		KnotOffset:     -1,
		ApodizePercent: 0,
	}
}

// WithKnotOffset sets the knot bin offset.
func WithKnotOffset(offset int) Option {
	return func(cfg *Config) {
		cfg.KnotOffset = offset
	}
}

// WithApodize enables an end taper over percent of the axis length.
func WithApodize(percent float64) Option {
	return func(cfg *Config) {
		if percent >= 0 {
			cfg.ApodizePercent = percent
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
