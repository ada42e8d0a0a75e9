package twirc

import "github.com/BurntSushi/toml"

// Config holds the tunables this package exposes to embedding
// applications. The zero value turns the typed layer off, disables
// malformed-line logging, and leaves the scan kernels on their normal
// dispatch; DefaultConfig returns the recommended settings.
type Config struct {
	// TypedLayerEnabled gates whether BatchDecoder.Next projects typed
	// messages or stops at the generic View. Disabling it skips the
	// per-message typed-projection allocation entirely, useful for
	// workloads that only need raw tag/param access.
	TypedLayerEnabled bool `toml:"typed_layer_enabled"`

	// LogSampleRate is the fraction (0.0-1.0) of malformed lines that get
	// logged by BatchDecoder. 0 disables malformed-line logging; 1 logs
	// every one.
	LogSampleRate float64 `toml:"log_sample_rate"`

	// PreferScalar forces the scalar scan kernels even on hardware that
	// reports AVX2/SSE4.2/NEON support, useful for isolating a bug to the
	// SIMD dispatch path during development.
	PreferScalar bool `toml:"prefer_scalar"`
}

// DefaultConfig returns the package's recommended defaults.
func DefaultConfig() Config {
	return Config{
		TypedLayerEnabled: true,
		LogSampleRate:     0.01,
		PreferScalar:      false,
	}
}

// LoadConfig reads a Config from a TOML file at path, starting from
// DefaultConfig so an empty or partial file still yields sane values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	_, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}
