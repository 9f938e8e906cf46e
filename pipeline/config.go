package pipeline

import (
	"fmt"

	"github.com/arloliu/vectorize/encoding"
	"github.com/arloliu/vectorize/internal/options"
)

// Config controls the order of the token table before encoding.
type Config struct {
	// Frequency sorts entries by descending occurrence count before encoding.
	Frequency bool
	// Reversed reverses the final entry order before encoding.
	// It is applied after Frequency.
	Reversed bool
	// Lookup selects how the encoder finds each value's entry.
	Lookup encoding.LookupStrategy
}

// DefaultConfig returns first-seen order with hash-indexed lookups.
func DefaultConfig() Config {
	return Config{
		Lookup: encoding.LookupIndex,
	}
}

// Option configures a pipeline.
type Option = options.Option[*Config]

// WithFrequency enables or disables frequency ordering.
func WithFrequency(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.Frequency = enabled
	})
}

// WithReversed enables or disables reversed ordering.
func WithReversed(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.Reversed = enabled
	})
}

// WithLookup selects the lookup strategy used by the encoder.
func WithLookup(strategy encoding.LookupStrategy) Option {
	return options.New(func(c *Config) error {
		if !strategy.IsValid() {
			return fmt.Errorf("invalid lookup strategy: %v", strategy)
		}
		c.Lookup = strategy

		return nil
	})
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return options.New(func(c *Config) error {
		if !cfg.Lookup.IsValid() {
			return fmt.Errorf("invalid lookup strategy: %v", cfg.Lookup)
		}
		*c = cfg

		return nil
	})
}
