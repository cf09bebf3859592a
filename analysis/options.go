package analysis

import (
	"errors"
	"log/slog"

	"github.com/arloliu/pvfit/internal/options"
)

// Config holds the settings of an analysis run.
type Config struct {
	logger   *slog.Logger
	parallel bool
}

// Option configures an analysis run.
type Option = options.Option[*Config]

// WithLogger sets the logger that receives a debug-level trace of every comparison.
// By default nothing is logged.
func WithLogger(logger *slog.Logger) Option {
	return options.New(func(c *Config) error {
		if logger == nil {
			return errors.New("analysis: nil logger")
		}
		c.logger = logger

		return nil
	})
}

// WithParallel enables concurrent evaluation of model kinds, strategies and clusters.
func WithParallel(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.parallel = enabled
	})
}

func newConfig(opts ...Option) (*Config, error) {
	cfg := &Config{logger: slog.New(slog.DiscardHandler)}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
