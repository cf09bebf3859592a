package report

import (
	"fmt"

	"github.com/arloliu/pvfit/compress"
	"github.com/arloliu/pvfit/internal/options"
)

type encoderConfig struct {
	compression compress.Type
	bigEndian   bool
}

// Option configures envelope encoding.
type Option = options.Option[*encoderConfig]

// WithCompression sets the payload compression. The default is compress.TypeNone.
func WithCompression(t compress.Type) Option {
	return options.New(func(c *encoderConfig) error {
		if !t.Valid() {
			return fmt.Errorf("report: invalid compression %s", t)
		}
		c.compression = t

		return nil
	})
}

// WithBigEndian writes the payload in big-endian byte order.
func WithBigEndian() Option {
	return options.NoError(func(c *encoderConfig) {
		c.bigEndian = true
	})
}

func newEncoderConfig(opts ...Option) (*encoderConfig, error) {
	cfg := &encoderConfig{compression: compress.TypeNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
