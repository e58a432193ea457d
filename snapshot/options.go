package snapshot

import (
	"github.com/arloliu/vecstat/compress"
	"github.com/arloliu/vecstat/endian"
	"github.com/arloliu/vecstat/internal/options"
)

type encoderConfig struct {
	engine      endian.EndianEngine
	bigEndian   bool
	compression compress.CompressionType
}

// Option configures the snapshot encoder.
type Option = options.Option[*encoderConfig]

func newEncoderConfig(opts ...Option) (*encoderConfig, error) {
	cfg := &encoderConfig{
		engine:      endian.GetLittleEndianEngine(),
		compression: compress.CompressionNone,
	}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithCompression selects the compression codec applied to the payload.
// The default is CompressionNone.
func WithCompression(compression compress.CompressionType) Option {
	return options.New(func(cfg *encoderConfig) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		cfg.compression = compression

		return nil
	})
}

// WithLittleEndian encodes the snapshot in little-endian byte order.
// This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.engine = endian.GetLittleEndianEngine()
		cfg.bigEndian = false
	})
}

// WithBigEndian encodes the snapshot in big-endian byte order.
func WithBigEndian() Option {
	return options.NoError(func(cfg *encoderConfig) {
		cfg.engine = endian.GetBigEndianEngine()
		cfg.bigEndian = true
	})
}
