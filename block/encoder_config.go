package block

import (
	"fmt"

	"github.com/arloliu/qint4/compress"
	"github.com/arloliu/qint4/errs"
	"github.com/arloliu/qint4/format"
	"github.com/arloliu/qint4/internal/options"
	"github.com/arloliu/qint4/section"
)

// EncoderConfig holds the block settings shared by Encoder and SetEncoder.
type EncoderConfig struct {
	flag  section.BlockFlag
	codec compress.Codec
}

// NewEncoderConfig creates a little-endian, minmax, uncompressed configuration.
func NewEncoderConfig() *EncoderConfig {
	return &EncoderConfig{
		flag:  section.NewBlockFlag(),
		codec: compress.NewNoOpCompressor(),
	}
}

func (c *EncoderConfig) setScaleMethod(m format.ScaleMethod) error {
	if !m.IsValid() {
		return fmt.Errorf("%w: unknown scale method %d", errs.ErrInvalidArgument, uint8(m))
	}
	c.flag.SetMethod(m)

	return nil
}

func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	codec, err := compress.CreateCodec(comp, "payload")
	if err != nil {
		return err
	}
	c.flag.SetCompression(comp)
	c.codec = codec

	return nil
}

// ScaleMethod returns the configured scale method.
func (c *EncoderConfig) ScaleMethod() format.ScaleMethod {
	return c.flag.Method()
}

// Compression returns the configured payload compression.
func (c *EncoderConfig) Compression() format.CompressionType {
	return c.flag.Compression()
}

// IsLittleEndian returns whether headers are written little-endian.
func (c *EncoderConfig) IsLittleEndian() bool {
	return c.flag.IsLittleEndian()
}

// EncoderOption represents a functional option for configuring an EncoderConfig.
type EncoderOption = options.Option[*EncoderConfig]

// WithScaleMethod sets the scale method. The default is format.ScaleMinMax.
func WithScaleMethod(m format.ScaleMethod) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setScaleMethod(m)
	})
}

// WithScaleMethodName sets the scale method by name, "minmax" or "absmax".
func WithScaleMethodName(name string) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		m, err := format.ParseScaleMethod(name)
		if err != nil {
			return err
		}

		return c.setScaleMethod(m)
	})
}

// WithCompression sets the payload compression. The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian writes headers little-endian. It is the default option.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.flag.WithLittleEndian()
	})
}

// WithBigEndian writes headers big-endian.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.flag.WithBigEndian()
	})
}
