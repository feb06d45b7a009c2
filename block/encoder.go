package block

import (
	"fmt"
	"math"

	"github.com/arloliu/qint4/errs"
	"github.com/arloliu/qint4/format"
	"github.com/arloliu/qint4/internal/hash"
	"github.com/arloliu/qint4/internal/options"
	"github.com/arloliu/qint4/internal/pool"
	"github.com/arloliu/qint4/quant"
	"github.com/arloliu/qint4/section"
)

// MaxValues is the largest number of values a single block can hold.
const MaxValues = math.MaxUint32

// Encoder quantizes float32 sequences and frames them as self-describing blocks.
//
// An Encoder holds only its configuration, so one instance can encode any number of blocks
// and is safe for concurrent use.
type Encoder struct {
	*EncoderConfig
}

// NewEncoder creates a new Encoder.
//
// Parameters:
//   - opts: Optional configuration (scale method, compression, endianness)
//
// Returns:
//   - *Encoder: The configured encoder
//   - error: Configuration error if an option is invalid
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := NewEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{EncoderConfig: config}, nil
}

// Encode quantizes samples with the configured scale method and returns the encoded block.
//
// Returns:
//   - []byte: Header followed by the packed, optionally compressed payload
//   - error: errs.ErrInvalidArgument for non-finite samples, errs.ErrTooManyValues,
//     or a compression error
func (e *Encoder) Encode(samples []float32) ([]byte, error) {
	quantized, scale, zeroPoint, err := quant.Quantize(samples, e.flag.Method())
	if err != nil {
		return nil, err
	}

	return e.EncodeQuantized(quantized, scale, zeroPoint)
}

// EncodeQuantized frames already quantized values.
//
// Every value must lie in [-8, 7], scale must be finite and non-zero and zeroPoint must be 0.
// The scale method recorded in the header is the configured one.
func (e *Encoder) EncodeQuantized(quantized []int8, scale, zeroPoint float32) ([]byte, error) {
	if uint64(len(quantized)) > MaxValues {
		return nil, fmt.Errorf("%w: %d values", errs.ErrTooManyValues, len(quantized))
	}

	for i, q := range quantized {
		if q < quant.MinValue || q > quant.MaxValue {
			return nil, fmt.Errorf("%w: value %d at index %d is outside the int4 range", errs.ErrInvalidArgument, q, i)
		}
	}

	s := float64(scale)
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidScale, scale)
	}

	if zeroPoint != 0 {
		return nil, fmt.Errorf("%w: zero point %v, only symmetric blocks are supported", errs.ErrInvalidArgument, zeroPoint)
	}

	packed := quant.Pack(quantized)

	stored, compression, err := e.compressPayload(packed)
	if err != nil {
		return nil, err
	}

	header := section.BlockHeader{
		Flag:        e.flag,
		Count:       uint32(len(quantized)),
		Scale:       scale,
		ZeroPoint:   zeroPoint,
		PayloadSize: uint32(len(stored)),
		Checksum:    hash.Checksum(stored),
	}
	header.Flag.SetCompression(compression)

	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	buf.Grow(section.HeaderSize + len(stored))
	buf.B = header.AppendTo(buf.B)
	buf.MustWrite(stored)

	return buf.Clone(), nil
}

// compressPayload applies the configured codec and falls back to storing the packed
// payload as-is when compression does not make it smaller.
func (e *Encoder) compressPayload(packed []byte) ([]byte, format.CompressionType, error) {
	comp := e.flag.Compression()
	if comp == format.CompressionNone || len(packed) == 0 {
		return packed, format.CompressionNone, nil
	}

	stored, err := e.codec.Compress(packed)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to compress payload with %s: %w", comp, err)
	}

	// lz4 reports incompressible input as an empty block
	if len(stored) == 0 || len(stored) >= len(packed) {
		return packed, format.CompressionNone, nil
	}

	return stored, comp, nil
}
