// Package qint4 provides symmetric 4-bit integer quantization of float32 sequences,
// packing of int4 values two per byte, and a compact self-describing block format.
//
// # Core Operations
//
// The four core operations take the scale method by name, "minmax" or "absmax":
//
//	quantized, scale, zeroPoint, err := qint4.Quantize(samples, "minmax")
//	packed := qint4.Pack(quantized)
//
//	// later
//	restored, _ := qint4.UnpackN(packed, len(samples))
//	approx := qint4.Dequantize(restored, scale, zeroPoint)
//
// Quantized values always lie in [-8, 7]. Quantize rounds half to even and saturates at the
// range ends. When the scale would be zero (constant, all-zero or empty input) the scale
// becomes 1.0 and every value quantizes to 0.
//
// # Blocks
//
// A block stores a quantized sequence together with its scale, length and checksum, with
// optional Zstd, S2 or LZ4 payload compression:
//
//	encoder, _ := qint4.NewEncoder(
//	    block.WithScaleMethod(format.ScaleAbsMax),
//	    block.WithCompression(format.CompressionZstd),
//	)
//	data, _ := encoder.Encode(samples)
//
//	decoder, _ := qint4.NewDecoder(data)
//	b, _ := decoder.Decode()
//	approx := b.Dequantize()
//
// # Package Structure
//
// This package wraps the quant and block packages for the most common use cases. Use
// quant directly for the typed ScaleMethod API, and block for full control over
// encoding options and block sets.
package qint4

import (
	"github.com/arloliu/qint4/block"
	"github.com/arloliu/qint4/format"
	"github.com/arloliu/qint4/internal/hash"
	"github.com/arloliu/qint4/quant"
)

// Quantize maps samples to int4 values using the named scale method.
//
// Parameters:
//   - samples: Values to quantize, all finite; may be empty
//   - method: "minmax" (spread the value range over 15 steps) or "absmax" (largest
//     magnitude maps to ±7)
//
// Returns:
//   - []int8: Quantized values in [-8, 7], same length as samples
//   - float32: The scale, never zero
//   - float32: The zero point, always 0
//   - error: errs.ErrInvalidArgument for an unknown method or a non-finite sample
//
// Example:
//
//	q, scale, _, err := qint4.Quantize([]float32{-10, -5, 0, 5, 10}, "minmax")
//	// q = [-8 -4 0 4 7], scale ≈ 1.3333
func Quantize(samples []float32, method string) ([]int8, float32, float32, error) {
	m, err := format.ParseScaleMethod(method)
	if err != nil {
		return nil, 0, 0, err
	}

	return quant.Quantize(samples, m)
}

// Dequantize converts int4 values back to float32 as q * scale.
//
// zeroPoint is accepted for symmetry with Quantize's results and is not applied.
//
// Example:
//
//	approx := qint4.Dequantize([]int8{-8, -4, 0, 4, 7}, 1.5, 0)
//	// approx = [-12 -6 0 6 10.5]
func Dequantize(quantized []int8, scale, zeroPoint float32) []float32 {
	return quant.Dequantize(quantized, scale, zeroPoint)
}

// Pack stores two int4 values per byte, the even-indexed value in the low nibble.
//
// An odd-length input is padded with a zero value; the caller must keep the original
// length to trim it again (see UnpackN), or use the block format, which records it.
func Pack(quantized []int8) []uint8 {
	return quant.Pack(quantized)
}

// Unpack expands packed bytes into 2*len(packed) int4 values, low nibble first.
func Unpack(packed []uint8) []int8 {
	return quant.Unpack(packed)
}

// UnpackN unpacks packed and trims the result to its original length n.
func UnpackN(packed []uint8, n int) ([]int8, error) {
	return quant.UnpackN(packed, n)
}

// NewEncoder creates a block encoder.
//
// Available options:
//   - block.WithScaleMethod(format.ScaleMinMax|ScaleAbsMax) / block.WithScaleMethodName(name)
//   - block.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - block.WithLittleEndian() / block.WithBigEndian()
//
// The defaults are minmax scaling, no compression and little-endian headers.
func NewEncoder(opts ...block.EncoderOption) (*block.Encoder, error) {
	return block.NewEncoder(opts...)
}

// NewDecoder creates a decoder for a single encoded block.
//
// The header is validated immediately; the payload is verified when Decode is called.
func NewDecoder(data []byte) (*block.Decoder, error) {
	return block.NewDecoder(data)
}

// NewSetEncoder creates an encoder that groups named sequences into one block set.
//
// Example:
//
//	set, _ := qint4.NewSetEncoder(block.WithBlockOptions(block.WithCompression(format.CompressionS2)))
//	_ = set.Add("layer0.weight", weights)
//	data, err := set.Finish()
func NewSetEncoder(opts ...block.SetEncoderOption) (*block.SetEncoder, error) {
	return block.NewSetEncoder(opts...)
}

// NewSetDecoder creates a decoder with random access to the blocks of a block set.
func NewSetDecoder(data []byte) (*block.SetDecoder, error) {
	return block.NewSetDecoder(data)
}

// BlockID returns the ID a block set assigns to the block named name.
//
// Example:
//
//	b, err := decoder.BlockByID(qint4.BlockID("layer0.weight"))
func BlockID(name string) uint64 {
	return hash.ID(name)
}
