package quant

import (
	"fmt"

	"github.com/arloliu/qint4/errs"
)

const nibbleMask = 0x0F

// PackedLen returns the number of bytes Pack produces for n int4 values.
func PackedLen(n int) int {
	return (n + 1) / 2
}

// Pack stores two int4 values per byte, even-indexed values in the low nibble and
// odd-indexed values in the high nibble.
//
// Only the low 4 bits of each value's two's-complement form are kept, which is exact for
// values in [-8, 7]. An odd-length input is padded with one zero value.
func Pack(quantized []int8) []uint8 {
	packed := make([]uint8, PackedLen(len(quantized)))

	pairs := len(quantized) / 2
	for i := range pairs {
		lo := uint8(quantized[2*i]) & nibbleMask
		hi := uint8(quantized[2*i+1]) & nibbleMask
		packed[i] = lo | hi<<4
	}

	if len(quantized)%2 != 0 {
		packed[pairs] = uint8(quantized[len(quantized)-1]) & nibbleMask
	}

	return packed
}

// Unpack expands each byte into two int4 values, low nibble first.
//
// The result always has 2*len(packed) values; when the packed sequence came from an
// odd-length input the trailing value is the zero padding.
func Unpack(packed []uint8) []int8 {
	out := make([]int8, 2*len(packed))
	for i, b := range packed {
		out[2*i] = signExtend(b & nibbleMask)
		out[2*i+1] = signExtend((b >> 4) & nibbleMask)
	}

	return out
}

// UnpackN unpacks packed and trims the result to n values.
//
// Returns errs.ErrInvalidArgument if n is negative or larger than 2*len(packed).
func UnpackN(packed []uint8, n int) ([]int8, error) {
	if n < 0 || n > 2*len(packed) {
		return nil, fmt.Errorf("%w: cannot unpack %d values from %d bytes", errs.ErrInvalidArgument, n, len(packed))
	}

	return Unpack(packed)[:n], nil
}

// signExtend restores a 4-bit two's-complement nibble to a signed value.
func signExtend(v uint8) int8 {
	if v > MaxValue {
		return int8(v) - 16
	}

	return int8(v)
}
