package block

import (
	"github.com/arloliu/qint4/format"
	"github.com/arloliu/qint4/quant"
)

// Block is a decoded quantized sequence with its quantization parameters.
type Block struct {
	// Method is the scale method the sequence was quantized with.
	Method format.ScaleMethod
	// Scale is the quantization scale, never zero.
	Scale float32
	// ZeroPoint is always 0.
	ZeroPoint float32
	// Quantized holds the int4 values, trimmed to the original length.
	Quantized []int8
}

// Len returns the number of values in the block.
func (b Block) Len() int {
	return len(b.Quantized)
}

// Dequantize returns the float32 approximation of the original samples.
func (b Block) Dequantize() []float32 {
	return quant.Dequantize(b.Quantized, b.Scale, b.ZeroPoint)
}

// Packed returns the values packed two per byte.
func (b Block) Packed() []uint8 {
	return quant.Pack(b.Quantized)
}
