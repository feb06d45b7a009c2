package quant

// Dequantize converts int4 values back to float32: out[i] = float32(q[i]) * scale.
//
// zeroPoint is accepted for signature compatibility with asymmetric schemes but is not
// applied; Quantize always produces a zero point of 0.
func Dequantize(quantized []int8, scale, zeroPoint float32) []float32 {
	out := make([]float32, len(quantized))
	for i, q := range quantized {
		out[i] = float32(q) * scale
	}

	return out
}
