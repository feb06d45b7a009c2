// Package quant implements linear int4 quantization of float32 sequences and the nibble
// packing used to store two int4 values per byte.
//
// # Quantization
//
// Quantize maps every sample to a signed 4-bit integer in [-8, 7] using a single scale
// shared by the whole sequence:
//
//	q[i] = clamp(roundHalfToEven(x[i] / scale), -8, 7)
//
// Two scale methods are supported:
//   - format.ScaleMinMax: scale = (max - min) / 15
//   - format.ScaleAbsMax: scale = max(|x|) / 7
//
// The quantization is symmetric: the returned zero point is always 0 and quantized 0 always
// dequantizes to 0. When the natural scale is zero (empty input, a single sample under
// minmax, or all samples equal) the scale is forced to 1.0 and every quantized value is 0.
//
// Rounding uses ties-to-even, so 0.5 rounds to 0, 1.5 and 2.5 both round to 2, and -7.5
// rounds to -8. Values beyond the int4 range saturate at -8 or 7; they never wrap.
//
// # Packing
//
// Pack stores element 2i in the low nibble and element 2i+1 in the high nibble of byte i:
//
//	packed[i] = (q[2i] & 0x0F) | (q[2i+1] & 0x0F) << 4
//
// An odd-length input is padded with a single zero. Unpack always returns twice as many
// values as bytes, so callers that pack odd-length sequences must trim the padding
// themselves, or use UnpackN. The block package records the original length and trims
// automatically.
//
// # Thread Safety
//
// Every function in this package is pure and safe for concurrent use on independent inputs.
package quant
