package qint4

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/qint4/block"
	"github.com/arloliu/qint4/errs"
	"github.com/arloliu/qint4/format"
)

func TestQuantize_ByName(t *testing.T) {
	q, scale, zeroPoint, err := Quantize([]float32{-10, -5, 0, 5, 10}, "minmax")
	require.NoError(t, err)
	require.InDelta(t, 1.3333, scale, 1e-4)
	require.Zero(t, zeroPoint)
	require.Equal(t, []int8{-8, -4, 0, 4, 7}, q)

	q, scale, _, err = Quantize([]float32{-7, -3.5, 0, 3.5, 7}, "absmax")
	require.NoError(t, err)
	require.Equal(t, float32(1), scale)
	require.Equal(t, []int8{-7, -4, 0, 4, 7}, q)
}

func TestQuantize_UnknownMethod(t *testing.T) {
	for _, method := range []string{"", "median", "MinMax", "minmax "} {
		_, _, _, err := Quantize([]float32{1, 2, 3}, method)
		require.ErrorIs(t, err, errs.ErrInvalidArgument, "method=%q", method)
	}
}

func TestQuantize_Degenerate(t *testing.T) {
	q, scale, _, err := Quantize([]float32{42}, "minmax")
	require.NoError(t, err)
	require.Equal(t, float32(1), scale)
	require.Equal(t, []int8{0}, q)

	q, scale, _, err = Quantize(nil, "absmax")
	require.NoError(t, err)
	require.Equal(t, float32(1), scale)
	require.Empty(t, q)
}

func TestDequantize(t *testing.T) {
	require.Equal(t, []float32{-12, -6, 0, 6, 10.5}, Dequantize([]int8{-8, -4, 0, 4, 7}, 1.5, 0))
}

func TestPackUnpack(t *testing.T) {
	quantized := []int8{-8, -4, 0, 4, 7, -2, 3, 1}

	require.Equal(t, quantized, Unpack(Pack(quantized)))

	odd := []int8{-8, 7, 3}
	packed := Pack(odd)
	require.Len(t, packed, 2)

	trimmed, err := UnpackN(packed, len(odd))
	require.NoError(t, err)
	require.Equal(t, odd, trimmed)
}

func TestEndToEnd(t *testing.T) {
	original := []float32{-10.5, -5.2, 0, 5.2, 10.5}

	q, scale, zeroPoint, err := Quantize(original, "minmax")
	require.NoError(t, err)

	restored, err := UnpackN(Pack(q), len(original))
	require.NoError(t, err)

	approx := Dequantize(restored, scale, zeroPoint)
	for i := range original {
		require.InDelta(t, original[i], approx[i], float64(scale))
	}
}

func TestNewEncoderDecoder(t *testing.T) {
	encoder, err := NewEncoder(
		block.WithScaleMethod(format.ScaleAbsMax),
		block.WithCompression(format.CompressionLZ4),
	)
	require.NoError(t, err)

	data, err := encoder.Encode([]float32{-7, -3.5, 0, 3.5, 7})
	require.NoError(t, err)

	decoder, err := NewDecoder(data)
	require.NoError(t, err)

	b, err := decoder.Decode()
	require.NoError(t, err)
	require.Equal(t, format.ScaleAbsMax, b.Method)
	require.Equal(t, []int8{-7, -4, 0, 4, 7}, b.Quantized)
}

func TestNewSetEncoderDecoder(t *testing.T) {
	encoder, err := NewSetEncoder()
	require.NoError(t, err)
	require.NoError(t, encoder.Add("weights", []float32{-10, -5, 0, 5, 10}))
	require.NoError(t, encoder.Add("bias", []float32{0.5}))

	data, err := encoder.Finish()
	require.NoError(t, err)

	decoder, err := NewSetDecoder(data)
	require.NoError(t, err)

	b, err := decoder.BlockByID(BlockID("weights"))
	require.NoError(t, err)
	require.Equal(t, []int8{-8, -4, 0, 4, 7}, b.Quantized)
	require.True(t, decoder.Has("bias"))
}
