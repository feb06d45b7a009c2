package block

import (
	"math"
	"testing"

	"github.com/arloliu/qint4/errs"
	"github.com/arloliu/qint4/format"
	"github.com/arloliu/qint4/quant"
	"github.com/arloliu/qint4/section"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var (
	allMethods      = []format.ScaleMethod{format.ScaleMinMax, format.ScaleAbsMax}
	allCompressions = []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}
)

// smoothSamples returns a slowly varying signal whose packed form compresses well.
func smoothSamples(n int) []float32 {
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(math.Sin(float64(i/32) * 0.3))
	}

	return samples
}

func TestNewEncoder_Defaults(t *testing.T) {
	encoder, err := NewEncoder()

	require.NoError(t, err)
	require.Equal(t, format.ScaleMinMax, encoder.ScaleMethod())
	require.Equal(t, format.CompressionNone, encoder.Compression())
	require.True(t, encoder.IsLittleEndian())
}

func TestNewEncoder_InvalidOptions(t *testing.T) {
	_, err := NewEncoder(WithScaleMethod(format.ScaleMethod(0x9)))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = NewEncoder(WithScaleMethodName("foo"))
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = NewEncoder(WithCompression(format.CompressionType(0)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestEncoder_RoundTrip(t *testing.T) {
	samples := smoothSamples(1001)

	for _, method := range allMethods {
		for _, comp := range allCompressions {
			for _, big := range []bool{false, true} {
				opts := []EncoderOption{WithScaleMethod(method), WithCompression(comp)}
				if big {
					opts = append(opts, WithBigEndian())
				}

				name := method.String() + "/" + comp.String()
				if big {
					name += "/big"
				}

				t.Run(name, func(t *testing.T) {
					encoder, err := NewEncoder(opts...)
					require.NoError(t, err)

					data, err := encoder.Encode(samples)
					require.NoError(t, err)

					wantQ, wantScale, _, err := quant.Quantize(samples, method)
					require.NoError(t, err)

					decoder, err := NewDecoder(data)
					require.NoError(t, err)
					require.Equal(t, comp, decoder.Header().Flag.Compression())
					require.Equal(t, !big, decoder.Header().Flag.IsLittleEndian())

					b, err := decoder.Decode()
					require.NoError(t, err)
					require.Equal(t, method, b.Method)
					require.Equal(t, wantScale, b.Scale)
					require.Zero(t, b.ZeroPoint)
					require.Equal(t, len(samples), b.Len())
					require.Equal(t, wantQ, b.Quantized)
				})
			}
		}
	}
}

func TestEncoder_SpecScenario(t *testing.T) {
	encoder, err := NewEncoder(WithScaleMethodName("minmax"))
	require.NoError(t, err)

	data, err := encoder.Encode([]float32{-10, -5, 0, 5, 10})
	require.NoError(t, err)
	require.Len(t, data, section.HeaderSize+3)

	b, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, []int8{-8, -4, 0, 4, 7}, b.Quantized)
	require.Equal(t, []uint8{0xC8, 0x40, 0x07}, b.Packed())

	want := []float32{-8 * b.Scale, -4 * b.Scale, 0, 4 * b.Scale, 7 * b.Scale}
	if diff := cmp.Diff(want, b.Dequantize()); diff != "" {
		t.Fatalf("dequantized mismatch (-want +got):\n%s", diff)
	}
}

func TestEncoder_OddLengthIsTrimmed(t *testing.T) {
	encoder, err := NewEncoder(WithScaleMethod(format.ScaleAbsMax))
	require.NoError(t, err)

	data, err := encoder.Encode([]float32{7, -7, 3.5})
	require.NoError(t, err)

	b, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, []int8{7, -7, 4}, b.Quantized)
}

func TestEncoder_Empty(t *testing.T) {
	encoder, err := NewEncoder(WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	data, err := encoder.Encode(nil)
	require.NoError(t, err)
	require.Len(t, data, section.HeaderSize)

	decoder, err := NewDecoder(data)
	require.NoError(t, err)
	require.Equal(t, format.CompressionNone, decoder.Header().Flag.Compression())
	require.Equal(t, quant.DefaultScale, decoder.Header().Scale)

	b, err := decoder.Decode()
	require.NoError(t, err)
	require.Zero(t, b.Len())
	require.Empty(t, b.Dequantize())
}

func TestEncoder_CompressionFallback(t *testing.T) {
	encoder, err := NewEncoder(WithCompression(format.CompressionZstd))
	require.NoError(t, err)

	t.Run("tiny payload is stored raw", func(t *testing.T) {
		data, err := encoder.Encode([]float32{1, 2, 3, 4})
		require.NoError(t, err)

		header, err := section.ParseBlockHeader(data)
		require.NoError(t, err)
		require.Equal(t, format.CompressionNone, header.Flag.Compression())
		require.Equal(t, uint32(2), header.PayloadSize)
	})

	t.Run("smooth payload is compressed", func(t *testing.T) {
		samples := smoothSamples(8192)
		data, err := encoder.Encode(samples)
		require.NoError(t, err)

		header, err := section.ParseBlockHeader(data)
		require.NoError(t, err)
		require.Equal(t, format.CompressionZstd, header.Flag.Compression())
		require.Less(t, int(header.PayloadSize), quant.PackedLen(len(samples)))
	})
}

func TestEncoder_InvalidSamples(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	_, err = encoder.Encode([]float32{1, float32(math.NaN())})
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestEncoder_EncodeQuantized(t *testing.T) {
	encoder, err := NewEncoder()
	require.NoError(t, err)

	data, err := encoder.EncodeQuantized([]int8{-8, -4, 0, 4, 7}, 1.5, 0)
	require.NoError(t, err)

	b, err := Decode(data)
	require.NoError(t, err)
	require.Equal(t, []float32{-12, -6, 0, 6, 10.5}, b.Dequantize())

	tests := []struct {
		name      string
		quantized []int8
		scale     float32
		zeroPoint float32
		wantErr   error
	}{
		{name: "value above range", quantized: []int8{8}, scale: 1, wantErr: errs.ErrInvalidArgument},
		{name: "value below range", quantized: []int8{0, -9}, scale: 1, wantErr: errs.ErrInvalidArgument},
		{name: "zero scale", quantized: []int8{1}, scale: 0, wantErr: errs.ErrInvalidScale},
		{name: "infinite scale", quantized: []int8{1}, scale: float32(math.Inf(1)), wantErr: errs.ErrInvalidScale},
		{name: "asymmetric", quantized: []int8{1}, scale: 1, zeroPoint: 2, wantErr: errs.ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := encoder.EncodeQuantized(tt.quantized, tt.scale, tt.zeroPoint)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func BenchmarkEncoder_Encode(b *testing.B) {
	samples := smoothSamples(4096)

	for _, comp := range allCompressions {
		encoder, err := NewEncoder(WithCompression(comp))
		require.NoError(b, err)

		b.Run(comp.String(), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = encoder.Encode(samples)
			}
		})
	}
}
