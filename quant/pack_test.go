package quant

import (
	"testing"

	"github.com/arloliu/qint4/errs"
	"github.com/stretchr/testify/require"
)

func TestDequantize(t *testing.T) {
	quantized := []int8{-8, -4, 0, 4, 7}

	restored := Dequantize(quantized, 1.5, 0)

	require.Equal(t, []float32{-12, -6, 0, 6, 10.5}, restored)
}

func TestDequantize_IgnoresZeroPoint(t *testing.T) {
	quantized := []int8{-8, -4, 0, 4, 7}

	require.Equal(t, Dequantize(quantized, 1.5, 0), Dequantize(quantized, 1.5, 3))
}

func TestDequantize_Empty(t *testing.T) {
	require.Empty(t, Dequantize(nil, 2, 0))
}

func TestPackedLen(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 8: 4, 9: 5} {
		require.Equal(t, want, PackedLen(n), "n=%d", n)
	}
}

func TestPack_Layout(t *testing.T) {
	quantized := []int8{-8, -4, 0, 4, 7, -2, 3, 1}

	packed := Pack(quantized)

	// low nibble holds the even-indexed value
	require.Equal(t, []uint8{0xC8, 0x40, 0xE7, 0x13}, packed)
	require.Len(t, packed, len(quantized)/2)
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	quantized := []int8{-8, -4, 0, 4, 7, -2, 3, 1}

	unpacked := Unpack(Pack(quantized))

	require.Equal(t, quantized, unpacked[:len(quantized)])
}

func TestPack_OddLength(t *testing.T) {
	quantized := []int8{1, -1, 5}

	packed := Pack(quantized)
	require.Equal(t, []uint8{0xF1, 0x05}, packed)

	unpacked := Unpack(packed)
	require.Equal(t, []int8{1, -1, 5, 0}, unpacked)

	trimmed, err := UnpackN(packed, len(quantized))
	require.NoError(t, err)
	require.Equal(t, quantized, trimmed)
}

func TestPack_MasksOutOfRange(t *testing.T) {
	// 0x19 keeps only its low nibble
	require.Equal(t, []uint8{0x09}, Pack([]int8{0x19}))
}

func TestPackUnpack_AllPairs(t *testing.T) {
	for lo := MinValue; lo <= MaxValue; lo++ {
		for hi := MinValue; hi <= MaxValue; hi++ {
			pair := []int8{int8(lo), int8(hi)}
			require.Equal(t, pair, Unpack(Pack(pair)))
		}
	}
}

func TestUnpackPack_AllBytes(t *testing.T) {
	for b := range 256 {
		packed := []uint8{uint8(b)}
		unpacked := Unpack(packed)

		for _, v := range unpacked {
			require.GreaterOrEqual(t, v, int8(MinValue))
			require.LessOrEqual(t, v, int8(MaxValue))
		}
		require.Equal(t, packed, Pack(unpacked))
	}
}

func TestPackUnpack_Empty(t *testing.T) {
	require.Empty(t, Pack(nil))
	require.Empty(t, Unpack(nil))

	trimmed, err := UnpackN(nil, 0)
	require.NoError(t, err)
	require.Empty(t, trimmed)
}

func TestUnpackN_InvalidLength(t *testing.T) {
	packed := []uint8{0x12, 0x34}

	_, err := UnpackN(packed, 5)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = UnpackN(packed, -1)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	full, err := UnpackN(packed, 4)
	require.NoError(t, err)
	require.Equal(t, []int8{2, 1, 4, 3}, full)
}

func BenchmarkPack(b *testing.B) {
	quantized := make([]int8, 4096)
	for i := range quantized {
		quantized[i] = int8(i%16) + MinValue
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = Pack(quantized)
	}
}

func BenchmarkUnpack(b *testing.B) {
	packed := make([]uint8, 2048)
	for i := range packed {
		packed[i] = uint8(i)
	}

	b.ReportAllocs()
	for b.Loop() {
		_ = Unpack(packed)
	}
}
