package section

import (
	"testing"

	"github.com/arloliu/qint4/endian"
	"github.com/arloliu/qint4/errs"
	"github.com/stretchr/testify/require"
)

func TestSetHeader_RoundTrip(t *testing.T) {
	for _, big := range []bool{false, true} {
		original := NewSetHeader()
		if big {
			original.WithBigEndian()
		}
		original.BlockCount = 3
		original.PayloadOffset = uint32(SetHeaderSize + 3*SetIndexEntrySize)

		data := original.Bytes()
		require.Len(t, data, SetHeaderSize)

		parsed := &SetHeader{}
		require.NoError(t, parsed.Parse(data))
		require.Equal(t, original, parsed)
		require.Equal(t, !big, parsed.IsLittleEndian())
		require.Equal(t, int(original.PayloadOffset), parsed.IndexEnd())
	}
}

func TestSetHeader_ParseErrors(t *testing.T) {
	valid := NewSetHeader().Bytes()

	h := &SetHeader{}
	require.ErrorIs(t, h.Parse(valid[:8]), errs.ErrInvalidHeaderSize)

	// a block header magic is not a set magic
	bad := append([]byte(nil), valid...)
	bad[0], bad[1] = 0x10, 0xA4
	require.ErrorIs(t, h.Parse(bad), errs.ErrInvalidMagicNumber)

	bad = append([]byte(nil), valid...)
	bad[3] = 0x01
	require.ErrorIs(t, h.Parse(bad), errs.ErrInvalidReservedBits)
}

func TestSetHeader_Endianness(t *testing.T) {
	h := NewSetHeader()
	require.Equal(t, endian.GetLittleEndianEngine(), h.GetEndianEngine())

	h.WithBigEndian()
	require.Equal(t, endian.GetBigEndianEngine(), h.GetEndianEngine())

	h.WithLittleEndian()
	require.True(t, h.IsLittleEndian())
}

func TestSetIndexEntry_RoundTrip(t *testing.T) {
	entry := SetIndexEntry{ID: 0xDEADBEEFCAFEF00D, Offset: 64, Length: 40}

	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		data := entry.AppendTo(engine, nil)
		require.Len(t, data, SetIndexEntrySize)

		parsed, err := ParseSetIndexEntry(engine, data)
		require.NoError(t, err)
		require.Equal(t, entry, parsed)
		require.Equal(t, uint64(104), parsed.End())
	}

	_, err := ParseSetIndexEntry(endian.GetLittleEndianEngine(), make([]byte, 15))
	require.ErrorIs(t, err, errs.ErrInvalidIndexEntry)
}

func parsedSetHeader(t *testing.T, data []byte) SetHeader {
	t.Helper()

	var h SetHeader
	require.NoError(t, h.Parse(data))

	return h
}

func TestSetHeader_ValueMethods(t *testing.T) {
	h := NewSetHeader()
	h.WithBigEndian()
	h.BlockCount = 2
	h.PayloadOffset = uint32(SetHeaderSize + 2*SetIndexEntrySize)
	data := h.Bytes()

	// read-only methods are callable on a header returned by value
	require.False(t, parsedSetHeader(t, data).IsLittleEndian())
	require.Equal(t, endian.GetBigEndianEngine(), parsedSetHeader(t, data).GetEndianEngine())
	require.Equal(t, int(h.PayloadOffset), parsedSetHeader(t, data).IndexEnd())
	require.Equal(t, data, parsedSetHeader(t, data).Bytes())
}
