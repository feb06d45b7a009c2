package section

import (
	"github.com/arloliu/qint4/endian"
	"github.com/arloliu/qint4/errs"
)

// SetIndexEntry locates one block inside a block set. It is a fixed 16 bytes on disk.
type SetIndexEntry struct {
	// ID is the xxHash64 of the block name.
	//
	// Offset: 0, Size: 8 bytes
	ID uint64

	// Offset is the block start relative to the set's PayloadOffset.
	//
	// Offset: 8, Size: 4 bytes
	Offset uint32

	// Length is the full block length, header included.
	//
	// Offset: 12, Size: 4 bytes
	Length uint32
}

// AppendTo appends the serialized entry to b.
func (e SetIndexEntry) AppendTo(engine endian.EndianEngine, b []byte) []byte {
	b = engine.AppendUint64(b, e.ID)
	b = engine.AppendUint32(b, e.Offset)
	b = engine.AppendUint32(b, e.Length)

	return b
}

// ParseSetIndexEntry parses an entry from exactly SetIndexEntrySize bytes.
func ParseSetIndexEntry(engine endian.EndianEngine, data []byte) (SetIndexEntry, error) {
	if len(data) != SetIndexEntrySize {
		return SetIndexEntry{}, errs.ErrInvalidIndexEntry
	}

	return SetIndexEntry{
		ID:     engine.Uint64(data[0:8]),
		Offset: engine.Uint32(data[8:12]),
		Length: engine.Uint32(data[12:16]),
	}, nil
}

// End returns the exclusive end offset of the block relative to the payload start.
func (e SetIndexEntry) End() uint64 {
	return uint64(e.Offset) + uint64(e.Length)
}
