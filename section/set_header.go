package section

import (
	"github.com/arloliu/qint4/endian"
	"github.com/arloliu/qint4/errs"
)

// SetHeader is the fixed-size header at the start of a block set.
type SetHeader struct {
	// Options holds the endianness bit and the magic number 0xA42.
	Options uint16 // byte offset 0-1
	// BlockCount is the number of blocks, and of index entries.
	BlockCount uint32 // byte offset 4-7
	// PayloadOffset is the byte offset where the first block starts.
	PayloadOffset uint32 // byte offset 8-11
}

// NewSetHeader creates a little-endian set header.
func NewSetHeader() *SetHeader {
	return &SetHeader{Options: MagicSetV1Opt}
}

// IsLittleEndian returns whether multi-byte fields are little-endian.
func (h SetHeader) IsLittleEndian() bool {
	return (h.Options & EndiannessMask) == 0
}

// WithLittleEndian sets little-endian byte order.
func (h *SetHeader) WithLittleEndian() {
	h.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (h *SetHeader) WithBigEndian() {
	h.Options |= EndiannessMask
}

// GetEndianEngine returns the endian engine selected by the header.
func (h SetHeader) GetEndianEngine() endian.EndianEngine {
	return engineFor(h.Options)
}

// Parse parses the set header from exactly SetHeaderSize bytes.
func (h *SetHeader) Parse(data []byte) error {
	if len(data) != SetHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	if err := validateOptions(h.Options, MagicSetV1Opt); err != nil {
		return err
	}

	engine := h.GetEndianEngine()
	if engine.Uint16(data[2:4]) != 0 || engine.Uint32(data[12:16]) != 0 {
		return errs.ErrInvalidReservedBits
	}

	h.BlockCount = engine.Uint32(data[4:8])
	h.PayloadOffset = engine.Uint32(data[8:12])

	return nil
}

// Bytes serializes the set header into SetHeaderSize bytes.
func (h SetHeader) Bytes() []byte {
	engine := h.GetEndianEngine()

	b := make([]byte, 0, SetHeaderSize)
	b = append(b, byte(h.Options), byte(h.Options>>8))
	b = engine.AppendUint16(b, 0)
	b = engine.AppendUint32(b, h.BlockCount)
	b = engine.AppendUint32(b, h.PayloadOffset)
	b = engine.AppendUint32(b, 0)

	return b
}

// IndexEnd returns the byte offset just past the index section.
func (h SetHeader) IndexEnd() int {
	return SetHeaderSize + int(h.BlockCount)*SetIndexEntrySize
}
