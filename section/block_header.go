package section

import (
	"fmt"
	"math"

	"github.com/arloliu/qint4/endian"
	"github.com/arloliu/qint4/errs"
)

// BlockHeader is the fixed-size header at the start of every block.
type BlockHeader struct {
	// Count is the number of int4 values in the block before packing.
	Count uint32 // byte offset 4-7
	// Scale is the quantization scale.
	Scale float32 // byte offset 8-11
	// ZeroPoint is the quantization zero point, always 0 for symmetric blocks.
	ZeroPoint float32 // byte offset 12-15
	// PayloadSize is the byte length of the stored (possibly compressed) payload.
	PayloadSize uint32 // byte offset 16-19
	// Checksum is the xxHash64 of the stored payload.
	Checksum uint64 // byte offset 24-31

	// Flag holds the options word, scale method and compression type.
	Flag BlockFlag // byte offset 0-3
}

// NewBlockHeader creates a header with default flags.
// Count, scale, payload size and checksum are filled in by the encoder.
func NewBlockHeader() *BlockHeader {
	return &BlockHeader{
		Flag:  NewBlockFlag(),
		Scale: 1,
	}
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be exactly HeaderSize bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize, flag validation errors, ErrInvalidReservedBits,
//     ErrInvalidScale or ErrInvalidZeroPoint
func (h *BlockHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.ScaleMethod = data[2]
	h.Flag.CompressionType = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()

	h.Count = engine.Uint32(data[4:8])
	h.Scale = endian.Float32(engine, data[8:12])
	h.ZeroPoint = endian.Float32(engine, data[12:16])
	h.PayloadSize = engine.Uint32(data[16:20])
	if engine.Uint32(data[20:24]) != 0 {
		return errs.ErrInvalidReservedBits
	}
	h.Checksum = engine.Uint64(data[24:32])

	if err := h.validateScale(); err != nil {
		return err
	}

	if h.ZeroPoint != 0 {
		return fmt.Errorf("%w: %v", errs.ErrInvalidZeroPoint, h.ZeroPoint)
	}

	return nil
}

// Bytes serializes the header into a HeaderSize byte slice.
func (h BlockHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// AppendTo appends the serialized header to b.
func (h BlockHeader) AppendTo(b []byte) []byte {
	engine := h.Flag.GetEndianEngine()

	b = append(b, byte(h.Flag.Options), byte(h.Flag.Options>>8), h.Flag.ScaleMethod, h.Flag.CompressionType)
	b = engine.AppendUint32(b, h.Count)
	b = endian.AppendFloat32(engine, b, h.Scale)
	b = endian.AppendFloat32(engine, b, h.ZeroPoint)
	b = engine.AppendUint32(b, h.PayloadSize)
	b = engine.AppendUint32(b, 0)
	b = engine.AppendUint64(b, h.Checksum)

	return b
}

// PackedSize returns the unpacked payload length implied by Count.
func (h BlockHeader) PackedSize() int {
	return int((uint64(h.Count) + 1) / 2)
}

func (h BlockHeader) validateScale() error {
	s := float64(h.Scale)
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("%w: %v", errs.ErrInvalidScale, h.Scale)
	}

	return nil
}

// ParseBlockHeader parses a BlockHeader from the start of data.
//
// Parameters:
//   - data: Byte slice starting with a header (must be at least HeaderSize bytes)
//
// Returns:
//   - BlockHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or header validation errors
func ParseBlockHeader(data []byte) (BlockHeader, error) {
	if len(data) < HeaderSize {
		return BlockHeader{}, errs.ErrInvalidHeaderSize
	}

	h := BlockHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return BlockHeader{}, err
	}

	return h, nil
}
