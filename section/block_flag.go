package section

import (
	"github.com/arloliu/qint4/endian"
	"github.com/arloliu/qint4/errs"
	"github.com/arloliu/qint4/format"
)

// BlockFlag is the first 4 bytes of a block header.
type BlockFlag struct {
	// Options is a packed field.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 0, 2 and 3 are reserved and must be 0.
	// Bits 4-15 are the magic number 0xA41.
	Options uint16

	// ScaleMethod is the format.ScaleMethod used to quantize the block.
	ScaleMethod uint8

	// CompressionType is the format.CompressionType applied to the packed payload.
	CompressionType uint8
}

// NewBlockFlag creates a little-endian, minmax, uncompressed flag.
func NewBlockFlag() BlockFlag {
	return BlockFlag{
		Options:         MagicBlockV1Opt,
		ScaleMethod:     uint8(format.ScaleMinMax),
		CompressionType: uint8(format.CompressionNone),
	}
}

// IsLittleEndian returns whether multi-byte fields are little-endian.
func (f BlockFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// WithLittleEndian sets little-endian byte order.
func (f *BlockFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *BlockFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetMagicNumber returns the magic number from the Options field.
func (f BlockFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Method returns the scale method.
func (f BlockFlag) Method() format.ScaleMethod {
	return format.ScaleMethod(f.ScaleMethod)
}

// SetMethod sets the scale method.
func (f *BlockFlag) SetMethod(m format.ScaleMethod) {
	f.ScaleMethod = uint8(m)
}

// Compression returns the payload compression type.
func (f BlockFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the payload compression type.
func (f *BlockFlag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// Validate checks the magic number, reserved bits, scale method and compression type.
func (f BlockFlag) Validate() error {
	if err := validateOptions(f.Options, MagicBlockV1Opt); err != nil {
		return err
	}

	if !f.Method().IsValid() {
		return errs.ErrInvalidScaleMethod
	}

	if !f.Compression().IsValid() {
		return errs.ErrInvalidCompression
	}

	return nil
}

// GetEndianEngine returns the endian engine selected by the flag.
func (f BlockFlag) GetEndianEngine() endian.EndianEngine {
	return engineFor(f.Options)
}

func validateOptions(options uint16, magic uint16) error {
	if options&MagicNumberMask != magic {
		return errs.ErrInvalidMagicNumber
	}

	if options&ReservedBitsMask != 0 {
		return errs.ErrInvalidReservedBits
	}

	return nil
}

func engineFor(options uint16) endian.EndianEngine {
	if options&EndiannessMask == 0 {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
