package section

const (
	// Bit masks of the Options word
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1), 0 = little, 1 = big
	ReservedBitsMask = 0x000D // Mask for reserved bits (bits 0, 2, 3), must be zero
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic numbers (bits 4-15)
	MagicBlockV1Opt = 0xA410 // MagicBlockV1Opt identifies a version 1 int4 block.
	MagicSetV1Opt   = 0xA420 // MagicSetV1Opt identifies a version 1 block set.
)

// Fixed section sizes in bytes.
const (
	HeaderSize        = 32 // block header
	SetHeaderSize     = 16 // block set header
	SetIndexEntrySize = 16 // block set index entry
)
