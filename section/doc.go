// Package section defines the fixed-size binary structures of the qint4 block and block set
// formats: headers, the packed option flag and the block set index entries.
//
// # Block Layout
//
// A block stores one quantized sequence:
//
//	┌──────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                     │
//	├──────────────────────────────────────────────┤
//	│ Payload (PayloadSize bytes)                  │
//	│  - packed int4 nibbles, optionally compressed│
//	└──────────────────────────────────────────────┘
//
// Header format:
//
//	Bytes  | Field        | Type    | Description
//	-------|--------------|---------|--------------------------------------------
//	0-1    | Options      | uint16  | endianness bit and magic 0xA410, always LE
//	2      | ScaleMethod  | uint8   | format.ScaleMethod
//	3      | Compression  | uint8   | format.CompressionType of the payload
//	4-7    | Count        | uint32  | number of values before packing
//	8-11   | Scale        | float32 | quantization scale, finite and non-zero
//	12-15  | ZeroPoint    | float32 | always 0
//	16-19  | PayloadSize  | uint32  | stored payload length
//	20-23  | Reserved     | uint32  | zero
//	24-31  | Checksum     | uint64  | xxHash64 of the stored payload
//
// Count makes the odd-length padding nibble recoverable: the decoder trims the unpacked
// sequence to Count values.
//
// # Block Set Layout
//
//	┌──────────────────────────────────────────────┐
//	│ Set header (16 bytes)                        │
//	│  - Options (magic 0xA420), BlockCount,       │
//	│    PayloadOffset                             │
//	├──────────────────────────────────────────────┤
//	│ Index (BlockCount × 16 bytes)                │
//	│  - ID, Offset, Length, sorted by ID          │
//	├──────────────────────────────────────────────┤
//	│ Blocks (concatenated, each a full block)     │
//	└──────────────────────────────────────────────┘
//
// Index offsets are relative to PayloadOffset.
//
// # Endianness
//
// The Options word is always little-endian so the decoder can read the endianness bit before
// choosing an engine; every other multi-byte field uses the engine the bit selects.
package section
