package block

import (
	"fmt"

	"github.com/arloliu/qint4/compress"
	"github.com/arloliu/qint4/errs"
	"github.com/arloliu/qint4/internal/hash"
	"github.com/arloliu/qint4/quant"
	"github.com/arloliu/qint4/section"
)

// Decoder decodes a single encoded block.
//
// Note: The Decoder is NOT thread-safe. Each decoder instance should be used by a single goroutine at a time.
type Decoder struct {
	data   []byte
	header section.BlockHeader
}

// NewDecoder parses and validates the block header.
//
// The payload is not verified or decompressed until Decode is called.
//
// Parameters:
//   - data: A complete encoded block, header included
//
// Returns:
//   - *Decoder: Decoder ready for Decode
//   - error: Header errors, or errs.ErrInvalidPayloadLength if data is not exactly
//     header plus payload
func NewDecoder(data []byte) (*Decoder, error) {
	header, err := section.ParseBlockHeader(data)
	if err != nil {
		return nil, err
	}

	want := uint64(section.HeaderSize) + uint64(header.PayloadSize)
	if uint64(len(data)) != want {
		return nil, fmt.Errorf("%w: block is %d bytes, header declares %d", errs.ErrInvalidPayloadLength, len(data), want)
	}

	return &Decoder{data: data, header: header}, nil
}

// Header returns the parsed block header.
func (d *Decoder) Header() section.BlockHeader {
	return d.header
}

// Decode verifies the payload checksum, decompresses and unpacks the payload, and trims
// it to the original length.
//
// Returns:
//   - Block: The decoded block
//   - error: errs.ErrChecksumMismatch, decompression errors, errs.ErrPayloadTooLarge if the
//     payload inflates past the header's packed size, or errs.ErrInvalidPayloadLength if it
//     falls short of it
func (d *Decoder) Decode() (Block, error) {
	payload := d.data[section.HeaderSize:]
	if hash.Checksum(payload) != d.header.Checksum {
		return Block{}, errs.ErrChecksumMismatch
	}

	codec, err := compress.GetCodec(d.header.Flag.Compression())
	if err != nil {
		return Block{}, err
	}

	packed, err := codec.DecompressBounded(payload, d.header.PackedSize())
	if err != nil {
		return Block{}, fmt.Errorf("failed to decompress %s payload: %w", d.header.Flag.Compression(), err)
	}

	if len(packed) != d.header.PackedSize() {
		return Block{}, fmt.Errorf("%w: payload unpacks to %d bytes, want %d", errs.ErrInvalidPayloadLength, len(packed), d.header.PackedSize())
	}

	count := int(d.header.Count)
	if count%2 != 0 && packed[len(packed)-1]>>4 != 0 {
		return Block{}, fmt.Errorf("%w: padding nibble is not zero", errs.ErrInvalidPayloadLength)
	}

	quantized, err := quant.UnpackN(packed, count)
	if err != nil {
		return Block{}, err
	}

	return Block{
		Method:    d.header.Flag.Method(),
		Scale:     d.header.Scale,
		ZeroPoint: d.header.ZeroPoint,
		Quantized: quantized,
	}, nil
}

// Decode is a convenience wrapper around NewDecoder and Decoder.Decode.
func Decode(data []byte) (Block, error) {
	d, err := NewDecoder(data)
	if err != nil {
		return Block{}, err
	}

	return d.Decode()
}
