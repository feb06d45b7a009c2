package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4 cannot expand a block by more than this factor, which bounds the output buffer.
const lz4MaxRatio = 255

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor provides LZ4 block compression for block payloads.
//
// It is the fastest codec to decode and works best on payloads with long runs of
// repeated bytes, such as sparse or saturated sequences.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses data as a single LZ4 block.
//
// An empty result with a nil error means data is incompressible; callers store the
// payload uncompressed in that case.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// Decompress restores an LZ4 block.
//
// LZ4 blocks do not record their decompressed size, so the output buffer starts at four
// times the input and doubles on ErrInvalidSourceShortBuffer, up to the largest size the
// input could possibly expand to.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	limit := len(data) * lz4MaxRatio
	for size := len(data) * 4; ; size *= 2 {
		size = min(size, limit)

		buf := make([]byte, size)
		n, err := lz4.UncompressBlock(data, buf)
		if err == nil {
			return buf[:n], nil
		}

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) || size == limit {
			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}
	}
}

// DecompressBounded decodes into a buffer of exactly limit bytes.
func (c LZ4Compressor) DecompressBounded(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	buf := make([]byte, limit)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return nil, errTooLarge("lz4", limit)
		}

		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return buf[:n], nil
}
