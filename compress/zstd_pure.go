//go:build !gozstd || !cgo

package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Encoders and decoders are allocation-free after warmup, so they are pooled rather than
// created per block.
var (
	zstdEncoderPool = sync.Pool{
		New: func() any {
			encoder, err := zstd.NewWriter(nil,
				zstd.WithEncoderLevel(zstd.SpeedDefault),
				zstd.WithEncoderCRC(false), // blocks carry their own xxHash64 checksum
			)
			if err != nil {
				panic(fmt.Sprintf("compress: zstd encoder: %v", err))
			}

			return encoder
		},
	}

	zstdDecoderPool = sync.Pool{
		New: func() any {
			decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
			if err != nil {
				panic(fmt.Sprintf("compress: zstd decoder: %v", err))
			}

			return decoder
		},
	}

	// decoders whose DecodeAll output is capped at cap(dst)
	zstdBoundedDecoderPool = sync.Pool{
		New: func() any {
			decoder, err := zstd.NewReader(nil,
				zstd.WithDecoderConcurrency(1),
				zstd.WithDecodeAllCapLimit(true),
			)
			if err != nil {
				panic(fmt.Sprintf("compress: zstd decoder: %v", err))
			}

			return decoder
		},
	}
)

// Compress compresses data as a single zstd frame.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	return encoder.EncodeAll(data, make([]byte, 0, len(data)/2)), nil
}

// Decompress decompresses a zstd frame.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

// DecompressBounded decompresses data into a buffer of capacity limit.
func (c ZstdCompressor) DecompressBounded(data []byte, limit int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdBoundedDecoderPool.Get().(*zstd.Decoder)
	defer zstdBoundedDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, make([]byte, 0, limit))
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) {
			return nil, errTooLarge("zstd", limit)
		}

		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
