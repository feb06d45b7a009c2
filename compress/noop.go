package compress

// NoOpCompressor stores payloads as they are.
//
// It is the codec behind format.CompressionNone; blocks that are small or already dense
// gain nothing from general-purpose compression.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data itself, without copying.
//
// The returned slice shares memory with the input; callers must not modify the input
// while the result is in use.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data itself, without copying.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressBounded returns data itself if it fits in limit.
func (c NoOpCompressor) DecompressBounded(data []byte, limit int) ([]byte, error) {
	if len(data) > limit {
		return nil, errTooLarge("uncompressed", limit)
	}

	return data, nil
}
