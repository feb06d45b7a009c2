// Package compress provides the payload codecs applied to packed int4 blocks.
//
// Packing already halves the storage of a quantized sequence. Compression is an optional
// second stage, chosen per block and recorded in the block header:
//   - None: payload stored as packed (format.CompressionNone)
//   - Zstd: best ratio, klauspost/compress/zstd (format.CompressionZstd)
//   - S2: balanced speed and ratio, klauspost/compress/s2 (format.CompressionS2)
//   - LZ4: fastest decompression, pierrec/lz4 block format (format.CompressionLZ4)
//
// Codecs are obtained by compression type:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	stored, err := codec.Compress(packed)
//
// All built-in codecs are stateless values backed by sync.Pool'ed encoders, and are safe
// for concurrent use.
//
// # Zstd Backends
//
// The default Zstd backend is pure Go. Building with the gozstd tag switches to the cgo
// bindings of valyala/gozstd; both produce standard Zstandard frames.
package compress
