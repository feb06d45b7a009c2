// Package block frames quantized int4 sequences as self-describing binary blocks, and
// groups named blocks into block sets.
//
// A block records everything needed to restore its values: the scale method, the scale,
// the original value count, the payload compression and an xxHash64 checksum. Because the
// count travels with the payload, the decoder drops the padding nibble of odd-length
// sequences by itself.
//
// # Encoding a Block
//
//	encoder, err := block.NewEncoder(
//	    block.WithScaleMethod(format.ScaleAbsMax),
//	    block.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//	data, err := encoder.Encode(samples)
//
// # Decoding a Block
//
//	b, err := block.Decode(data)
//	if err != nil {
//	    return err
//	}
//	restored := b.Dequantize()
//
// # Block Sets
//
// A SetEncoder collects named sequences and encodes them concurrently. The resulting set
// is indexed by the xxHash64 of each name:
//
//	set, _ := block.NewSetEncoder(block.WithBlockOptions(block.WithScaleMethod(format.ScaleAbsMax)))
//	_ = set.Add("layer0.weight", weights)
//	_ = set.Add("layer0.bias", biases)
//	data, err := set.Finish()
//
//	decoder, err := block.NewSetDecoder(data)
//	bias, err := decoder.Block("layer0.bias")
//
// Compression is skipped per block when it would not shrink the payload; the header
// always records the compression actually applied.
package block
