// Package errs defines the sentinel errors shared by all qint4 packages.
//
// Callers match them with errors.Is; call sites wrap them with additional context.
package errs

import "errors"

// ErrInvalidArgument is the single error kind of the quantization codec: an unknown scale
// method, non-finite samples, or an impossible trim length.
var ErrInvalidArgument = errors.New("invalid argument")

// Block and block set format errors.
var (
	ErrInvalidHeaderSize    = errors.New("invalid header size")
	ErrInvalidMagicNumber   = errors.New("invalid magic number")
	ErrInvalidReservedBits  = errors.New("reserved bits must be zero")
	ErrInvalidScaleMethod   = errors.New("invalid scale method")
	ErrInvalidCompression   = errors.New("invalid compression type")
	ErrInvalidScale         = errors.New("scale must be finite and non-zero")
	ErrInvalidZeroPoint     = errors.New("zero point must be zero")
	ErrInvalidPayloadLength = errors.New("invalid payload length")
	ErrChecksumMismatch     = errors.New("payload checksum mismatch")
	ErrPayloadTooLarge      = errors.New("decompressed payload exceeds the size declared by the header")
	ErrTooManyValues        = errors.New("too many values for a single block")
	ErrInvalidIndexEntry    = errors.New("invalid block set index entry")
	ErrBlockNotFound        = errors.New("block not found")
	ErrDuplicateBlock       = errors.New("duplicate block")
	ErrEmptyBlockSet        = errors.New("block set has no blocks")
	ErrEncoderFinished      = errors.New("encoder already finished")
)
