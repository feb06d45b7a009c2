package format

import (
	"fmt"
	"strings"

	"github.com/arloliu/qint4/errs"
)

type (
	ScaleMethod     uint8
	CompressionType uint8
)

const (
	ScaleMinMax ScaleMethod = 0x1 // ScaleMinMax spreads the value range over the 15 int4 steps.
	ScaleAbsMax ScaleMethod = 0x2 // ScaleAbsMax maps the largest magnitude to ±7.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m ScaleMethod) String() string {
	switch m {
	case ScaleMinMax:
		return "minmax"
	case ScaleAbsMax:
		return "absmax"
	default:
		return "unknown"
	}
}

// IsValid reports whether m is one of the supported scale methods.
func (m ScaleMethod) IsValid() bool {
	return m == ScaleMinMax || m == ScaleAbsMax
}

// ParseScaleMethod maps a scale method name ("minmax" or "absmax") to its ScaleMethod.
//
// Matching is exact; any other name fails with errs.ErrInvalidArgument.
func ParseScaleMethod(name string) (ScaleMethod, error) {
	switch name {
	case "minmax":
		return ScaleMinMax, nil
	case "absmax":
		return ScaleAbsMax, nil
	default:
		return 0, fmt.Errorf("%w: unknown scale method %q", errs.ErrInvalidArgument, name)
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the supported compression types.
func (c CompressionType) IsValid() bool {
	return c >= CompressionNone && c <= CompressionLZ4
}

// ParseCompression maps a case-insensitive compression name (none, zstd, s2, lz4)
// to its CompressionType.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "none", "":
		return CompressionNone, nil
	case "zstd":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: unknown compression %q", errs.ErrInvalidArgument, name)
	}
}
