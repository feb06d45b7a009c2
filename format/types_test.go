package format

import (
	"testing"

	"github.com/arloliu/qint4/errs"
	"github.com/stretchr/testify/require"
)

func TestParseScaleMethod(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ScaleMethod
		wantErr bool
	}{
		{name: "minmax", input: "minmax", want: ScaleMinMax},
		{name: "absmax", input: "absmax", want: ScaleAbsMax},
		{name: "unknown", input: "foo", wantErr: true},
		{name: "case sensitive", input: "MinMax", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseScaleMethod(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.input, got.String())
			require.True(t, got.IsValid())
		})
	}
}

func TestScaleMethod_Invalid(t *testing.T) {
	require.False(t, ScaleMethod(0).IsValid())
	require.False(t, ScaleMethod(0x7).IsValid())
	require.Equal(t, "unknown", ScaleMethod(0x7).String())
}

func TestParseCompression(t *testing.T) {
	cases := map[string]CompressionType{
		"none": CompressionNone,
		"":     CompressionNone,
		"ZSTD": CompressionZstd,
		"s2":   CompressionS2,
		"Lz4":  CompressionLZ4,
	}
	for input, want := range cases {
		got, err := ParseCompression(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got)
		require.True(t, got.IsValid())
	}

	_, err := ParseCompression("brotli")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
	require.False(t, CompressionType(0).IsValid())
	require.Equal(t, "Unknown", CompressionType(0x9).String())
}
