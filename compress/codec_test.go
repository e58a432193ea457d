package compress

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// samplePayload builds a payload shaped like a real snapshot body: packed
// float64 partition sums with repeating structure.
func samplePayload(partitions int) []byte {
	buf := make([]byte, 0, partitions*24)
	for i := 0; i < partitions; i++ {
		count := float64(1000 + i)
		sum := 42.5 * count
		ssr := 17.25 * (count - 1)
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(count))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(sum))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(ssr))
	}

	return buf
}

func TestCodecRoundTrip(t *testing.T) {
	payload := samplePayload(256)

	tests := []struct {
		name  string
		codec Codec
	}{
		{"NoOp", NewNoOpCompressor()},
		{"Zstd", NewZstdCompressor()},
		{"S2", NewS2Compressor()},
		{"LZ4", NewLZ4Compressor()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(payload)
			require.NoError(t, err)

			restored, err := tt.codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, restored)
		})
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(CompressionType(0xF))
	require.Error(t, err)
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0).String())
}

func TestDecompressCorruptedInput(t *testing.T) {
	garbage := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01, 0x02, 0x03}

	_, err := NewZstdCompressor().Decompress(garbage)
	require.Error(t, err)

	_, err = NewS2Compressor().Decompress(garbage)
	require.Error(t, err)
}
