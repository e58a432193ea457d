package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestEngineRoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		buf := engine.AppendUint64(nil, 0x0102030405060708)
		require.Len(t, buf, 8)
		require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))

		buf = engine.AppendUint32(nil, 0xdeadbeef)
		require.Equal(t, uint32(0xdeadbeef), engine.Uint32(buf))
	}
}

func TestCheckEndianness(t *testing.T) {
	order := CheckEndianness()
	require.True(t, order == binary.LittleEndian || order == binary.BigEndian)
	require.Equal(t, order == binary.LittleEndian, IsNativeLittleEndian())
}
