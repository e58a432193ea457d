package snapshot

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vecstat/compress"
	"github.com/arloliu/vecstat/stat"
)

func makePartitions(t *testing.T, seed int64, n int) []stat.Partition {
	t.Helper()

	rng := rand.New(rand.NewSource(seed))
	parts := make([]stat.Partition, n)
	for i := range parts {
		acc := stat.NewUnivariateAccumulator()
		for j := 0; j < 50+rng.Intn(50); j++ {
			acc.Add(rng.NormFloat64() * 10)
		}
		parts[i] = acc.Partition()
	}

	return parts
}

func TestSnapshot_RoundTrip(t *testing.T) {
	parts := makePartitions(t, 1, 4)

	data, err := Marshal(parts)
	require.NoError(t, err)
	require.Len(t, data, headerSize+4*univariateRecordSize)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, parts, got)
}

func TestSnapshot_RoundTripCompressed(t *testing.T) {
	parts := makePartitions(t, 2, 32)

	for _, compression := range []compress.CompressionType{
		compress.CompressionNone,
		compress.CompressionZstd,
		compress.CompressionS2,
		compress.CompressionLZ4,
	} {
		t.Run(compression.String(), func(t *testing.T) {
			data, err := Marshal(parts, WithCompression(compression))
			require.NoError(t, err)

			got, err := Unmarshal(data)
			require.NoError(t, err)
			require.Equal(t, parts, got)
		})
	}
}

func TestSnapshot_RoundTripBigEndian(t *testing.T) {
	parts := makePartitions(t, 3, 4)

	data, err := Marshal(parts, WithBigEndian())
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, parts, got)
}

func TestSnapshot_BivariateRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	parts := make([]stat.BivariatePartition, 3)
	for i := range parts {
		acc := stat.NewBivariateAccumulator()
		for j := 0; j < 40; j++ {
			x := rng.NormFloat64()
			acc.Add(x, 2*x+rng.NormFloat64())
		}
		parts[i] = acc.Partition()
	}

	data, err := MarshalBivariate(parts, WithCompression(compress.CompressionS2))
	require.NoError(t, err)

	dec, err := NewDecoder(data)
	require.NoError(t, err)
	require.Equal(t, KindBivariate, dec.Kind())
	require.Equal(t, 3, dec.Count())

	got, err := dec.BivariatePartitions()
	require.NoError(t, err)
	require.Equal(t, parts, got)

	_, err = dec.Partitions()
	require.ErrorIs(t, err, ErrKindMismatch)
}

func TestSnapshot_MergedPartitionsMatchWholeStream(t *testing.T) {
	// Checkpoint two shards, reload, merge: same result as one pass.
	rng := rand.New(rand.NewSource(5))
	values := make([]float64, 500)
	for i := range values {
		values[i] = rng.NormFloat64() * 4
	}

	whole, err := stat.Accumulate(values)
	require.NoError(t, err)

	var parts []stat.Partition
	for lo := 0; lo < len(values); lo += 250 {
		acc := stat.NewUnivariateAccumulator()
		for _, v := range values[lo : lo+250] {
			acc.Add(v)
		}
		parts = append(parts, acc.Partition())
	}

	data, err := Marshal(parts, WithCompression(compress.CompressionZstd))
	require.NoError(t, err)
	loaded, err := Unmarshal(data)
	require.NoError(t, err)

	merged := stat.Reduce(loaded...).Stats()
	require.Equal(t, whole.Count, merged.Count)
	require.InDelta(t, whole.Mean, merged.Mean, 1e-9)
	require.InDelta(t, whole.Variance, merged.Variance, 1e-9)
}

func TestSnapshot_EmptySnapshot(t *testing.T) {
	data, err := Marshal(nil)
	require.NoError(t, err)
	require.Len(t, data, headerSize)

	got, err := Unmarshal(data)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestEncoder_KindMismatch(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	require.NoError(t, enc.AddPartition(stat.Partition{Count: 1, Sum: 2}))
	require.ErrorIs(t, enc.AddBivariate(stat.BivariatePartition{Count: 1}), ErrKindMismatch)
}

func TestEncoder_AddAfterFinish(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)
	require.NoError(t, enc.AddPartition(stat.Partition{Count: 1}))

	_, err = enc.Finish()
	require.NoError(t, err)
	require.ErrorIs(t, enc.AddPartition(stat.Partition{Count: 1}), ErrSealed)
}

func TestDecoder_MalformedInput(t *testing.T) {
	parts := makePartitions(t, 6, 2)
	data, err := Marshal(parts)
	require.NoError(t, err)

	t.Run("too small", func(t *testing.T) {
		_, err := NewDecoder(data[:headerSize-1])
		require.ErrorIs(t, err, ErrTooSmall)
	})

	t.Run("bad magic", func(t *testing.T) {
		corrupt := append([]byte(nil), data...)
		corrupt[0] ^= 0xFF
		_, err := NewDecoder(corrupt)
		require.ErrorIs(t, err, ErrInvalidMagic)
	})

	t.Run("bad version", func(t *testing.T) {
		corrupt := append([]byte(nil), data...)
		corrupt[2] = 0xFF
		_, err := NewDecoder(corrupt)
		require.ErrorIs(t, err, ErrInvalidVersion)
	})

	t.Run("reserved flag bits", func(t *testing.T) {
		corrupt := append([]byte(nil), data...)
		corrupt[3] |= 1 << 2
		_, err := NewDecoder(corrupt)
		require.ErrorIs(t, err, ErrInvalidFlag)
	})

	t.Run("unknown compression", func(t *testing.T) {
		corrupt := append([]byte(nil), data...)
		corrupt[3] = 0xF0
		_, err := NewDecoder(corrupt)
		require.ErrorIs(t, err, ErrInvalidFlag)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := NewDecoder(data[:len(data)-8])
		require.ErrorIs(t, err, ErrPayloadSize)
	})

	t.Run("flipped payload byte", func(t *testing.T) {
		corrupt := append([]byte(nil), data...)
		corrupt[len(corrupt)-1] ^= 0xFF
		_, err := NewDecoder(corrupt)
		require.ErrorIs(t, err, ErrChecksumMismatch)
	})
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "Univariate", KindUnivariate.String())
	require.Equal(t, "Bivariate", KindBivariate.String())
	require.Equal(t, "Unknown", Kind(9).String())
}
