package stat

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func accumulateSlice(values []float64) Partition {
	acc := NewUnivariateAccumulator()
	for _, v := range values {
		acc.Add(v)
	}

	return acc.Partition()
}

func accumulatePairs(xs, ys []float64) BivariatePartition {
	acc := NewBivariateAccumulator()
	for i := range xs {
		acc.Add(xs[i], ys[i])
	}

	return acc.Partition()
}

func TestCombine_MatchesSinglePass(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values := make([]float64, 101)
	for i := range values {
		values[i] = rng.NormFloat64()*12 + 100
	}
	whole := accumulateSlice(values)

	// Split the sequence into contiguous pieces at several granularities
	// and merge the per-piece partitions back together.
	for _, splits := range []int{2, 3, 7} {
		parts := make([]Partition, 0, splits)
		step := len(values) / splits
		for i := 0; i < splits; i++ {
			lo := i * step
			hi := lo + step
			if i == splits-1 {
				hi = len(values)
			}
			parts = append(parts, accumulateSlice(values[lo:hi]))
		}

		merged := Reduce(parts...)
		require.InDelta(t, whole.Count, merged.Count, 1e-9)
		require.InDelta(t, whole.Sum, merged.Sum, 1e-7)
		require.InDelta(t, whole.SSR, merged.SSR, 1e-6)
	}
}

func TestCombine_EmptySide(t *testing.T) {
	p := Partition{Count: 5, Sum: 25, SSR: 10}

	require.Equal(t, p, Combine(p, Partition{}))
	require.Equal(t, p, Combine(Partition{}, p))
	require.Equal(t, Partition{}, Combine(Partition{}, Partition{}))
}

func TestCombine_Commutative(t *testing.T) {
	a := accumulateSlice([]float64{1, 2, 3, 4, 5})
	b := accumulateSlice([]float64{10, 20, 30})

	ab := Combine(a, b)
	ba := Combine(b, a)
	require.InDelta(t, ab.SSR, ba.SSR, 1e-12)
	require.Equal(t, ab.Count, ba.Count)
	require.Equal(t, ab.Sum, ba.Sum)
}

func TestCombine_SingletonMatchesAdd(t *testing.T) {
	// Merging a single-observation partition must agree with absorbing the
	// observation directly.
	acc := NewUnivariateAccumulator()
	for _, v := range []float64{4, 8, 15, 16, 23} {
		acc.Add(v)
	}
	direct := LoadUnivariateAccumulator(acc.Partition())
	direct.Add(42)

	merged := Combine(acc.Partition(), Partition{Count: 1, Sum: 42})
	require.InDelta(t, direct.Partition().SSR, merged.SSR, 1e-9)
	require.Equal(t, direct.Partition().Count, merged.Count)
}

func TestCombineBivariate_MatchesSinglePass(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	n := 73
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		xs[i] = rng.Float64() * 50
		ys[i] = 3*xs[i] + rng.NormFloat64()
	}
	whole := accumulatePairs(xs, ys)

	for _, splits := range []int{2, 3, 7} {
		parts := make([]BivariatePartition, 0, splits)
		step := n / splits
		for i := 0; i < splits; i++ {
			lo := i * step
			hi := lo + step
			if i == splits-1 {
				hi = n
			}
			parts = append(parts, accumulatePairs(xs[lo:hi], ys[lo:hi]))
		}

		merged := ReduceBivariate(parts...)
		require.InDelta(t, whole.Count, merged.Count, 1e-9)
		require.InDelta(t, whole.SSRX, merged.SSRX, 1e-6)
		require.InDelta(t, whole.SSRY, merged.SSRY, 1e-6)
		require.InDelta(t, whole.SSRXY, merged.SSRXY, 1e-6)
		require.InDelta(t, whole.Correlation(), merged.Correlation(), 1e-9)
	}
}

func TestCombineBivariate_EmptySide(t *testing.T) {
	p := BivariatePartition{Count: 3, SumX: 6, SumY: 9, SSRX: 2, SSRY: 4, SSRXY: 1}

	require.Equal(t, p, CombineBivariate(p, BivariatePartition{}))
	require.Equal(t, p, CombineBivariate(BivariatePartition{}, p))
}

func TestReduce_Empty(t *testing.T) {
	require.Equal(t, Partition{}, Reduce())
	require.Equal(t, BivariatePartition{}, ReduceBivariate())
}

func TestLaneReduce_MatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for _, width := range []int{2, 4, 8, 16} {
		tiles := 9
		lanes := newUnivariateLanes(width)
		scalar := NewUnivariateAccumulator()

		buf := make([]float64, width)
		for tile := 0; tile < tiles; tile++ {
			for j := range buf {
				buf[j] = rng.NormFloat64() * 7
			}
			lanes.addTile(buf)
			for _, v := range buf {
				scalar.Add(v)
			}
		}

		reduced := lanes.reduce()
		want := scalar.Partition()
		require.Equal(t, want.Count, reduced.Count)
		require.InDelta(t, want.Sum, reduced.Sum, 1e-9)
		require.InDelta(t, want.SSR, reduced.SSR, 1e-8)
	}
}

func TestLaneReduce_WeightedWithEmptyLanes(t *testing.T) {
	// Zero weights keep some lanes empty through every tile; the reduction
	// must skip them via the empty-side combine rule.
	width := 4
	lanes := newUnivariateLanes(width)
	scalar := NewUnivariateAccumulator()

	xs := [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}
	ws := [][]float64{{1, 0, 2, 0}, {1, 0, 1, 0}, {2, 0, 1, 0}}
	for tile := range xs {
		lanes.addWeightedTile(xs[tile], ws[tile])
		for j := range xs[tile] {
			scalar.AddWeighted(xs[tile][j], ws[tile][j])
		}
	}

	reduced := lanes.reduce()
	want := scalar.Partition()
	require.Equal(t, want.Count, reduced.Count)
	require.InDelta(t, want.Sum, reduced.Sum, 1e-12)
	require.InDelta(t, want.SSR, reduced.SSR, 1e-9)
}

func TestBivariateLaneReduce_MatchesScalar(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	width := 8
	lanes := newBivariateLanes(width)
	scalar := NewBivariateAccumulator()

	xbuf := make([]float64, width)
	ybuf := make([]float64, width)
	for tile := 0; tile < 6; tile++ {
		for j := range xbuf {
			xbuf[j] = rng.Float64() * 100
			ybuf[j] = rng.Float64() * 10
		}
		lanes.addTile(xbuf, ybuf)
		for j := range xbuf {
			scalar.Add(xbuf[j], ybuf[j])
		}
	}

	reduced := lanes.reduce()
	want := scalar.Partition()
	require.Equal(t, want.Count, reduced.Count)
	require.InDelta(t, want.SSRX, reduced.SSRX, 1e-7)
	require.InDelta(t, want.SSRY, reduced.SSRY, 1e-8)
	require.InDelta(t, want.SSRXY, reduced.SSRXY, 1e-7)
}
