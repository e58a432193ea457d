package stat

// The combine formulas below follow Schubert et al., "Numerically Stable
// Parallel Computation of (Co-)Variance" (SSDBM'18), eq. 22-26: two
// partitions' summary sums merge into the summary an accumulator would have
// produced over the union of their observations, exact in infinite
// precision and far more stable than recombining raw sums of squares.

// Combine merges two partitions holding disjoint observation sets into one
// equivalent partition, in O(1), using only the summary sums. An empty
// partition on either side returns the other unchanged; the general
// formula would divide by zero there.
func Combine(a, b Partition) Partition {
	if a.Count == 0 {
		return b
	}
	if b.Count == 0 {
		return a
	}

	count := a.Count + b.Count
	f := 1 / (a.Count * b.Count * count)
	d := b.Count*a.Sum - a.Count*b.Sum

	return Partition{
		Count: count,
		Sum:   a.Sum + b.Sum,
		SSR:   a.SSR + b.SSR + f*d*d,
	}
}

// CombineBivariate merges two bivariate partitions holding disjoint
// observation sets. The three residual sums advance simultaneously with the
// same scale factor and the per-stream sum differences.
func CombineBivariate(a, b BivariatePartition) BivariatePartition {
	if a.Count == 0 {
		return b
	}
	if b.Count == 0 {
		return a
	}

	count := a.Count + b.Count
	f := 1 / (a.Count * b.Count * count)
	dx := b.Count*a.SumX - a.Count*b.SumX
	dy := b.Count*a.SumY - a.Count*b.SumY

	return BivariatePartition{
		Count: count,
		SumX:  a.SumX + b.SumX,
		SumY:  a.SumY + b.SumY,
		SSRX:  a.SSRX + b.SSRX + f*dx*dx,
		SSRY:  a.SSRY + b.SSRY + f*dy*dy,
		SSRXY: a.SSRXY + b.SSRXY + f*dx*dy,
	}
}

// Reduce folds any number of partitions into one. This is the composition
// point for multi-shard aggregation: run a driver per shard, then reduce
// the resulting partitions.
func Reduce(parts ...Partition) Partition {
	var acc Partition
	for _, p := range parts {
		acc = Combine(acc, p)
	}

	return acc
}

// ReduceBivariate folds any number of bivariate partitions into one.
func ReduceBivariate(parts ...BivariatePartition) BivariatePartition {
	var acc BivariatePartition
	for _, p := range parts {
		acc = CombineBivariate(acc, p)
	}

	return acc
}
