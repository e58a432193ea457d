package stat

// UnivariateAccumulator maintains the running sums of one partition over a
// single value stream. Observations arrive one at a time through Add or
// AddWeighted; the current summary is available at any point through
// Partition or Stats.
//
// The update is the weighted generalization of Welford's recurrence: the
// residual of the incoming value is taken against the pre-update weighted
// mean, and the squared residual is folded into SSR with a scale factor
// that keeps the accumulation exact for constant streams.
//
// The zero value is ready to use. Accumulators are not safe for concurrent
// mutation.
type UnivariateAccumulator struct {
	sumW  float64
	sumX  float64
	sumXX float64
}

// NewUnivariateAccumulator creates an empty accumulator.
func NewUnivariateAccumulator() *UnivariateAccumulator {
	return &UnivariateAccumulator{}
}

// LoadUnivariateAccumulator creates an accumulator seeded with a
// partition's raw sums. This is how the tiling driver resumes scalar
// accumulation over remainder elements after the lane reduction, and how
// callers continue a stream from a previously serialized partition.
func LoadUnivariateAccumulator(p Partition) *UnivariateAccumulator {
	return &UnivariateAccumulator{
		sumW:  p.Count,
		sumX:  p.Sum,
		sumXX: p.SSR,
	}
}

// Add absorbs one observation with weight 1.
func (a *UnivariateAccumulator) Add(x float64) {
	if a.sumW == 0 {
		a.sumW = 1
		a.sumX = x

		return
	}

	dx := a.sumW*x - a.sumX
	oldW := a.sumW
	a.sumW++
	a.sumXX += dx * dx / (a.sumW * oldW)
	a.sumX += x
}

// AddWeighted absorbs one observation with the given weight. A zero weight
// is a no-op and leaves the partition unchanged.
func (a *UnivariateAccumulator) AddWeighted(x, w float64) {
	if w == 0 {
		return
	}

	if a.sumW == 0 {
		a.sumW = w
		a.sumX = x * w

		return
	}

	dx := a.sumW*x - a.sumX
	oldW := a.sumW
	a.sumW += w
	a.sumXX += w * dx * dx / (a.sumW * oldW)
	a.sumX += x * w
}

// Merge folds another partition's observations into the accumulator using
// the O(1) pairwise combine.
func (a *UnivariateAccumulator) Merge(p Partition) {
	merged := Combine(a.Partition(), p)
	a.sumW = merged.Count
	a.sumX = merged.Sum
	a.sumXX = merged.SSR
}

// Partition returns the raw-sum summary of everything absorbed so far.
func (a *UnivariateAccumulator) Partition() Partition {
	return Partition{
		Count: a.sumW,
		Sum:   a.sumX,
		SSR:   a.sumXX,
	}
}

// Count returns the total weight absorbed so far.
func (a *UnivariateAccumulator) Count() float64 {
	return a.sumW
}

// Stats derives a statistics snapshot from the current sums.
func (a *UnivariateAccumulator) Stats() UnivariateStats {
	return a.Partition().Stats()
}
