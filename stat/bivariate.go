package stat

// BivariateAccumulator maintains the running sums of one partition over a
// pair of value streams observed together. It is the two-stream extension
// of the univariate recurrence: both residuals are taken against the same
// pre-update count, and three residual sums (x·x, y·y, x·y) advance with a
// shared scale factor.
//
// The zero value is ready to use. Accumulators are not safe for concurrent
// mutation.
type BivariateAccumulator struct {
	sumW  float64
	sumX  float64
	sumY  float64
	sumXX float64
	sumYY float64
	sumXY float64
}

// NewBivariateAccumulator creates an empty accumulator.
func NewBivariateAccumulator() *BivariateAccumulator {
	return &BivariateAccumulator{}
}

// LoadBivariateAccumulator creates an accumulator seeded with a partition's
// raw sums.
func LoadBivariateAccumulator(p BivariatePartition) *BivariateAccumulator {
	return &BivariateAccumulator{
		sumW:  p.Count,
		sumX:  p.SumX,
		sumY:  p.SumY,
		sumXX: p.SSRX,
		sumYY: p.SSRY,
		sumXY: p.SSRXY,
	}
}

// Add absorbs one observation pair with weight 1.
func (a *BivariateAccumulator) Add(x, y float64) {
	if a.sumW == 0 {
		a.sumW = 1
		a.sumX = x
		a.sumY = y

		return
	}

	dx := x*a.sumW - a.sumX
	dy := y*a.sumW - a.sumY

	oldW := a.sumW
	a.sumW++

	f := 1 / (a.sumW * oldW)
	a.sumXX += f * dx * dx
	a.sumYY += f * dy * dy
	a.sumXY += f * dx * dy

	a.sumX += x
	a.sumY += y
}

// AddWeighted absorbs one observation pair with the given weight. A zero
// weight is a no-op and leaves the partition unchanged.
func (a *BivariateAccumulator) AddWeighted(x, y, w float64) {
	if w == 0 {
		return
	}

	if a.sumW == 0 {
		a.sumW = w
		a.sumX = x * w
		a.sumY = y * w

		return
	}

	dx := x*a.sumW - a.sumX
	dy := y*a.sumW - a.sumY

	a.sumX += x * w
	a.sumY += y * w

	oldW := a.sumW
	a.sumW += w

	f := w / (a.sumW * oldW)
	a.sumXX += f * dx * dx
	a.sumYY += f * dy * dy
	a.sumXY += f * dx * dy
}

// Merge folds another partition's observations into the accumulator using
// the O(1) pairwise combine.
func (a *BivariateAccumulator) Merge(p BivariatePartition) {
	merged := CombineBivariate(a.Partition(), p)
	a.sumW = merged.Count
	a.sumX = merged.SumX
	a.sumY = merged.SumY
	a.sumXX = merged.SSRX
	a.sumYY = merged.SSRY
	a.sumXY = merged.SSRXY
}

// Partition returns the raw-sum summary of everything absorbed so far.
func (a *BivariateAccumulator) Partition() BivariatePartition {
	return BivariatePartition{
		Count: a.sumW,
		SumX:  a.sumX,
		SumY:  a.sumY,
		SSRX:  a.sumXX,
		SSRY:  a.sumYY,
		SSRXY: a.sumXY,
	}
}

// Count returns the total weight absorbed so far.
func (a *BivariateAccumulator) Count() float64 {
	return a.sumW
}

// Stats derives a statistics snapshot from the current sums.
func (a *BivariateAccumulator) Stats() BivariateStats {
	return a.Partition().Stats()
}
