package stat

// Lane accumulators run K independent scalar recurrences in lockstep, one
// per lane, with no cross-lane data dependency. Each tile delivers one
// value per lane, so the update loops are straight-line element-wise
// arithmetic over parallel slices, the shape the compiler auto-vectorizes.
// Lanes interact for the first time in reduce, which tournament-folds the
// per-lane partitions down to a single scalar partition.

type univariateLanes struct {
	width int
	sumW  []float64
	sumX  []float64
	sumXX []float64
}

func newUnivariateLanes(width int) *univariateLanes {
	return &univariateLanes{
		width: width,
		sumW:  make([]float64, width),
		sumX:  make([]float64, width),
		sumXX: make([]float64, width),
	}
}

// addTile absorbs one value per lane. len(xs) must equal the lane width.
func (l *univariateLanes) addTile(xs []float64) {
	for i, x := range xs {
		if l.sumW[i] == 0 {
			l.sumW[i] = 1
			l.sumX[i] = x

			continue
		}

		dx := l.sumW[i]*x - l.sumX[i]
		oldW := l.sumW[i]
		l.sumW[i]++
		l.sumXX[i] += dx * dx / (l.sumW[i] * oldW)
		l.sumX[i] += x
	}
}

// addWeightedTile absorbs one weighted value per lane. Zero-weight
// observations are per-lane no-ops, so a lane can stay empty across any
// number of tiles without poisoning its sums.
func (l *univariateLanes) addWeightedTile(xs, ws []float64) {
	for i, x := range xs {
		w := ws[i]
		if w == 0 {
			continue
		}

		if l.sumW[i] == 0 {
			l.sumW[i] = w
			l.sumX[i] = x * w

			continue
		}

		dx := l.sumW[i]*x - l.sumX[i]
		oldW := l.sumW[i]
		l.sumW[i] += w
		l.sumXX[i] += w * dx * dx / (l.sumW[i] * oldW)
		l.sumX[i] += x * w
	}
}

// reduce combines the lanes pairwise (lane i with lane i+half), halving the
// width each step until one partition remains. The explicit loop keeps the
// tree reduction inspectable independent of the configured width. The
// receiver's sums are consumed in place; the lane accumulator must not be
// used afterwards.
func (l *univariateLanes) reduce() Partition {
	for width := l.width; width > 1; width /= 2 {
		half := width / 2
		for i := 0; i < half; i++ {
			merged := Combine(
				Partition{Count: l.sumW[i], Sum: l.sumX[i], SSR: l.sumXX[i]},
				Partition{Count: l.sumW[i+half], Sum: l.sumX[i+half], SSR: l.sumXX[i+half]},
			)
			l.sumW[i] = merged.Count
			l.sumX[i] = merged.Sum
			l.sumXX[i] = merged.SSR
		}
	}

	return Partition{Count: l.sumW[0], Sum: l.sumX[0], SSR: l.sumXX[0]}
}

type bivariateLanes struct {
	width int
	sumW  []float64
	sumX  []float64
	sumY  []float64
	sumXX []float64
	sumYY []float64
	sumXY []float64
}

func newBivariateLanes(width int) *bivariateLanes {
	return &bivariateLanes{
		width: width,
		sumW:  make([]float64, width),
		sumX:  make([]float64, width),
		sumY:  make([]float64, width),
		sumXX: make([]float64, width),
		sumYY: make([]float64, width),
		sumXY: make([]float64, width),
	}
}

// addTile absorbs one observation pair per lane.
func (l *bivariateLanes) addTile(xs, ys []float64) {
	for i, x := range xs {
		y := ys[i]

		if l.sumW[i] == 0 {
			l.sumW[i] = 1
			l.sumX[i] = x
			l.sumY[i] = y

			continue
		}

		dx := x*l.sumW[i] - l.sumX[i]
		dy := y*l.sumW[i] - l.sumY[i]

		oldW := l.sumW[i]
		l.sumW[i]++

		f := 1 / (l.sumW[i] * oldW)
		l.sumXX[i] += f * dx * dx
		l.sumYY[i] += f * dy * dy
		l.sumXY[i] += f * dx * dy

		l.sumX[i] += x
		l.sumY[i] += y
	}
}

// addWeightedTile absorbs one weighted observation pair per lane.
func (l *bivariateLanes) addWeightedTile(xs, ys, ws []float64) {
	for i, x := range xs {
		y := ys[i]
		w := ws[i]
		if w == 0 {
			continue
		}

		if l.sumW[i] == 0 {
			l.sumW[i] = w
			l.sumX[i] = x * w
			l.sumY[i] = y * w

			continue
		}

		dx := x*l.sumW[i] - l.sumX[i]
		dy := y*l.sumW[i] - l.sumY[i]

		l.sumX[i] += x * w
		l.sumY[i] += y * w

		oldW := l.sumW[i]
		l.sumW[i] += w

		f := w / (l.sumW[i] * oldW)
		l.sumXX[i] += f * dx * dx
		l.sumYY[i] += f * dy * dy
		l.sumXY[i] += f * dx * dy
	}
}

// reduce combines the lanes pairwise down to one partition, consuming the
// receiver's sums in place.
func (l *bivariateLanes) reduce() BivariatePartition {
	for width := l.width; width > 1; width /= 2 {
		half := width / 2
		for i := 0; i < half; i++ {
			merged := CombineBivariate(
				BivariatePartition{
					Count: l.sumW[i], SumX: l.sumX[i], SumY: l.sumY[i],
					SSRX: l.sumXX[i], SSRY: l.sumYY[i], SSRXY: l.sumXY[i],
				},
				BivariatePartition{
					Count: l.sumW[i+half], SumX: l.sumX[i+half], SumY: l.sumY[i+half],
					SSRX: l.sumXX[i+half], SSRY: l.sumYY[i+half], SSRXY: l.sumXY[i+half],
				},
			)
			l.sumW[i] = merged.Count
			l.sumX[i] = merged.SumX
			l.sumY[i] = merged.SumY
			l.sumXX[i] = merged.SSRX
			l.sumYY[i] = merged.SSRY
			l.sumXY[i] = merged.SSRXY
		}
	}

	return BivariatePartition{
		Count: l.sumW[0], SumX: l.sumX[0], SumY: l.sumY[0],
		SSRX: l.sumXX[0], SSRY: l.sumYY[0], SSRXY: l.sumXY[0],
	}
}
