package stat

import "fmt"

// Float constrains the element types accepted by the Accumulate drivers.
// Accumulation always runs in float64 regardless of the input type.
type Float interface {
	~float32 | ~float64
}

// Accumulate computes univariate statistics over values in a single pass.
//
// Inputs at least one lane wide are tiled into lane-width windows absorbed
// by the lane accumulator; the lanes are then reduced once with the
// pairwise combine, and any remainder elements are folded in by a scalar
// accumulator seeded from the reduced sums. Shorter inputs take the scalar
// path directly.
//
// Options: WithLaneWidth, WithWeights, WithProjection.
//
// Example:
//
//	stats, err := stat.Accumulate(samples, stat.WithWeights(weights))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(stats.Mean, stats.Variance)
func Accumulate[T Float](values []T, opts ...Option) (UnivariateStats, error) {
	cfg, err := newAccumulateConfig(opts...)
	if err != nil {
		return UnivariateStats{}, err
	}
	if len(values) == 0 {
		return UnivariateStats{}, ErrEmptyInput
	}
	if cfg.weights != nil && len(cfg.weights) != len(values) {
		return UnivariateStats{}, fmt.Errorf("%w: %d values vs %d weights", ErrLengthMismatch, len(values), len(cfg.weights))
	}

	fx, _ := cfg.projections()
	at := func(i int) float64 { return fx(float64(values[i])) }

	return runUnivariate(len(values), cfg, at).Stats(), nil
}

// AccumulateBinary computes univariate statistics over op(x, y) for two
// parallel sequences, evaluating op per element before accumulation. This
// is the building block for regression metrics: op is the per-element
// error term (squared residual, absolute error, ...), and the resulting
// mean is the metric.
//
// Options: WithLaneWidth, WithWeights, WithProjections (applied to the
// operands before op).
func AccumulateBinary[T Float](xs, ys []T, op func(x, y float64) float64, opts ...Option) (UnivariateStats, error) {
	cfg, err := newAccumulateConfig(opts...)
	if err != nil {
		return UnivariateStats{}, err
	}
	if len(xs) == 0 {
		return UnivariateStats{}, ErrEmptyInput
	}
	if len(xs) != len(ys) {
		return UnivariateStats{}, fmt.Errorf("%w: %d vs %d elements", ErrLengthMismatch, len(xs), len(ys))
	}
	if cfg.weights != nil && len(cfg.weights) != len(xs) {
		return UnivariateStats{}, fmt.Errorf("%w: %d values vs %d weights", ErrLengthMismatch, len(xs), len(cfg.weights))
	}

	fx, fy := cfg.projections()
	at := func(i int) float64 { return op(fx(float64(xs[i])), fy(float64(ys[i]))) }

	return runUnivariate(len(xs), cfg, at).Stats(), nil
}

// AccumulateBivariate computes joint statistics (means, variances,
// covariance, correlation) over two parallel sequences in a single pass.
//
// Options: WithLaneWidth, WithWeights, WithProjections.
func AccumulateBivariate[T Float](xs, ys []T, opts ...Option) (BivariateStats, error) {
	cfg, err := newAccumulateConfig(opts...)
	if err != nil {
		return BivariateStats{}, err
	}
	if len(xs) == 0 {
		return BivariateStats{}, ErrEmptyInput
	}
	if len(xs) != len(ys) {
		return BivariateStats{}, fmt.Errorf("%w: %d vs %d elements", ErrLengthMismatch, len(xs), len(ys))
	}
	if cfg.weights != nil && len(cfg.weights) != len(xs) {
		return BivariateStats{}, fmt.Errorf("%w: %d values vs %d weights", ErrLengthMismatch, len(xs), len(cfg.weights))
	}

	fx, fy := cfg.projections()
	atX := func(i int) float64 { return fx(float64(xs[i])) }
	atY := func(i int) float64 { return fy(float64(ys[i])) }

	return runBivariate(len(xs), cfg, atX, atY).Stats(), nil
}

// runUnivariate is the tiling driver shared by Accumulate and
// AccumulateBinary. at yields the projected element at index i and is
// invoked exactly once per index.
func runUnivariate(n int, cfg *accumulateConfig, at func(int) float64) Partition {
	s := cfg.laneWidth
	if n < s {
		acc := NewUnivariateAccumulator()
		scalarTail(acc, 0, n, cfg.weights, at)

		return acc.Partition()
	}

	// Largest multiple of the lane width within n.
	m := n &^ (s - 1)

	lanes := newUnivariateLanes(s)
	xbuf := make([]float64, s)
	for base := 0; base < m; base += s {
		for j := range xbuf {
			xbuf[j] = at(base + j)
		}
		if cfg.weights == nil {
			lanes.addTile(xbuf)
		} else {
			lanes.addWeightedTile(xbuf, cfg.weights[base:base+s])
		}
	}

	acc := LoadUnivariateAccumulator(lanes.reduce())
	scalarTail(acc, m, n, cfg.weights, at)

	return acc.Partition()
}

func scalarTail(acc *UnivariateAccumulator, from, to int, weights []float64, at func(int) float64) {
	if weights == nil {
		for i := from; i < to; i++ {
			acc.Add(at(i))
		}

		return
	}

	for i := from; i < to; i++ {
		acc.AddWeighted(at(i), weights[i])
	}
}

// runBivariate is the tiling driver behind AccumulateBivariate.
func runBivariate(n int, cfg *accumulateConfig, atX, atY func(int) float64) BivariatePartition {
	s := cfg.laneWidth
	if n < s {
		acc := NewBivariateAccumulator()
		bivariateTail(acc, 0, n, cfg.weights, atX, atY)

		return acc.Partition()
	}

	m := n &^ (s - 1)

	lanes := newBivariateLanes(s)
	xbuf := make([]float64, s)
	ybuf := make([]float64, s)
	for base := 0; base < m; base += s {
		for j := range xbuf {
			xbuf[j] = atX(base + j)
			ybuf[j] = atY(base + j)
		}
		if cfg.weights == nil {
			lanes.addTile(xbuf, ybuf)
		} else {
			lanes.addWeightedTile(xbuf, ybuf, cfg.weights[base:base+s])
		}
	}

	acc := LoadBivariateAccumulator(lanes.reduce())
	bivariateTail(acc, m, n, cfg.weights, atX, atY)

	return acc.Partition()
}

func bivariateTail(acc *BivariateAccumulator, from, to int, weights []float64, atX, atY func(int) float64) {
	if weights == nil {
		for i := from; i < to; i++ {
			acc.Add(atX(i), atY(i))
		}

		return
	}

	for i := from; i < to; i++ {
		acc.AddWeighted(atX(i), atY(i), weights[i])
	}
}
