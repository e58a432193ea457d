// Package vecstat computes descriptive statistics over numeric slices in a
// single pass.
//
// Vecstat is built around numerically stable online accumulation: means,
// variances, covariances and correlations are maintained as running sums that
// never require a second pass over the data. Inside a single call the work is
// spread over independent accumulator lanes that are merged with an exact
// combine step, so large slices are processed tile by tile without changing
// the result beyond ordinary floating-point rounding.
//
// # Core Features
//
//   - Single-pass, numerically stable moment accumulation (Welford style)
//   - Lane-parallel driver with exact partition merging for large inputs
//   - Weighted variants of every statistic, with integer-frequency semantics
//   - Regression error metrics (MAE, MSE, R2, ...) in the metrics package
//   - Binary snapshots of accumulator state with optional compression
//     (None, Zstd, S2, LZ4) in the snapshot package
//
// # Basic Usage
//
// Computing statistics of a slice:
//
//	import "github.com/arloliu/vecstat"
//
//	mean := vecstat.Mean(values)
//	variance := vecstat.Variance(values)
//	corr := vecstat.Correlation(xs, ys)
//
// Streaming accumulation and merging across shards:
//
//	import "github.com/arloliu/vecstat/stat"
//
//	acc := stat.NewUnivariateAccumulator()
//	for _, v := range values {
//	    acc.Add(v)
//	}
//	merged := stat.Combine(acc.Partition(), otherPartition)
//	fmt.Println(merged.Mean())
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the stat
// package, simplifying the most common use cases. For streaming accumulators,
// partitions and driver options, use the stat package directly; for error
// metrics use metrics; for serialization use snapshot.
package vecstat

import (
	"math"

	"github.com/arloliu/vecstat/stat"
)

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean[T stat.Float](values []T) float64 {
	s, err := stat.Accumulate(values)
	if err != nil {
		return 0
	}

	return s.Mean
}

// WeightedMean returns the weighted mean of values, or 0 when the input is
// empty or the weight slice does not match.
func WeightedMean[T stat.Float](values []T, weights []float64) float64 {
	s, err := stat.Accumulate(values, stat.WithWeights(weights))
	if err != nil {
		return 0
	}

	return s.Mean
}

// Variance returns the population variance of values, or 0 for an empty
// slice.
func Variance[T stat.Float](values []T) float64 {
	s, err := stat.Accumulate(values)
	if err != nil {
		return 0
	}

	return s.Variance
}

// WeightedVariance returns the weighted population variance of values, or 0
// when the input is empty or the weight slice does not match.
func WeightedVariance[T stat.Float](values []T, weights []float64) float64 {
	s, err := stat.Accumulate(values, stat.WithWeights(weights))
	if err != nil {
		return 0
	}

	return s.Variance
}

// SampleVariance returns the Bessel-corrected sample variance of values.
//
// Returns:
//   - float64: the sample variance
//   - error: stat.ErrEmptyInput for an empty slice, stat.ErrSampleCount when
//     the total count does not exceed one
func SampleVariance[T stat.Float](values []T) (float64, error) {
	s, err := stat.Accumulate(values)
	if err != nil {
		return 0, err
	}

	return s.SampleVariance()
}

// StdDev returns the population standard deviation of values, or 0 for an
// empty slice.
func StdDev[T stat.Float](values []T) float64 {
	return math.Sqrt(Variance(values))
}

// Covariance returns the population covariance of xs and ys, or 0 when the
// input is empty or the lengths differ.
func Covariance[T stat.Float](xs, ys []T) float64 {
	s, err := stat.AccumulateBivariate(xs, ys)
	if err != nil {
		return 0
	}

	return s.Covariance
}

// SampleCovariance returns the Bessel-corrected sample covariance of xs
// and ys.
func SampleCovariance[T stat.Float](xs, ys []T) (float64, error) {
	s, err := stat.AccumulateBivariate(xs, ys)
	if err != nil {
		return 0, err
	}

	return s.SampleCovariance()
}

// Correlation returns the Pearson correlation coefficient of xs and ys. A
// pair of constant series correlates perfectly with itself and yields 1; if
// only one side is constant the correlation is 0. Empty or mismatched input
// yields 0.
func Correlation[T stat.Float](xs, ys []T) float64 {
	s, err := stat.AccumulateBivariate(xs, ys)
	if err != nil {
		return 0
	}

	return s.Correlation
}

// WeightedCorrelation returns the weighted Pearson correlation coefficient
// of xs and ys, or 0 when the input is empty or the slice lengths differ.
func WeightedCorrelation[T stat.Float](xs, ys []T, weights []float64) float64 {
	s, err := stat.AccumulateBivariate(xs, ys, stat.WithWeights(weights))
	if err != nil {
		return 0
	}

	return s.Correlation
}
