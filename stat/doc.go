// Package stat computes running statistical moments (mean, variance,
// covariance, correlation) over numeric sequences in a single pass.
//
// The package is built around three ideas:
//
//   - Welford-style updates: each accumulator maintains a running sum of
//     squared residuals against the current mean instead of a raw sum of
//     squares, which avoids the catastrophic cancellation of the textbook
//     sum-of-squares formula.
//   - Lane parallelism: the Accumulate drivers tile the input into
//     fixed-width windows and update independent per-lane sums in lockstep,
//     a data layout the compiler can vectorize. The lane width is a tunable
//     (WithLaneWidth), defaulting to DefaultLaneWidth.
//   - O(1) combining: two partitions' summary sums merge into one
//     statistically equivalent partition using the numerically stable
//     pairwise (parallel variance) formula, without revisiting raw data.
//     Combine is also the composition point for callers that run drivers
//     over disjoint slices on separate goroutines or shards.
//
// # Basic Usage
//
// One-shot accumulation over a slice:
//
//	stats, err := stat.Accumulate(values)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(stats.Mean, stats.Variance)
//
// Streaming accumulation:
//
//	acc := stat.NewUnivariateAccumulator()
//	for _, v := range values {
//	    acc.Add(v)
//	}
//	stats := acc.Stats()
//
// Merging independently computed partial results:
//
//	merged := stat.Combine(partA, partB)
//
// # Precision
//
// Inputs may be float32 or float64; accumulation always runs in float64.
// Results across different lane widths agree up to floating-point rounding,
// not bit-for-bit.
//
// # Concurrency
//
// Accumulators are not safe for concurrent mutation. Partitions and
// snapshots are plain values; share them freely. The drivers never mutate
// caller-owned slices.
package stat
