package stat

import (
	"errors"
	"math"
)

var (
	// ErrEmptyInput is returned by the Accumulate drivers when the input
	// sequence has no elements.
	ErrEmptyInput = errors.New("stat: empty input sequence")

	// ErrLengthMismatch is returned when parallel input sequences (values,
	// weights, second stream) have different lengths.
	ErrLengthMismatch = errors.New("stat: input sequences have different lengths")

	// ErrInvalidLaneWidth is returned when the configured lane width is not
	// a power of two within [MinLaneWidth, MaxLaneWidth].
	ErrInvalidLaneWidth = errors.New("stat: lane width must be a power of two between 2 and 64")

	// ErrSampleCount is returned when a sample statistic (sample variance,
	// sample covariance) is queried on a partition holding one observation
	// or fewer. The quantity is mathematically undefined there; callers
	// should check Count before querying.
	ErrSampleCount = errors.New("stat: sample statistic requires more than one observation")
)

// Partition is the self-contained summary of a set of observations from one
// value stream: the (possibly fractional) observation count, the weighted
// sum of values, and the running sum of squared residuals from the mean.
// Everything the package reports derives from these three numbers, so a
// Partition can be merged with others (Combine) or shipped between
// processes without the raw data.
//
// SSR is nonnegative in exact arithmetic; it may drift slightly negative on
// pathological inputs due to floating-point rounding.
type Partition struct {
	Count float64
	Sum   float64
	SSR   float64
}

// IsEmpty reports whether the partition has absorbed no observations.
func (p Partition) IsEmpty() bool {
	return p.Count == 0
}

// Mean returns the weighted mean, or 0 for an empty partition.
func (p Partition) Mean() float64 {
	if p.Count == 0 {
		return 0
	}

	return p.Sum / p.Count
}

// Variance returns the population variance (SSR divided by count), or 0 for
// an empty partition.
func (p Partition) Variance() float64 {
	if p.Count == 0 {
		return 0
	}

	return p.SSR / p.Count
}

// SampleVariance returns the sample variance (SSR divided by count-1).
// It returns ErrSampleCount when Count <= 1.
func (p Partition) SampleVariance() (float64, error) {
	if p.Count <= 1 {
		return 0, ErrSampleCount
	}

	return p.SSR / (p.Count - 1), nil
}

// Stats derives an immutable statistics snapshot from the partition.
func (p Partition) Stats() UnivariateStats {
	return UnivariateStats{
		Count:    p.Count,
		Sum:      p.Sum,
		SSR:      p.SSR,
		Mean:     p.Mean(),
		Variance: p.Variance(),
	}
}

// BivariatePartition extends Partition to a pair of value streams observed
// together: one shared count, per-stream sums and residual sums, and the
// running sum of cross-residual products (SSRXY) from which covariance and
// correlation derive.
type BivariatePartition struct {
	Count float64
	SumX  float64
	SumY  float64
	SSRX  float64
	SSRY  float64
	SSRXY float64
}

// IsEmpty reports whether the partition has absorbed no observations.
func (p BivariatePartition) IsEmpty() bool {
	return p.Count == 0
}

// MeanX returns the weighted mean of the first stream.
func (p BivariatePartition) MeanX() float64 {
	if p.Count == 0 {
		return 0
	}

	return p.SumX / p.Count
}

// MeanY returns the weighted mean of the second stream.
func (p BivariatePartition) MeanY() float64 {
	if p.Count == 0 {
		return 0
	}

	return p.SumY / p.Count
}

// VarianceX returns the population variance of the first stream.
func (p BivariatePartition) VarianceX() float64 {
	if p.Count == 0 {
		return 0
	}

	return p.SSRX / p.Count
}

// VarianceY returns the population variance of the second stream.
func (p BivariatePartition) VarianceY() float64 {
	if p.Count == 0 {
		return 0
	}

	return p.SSRY / p.Count
}

// Covariance returns the population covariance between the two streams.
func (p BivariatePartition) Covariance() float64 {
	if p.Count == 0 {
		return 0
	}

	return p.SSRXY / p.Count
}

// SampleVarianceX returns the sample variance of the first stream, or
// ErrSampleCount when Count <= 1.
func (p BivariatePartition) SampleVarianceX() (float64, error) {
	if p.Count <= 1 {
		return 0, ErrSampleCount
	}

	return p.SSRX / (p.Count - 1), nil
}

// SampleVarianceY returns the sample variance of the second stream, or
// ErrSampleCount when Count <= 1.
func (p BivariatePartition) SampleVarianceY() (float64, error) {
	if p.Count <= 1 {
		return 0, ErrSampleCount
	}

	return p.SSRY / (p.Count - 1), nil
}

// SampleCovariance returns the sample covariance, or ErrSampleCount when
// Count <= 1.
func (p BivariatePartition) SampleCovariance() (float64, error) {
	if p.Count <= 1 {
		return 0, ErrSampleCount
	}

	return p.SSRXY / (p.Count - 1), nil
}

// Correlation returns the Pearson correlation coefficient.
//
// Degenerate streams never produce NaN: two constant streams are perfectly
// correlated by convention (1), and a constant stream paired with a varying
// one has no definable linear relationship (0).
func (p BivariatePartition) Correlation() float64 {
	return correlationFromSums(p.SSRX, p.SSRY, p.SSRXY)
}

// Stats derives an immutable statistics snapshot from the partition.
func (p BivariatePartition) Stats() BivariateStats {
	return BivariateStats{
		Count:       p.Count,
		SumX:        p.SumX,
		SumY:        p.SumY,
		SSRX:        p.SSRX,
		SSRY:        p.SSRY,
		SSRXY:       p.SSRXY,
		MeanX:       p.MeanX(),
		MeanY:       p.MeanY(),
		VarianceX:   p.VarianceX(),
		VarianceY:   p.VarianceY(),
		Covariance:  p.Covariance(),
		Correlation: p.Correlation(),
	}
}

// correlationFromSums applies the degenerate-input policy. The negated
// comparison also catches residual sums that drifted slightly negative from
// rounding, treating them as zero variance.
func correlationFromSums(ssrx, ssry, ssrxy float64) float64 {
	if !(ssrx > 0 && ssry > 0) {
		if ssrx == ssry {
			return 1
		}

		return 0
	}

	return ssrxy / math.Sqrt(ssrx*ssry)
}

// UnivariateStats is a read-only snapshot of the statistics derived from
// one partition. It is created once, after accumulation finishes, and never
// mutated.
type UnivariateStats struct {
	Count    float64
	Sum      float64
	SSR      float64
	Mean     float64
	Variance float64
}

// SampleVariance returns the sample variance (SSR divided by count-1), or
// ErrSampleCount when Count <= 1.
func (s UnivariateStats) SampleVariance() (float64, error) {
	if s.Count <= 1 {
		return 0, ErrSampleCount
	}

	return s.SSR / (s.Count - 1), nil
}

// BivariateStats is the read-only snapshot for a pair of streams.
type BivariateStats struct {
	Count       float64
	SumX        float64
	SumY        float64
	SSRX        float64
	SSRY        float64
	SSRXY       float64
	MeanX       float64
	MeanY       float64
	VarianceX   float64
	VarianceY   float64
	Covariance  float64
	Correlation float64
}

// SampleVarianceX returns the sample variance of the first stream, or
// ErrSampleCount when Count <= 1.
func (s BivariateStats) SampleVarianceX() (float64, error) {
	if s.Count <= 1 {
		return 0, ErrSampleCount
	}

	return s.SSRX / (s.Count - 1), nil
}

// SampleVarianceY returns the sample variance of the second stream, or
// ErrSampleCount when Count <= 1.
func (s BivariateStats) SampleVarianceY() (float64, error) {
	if s.Count <= 1 {
		return 0, ErrSampleCount
	}

	return s.SSRY / (s.Count - 1), nil
}

// SampleCovariance returns the sample covariance, or ErrSampleCount when
// Count <= 1.
func (s BivariateStats) SampleCovariance() (float64, error) {
	if s.Count <= 1 {
		return 0, ErrSampleCount
	}

	return s.SSRXY / (s.Count - 1), nil
}
