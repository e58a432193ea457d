package metrics

import (
	"math"

	"github.com/arloliu/vecstat/stat"
)

// MeanAbsoluteError returns the mean of the absolute residuals
// |predicted - actual| over both series.
//
// Parameters:
//   - predicted: predicted values
//   - actual: observed values, same length as predicted
//
// Returns:
//   - float64: the mean absolute error
//   - error: stat.ErrEmptyInput or stat.ErrLengthMismatch on invalid input
func MeanAbsoluteError[T stat.Float](predicted, actual []T) (float64, error) {
	s, err := stat.AccumulateBinary(predicted, actual, func(x, y float64) float64 {
		return math.Abs(x - y)
	})
	if err != nil {
		return 0, err
	}

	return s.Mean, nil
}

// WeightedMeanAbsoluteError is MeanAbsoluteError with per-observation weights.
// Zero-weight observations do not contribute to the result.
func WeightedMeanAbsoluteError[T stat.Float](predicted, actual []T, weights []float64) (float64, error) {
	s, err := stat.AccumulateBinary(predicted, actual, func(x, y float64) float64 {
		return math.Abs(x - y)
	}, stat.WithWeights(weights))
	if err != nil {
		return 0, err
	}

	return s.Mean, nil
}

// MeanAbsolutePercentageError returns the mean of |(predicted - actual) / actual|.
// Observations where actual is zero yield an infinite contribution, matching
// the usual definition of the metric.
func MeanAbsolutePercentageError[T stat.Float](predicted, actual []T) (float64, error) {
	s, err := stat.AccumulateBinary(predicted, actual, func(x, y float64) float64 {
		return math.Abs((x - y) / y)
	})
	if err != nil {
		return 0, err
	}

	return s.Mean, nil
}

// WeightedMeanAbsolutePercentageError is MeanAbsolutePercentageError with
// per-observation weights.
func WeightedMeanAbsolutePercentageError[T stat.Float](predicted, actual []T, weights []float64) (float64, error) {
	s, err := stat.AccumulateBinary(predicted, actual, func(x, y float64) float64 {
		return math.Abs((x - y) / y)
	}, stat.WithWeights(weights))
	if err != nil {
		return 0, err
	}

	return s.Mean, nil
}

// MeanSquaredError returns the mean of the squared residuals
// (predicted - actual)^2 over both series.
func MeanSquaredError[T stat.Float](predicted, actual []T) (float64, error) {
	s, err := stat.AccumulateBinary(predicted, actual, squaredResidual)
	if err != nil {
		return 0, err
	}

	return s.Mean, nil
}

// WeightedMeanSquaredError is MeanSquaredError with per-observation weights.
func WeightedMeanSquaredError[T stat.Float](predicted, actual []T, weights []float64) (float64, error) {
	s, err := stat.AccumulateBinary(predicted, actual, squaredResidual, stat.WithWeights(weights))
	if err != nil {
		return 0, err
	}

	return s.Mean, nil
}

// RootMeanSquaredError returns the square root of MeanSquaredError.
func RootMeanSquaredError[T stat.Float](predicted, actual []T) (float64, error) {
	mse, err := MeanSquaredError(predicted, actual)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(mse), nil
}

// WeightedRootMeanSquaredError is RootMeanSquaredError with per-observation
// weights.
func WeightedRootMeanSquaredError[T stat.Float](predicted, actual []T, weights []float64) (float64, error) {
	mse, err := WeightedMeanSquaredError(predicted, actual, weights)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(mse), nil
}

// MeanSquaredLogError returns the mean of (log(1+predicted) - log(1+actual))^2.
// Both series must be greater than -1 for the result to be finite.
func MeanSquaredLogError[T stat.Float](predicted, actual []T) (float64, error) {
	s, err := stat.AccumulateBinary(predicted, actual, func(x, y float64) float64 {
		d := math.Log1p(x) - math.Log1p(y)
		return d * d
	})
	if err != nil {
		return 0, err
	}

	return s.Mean, nil
}

// WeightedMeanSquaredLogError is MeanSquaredLogError with per-observation
// weights.
func WeightedMeanSquaredLogError[T stat.Float](predicted, actual []T, weights []float64) (float64, error) {
	s, err := stat.AccumulateBinary(predicted, actual, func(x, y float64) float64 {
		d := math.Log1p(x) - math.Log1p(y)
		return d * d
	}, stat.WithWeights(weights))
	if err != nil {
		return 0, err
	}

	return s.Mean, nil
}

// R2Score returns the coefficient of determination:
//
//	R^2 = 1 - mse(predicted, actual) / var(actual)
//
// A perfect prediction scores 1. When the actual series has zero variance the
// denominator vanishes and the score is defined as 0.
func R2Score[T stat.Float](predicted, actual []T) (float64, error) {
	mse, err := MeanSquaredError(predicted, actual)
	if err != nil {
		return 0, err
	}
	a, err := stat.Accumulate(actual)
	if err != nil {
		return 0, err
	}
	if a.Variance <= 0 {
		return 0, nil
	}

	return 1 - mse/a.Variance, nil
}

// WeightedR2Score is R2Score with per-observation weights applied to both the
// residual mean and the variance of the actual series.
func WeightedR2Score[T stat.Float](predicted, actual []T, weights []float64) (float64, error) {
	mse, err := WeightedMeanSquaredError(predicted, actual, weights)
	if err != nil {
		return 0, err
	}
	a, err := stat.Accumulate(actual, stat.WithWeights(weights))
	if err != nil {
		return 0, err
	}
	if a.Variance <= 0 {
		return 0, nil
	}

	return 1 - mse/a.Variance, nil
}

// PoissonNegLogLikelihood returns the mean Poisson deviance term
// predicted - actual * ln(predicted). Predicted values must be positive for
// the result to be finite.
func PoissonNegLogLikelihood[T stat.Float](predicted, actual []T) (float64, error) {
	s, err := stat.AccumulateBinary(predicted, actual, poissonTerm)
	if err != nil {
		return 0, err
	}

	return s.Mean, nil
}

// WeightedPoissonNegLogLikelihood is PoissonNegLogLikelihood with
// per-observation weights.
func WeightedPoissonNegLogLikelihood[T stat.Float](predicted, actual []T, weights []float64) (float64, error) {
	s, err := stat.AccumulateBinary(predicted, actual, poissonTerm, stat.WithWeights(weights))
	if err != nil {
		return 0, err
	}

	return s.Mean, nil
}

func squaredResidual(x, y float64) float64 {
	d := x - y
	return d * d
}

func poissonTerm(x, y float64) float64 {
	return x - y*math.Log(x)
}
