// Package metrics provides regression error metrics computed with single-pass
// streaming statistics.
//
// Every metric compares a predicted series against an actual series of equal
// length and reduces the pointwise residuals in one pass over the data, using
// the lane-parallel drivers from the stat package. All metrics accept float32
// or float64 slices; accumulation is always performed in float64.
//
// Weighted variants are provided for each metric. A zero weight removes the
// corresponding observation from the metric entirely.
package metrics
