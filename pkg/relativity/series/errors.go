// Package series provides the time-series plumbing between the surrogate
// models and the kinematic reconstruction: guarded spline interpolation,
// uniform-in-orbit resampling and spline differentiation.
package series

import "errors"

// Domain errors for time-series operations.
var (
	// ErrLengthMismatch indicates paired arrays of different lengths.
	ErrLengthMismatch = errors.New("series: array lengths do not match")

	// ErrNotIncreasing indicates a time base that is not strictly increasing.
	ErrNotIncreasing = errors.New("series: time values must be strictly increasing")

	// ErrExtrapolation indicates a requested output point outside the input
	// domain while extrapolation is disallowed.
	ErrExtrapolation = errors.New("series: extrapolation requested but not allowed")

	// ErrTooFewPoints indicates a series too short to interpolate.
	ErrTooFewPoints = errors.New("series: need at least 2 points")

	// ErrNonMonotonic indicates an orbital phase series that does not
	// accumulate monotonically.
	ErrNonMonotonic = errors.New("series: orbital phase must be monotonic")
)

func strictlyIncreasing(x []float64) bool {
	for i := 1; i < len(x); i++ {
		if x[i] <= x[i-1] {
			return false
		}
	}
	return true
}

func monotonic(x []float64) bool {
	if len(x) < 2 {
		return true
	}
	increasing := x[len(x)-1] >= x[0]
	for i := 1; i < len(x); i++ {
		if increasing && x[i] < x[i-1] {
			return false
		}
		if !increasing && x[i] > x[i-1] {
			return false
		}
	}
	return true
}
