package series

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// UniformInOrbitTimes returns a sparse time array with ptsPerOrbit samples
// per orbit. The orbit count |phase[end]-phase[0]| / 2pi need not be
// integral; the total sample count truncates to an integer. Output times
// come from linearly spaced phase values inverted through a monotonic
// piecewise-linear interpolation of time versus phase.
func UniformInOrbitTimes(t, phase []float64, ptsPerOrbit int) ([]float64, error) {
	if len(t) != len(phase) {
		return nil, fmt.Errorf("%w: len(t)=%d len(phase)=%d",
			ErrLengthMismatch, len(t), len(phase))
	}
	if len(phase) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(phase))
	}
	if !monotonic(phase) {
		return nil, ErrNonMonotonic
	}

	nOrbits := math.Abs(phase[len(phase)-1]-phase[0]) / (2 * math.Pi)
	nPts := int(nOrbits * float64(ptsPerOrbit))
	if nPts < 2 {
		return nil, fmt.Errorf("%w: %g orbits at %d points per orbit",
			ErrTooFewPoints, nOrbits, ptsPerOrbit)
	}

	phaseSparse := make([]float64, nPts)
	floats.Span(phaseSparse, phase[0], phase[len(phase)-1])

	// Piecewise-linear inversion needs phase increasing; flip both arrays
	// for a decreasing (retrograde-phase) convention.
	px, py := phase, t
	if phase[len(phase)-1] < phase[0] {
		px = reversed(phase)
		py = reversed(t)
	}
	var lin interp.PiecewiseLinear
	if err := lin.Fit(px, py); err != nil {
		return nil, fmt.Errorf("time-versus-phase fit: %w", err)
	}

	tSparse := make([]float64, nPts)
	for i, p := range phaseSparse {
		tSparse[i] = lin.Predict(p)
	}
	sort.Float64s(tSparse)
	return tSparse, nil
}

// EnsureTime guarantees that want appears in times: if no existing sample is
// within tol of it, the value is inserted and the array re-sorted. The
// result never holds two samples within tol of want.
func EnsureTime(times []float64, want, tol float64) []float64 {
	for _, t := range times {
		if math.Abs(t-want) <= tol {
			return times
		}
	}
	out := append(append([]float64(nil), times...), want)
	sort.Float64s(out)
	return out
}

func reversed(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}
	return out
}
