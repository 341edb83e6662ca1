package series

import (
	"fmt"

	"gonum.org/v1/gonum/interp"

	relmath "github.com/oxygene76/bbh-scattering/pkg/relativity/math"
)

// Spline interpolates (oldX, oldY) onto newX using a natural cubic spline.
//
// With allowExtrapolation=false any newX outside [oldX[0], oldX[end]] fails
// with ErrExtrapolation. With allowExtrapolation=true, points outside the
// input domain evaluate to exactly zero. The clamp-to-zero is a deliberate
// policy, not linear extrapolation: attitude or phase queried beyond the
// model's validity silently degrades to zero instead of erroring, and
// callers must account for that.
func Spline(newX, oldX, oldY []float64, allowExtrapolation bool) ([]float64, error) {
	if len(oldY) != len(oldX) {
		return nil, fmt.Errorf("%w: len(oldX)=%d len(oldY)=%d",
			ErrLengthMismatch, len(oldX), len(oldY))
	}
	if len(oldX) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(oldX))
	}
	if !strictlyIncreasing(oldX) {
		return nil, ErrNotIncreasing
	}

	lo, hi := oldX[0], oldX[len(oldX)-1]
	if !allowExtrapolation {
		for _, x := range newX {
			if x < lo || x > hi {
				return nil, fmt.Errorf("%w: x=%g outside [%g, %g]",
					ErrExtrapolation, x, lo, hi)
			}
		}
	}

	var spl interp.NaturalCubic
	if err := spl.Fit(oldX, oldY); err != nil {
		return nil, fmt.Errorf("spline fit: %w", err)
	}

	newY := make([]float64, len(newX))
	for i, x := range newX {
		if x < lo || x > hi {
			newY[i] = 0
			continue
		}
		newY[i] = spl.Predict(x)
	}
	return newY, nil
}

// SplineQuaternions interpolates a frame-quaternion series component-wise.
// The result is not renormalized; this matches the accepted approximation
// for slowly precessing frames.
func SplineQuaternions(newT, oldT []float64, q []relmath.Quaternion) ([]relmath.Quaternion, error) {
	comps := [4][]float64{}
	for c := range comps {
		comps[c] = make([]float64, len(q))
	}
	for i, v := range q {
		comps[0][i], comps[1][i], comps[2][i], comps[3][i] = v.W, v.X, v.Y, v.Z
	}
	for c := range comps {
		out, err := Spline(newT, oldT, comps[c], false)
		if err != nil {
			return nil, err
		}
		comps[c] = out
	}
	out := make([]relmath.Quaternion, len(newT))
	for i := range out {
		out[i] = relmath.Quaternion{
			W: comps[0][i], X: comps[1][i], Y: comps[2][i], Z: comps[3][i],
		}
	}
	return out, nil
}

// SplineVectors interpolates a 3-vector series component-wise.
func SplineVectors(newT, oldT []float64, v []relmath.Vector3) ([]relmath.Vector3, error) {
	comps := [3][]float64{}
	for c := range comps {
		comps[c] = make([]float64, len(v))
	}
	for i, w := range v {
		comps[0][i], comps[1][i], comps[2][i] = w.X, w.Y, w.Z
	}
	for c := range comps {
		out, err := Spline(newT, oldT, comps[c], false)
		if err != nil {
			return nil, err
		}
		comps[c] = out
	}
	out := make([]relmath.Vector3, len(newT))
	for i := range out {
		out[i] = relmath.Vector3{X: comps[0][i], Y: comps[1][i], Z: comps[2][i]}
	}
	return out, nil
}

// OrbitalFrequency returns the orbital angular frequency d(phase)/dt at each
// sample via cubic-spline differentiation, with no smoothing.
func OrbitalFrequency(t, phase []float64) ([]float64, error) {
	if len(t) != len(phase) {
		return nil, fmt.Errorf("%w: len(t)=%d len(phase)=%d",
			ErrLengthMismatch, len(t), len(phase))
	}
	if len(t) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(t))
	}
	if !strictlyIncreasing(t) {
		return nil, ErrNotIncreasing
	}

	var spl interp.NaturalCubic
	if err := spl.Fit(t, phase); err != nil {
		return nil, fmt.Errorf("spline fit: %w", err)
	}
	omega := make([]float64, len(t))
	for i, x := range t {
		omega[i] = spl.PredictDerivative(x)
	}
	return omega, nil
}
