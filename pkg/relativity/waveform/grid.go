package waveform

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/oxygene76/bbh-scattering/internal/types"
)

// PlaneGrid is a fixed n-by-n spatial grid on the plane z = -MaxRange below
// the orbital plane, stored row-major with both Cartesian (X, Y) and
// spherical (R, Theta, Phi) coordinates per point.
type PlaneGrid struct {
	N        int
	MaxRange float64
	X, Y     []float64
	R        []float64
	Theta    []float64
	Phi      []float64
}

// NewPlaneGrid builds the viewing-plane grid with n points per side spanning
// [-maxRange, maxRange] in x and y at a fixed depth z = -maxRange.
func NewPlaneGrid(n int, maxRange float64) *PlaneGrid {
	x1d := make([]float64, n)
	floats.Span(x1d, -maxRange, maxRange)

	g := &PlaneGrid{
		N:        n,
		MaxRange: maxRange,
		X:        make([]float64, n*n),
		Y:        make([]float64, n*n),
		R:        make([]float64, n*n),
		Theta:    make([]float64, n*n),
		Phi:      make([]float64, n*n),
	}

	z := -maxRange
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			k := j*n + i
			x, y := x1d[i], x1d[j]
			r := math.Sqrt(x*x + y*y + z*z)
			g.X[k] = x
			g.Y[k] = y
			g.R[k] = r
			g.Theta[k] = math.Acos(z / r)
			g.Phi[k] = math.Atan2(y, x)
		}
	}
	return g
}

// EvaluateStrain sums the mode-weighted spin-weight -2 harmonics at time
// index tIdx and returns |h|/r at each grid point. This is a near-field
// evaluation with no retardation correction: it is a visual overlay, not a
// radiative quantity.
func (g *PlaneGrid) EvaluateStrain(h types.WaveformSeries, tIdx int) []float64 {
	out := make([]float64, len(g.R))
	for k := range out {
		var sum complex128
		for key, mode := range h {
			if tIdx < 0 || tIdx >= len(mode) {
				continue
			}
			sum += mode[tIdx] * SYlm(-2, key.L, key.M, g.Theta[k], g.Phi[k])
		}
		out[k] = cmplxAbs(sum) / g.R[k]
	}
	return out
}

func cmplxAbs(z complex128) float64 {
	return math.Hypot(real(z), imag(z))
}
