// Package dynamics reconstructs approximate binary kinematics, separation
// and component trajectories, from the surrogate's frame dynamics.
package dynamics

import (
	"math"

	relmath "github.com/oxygene76/bbh-scattering/pkg/relativity/math"
)

// SeparationFromOmega estimates the binary separation at each sample from
// the orbital angular frequency, the component mass fractions, the spin
// vectors and the orbital angular momentum direction.
//
// The estimate is the 3.5PN-accurate 1/r series of Eq.(4.3) of
// arXiv:1212.5520v2 in x = omega^(2/3), dropping the log term at x^3, with
// the 2PN spin-spin term of Eq.(4.13) of arXiv:gr-qc/9506022 added after
// inversion. This is not verified or tested against anything; do not use it
// for real science, only visualization. NaN/Inf from degenerate (near-zero
// frequency) input propagate to the caller.
func SeparationFromOmega(omega []float64, mA, mB float64, chiA, chiB, lHat []relmath.Vector3) []float64 {
	eta := mA * mB
	deltaM := mA - mB

	r := make([]float64, len(omega))
	for i, w := range omega {
		sigmaVec := chiB[i].Scale(mB).Sub(chiA[i].Scale(mA))
		sVec := chiA[i].Scale(mA * mA).Add(chiB[i].Scale(mB * mB))

		chiAB := chiA[i].Dot(chiB[i])
		sigmaL := sigmaVec.Dot(lHat[i])
		sL := sVec.Dot(lHat[i])

		x := math.Pow(w, 2.0/3.0)
		gamma := x * (1 +
			x*(1-1.0/3.0*eta) +
			math.Pow(x, 1.5)*(5.0/3.0*sL+deltaM*sigmaL) +
			x*x*(1-65.0/12.0*eta) +
			math.Pow(x, 2.5)*((10.0/3.0+8.0/9.0*eta)*sL+2*deltaM*sigmaL) +
			x*x*x*(1+(-2203.0/2520.0-41.0/192.0*math.Pi*math.Pi)*eta+
				229.0/36.0*eta*eta+1.0/81.0*eta*eta*eta) +
			math.Pow(x, 3.5)*((5-127.0/12.0*eta-6*eta*eta)*sL+
				deltaM*sigmaL*(3-61.0/6.0*eta-8.0/3.0*eta*eta)))

		r[i] = 1/gamma +
			math.Pow(w, -2.0/3.0)*(-0.5*eta*chiAB)*math.Pow(w, 4.0/3.0)
	}
	return r
}

// LHatFromQuaternions returns the instantaneous orbital angular momentum
// direction, the co-precessing frame's z axis rotated into the inertial
// frame, at each sample.
func LHatFromQuaternions(quat []relmath.Quaternion) []relmath.Vector3 {
	lHat := make([]relmath.Vector3, len(quat))
	for i, q := range quat {
		lHat[i] = q.ZAxis()
	}
	return lHat
}
