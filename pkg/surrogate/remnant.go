package surrogate

import (
	"fmt"
	"math"

	"github.com/oxygene76/bbh-scattering/internal/types"
	relmath "github.com/oxygene76/bbh-scattering/pkg/relativity/math"
)

// PhenomRemnantFit is the built-in remnant stand-in, assembled from
// published phenomenological fits: the test-particle-limit final mass
// series, the equal-mass-calibrated final-spin polynomial with the total
// spin carried over, and the Fitchett mass-asymmetry kick with an in-plane
// spin-difference contribution. Illustrative only.
type PhenomRemnantFit struct{}

// NewPhenomRemnantFit returns the fit.
func NewPhenomRemnantFit() *PhenomRemnantFit {
	return &PhenomRemnantFit{}
}

// Fitchett kick amplitude in units of c, and spin-kick coefficient for the
// out-of-plane recoil.
const (
	fitchettA = 0.04 // 1.2e4 km/s over c
	fitchettB = -0.93
	spinKickK = 0.012
	maxChiF   = 0.998 // Kerr-bound clamp
)

// FinalState implements RemnantModel.
func (f *PhenomRemnantFit) FinalState(cfg types.BinaryConfig) (*types.RemnantState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("remnant query: %w", err)
	}

	eta := cfg.MassA() * cfg.MassB()

	// Final mass: leading radiated-energy fit, exact in the test-particle
	// limit (1 - sqrt(8/9) binding energy at ISCO).
	mf := 1 + (math.Sqrt(8.0/9.0)-1)*eta - 0.498*eta*eta

	// Final spin: orbital contribution along the late-time angular momentum
	// direction plus the total spin carried through the merger.
	s := cfg.ChiA.Scale(cfg.MassA() * cfg.MassA()).
		Add(cfg.ChiB.Scale(cfg.MassB() * cfg.MassB()))
	orb := 2*math.Sqrt(3)*eta - 3.871*eta*eta + 4.028*eta*eta*eta
	chif := s.Add(relmath.Vector3{Z: orb})
	if mag := chif.Magnitude(); mag > maxChiF {
		chif = chif.Scale(maxChiF / mag)
	}

	// Kick: in-plane Fitchett recoil from mass asymmetry, out-of-plane
	// contribution from the in-plane spin difference.
	vm := fitchettA * eta * eta * math.Sqrt(math.Abs(1-4*eta)) * (1 + fitchettB*eta)
	delta := cfg.ChiA.Scale(cfg.MassA()).Sub(cfg.ChiB.Scale(cfg.MassB()))
	vPerp := spinKickK * eta * eta * math.Hypot(delta.X, delta.Y)
	kick := relmath.Vector3{X: vm, Z: vPerp}

	return &types.RemnantState{
		Mass:    mf,
		Chi:     chif,
		Kick:    kick,
		MassErr: 1e-3,
		ChiErr:  relmath.Vector3{X: 2e-3, Y: 2e-3, Z: 2e-3},
		KickErr: relmath.Vector3{X: 1e-4, Y: 1e-4, Z: 1e-4},
	}, nil
}
