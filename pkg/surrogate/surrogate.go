// Package surrogate defines the query boundary to the numerical-relativity
// surrogate models. The models themselves are external black boxes: given a
// mass ratio and two spin vectors they return precessing-frame dynamics,
// waveform modes, or remnant properties, without re-running a simulation.
//
// The package ships lightweight built-in stand-ins (PNInspiralModel,
// PhenomRemnantFit) so the animator works without an external model server.
// They are assembled from leading-order post-Newtonian relations and
// published phenomenological fits and are good enough for visualization
// only; plug a real surrogate in behind the same interfaces for anything
// resembling science.
package surrogate

import (
	"github.com/oxygene76/bbh-scattering/internal/types"
)

// DynamicsModel answers dynamics and waveform queries for a binary
// configuration. Errors are fatal to the run; callers do not retry.
type DynamicsModel interface {
	// Dynamics returns the dense time series of co-precessing frame
	// quaternions, orbital phase and inertial-frame spins.
	Dynamics(cfg types.BinaryConfig) (*types.DynamicsSeries, error)

	// Waveform returns the spherical-harmonic strain modes evaluated at the
	// given times, which need not match the dynamics time base.
	Waveform(cfg types.BinaryConfig, times []float64) (types.WaveformSeries, error)
}

// RemnantModel answers a single remnant query per binary configuration.
type RemnantModel interface {
	// FinalState returns the remnant mass, spin and kick velocity with
	// uncertainty estimates.
	FinalState(cfg types.BinaryConfig) (*types.RemnantState, error)
}
