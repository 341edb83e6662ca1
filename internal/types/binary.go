package types

import (
	"errors"
	"fmt"

	relmath "github.com/oxygene76/bbh-scattering/pkg/relativity/math"
)

// Validation errors for binary configurations.
var (
	ErrMassRatio = errors.New("mass ratio must be >= 1 (convention: mA >= mB)")
	ErrSpinMag   = errors.New("dimensionless spin magnitude must be < 1")
)

// BinaryConfig is the immutable input to the whole pipeline: mass ratio,
// component spins and an optional reference orbital frequency. If OmegaRef
// is zero, the spins are interpreted at the fixed reference time -100M
// before merger.
type BinaryConfig struct {
	Q        float64
	ChiA     relmath.Vector3
	ChiB     relmath.Vector3
	OmegaRef float64
}

// MassA returns the larger component's mass fraction q/(1+q).
func (c BinaryConfig) MassA() float64 {
	return c.Q / (1 + c.Q)
}

// MassB returns the smaller component's mass fraction 1/(1+q).
func (c BinaryConfig) MassB() float64 {
	return 1 / (1 + c.Q)
}

// Validate checks the configuration against the model's domain.
func (c BinaryConfig) Validate() error {
	if c.Q < 1 {
		return fmt.Errorf("%w: got q=%g", ErrMassRatio, c.Q)
	}
	if m := c.ChiA.Magnitude(); m >= 1 {
		return fmt.Errorf("%w: |chiA|=%g", ErrSpinMag, m)
	}
	if m := c.ChiB.Magnitude(); m >= 1 {
		return fmt.Errorf("%w: |chiB|=%g", ErrSpinMag, m)
	}
	return nil
}

// DynamicsSeries holds the precessing-frame dynamics on a common time base:
// at each sample a frame quaternion, a monotonic orbital phase and the two
// inertial-frame spin vectors. Times are strictly increasing.
type DynamicsSeries struct {
	Times    []float64
	Quat     []relmath.Quaternion
	OrbPhase []float64
	ChiA     []relmath.Vector3
	ChiB     []relmath.Vector3
}

// Len returns the number of time samples.
func (d *DynamicsSeries) Len() int { return len(d.Times) }

// ModeKey identifies a spherical-harmonic waveform mode (degree, order).
type ModeKey struct {
	L, M int
}

// WaveformSeries maps mode indices to complex strain time series aligned to
// a common time base.
type WaveformSeries map[ModeKey][]complex128

// RemnantState describes the post-merger black hole: final mass, spin and
// kick velocity with 1-sigma uncertainty estimates. Produced once per binary
// configuration, constant for the post-merger segment.
type RemnantState struct {
	Mass    float64
	Chi     relmath.Vector3
	Kick    relmath.Vector3
	MassErr float64
	ChiErr  relmath.Vector3
	KickErr relmath.Vector3
}
