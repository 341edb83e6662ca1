package surrogate

import (
	"errors"
	"fmt"
	"math"

	"github.com/oxygene76/bbh-scattering/internal/types"
	relmath "github.com/oxygene76/bbh-scattering/pkg/relativity/math"
)

// ErrOmegaRefRange indicates a reference frequency below the model's valid
// starting frequency.
var ErrOmegaRefRange = errors.New("surrogate: omega_ref below model range")

// RefTime is the fixed reference time, in M before the waveform peak, at
// which spins are interpreted when no reference frequency is given.
const RefTime = -100.0

// PNInspiralModel is the built-in dynamics stand-in: a leading-order
// post-Newtonian chirp with a simple-precession frame track and spins
// precessing about the orbital angular momentum. Peak amplitude is at t=0.
type PNInspiralModel struct {
	TStart   float64 // start of the dense time base, in M
	TEnd     float64 // end of the dense time base, in M
	Dt       float64 // dense sampling step, in M
	OmegaCap float64 // orbital frequency ceiling near merger
	MinOmega float64 // lowest queryable reference frequency
	TauRing  float64 // ringdown amplitude decay time, in M
}

// NewPNInspiralModel returns the model with its calibrated-by-eyeball
// defaults covering roughly the last 20 orbits.
func NewPNInspiralModel() *PNInspiralModel {
	return &PNInspiralModel{
		TStart:   -4500,
		TEnd:     100,
		Dt:       0.5,
		OmegaCap: 0.35,
		MinOmega: 0.018,
		TauRing:  12,
	}
}

// omegaAt returns the orbital frequency at time t (merger at t=0) from the
// leading-order x = Theta^(-1/4)/4 chirp, capped near merger.
func (m *PNInspiralModel) omegaAt(t, eta float64) float64 {
	if t >= 0 {
		return m.OmegaCap
	}
	theta := eta * (-t) / 5
	x := 0.25 * math.Pow(theta, -0.25)
	omega := math.Pow(x, 1.5)
	if omega > m.OmegaCap {
		return m.OmegaCap
	}
	return omega
}

// Dynamics implements DynamicsModel.
func (m *PNInspiralModel) Dynamics(cfg types.BinaryConfig) (*types.DynamicsSeries, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("surrogate dynamics query: %w", err)
	}
	if cfg.OmegaRef != 0 && cfg.OmegaRef < m.MinOmega {
		return nil, fmt.Errorf("%w: omega_ref=%g < %g",
			ErrOmegaRefRange, cfg.OmegaRef, m.MinOmega)
	}

	eta := cfg.MassA() * cfg.MassB()
	n := int((m.TEnd-m.TStart)/m.Dt) + 1

	d := &types.DynamicsSeries{
		Times:    make([]float64, n),
		Quat:     make([]relmath.Quaternion, n),
		OrbPhase: make([]float64, n),
		ChiA:     make([]relmath.Vector3, n),
		ChiB:     make([]relmath.Vector3, n),
	}

	omega := make([]float64, n)
	for i := 0; i < n; i++ {
		d.Times[i] = m.TStart + float64(i)*m.Dt
		omega[i] = m.omegaAt(d.Times[i], eta)
	}

	// Orbital phase by trapezoidal accumulation of omega.
	for i := 1; i < n; i++ {
		d.OrbPhase[i] = d.OrbPhase[i-1] + 0.5*(omega[i]+omega[i-1])*m.Dt
	}

	// Precession cone: total in-plane spin against orbital angular momentum
	// at the reference point sets the opening angle.
	refIdx := m.referenceIndex(cfg, d.Times, omega)
	beta, precRate := m.precessionCone(cfg, eta, omega[refIdx])

	// Frame quaternion: the orbital plane normal precesses on a cone of
	// opening beta about z. The rotation axis stays in-plane so no spurious
	// twist leaks into the orbital phase.
	alpha := 0.0
	psi := make([]float64, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			x := math.Pow(0.5*(omega[i]+omega[i-1]), 2.0/3.0)
			alpha += precRate * 0.5 * (omega[i] + omega[i-1]) * x * m.Dt
		}
		sinA, cosA := math.Sincos(alpha)
		d.Quat[i] = relmath.FromAxisAngle(relmath.Vector3{X: -sinA, Y: cosA}, beta)
		psi[i] = alpha
	}

	// Spins precess about the instantaneous orbital angular momentum; the
	// accumulated angle is measured from the reference point where the
	// input spins are defined.
	for i := 0; i < n; i++ {
		lHat := d.Quat[i].ZAxis()
		rot := relmath.FromAxisAngle(lHat, psi[i]-psi[refIdx])
		d.ChiA[i] = rot.Rotate(cfg.ChiA)
		d.ChiB[i] = rot.Rotate(cfg.ChiB)
	}

	return d, nil
}

// referenceIndex locates the sample where the input spins are defined:
// the first sample at or above OmegaRef, or the sample nearest RefTime when
// no reference frequency is given.
func (m *PNInspiralModel) referenceIndex(cfg types.BinaryConfig, times, omega []float64) int {
	if cfg.OmegaRef != 0 {
		for i, w := range omega {
			if w >= cfg.OmegaRef {
				return i
			}
		}
		return len(omega) - 1
	}
	best, bestDist := 0, math.Inf(1)
	for i, t := range times {
		if d := math.Abs(t - RefTime); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// precessionCone returns the cone opening angle and the dimensionless
// precession-rate coefficient (2 + 3/(2q)) of the leading spin-orbit term.
func (m *PNInspiralModel) precessionCone(cfg types.BinaryConfig, eta, omegaRef float64) (beta, rate float64) {
	s := cfg.ChiA.Scale(cfg.MassA() * cfg.MassA()).
		Add(cfg.ChiB.Scale(cfg.MassB() * cfg.MassB()))
	sPerp := math.Hypot(s.X, s.Y)
	if sPerp == 0 {
		return 0, 0
	}
	xRef := math.Pow(omegaRef, 2.0/3.0)
	l := eta / math.Sqrt(xRef) // Newtonian orbital angular momentum
	return math.Atan2(sPerp, l+s.Z), 2 + 3/(2*cfg.Q)
}

// Waveform implements DynamicsModel. Modes follow the leading-order
// amplitude hierarchy: the (2,±2) quadrupole, mass-asymmetry (2,±1) and
// (3,±3), and the (3,±2) and (4,±4) quadratic corrections. Past the peak
// the amplitude rings down exponentially at constant frequency.
func (m *PNInspiralModel) Waveform(cfg types.BinaryConfig, times []float64) (types.WaveformSeries, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("surrogate waveform query: %w", err)
	}

	eta := cfg.MassA() * cfg.MassB()
	deltaM := cfg.MassA() - cfg.MassB()

	// Rebuild phase on the requested times so the modes stay coherent with
	// the dynamics regardless of the sampling.
	phase := make([]float64, len(times))
	omega := make([]float64, len(times))
	for i, t := range times {
		omega[i] = m.omegaAt(t, eta)
		if i > 0 {
			phase[i] = phase[i-1] + 0.5*(omega[i]+omega[i-1])*(times[i]-times[i-1])
		}
	}

	type modeAmp struct {
		key types.ModeKey
		amp func(x float64) float64
	}
	specs := []modeAmp{
		{types.ModeKey{L: 2, M: 2}, func(x float64) float64 { return 4 * eta * x }},
		{types.ModeKey{L: 2, M: 1}, func(x float64) float64 { return 4.0 / 3.0 * eta * deltaM * math.Pow(x, 1.5) }},
		{types.ModeKey{L: 3, M: 3}, func(x float64) float64 { return 3 * eta * deltaM * math.Pow(x, 1.5) }},
		{types.ModeKey{L: 3, M: 2}, func(x float64) float64 { return 8.0 / 3.0 * eta * eta * x * x }},
		{types.ModeKey{L: 4, M: 4}, func(x float64) float64 { return 64.0 / 9.0 * eta * eta * x * x }},
	}

	h := make(types.WaveformSeries, 2*len(specs))
	for _, spec := range specs {
		pos := make([]complex128, len(times))
		neg := make([]complex128, len(times))
		mOrder := float64(spec.key.M)
		for i, t := range times {
			x := math.Pow(omega[i], 2.0/3.0)
			amp := spec.amp(x)
			if t > 0 {
				amp *= math.Exp(-t / m.TauRing)
			}
			// h_lm ~ A e^{-i m phi}; the negative-order mode follows from
			// reflection symmetry about the orbital plane.
			c := complex(amp, 0) *
				complex(math.Cos(mOrder*phase[i]), -math.Sin(mOrder*phase[i]))
			pos[i] = c
			sign := complex(1, 0)
			if spec.key.L%2 != 0 {
				sign = -1
			}
			neg[i] = sign * complex(real(c), -imag(c))
		}
		h[spec.key] = pos
		h[types.ModeKey{L: spec.key.L, M: -spec.key.M}] = neg
	}
	return h, nil
}
