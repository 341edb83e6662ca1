// Package scattering orchestrates the animation pipeline: surrogate
// queries, resampling, kinematic reconstruction and per-frame scene
// building. All heavy numerics happen once in Precompute; playback only
// reads the precomputed arrays.
package scattering

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/oxygene76/bbh-scattering/internal/types"
	"github.com/oxygene76/bbh-scattering/pkg/animation"
	"github.com/oxygene76/bbh-scattering/pkg/relativity/dynamics"
	relmath "github.com/oxygene76/bbh-scattering/pkg/relativity/math"
	"github.com/oxygene76/bbh-scattering/pkg/relativity/series"
	"github.com/oxygene76/bbh-scattering/pkg/relativity/waveform"
	"github.com/oxygene76/bbh-scattering/pkg/surrogate"
)

// Params are the pipeline knobs; see utils.Config for their file-backed
// form and defaults.
type Params struct {
	PtsPerOrbit    int     // frames per orbit during the inspiral
	FreezeTime     float64 // time to pause at, in M
	FreezeTol      float64 // freeze-time sample tolerance
	HoldFrames     int     // extra displays of the freeze frame
	Cutoff         float64 // waveform cutoff time
	PostStep       float64 // post-merger uniform step
	PostSpan       float64 // post-merger drift span
	GridN          int     // heat-map grid points per side
	TrailFraction  float64 // trail length as a fraction of one orbit
	FullTrajectory bool    // unbounded trails
	MarkerScale    float64 // Kerr-radius to pixel-radius factor
	ArrowScale     float64 // spin-arrow length factor
	LHatScale      float64 // angular-momentum arrow length factor
}

// Manager runs the pipeline against a dynamics model and a remnant fit.
type Manager struct {
	model  surrogate.DynamicsModel
	fit    surrogate.RemnantModel
	params Params
}

// NewManager creates a pipeline manager.
func NewManager(model surrogate.DynamicsModel, fit surrogate.RemnantModel, params Params) *Manager {
	return &Manager{model: model, fit: fit, params: params}
}

// Result holds every precomputed array for one binary configuration. The
// animation driver reads slices of it per frame index and never mutates it.
type Result struct {
	Config   types.BinaryConfig
	Plan     *animation.Plan
	MaxRange float64

	// Aligned to the pre-merger prefix of Plan.Times.
	TrajA, TrajB []relmath.Vector3
	ChiA, ChiB   []relmath.Vector3
	LHat         []relmath.Vector3
	Waveform     types.WaveformSeries
	Grid         *waveform.PlaneGrid

	// Aligned to the full composite grid.
	TrajC []relmath.Vector3

	Remnant    *types.RemnantState
	VMin, VMax float64
	HistFrames int
}

// Precompute runs every numerical stage for one binary configuration.
// Surrogate failures propagate unmodified; every error is fatal to the run.
func (m *Manager) Precompute(cfg types.BinaryConfig) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	log.Printf("Querying dynamics surrogate: q=%.3f chiA=%v chiB=%v", cfg.Q, cfg.ChiA, cfg.ChiB)

	dyn, err := m.model.Dynamics(cfg)
	if err != nil {
		return nil, err
	}

	tBinary, err := series.UniformInOrbitTimes(dyn.Times, dyn.OrbPhase, m.params.PtsPerOrbit)
	if err != nil {
		return nil, fmt.Errorf("resampling dynamics: %w", err)
	}
	tBinary = series.EnsureTime(tBinary, m.params.FreezeTime, m.params.FreezeTol)

	quat, err := series.SplineQuaternions(tBinary, dyn.Times, dyn.Quat)
	if err != nil {
		return nil, fmt.Errorf("interpolating frame quaternions: %w", err)
	}
	phase, err := series.Spline(tBinary, dyn.Times, dyn.OrbPhase, false)
	if err != nil {
		return nil, fmt.Errorf("interpolating orbital phase: %w", err)
	}
	omega, err := series.OrbitalFrequency(tBinary, phase)
	if err != nil {
		return nil, fmt.Errorf("differentiating orbital phase: %w", err)
	}
	chiA, err := series.SplineVectors(tBinary, dyn.Times, dyn.ChiA)
	if err != nil {
		return nil, fmt.Errorf("interpolating spins: %w", err)
	}
	chiB, err := series.SplineVectors(tBinary, dyn.Times, dyn.ChiB)
	if err != nil {
		return nil, fmt.Errorf("interpolating spins: %w", err)
	}

	h, err := m.model.Waveform(cfg, tBinary)
	if err != nil {
		return nil, err
	}

	mA, mB := cfg.MassA(), cfg.MassB()
	lHat := dynamics.LHatFromQuaternions(quat)
	sep := dynamics.SeparationFromOmega(omega, mA, mB, chiA, chiB, lHat)

	maxRange := nanMax(sep)
	grid := waveform.NewPlaneGrid(m.params.GridN, maxRange)

	trajA := dynamics.Trajectory(scaled(sep, mB), quat, phase, dynamics.BodyA)
	trajB := dynamics.Trajectory(scaled(sep, mA), quat, phase, dynamics.BodyB)

	log.Printf("Querying remnant fit")
	rem, err := m.fit.FinalState(cfg)
	if err != nil {
		return nil, err
	}

	plan, err := animation.NewPlan(tBinary, animation.PlanConfig{
		Cutoff:     m.params.Cutoff,
		PostStep:   m.params.PostStep,
		PostSpan:   m.params.PostSpan,
		FreezeTime: m.params.FreezeTime,
		FreezeTol:  m.params.FreezeTol,
		HoldFrames: m.params.HoldFrames,
	})
	if err != nil {
		return nil, err
	}

	res := &Result{
		Config:     cfg,
		Plan:       plan,
		MaxRange:   maxRange,
		TrajA:      trajA,
		TrajB:      trajB,
		ChiA:       chiA,
		ChiB:       chiB,
		LHat:       lHat,
		Waveform:   h,
		Grid:       grid,
		TrajC:      dynamics.KickTrajectory(rem.Kick, plan.Times),
		Remnant:    rem,
		HistFrames: int(m.params.TrailFraction * float64(m.params.PtsPerOrbit)),
	}

	// Fixed heat-map color range: floor from the first frame, ceiling from
	// the merger frame.
	res.VMin = math.Log10(minOf(grid.EvaluateStrain(h, 0)))
	res.VMax = math.Log10(maxOf(grid.EvaluateStrain(h, nearestIndex(tBinary, 0))))

	log.Printf("Precompute finished in %v: %d composite samples, %d frames, max separation %.1fM",
		time.Since(start), len(plan.Times), len(plan.Frames), maxRange)
	return res, nil
}

func scaled(x []float64, f float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = v * f
	}
	return out
}

func nanMax(x []float64) float64 {
	best := math.Inf(-1)
	for _, v := range x {
		if !math.IsNaN(v) && v > best {
			best = v
		}
	}
	return best
}

func minOf(x []float64) float64 {
	best := math.Inf(1)
	for _, v := range x {
		if v < best {
			best = v
		}
	}
	return best
}

func maxOf(x []float64) float64 {
	best := math.Inf(-1)
	for _, v := range x {
		if v > best {
			best = v
		}
	}
	return best
}

func nearestIndex(t []float64, want float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, v := range t {
		if d := math.Abs(v - want); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
