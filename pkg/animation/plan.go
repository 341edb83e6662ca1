// Package animation owns the composite time grid, the precomputed frame
// sequence and the output side of the pipeline: GIF/MP4 writers and the
// interactive viewer. It consumes the reconstruction stage's arrays
// read-only.
package animation

import (
	"errors"
	"fmt"
	"math"
)

// Phase is the frame-update state, driven purely by the frame's time value.
type Phase int

const (
	// PhaseInspiral covers t < 0: the binary is drawn, the remnant is not.
	PhaseInspiral Phase = iota
	// PhaseTransition covers 0 <= t < 1: binary artifacts are dropped and
	// remnant artifacts appear.
	PhaseTransition
	// PhaseRingdown covers t >= 1: only the drifting remnant is drawn.
	PhaseRingdown
)

// PhaseAt classifies a time value against the fixed thresholds 0 and 1.
func PhaseAt(t float64) Phase {
	switch {
	case t < 0:
		return PhaseInspiral
	case t < 1:
		return PhaseTransition
	default:
		return PhaseRingdown
	}
}

// Frame is one step of the precomputed sequence. Hold is the number of
// extra displays of the same frame, the declarative form of pausing the
// animation at this time value without touching the time semantics.
type Frame struct {
	Index int
	Time  float64
	Hold  int
}

// Plan holds the composite time grid and the frame sequence derived from
// it. Times is strictly increasing with the freeze time appearing exactly
// once; the hold lives on the frame, not in the grid.
type Plan struct {
	Times       []float64
	Frames      []Frame
	FreezeIndex int
	Cutoff      float64
}

// PlanConfig controls composite-grid construction.
type PlanConfig struct {
	Cutoff      float64 // waveform cutoff time; post-merger grid starts here
	PostStep    float64 // uniform post-merger time step
	PostSpan    float64 // how far past the cutoff to extend the drift
	FreezeTime  float64 // time value to pause at
	FreezeTol   float64 // sample-matching tolerance for the freeze time
	HoldFrames  int     // extra displays of the freeze frame
}

// ErrEmptyGrid indicates a pre-merger grid with no samples below the cutoff.
var ErrEmptyGrid = errors.New("animation: no pre-merger samples below cutoff")

// NewPlan concatenates the non-uniform pre-merger grid (which must already
// contain the freeze time, see series.EnsureTime) with a uniform
// post-merger grid, and derives the frame sequence. The first grid sample
// seeds the drawing state and gets no frame of its own.
func NewPlan(tBinary []float64, cfg PlanConfig) (*Plan, error) {
	var times []float64
	for _, t := range tBinary {
		if t < cfg.Cutoff {
			times = append(times, t)
		}
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: cutoff=%g", ErrEmptyGrid, cfg.Cutoff)
	}
	for t := cfg.Cutoff; t < cfg.Cutoff+cfg.PostSpan; t += cfg.PostStep {
		times = append(times, t)
	}

	freezeIdx := 0
	for i, t := range times {
		if math.Abs(t-cfg.FreezeTime) < math.Abs(times[freezeIdx]-cfg.FreezeTime) {
			freezeIdx = i
		}
	}

	p := &Plan{
		Times:       times,
		FreezeIndex: freezeIdx,
		Cutoff:      cfg.Cutoff,
		Frames:      make([]Frame, 0, len(times)-1),
	}
	for i := 1; i < len(times); i++ {
		f := Frame{Index: i, Time: times[i]}
		if i == freezeIdx {
			f.Hold = cfg.HoldFrames
		}
		p.Frames = append(p.Frames, f)
	}
	return p, nil
}

// TotalDisplays is the frame count including holds, i.e. the length of the
// sequence a writer emits.
func (p *Plan) TotalDisplays() int {
	n := 0
	for _, f := range p.Frames {
		n += 1 + f.Hold
	}
	return n
}
