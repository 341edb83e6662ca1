package scattering

import (
	"math"
	"testing"

	"github.com/oxygene76/bbh-scattering/internal/types"
	relmath "github.com/oxygene76/bbh-scattering/pkg/relativity/math"
	"github.com/oxygene76/bbh-scattering/pkg/surrogate"
)

func testParams() Params {
	return Params{
		PtsPerOrbit:   30,
		FreezeTime:    -100,
		FreezeTol:     0.1,
		HoldFrames:    75,
		Cutoff:        75,
		PostStep:      100,
		PostSpan:      10000,
		GridN:         10,
		TrailFraction: 0.75,
		MarkerScale:   1.5,
		ArrowScale:    2.5,
		LHatScale:     15,
	}
}

func testConfig() types.BinaryConfig {
	return types.BinaryConfig{
		Q:    2,
		ChiA: relmath.Vector3{X: 0.2, Y: 0.7, Z: -0.1},
		ChiB: relmath.Vector3{X: 0.2, Y: 0.6, Z: 0.1},
	}
}

func TestPrecompute(t *testing.T) {
	m := NewManager(surrogate.NewPNInspiralModel(), surrogate.NewPhenomRemnantFit(), testParams())
	res, err := m.Precompute(testConfig())
	if err != nil {
		t.Fatalf("Precompute: %v", err)
	}

	times := res.Plan.Times
	if times[0] > -100 {
		t.Errorf("grid starts at %g, want coverage of the freeze time", times[0])
	}
	if last := times[len(times)-1]; last <= 75 {
		t.Errorf("grid ends at %g, want post-merger drift past the cutoff", last)
	}

	// The freeze time appears once within tolerance, with the hold on its
	// frame.
	near := 0
	for _, tv := range times {
		if math.Abs(tv-(-100)) <= 0.1 {
			near++
		}
	}
	if near != 1 {
		t.Errorf("samples within tolerance of the freeze time: got %d, want 1", near)
	}
	holds := 0
	for _, f := range res.Plan.Frames {
		if f.Hold > 0 {
			holds++
			if f.Hold != 75 {
				t.Errorf("hold length: got %d, want 75", f.Hold)
			}
		}
	}
	if holds != 1 {
		t.Errorf("held frames: got %d, want 1", holds)
	}

	// Remnant physicality.
	if res.Remnant.Mass <= 0 || res.Remnant.Mass >= 1 {
		t.Errorf("final mass %g outside (0, 1)", res.Remnant.Mass)
	}
	if mag := res.Remnant.Chi.Magnitude(); mag >= 1 {
		t.Errorf("|chi_f|=%g violates the Kerr bound", mag)
	}

	if res.MaxRange <= 0 || math.IsInf(res.MaxRange, 0) || math.IsNaN(res.MaxRange) {
		t.Errorf("max separation %g", res.MaxRange)
	}

	// Center-of-mass condition: mA*posA + mB*posB = 0 at every pre-merger
	// sample.
	cfg := res.Config
	for i := range res.TrajA {
		com := res.TrajA[i].Scale(cfg.MassA()).Add(res.TrajB[i].Scale(cfg.MassB()))
		if com.Magnitude() > 1e-9*res.MaxRange {
			t.Fatalf("sample %d: center of mass drifted to %+v", i, com)
		}
	}

	// Pre-merger arrays align with the composite grid's pre-merger prefix.
	pre := 0
	for _, tv := range times {
		if tv < 75 {
			pre++
		}
	}
	if len(res.TrajA) < pre || len(res.ChiA) < pre || len(res.LHat) < pre {
		t.Errorf("pre-merger arrays shorter than the grid prefix: traj %d, prefix %d",
			len(res.TrajA), pre)
	}
	for _, mode := range res.Waveform {
		if len(mode) < pre {
			t.Errorf("waveform mode shorter than the grid prefix: %d < %d", len(mode), pre)
		}
	}

	// The heat-map color range came out ordered.
	if !(res.VMin < res.VMax) {
		t.Errorf("color range [%g, %g] not ordered", res.VMin, res.VMax)
	}

	// Ballistic drift: the remnant's distance from the merger point grows
	// monotonically after t=0.
	if len(res.TrajC) != len(times) {
		t.Fatalf("drift length %d, grid length %d", len(res.TrajC), len(times))
	}
	last := -1.0
	for i, tv := range times {
		if tv < 0 {
			continue
		}
		mag := res.TrajC[i].Magnitude()
		if mag < last {
			t.Fatalf("drift shrank at t=%g", tv)
		}
		last = mag
	}
}

func TestPrecomputeRejectsInvalidConfig(t *testing.T) {
	m := NewManager(surrogate.NewPNInspiralModel(), surrogate.NewPhenomRemnantFit(), testParams())
	if _, err := m.Precompute(types.BinaryConfig{Q: 0.5}); err == nil {
		t.Fatal("q<1 must fail")
	}
	if _, err := m.Precompute(types.BinaryConfig{Q: 1, OmegaRef: 1e-4}); err == nil {
		t.Fatal("out-of-range omega_ref must fail")
	}
}
