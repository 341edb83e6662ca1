package scattering

import (
	"fmt"
	"image/color"
	"math"

	"github.com/oxygene76/bbh-scattering/pkg/animation"
	"github.com/oxygene76/bbh-scattering/pkg/render"
	relmath "github.com/oxygene76/bbh-scattering/pkg/relativity/math"
)

// Scenes maps every frame of the plan to a renderable scene description.
// This is a pure function of the precomputed result: the rendering backend
// owns all drawing-primitive mutation.
func (m *Manager) Scenes(res *Result) []*render.Scene {
	scenes := make([]*render.Scene, len(res.Plan.Frames))
	for i, f := range res.Plan.Frames {
		scenes[i] = m.buildScene(res, f)
	}
	return scenes
}

func (m *Manager) buildScene(res *Result, f animation.Frame) *render.Scene {
	t := f.Time
	s := &render.Scene{
		Time:     t,
		MaxRange: res.MaxRange,
	}

	s.Labels = append(s.Labels, render.Label{
		X: 0.03, Y: 0.05,
		Text:  fmt.Sprintf("t = %.1f M", t),
		Color: render.ColorText,
	})
	if f.Hold > 0 || f.Index == res.Plan.FreezeIndex-1 {
		s.Labels = append(s.Labels, render.Label{
			X: 0.60, Y: 0.70, Text: "Freezing video", Color: render.ColorNotice,
		})
	}

	if t < res.Plan.Cutoff {
		s.Heatmap = m.heatmap(res, f.Index-1)
	} else {
		s.Labels = append(s.Labels, render.Label{
			X: 0.45, Y: 0.70, Text: "Increased time step to 100M", Color: render.ColorNotice,
		})
	}

	switch animation.PhaseAt(t) {
	case animation.PhaseInspiral:
		m.addBinaryArtifacts(s, res, f.Index)
	default:
		m.addRemnantArtifacts(s, res, f.Index)
	}
	return s
}

func (m *Manager) addBinaryArtifacts(s *render.Scene, res *Result, idx int) {
	cfg := res.Config
	mA, mB := cfg.MassA(), cfg.MassB()
	chiA, chiB := res.ChiA[idx-1], res.ChiB[idx-1]

	s.Labels = append(s.Labels, render.Label{
		X: 0.05, Y: 0.80,
		Text: fmt.Sprintf("q = %.2f\nchiA = [%.2f, %.2f, %.2f]\nchiB = [%.2f, %.2f, %.2f]",
			cfg.Q,
			snapSmall(chiA.X), snapSmall(chiA.Y), snapSmall(chiA.Z),
			snapSmall(chiB.X), snapSmall(chiB.Y), snapSmall(chiB.Z)),
		Color: render.ColorText,
	})

	start := 0
	if !m.params.FullTrajectory {
		start = idx - res.HistFrames
		if start < 0 {
			start = 0
		}
	}
	s.Trails = append(s.Trails,
		render.Polyline{Points: res.TrajA[start:idx], Color: render.ColorTrajA},
		render.Polyline{Points: res.TrajB[start:idx], Color: render.ColorTrajB},
	)

	posA, posB := res.TrajA[idx-1], res.TrajB[idx-1]
	s.Markers = append(s.Markers,
		render.Marker{Pos: posA, Radius: m.markerRadius(mA, cfg.ChiA), Color: render.ColorMarker},
		render.Marker{Pos: posB, Radius: m.markerRadius(mB, cfg.ChiB), Color: render.ColorMarker},
	)

	s.Arrows = append(s.Arrows,
		m.spinArrow(posA, mA, chiA, render.ColorSpinA),
		m.spinArrow(posB, mB, chiB, render.ColorSpinB),
		render.Arrow{
			To:    res.LHat[idx-1].Scale(m.params.LHatScale),
			Color: render.ColorLHat,
		},
	)
}

func (m *Manager) addRemnantArtifacts(s *render.Scene, res *Result, idx int) {
	rem := res.Remnant
	s.Labels = append(s.Labels, render.Label{
		X: 0.05, Y: 0.80,
		Text: fmt.Sprintf("mf = %.2f M\nchif = [%.2f, %.2f, %.2f]\nvf = [%.2f, %.2f, %.2f] x 1e-3 c",
			rem.Mass, rem.Chi.X, rem.Chi.Y, rem.Chi.Z,
			rem.Kick.X*1e3, rem.Kick.Y*1e3, rem.Kick.Z*1e3),
		Color: render.ColorText,
	})

	pos := res.TrajC[idx-1]
	s.Markers = append(s.Markers, render.Marker{
		Pos:    pos,
		Radius: m.markerRadius(rem.Mass, rem.Chi),
		Color:  render.ColorMarker,
	})
	s.Arrows = append(s.Arrows, m.spinArrow(pos, rem.Mass, rem.Chi, render.ColorSpinC))
}

func (m *Manager) heatmap(res *Result, tIdx int) *render.Heatmap {
	vals := res.Grid.EvaluateStrain(res.Waveform, tIdx)
	logVals := make([]float64, len(vals))
	for i, v := range vals {
		logVals[i] = math.Log10(v)
	}
	return &render.Heatmap{
		N:      res.Grid.N,
		X:      res.Grid.X,
		Y:      res.Grid.Y,
		Z:      -res.MaxRange,
		Values: logVals,
		VMin:   res.VMin,
		VMax:   res.VMax,
	}
}

// markerRadius sizes a marker by the Kerr horizon radius m + m*sqrt(1-chi^2).
func (m *Manager) markerRadius(mass float64, chi relmath.Vector3) float64 {
	mag := chi.Magnitude()
	rplus := mass + mass*math.Sqrt(math.Max(0, 1-mag*mag))
	return rplus * m.params.MarkerScale
}

// spinArrow points along the spin with length proportional to the Kerr
// parameter m*chi.
func (m *Manager) spinArrow(pos relmath.Vector3, mass float64, chi relmath.Vector3, c color.RGBA) render.Arrow {
	return render.Arrow{
		From:  pos,
		To:    pos.Add(chi.Scale(mass * m.params.ArrowScale)),
		Color: c,
	}
}

// snapSmall zeroes visually-noise components below 1e-3 in the parameter
// readout.
func snapSmall(x float64) float64 {
	if math.Abs(x) < 1e-3 {
		return 0
	}
	return x
}
