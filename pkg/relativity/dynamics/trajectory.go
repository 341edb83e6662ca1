package dynamics

import (
	"math"

	relmath "github.com/oxygene76/bbh-scattering/pkg/relativity/math"
)

// Component labels the two progenitor black holes.
type Component int

const (
	// BodyA is the heavier component, at phase offset 0.
	BodyA Component = iota
	// BodyB is the lighter component, half a turn away in the orbital plane.
	BodyB
)

// Trajectory reconstructs a component's inertial-frame 3D positions from
// its (already mass-fraction-scaled) separation series, the co-precessing
// frame quaternions and the orbital phase. The component is placed at polar
// coordinates (sep, phase+offset) in the co-precessing orbital plane and
// rotated into the inertial frame by the time-dependent quaternion. With
// separations scaled by the opposite body's mass fraction the two
// trajectories stay in the center-of-mass frame.
func Trajectory(sep []float64, quat []relmath.Quaternion, phase []float64, body Component) []relmath.Vector3 {
	offset := 0.0
	if body == BodyB {
		offset = math.Pi
	}

	traj := make([]relmath.Vector3, len(sep))
	for i := range sep {
		copr := relmath.Vector3{
			X: sep[i] * math.Cos(phase[i]+offset),
			Y: sep[i] * math.Sin(phase[i]+offset),
		}
		traj[i] = quat[i].Rotate(copr)
	}
	return traj
}

// KickTrajectory returns the remnant's ballistic drift positions,
// kick velocity times the elapsed time, with the merger at the origin.
func KickTrajectory(kick relmath.Vector3, times []float64) []relmath.Vector3 {
	traj := make([]relmath.Vector3, len(times))
	for i, t := range times {
		traj[i] = kick.Scale(t)
	}
	return traj
}
