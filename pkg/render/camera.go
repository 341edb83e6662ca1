package render

import (
	"math"

	relmath "github.com/oxygene76/bbh-scattering/pkg/relativity/math"
)

// camera is an orthographic projection with the conventional 3D-plot
// viewpoint: 30 degrees elevation, -60 degrees azimuth.
type camera struct {
	right, up, fwd relmath.Vector3
	scale          float64 // world units to pixels
	cx, cy         float64 // image center
}

func newCamera(maxRange float64, width, height int) camera {
	elev := 30.0 * math.Pi / 180
	azim := -60.0 * math.Pi / 180

	sinE, cosE := math.Sincos(elev)
	sinA, cosA := math.Sincos(azim)

	// Forward points from the viewer toward the origin.
	fwd := relmath.Vector3{X: -cosE * cosA, Y: -cosE * sinA, Z: -sinE}
	right := relmath.Vector3{X: -sinA, Y: cosA}
	up := right.Cross(fwd)

	// Fit the projected bounding cube with a small margin.
	half := math.Min(float64(width), float64(height)) / 2
	return camera{
		right: right,
		up:    up,
		fwd:   fwd,
		scale: half / (maxRange * math.Sqrt(3) * 0.82),
		cx:    float64(width) / 2,
		cy:    float64(height) / 2,
	}
}

// project maps a world point to pixel coordinates plus a depth value for
// painter-style ordering (larger depth means nearer the viewer).
func (c camera) project(v relmath.Vector3) (x, y, depth float64) {
	x = c.cx + v.Dot(c.right)*c.scale
	y = c.cy - v.Dot(c.up)*c.scale
	depth = -v.Dot(c.fwd)
	return
}
