// Package render turns per-frame scene descriptions into raster images with
// a small software 3D projection. The numerical pipeline never touches
// drawing primitives: it emits a Scene value per frame and this package
// owns all mutation of pixels.
package render

import (
	"image/color"

	relmath "github.com/oxygene76/bbh-scattering/pkg/relativity/math"
)

// Default artifact colors, one per drawable family.
var (
	ColorTrajA   = color.RGBA{R: 0xcd, G: 0x5c, B: 0x5c, A: 0xff} // indianred
	ColorTrajB   = color.RGBA{R: 0x66, G: 0x33, B: 0x99, A: 0xff} // rebeccapurple
	ColorSpinA   = color.RGBA{R: 0xda, G: 0xa5, B: 0x20, A: 0xff} // goldenrod
	ColorSpinB   = color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff} // steelblue
	ColorSpinC   = color.RGBA{R: 0x22, G: 0x8b, B: 0x22, A: 0xff} // forestgreen
	ColorLHat    = color.RGBA{R: 0xda, G: 0x70, B: 0xd6, A: 0xff} // orchid
	ColorMarker  = color.RGBA{A: 0xe6}                            // near-black, slightly translucent
	ColorNotice  = color.RGBA{R: 0xff, G: 0x63, B: 0x47, A: 0xff} // tomato
	ColorText    = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	ColorBackdrop = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Polyline is a 3D trajectory trail.
type Polyline struct {
	Points []relmath.Vector3
	Color  color.RGBA
}

// Marker is a filled disc at a 3D position; Radius is in pixels, sized by
// the caller from the Kerr horizon radius.
type Marker struct {
	Pos    relmath.Vector3
	Radius float64
	Color  color.RGBA
}

// Arrow is a 3D arrow with a simple two-stroke head.
type Arrow struct {
	From, To relmath.Vector3
	Color    color.RGBA
}

// Label is 2D text anchored at fractional screen coordinates.
type Label struct {
	X, Y  float64 // 0..1, origin bottom-left
	Text  string
	Color color.RGBA
}

// Heatmap is the waveform overlay on the z = Z plane: an N-by-N row-major
// cell grid of log10 strain values with a fixed color range.
type Heatmap struct {
	N          int
	X, Y       []float64 // cell-center coordinates, length N*N
	Z          float64
	Values     []float64 // log10(|h|/r), length N*N
	VMin, VMax float64
}

// Scene is the full, backend-independent description of one frame.
type Scene struct {
	Time     float64
	MaxRange float64 // half-extent of the cubic plotting volume
	Heatmap  *Heatmap
	Trails   []Polyline
	Markers  []Marker
	Arrows   []Arrow
	Labels   []Label
}
