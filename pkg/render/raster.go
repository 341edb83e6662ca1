package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"runtime"
	"sync"

	relmath "github.com/oxygene76/bbh-scattering/pkg/relativity/math"
)

// Options controls rasterization quality.
type Options struct {
	Width, Height int
	LineWidth     int
}

// DefaultOptions is the medium-quality figure size.
func DefaultOptions() Options {
	return Options{Width: 500, Height: 400, LineWidth: 2}
}

// Rasterize draws a single scene into a fresh RGBA image: heat map first,
// then trails, markers and arrows, with labels on top.
func Rasterize(s *Scene, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(ColorBackdrop), image.Point{}, draw.Src)

	cam := newCamera(s.MaxRange, opts.Width, opts.Height)

	if s.Heatmap != nil {
		drawHeatmap(img, cam, s.Heatmap)
	}
	for _, tr := range s.Trails {
		drawPolyline(img, cam, tr, opts.LineWidth)
	}
	for _, m := range s.Markers {
		x, y, _ := cam.project(m.Pos)
		fillCircle(img, x, y, m.Radius, m.Color)
	}
	for _, a := range s.Arrows {
		drawArrow(img, cam, a, opts.LineWidth+1)
	}
	for _, l := range s.Labels {
		drawLabel(img, l, opts)
	}
	return img
}

// RasterizeAll renders every scene with a bounded goroutine fan-out; frame
// renders are independent so order is preserved by index.
func RasterizeAll(scenes []*Scene, opts Options) []*image.RGBA {
	imgs := make([]*image.RGBA, len(scenes))
	sem := make(chan struct{}, runtime.NumCPU())
	var wg sync.WaitGroup
	for i, s := range scenes {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, s *Scene) {
			defer wg.Done()
			imgs[i] = Rasterize(s, opts)
			<-sem
		}(i, s)
	}
	wg.Wait()
	return imgs
}

func drawHeatmap(img *image.RGBA, cam camera, h *Heatmap) {
	if h.N < 2 {
		return
	}
	// Cell size from the first row spacing; cells are squares on the plane.
	half := (h.X[1] - h.X[0]) / 2
	for k, v := range h.Values {
		c := coolwarm(v, h.VMin, h.VMax)
		cx, cy := h.X[k], h.Y[k]
		corners := [4]relmath.Vector3{
			{X: cx - half, Y: cy - half, Z: h.Z},
			{X: cx + half, Y: cy - half, Z: h.Z},
			{X: cx + half, Y: cy + half, Z: h.Z},
			{X: cx - half, Y: cy + half, Z: h.Z},
		}
		var px, py [4]float64
		for i, corner := range corners {
			px[i], py[i], _ = cam.project(corner)
		}
		fillQuad(img, px, py, c)
	}
}

// fillQuad scan-fills a convex quadrilateral given in order around its
// perimeter.
func fillQuad(img *image.RGBA, xs, ys [4]float64, c color.RGBA) {
	minY := int(math.Floor(math.Min(math.Min(ys[0], ys[1]), math.Min(ys[2], ys[3]))))
	maxY := int(math.Ceil(math.Max(math.Max(ys[0], ys[1]), math.Max(ys[2], ys[3]))))
	b := img.Bounds()
	for y := max(minY, b.Min.Y); y <= min(maxY, b.Max.Y-1); y++ {
		fy := float64(y) + 0.5
		xl, xr := math.Inf(1), math.Inf(-1)
		for i := 0; i < 4; i++ {
			j := (i + 1) % 4
			y0, y1 := ys[i], ys[j]
			if (fy < y0 && fy < y1) || (fy > y0 && fy > y1) || y0 == y1 {
				continue
			}
			x := xs[i] + (fy-y0)/(y1-y0)*(xs[j]-xs[i])
			xl = math.Min(xl, x)
			xr = math.Max(xr, x)
		}
		if xl > xr {
			continue
		}
		for x := max(int(xl), b.Min.X); x <= min(int(xr), b.Max.X-1); x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func drawPolyline(img *image.RGBA, cam camera, p Polyline, width int) {
	for i := 1; i < len(p.Points); i++ {
		x0, y0, _ := cam.project(p.Points[i-1])
		x1, y1, _ := cam.project(p.Points[i])
		drawLine(img, x0, y0, x1, y1, width, p.Color)
	}
}

func drawArrow(img *image.RGBA, cam camera, a Arrow, width int) {
	x0, y0, _ := cam.project(a.From)
	x1, y1, _ := cam.project(a.To)
	drawLine(img, x0, y0, x1, y1, width, a.Color)

	// Two short strokes at 30 degrees off the reversed shaft direction.
	dx, dy := x0-x1, y0-y1
	l := math.Hypot(dx, dy)
	if l < 1e-9 {
		return
	}
	headLen := math.Min(10, l*0.3)
	ang := math.Atan2(dy, dx)
	for _, da := range []float64{0.5, -0.5} {
		hx := x1 + headLen*math.Cos(ang+da)
		hy := y1 + headLen*math.Sin(ang+da)
		drawLine(img, x1, y1, hx, hy, width, a.Color)
	}
}

// drawLine rasterizes a straight segment by stepping at sub-pixel intervals
// and stamping a width-sized dot; good enough at animation resolution.
func drawLine(img *image.RGBA, x0, y0, x1, y1 float64, width int, c color.RGBA) {
	steps := int(math.Hypot(x1-x0, y1-y0)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		stamp(img, x0+t*(x1-x0), y0+t*(y1-y0), width, c)
	}
}

func stamp(img *image.RGBA, x, y float64, width int, c color.RGBA) {
	r := float64(width) / 2
	fillCircle(img, x, y, math.Max(r, 0.5), c)
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	b := img.Bounds()
	x0, x1 := int(cx-r), int(cx+r)
	y0, y1 := int(cy-r), int(cy+r)
	for y := max(y0, b.Min.Y); y <= min(y1, b.Max.Y-1); y++ {
		for x := max(x0, b.Min.X); x <= min(x1, b.Max.X-1); x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				blend(img, x, y, c)
			}
		}
	}
}

// blend applies source-over compositing for a single pixel so translucent
// markers keep the trails underneath visible.
func blend(img *image.RGBA, x, y int, c color.RGBA) {
	if c.A == 0xff {
		img.SetRGBA(x, y, c)
		return
	}
	dst := img.RGBAAt(x, y)
	a := float64(c.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a))
	}
	img.SetRGBA(x, y, color.RGBA{
		R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: 0xff,
	})
}
