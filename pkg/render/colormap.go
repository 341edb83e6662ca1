package render

import "image/color"

// coolwarm anchor points, sampled from the common diverging blue-white-red
// map used for strain overlays.
var coolwarmAnchors = []color.RGBA{
	{R: 0x3b, G: 0x4c, B: 0xc0, A: 0xff},
	{R: 0x68, G: 0x8a, B: 0xef, A: 0xff},
	{R: 0x99, G: 0xb9, B: 0xff, A: 0xff},
	{R: 0xc9, G: 0xd8, B: 0xef, A: 0xff},
	{R: 0xed, G: 0xd1, B: 0xc2, A: 0xff},
	{R: 0xf7, G: 0xa8, B: 0x89, A: 0xff},
	{R: 0xe3, G: 0x6a, B: 0x53, A: 0xff},
	{R: 0xb4, G: 0x04, B: 0x26, A: 0xff},
}

// coolwarm maps v in [vmin, vmax] onto the diverging palette, clamping
// out-of-range values to the end colors.
func coolwarm(v, vmin, vmax float64) color.RGBA {
	if vmax <= vmin {
		return coolwarmAnchors[0]
	}
	t := (v - vmin) / (vmax - vmin)
	if t <= 0 {
		return coolwarmAnchors[0]
	}
	if t >= 1 {
		return coolwarmAnchors[len(coolwarmAnchors)-1]
	}
	f := t * float64(len(coolwarmAnchors)-1)
	i := int(f)
	frac := f - float64(i)
	a, b := coolwarmAnchors[i], coolwarmAnchors[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + frac*(float64(y)-float64(x)))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xff}
}
