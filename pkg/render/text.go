package render

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawLabel renders multi-line text at the label's fractional screen
// position, origin bottom-left as in the figure coordinate convention.
func drawLabel(img *image.RGBA, l Label, opts Options) {
	face := basicfont.Face7x13
	x := int(l.X * float64(opts.Width))
	y := int((1 - l.Y) * float64(opts.Height))

	for i, line := range strings.Split(l.Text, "\n") {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(l.Color),
			Face: face,
			Dot:  fixed.P(x, y+i*(face.Height+2)),
		}
		d.DrawString(line)
	}
}
