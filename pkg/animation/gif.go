package animation

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
)

// WriteGIF encodes one paletted frame per plan entry. A held frame is not
// repeated; its display delay stretches by the hold count, which keeps the
// file small while preserving the pause. The animation loops forever with
// the repeat delay added to the final frame.
func WriteGIF(path string, plan *Plan, frames []*image.RGBA, delayCS, repeatDelayCS int) error {
	if len(frames) != len(plan.Frames) {
		return fmt.Errorf("animation: %d frames for %d plan entries", len(frames), len(plan.Frames))
	}

	anim := gif.GIF{LoopCount: 0}
	for i, img := range frames {
		pal := image.NewPaletted(img.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, img.Bounds(), img, image.Point{})

		delay := delayCS * (1 + plan.Frames[i].Hold)
		if i == len(frames)-1 {
			delay += repeatDelayCS
		}
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return fmt.Errorf("encoding gif: %w", err)
	}
	return f.Close()
}
