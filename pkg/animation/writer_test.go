package animation

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"testing"
)

func TestCheckFormat(t *testing.T) {
	for _, path := range []string{"out.gif", "out.mp4", "out.GIF", "/tmp/a/b.Mp4"} {
		if err := CheckFormat(path); err != nil {
			t.Errorf("%q: %v", path, err)
		}
	}
	for _, path := range []string{"out.png", "out", "out.gif.avi", "movie.webm"} {
		if err := CheckFormat(path); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("%q: got %v, want ErrUnsupportedFormat", path, err)
		}
	}
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	err := Save("out.png", &Plan{}, nil, 15, 5000)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("got %v, want ErrUnsupportedFormat", err)
	}
}

func solidFrame(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 20, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 20; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestWriteGIF(t *testing.T) {
	plan := &Plan{
		Times: []float64{-2, -1, 0, 1},
		Frames: []Frame{
			{Index: 1, Time: -1},
			{Index: 2, Time: 0, Hold: 3},
			{Index: 3, Time: 1},
		},
		FreezeIndex: 2,
	}
	frames := []*image.RGBA{
		solidFrame(color.RGBA{R: 255, A: 255}),
		solidFrame(color.RGBA{G: 255, A: 255}),
		solidFrame(color.RGBA{B: 255, A: 255}),
	}

	path := filepath.Join(t.TempDir(), "out.gif")
	if err := WriteGIF(path, plan, frames, 6, 500); err != nil {
		t.Fatalf("WriteGIF: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	decoded, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(decoded.Image) != len(frames) {
		t.Fatalf("encoded frames: got %d, want %d", len(decoded.Image), len(frames))
	}
	if decoded.LoopCount != 0 {
		t.Errorf("loop count: got %d, want 0 (loop forever)", decoded.LoopCount)
	}
	// The held frame is not duplicated; its delay stretches instead, and
	// the last frame carries the repeat delay.
	wantDelays := []int{6, 6 * 4, 6 + 500}
	for i, want := range wantDelays {
		if decoded.Delay[i] != want {
			t.Errorf("delay %d: got %d, want %d", i, decoded.Delay[i], want)
		}
	}
}

func TestWriteGIFFrameCountMismatch(t *testing.T) {
	plan := &Plan{Frames: []Frame{{Index: 1}, {Index: 2}}}
	frames := []*image.RGBA{solidFrame(color.RGBA{A: 255})}
	err := WriteGIF(filepath.Join(t.TempDir(), "out.gif"), plan, frames, 6, 0)
	if err == nil {
		t.Fatal("mismatched frame count must fail")
	}
}
